package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemoryCache(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected a miss for an unknown key")
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := m.Get("k")
	if !ok || got != "v" {
		t.Fatalf("expected hit with value v, got %q (hit=%v)", got, ok)
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			m.Set(key, "v")
			m.Get(key)
		}(i)
	}
	wg.Wait()
}
