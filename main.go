package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"rentbuy-engine/internal/cache"
	"rentbuy-engine/internal/config"
	"rentbuy-engine/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	var store cache.Cache
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(cfg.RedisAddr)
		log.Printf("Using Redis result cache at %s", cfg.RedisAddr)
	} else {
		store = cache.NewMemory()
	}

	h := handler.New(store, cfg.DefaultPaths)

	log.Printf("Rent-vs-buy engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
