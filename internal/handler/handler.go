package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"rentbuy-engine/internal/cache"
	"rentbuy-engine/internal/engine"
	"rentbuy-engine/internal/model"
)

type Handler struct {
	cache        cache.Cache
	defaultPaths int
}

func New(c cache.Cache, defaultPaths int) *Handler {
	return &Handler{cache: c, defaultPaths: defaultPaths}
}

// Handle routes all requests; the engine has a single operation.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/analyze":
		h.analyze(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) analyze(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.AnalysisRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Paths == 0 {
		req.Paths = h.defaultPaths
	}
	if err := req.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	// Only results that are a pure function of the request are cached:
	// an unseeded Monte Carlo run is freshly random every time.
	cacheable := !req.MonteCarlo || req.Seed != 0
	key := requestKey(&req)
	if cacheable {
		if body, ok := h.cache.Get(key); ok {
			writeJSONBody(ctx, []byte(body))
			return
		}
	}

	resp := engine.Process(&req)

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	if cacheable {
		if err := h.cache.Set(key, string(body)); err != nil {
			log.Printf("cache set failed: %v", err)
		}
	}
	writeJSONBody(ctx, body)
}

// requestKey digests the canonical form of the request, so bodies that
// differ only in field order or whitespace share a cache entry.
func requestKey(req *model.AnalysisRequest) string {
	canonical, _ := json.Marshal(req)
	sum := sha256.Sum256(canonical)
	return "analysis:" + hex.EncodeToString(sum[:])
}

func writeJSONBody(ctx *fasthttp.RequestCtx, body []byte) {
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
