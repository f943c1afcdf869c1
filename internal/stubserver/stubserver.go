// Package stubserver provides an in-memory implementation of the model
// summary service contract for local development and tests. It honors the
// contract as published clients consume it: failure is signaled through a
// literal "error" response body, success through an opaque storage
// identifier.
package stubserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64

	mu    sync.Mutex
	store map[string]json.RawMessage
}

// families lists the estimator families the service accepts summaries for.
var families = map[string]bool{
	"regression": true,
}

// NewHandler constructs the HTTP handler that serves the model summary API.
func NewHandler(logger *zap.Logger, maxBodySize int64) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		store:       make(map[string]json.RawMessage),
	}

	mux := http.NewServeMux()

	// Summary storage endpoint (PUT to store, GET by id to retrieve)
	mux.HandleFunc("/modelsummary/", h.handleSummary)

	return mux
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/modelsummary/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch r.Method {
	case http.MethodPut:
		if len(parts) != 1 {
			h.reject(w, "malformed path", r.URL.Path)
			return
		}
		h.handlePut(w, r, parts[0])
	case http.MethodGet:
		if len(parts) != 2 {
			h.reject(w, "malformed path", r.URL.Path)
			return
		}
		h.handleGet(w, parts[0], parts[1])
	default:
		h.reject(w, "unsupported method", r.Method)
	}
}

func (h *handler) handlePut(w http.ResponseWriter, r *http.Request, family string) {
	if !families[family] {
		h.reject(w, "unknown estimator family", family)
		return
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.reject(w, "failed to read body", err.Error())
		return
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		h.reject(w, "invalid summary document", err.Error())
		return
	}

	id := family + "/" + uuid.NewString()

	h.mu.Lock()
	h.store[id] = json.RawMessage(body)
	h.mu.Unlock()

	h.logger.Info("stored model summary",
		zap.String("op", "stubserver.handlePut"),
		zap.String("id", id),
	)
	_, _ = w.Write([]byte(id))
}

func (h *handler) handleGet(w http.ResponseWriter, family, id string) {
	h.mu.Lock()
	doc, ok := h.store[family+"/"+id]
	h.mu.Unlock()

	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

// reject answers with the contract's failure body. Clients only look at the
// body text, so the status stays 200.
func (h *handler) reject(w http.ResponseWriter, reason, detail string) {
	h.logger.Warn("rejected model summary request",
		zap.String("op", "stubserver.reject"),
		zap.String("reason", reason),
		zap.String("detail", detail),
	)
	_, _ = w.Write([]byte("error"))
}
