package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hazyhaar/unemph/pkg/kit"
	"github.com/hazyhaar/unemph/pkg/normalize"
)

// NewRouter returns an http.Handler with all unemph API routes.
func NewRouter(svc *normalize.Service, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		ep:  newEndpoints(svc, logger),
		svc: svc,
	}

	mux.HandleFunc("POST /v1/batch", h.handleBatch)
	mux.HandleFunc("/v1/batch", methodNotAllowed)
	mux.HandleFunc("GET /v1/normalize/{token}", h.handleNormalize)
	mux.HandleFunc("GET /v1/combinations/{token}", h.handleCombinations)
	mux.HandleFunc("GET /v1/dicts", h.handleListDicts)
	mux.HandleFunc("GET /v1/dicts/{id}/lookup/{word}", h.handleLookup)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(securityHeaders(requestID(mux)))
}

type handler struct {
	ep  *endpoints
	svc *normalize.Service
}

// --- normalize single token ---

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing token")
		return
	}
	q := r.URL.Query()
	stem, err := parseBool(q.Get("stem"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid stem parameter")
		return
	}
	explain, err := parseBool(q.Get("explain"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid explain parameter")
		return
	}

	resp, err := h.ep.normalize(r.Context(), &normalizeReq{
		Token:   token,
		Dict:    q.Get("dict"),
		Stem:    stem,
		Explain: explain,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- normalize batch ---

type httpBatchRequest struct {
	Tokens []string `json:"tokens"`
	Stem   bool     `json:"stem,omitempty"`
	Dict   string   `json:"dict,omitempty"`
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.ep.batch(r.Context(), &batchReq{
		Tokens: req.Tokens,
		Dict:   req.Dict,
		Stem:   req.Stem,
	})
	if err != nil {
		if errors.Is(err, normalize.ErrUnknownDict) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- combinations ---

func (h *handler) handleCombinations(w http.ResponseWriter, r *http.Request) {
	stem, err := parseBool(r.URL.Query().Get("stem"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid stem parameter")
		return
	}
	resp, err := h.ep.combinations(r.Context(), &combinationsReq{
		Token: r.PathValue("token"),
		Stem:  stem,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- dictionaries ---

func (h *handler) handleListDicts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ep.listDicts(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ep.lookup(r.Context(), &lookupReq{
		Dict: r.PathValue("id"),
		Word: r.PathValue("word"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status       string `json:"status"`
	Dictionaries int    `json:"dictionaries"`
	TotalWords   int    `json:"total_words"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	reg := h.svc.Registry()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Dictionaries: reg.DictCount(),
		TotalWords:   reg.TotalWords(),
	})
}

// --- helpers ---

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, normalize.ErrUnknownDict) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// requestID propagates X-Request-ID into the context, minting one if absent.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := kit.WithTransport(kit.WithRequestID(r.Context(), id), "http")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// securityHeaders adds the headers a JSON-only API needs.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
