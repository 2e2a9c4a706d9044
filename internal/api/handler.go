package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jashkothari/foliobot/internal/chat"
	"github.com/jashkothari/foliobot/internal/ollama"
	"github.com/jashkothari/foliobot/internal/profile"
)

const maxRequestBodySize = 64 << 10 // 64KB; a chat message, not a document

// Deps holds everything the HTTP surface needs.
type Deps struct {
	Store   *profile.Store
	Session *chat.Session
	Version string
}

// NewHandler returns the http.Handler serving the chat page and its JSON API.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Get("/", handlePage(deps))
	r.Get("/api/profile", handleGetProfile(deps))
	r.Get("/api/transcript", handleTranscript(deps))
	r.Post("/api/chat", handleChat(deps))
	r.Post("/api/reload", handleReload(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleGetProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := deps.Store.Get()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "profile_error", "loading profile: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

func handleTranscript(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deps.Session.Transcript())
	}
}

// ChatRequest is the JSON body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries both entries appended by a successful turn.
type ChatResponse struct {
	User      chat.Entry `json:"user"`
	Assistant chat.Entry `json:"assistant"`
}

func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		user, assistant, err := deps.Session.Ask(r.Context(), req.Message)
		switch {
		case errors.Is(err, chat.ErrBusy):
			httpError(w, http.StatusConflict, "busy_error", "%v", err)
			return
		case errors.Is(err, ollama.ErrUnreachable):
			httpError(w, http.StatusBadGateway, "generation_error", "%v", err)
			return
		case err != nil:
			httpError(w, http.StatusBadGateway, "generation_error", "generating response: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatResponse{User: user, Assistant: assistant})
	}
}

func handleReload(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Store.Reload(); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, profile.ErrNotFound) {
				status = http.StatusNotFound
			} else if errors.Is(err, profile.ErrParse) || errors.Is(err, profile.ErrInvalid) {
				status = http.StatusUnprocessableEntity
			}
			httpError(w, status, "profile_error", "reloading profile: %v", err)
			return
		}

		p, err := deps.Store.Get()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "profile_error", "loading profile: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
