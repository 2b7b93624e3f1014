package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/brian-dev01/WDD-Server/domain/infra"
)

type Handler struct {
	ds infra.Datastore
}

func NewHandler() (*Handler, error) {
	var ds infra.Datastore
	var err error
	if os.Getenv("DB_DRIVER") == "dynamodb" {
		ds, err = infra.NewDynamoDB()
		if err != nil {
			return nil, err
		}
	} else {
		ds, err = infra.NewDataBase()
		if err != nil {
			return nil, err
		}
	}

	return &Handler{ds: ds}, nil
}

// SetupRouter configures and returns the HTTP router.
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.recoverMiddleware)

	r.HandleFunc("/api/inquiries", h.CreateInquiry).Methods("POST")
	r.HandleFunc("/api/inquiries", h.GetInquiries).Methods("GET")
	r.HandleFunc("/api/inquiries/{id}", h.DeleteInquiry).Methods("DELETE")

	r.PathPrefix("/api-docs").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	return r
}

// recoverMiddleware keeps a panicking request from taking the process down.
func (h *Handler) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic while handling request",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something broke!"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("err", err))
	}
}

// respondError logs the failure detail server-side and returns the fixed
// message for the operation. Callers never see the underlying error.
func respondError(w http.ResponseWriter, message string, err error) {
	slog.Error(message, slog.Any("err", err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}
