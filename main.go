package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	_ "github.com/brian-dev01/WDD-Server/docs"
	"github.com/brian-dev01/WDD-Server/handler"
)

//	@title			WDD Server API
//	@version		1.0
//	@description	Wedding/event inquiry API.
//	@BasePath		/

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment as-is")
	}

	h, err := handler.NewHandler()
	if err != nil {
		slog.Error("NewHandler failed", slog.Any("err", err))
		os.Exit(1)
	}

	router := h.SetupRouter()

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	slog.Info("Server listening", slog.String("port", port))
	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		slog.Error("Server failed", slog.Any("err", err))
		os.Exit(1)
	}
}
