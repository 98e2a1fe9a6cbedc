package main

import (
	"log"

	"readiness-backend/internal/bootstrap"
	"readiness-backend/internal/shared/config"
	"readiness-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
