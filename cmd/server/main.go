package main

import (
	"log"

	_ "taskbot/docs"
	"taskbot/internal/config"
	"taskbot/internal/server"
)

// @title           Task Bot API
// @version         1.0
// @description     API for creating, updating, listing and deleting user-scoped tasks.

// @host      localhost:8000
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
