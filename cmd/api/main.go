package main

import (
	"os"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/config"
	pkgconfig "github.com/GaurRitika/REALTUTOR-AI-BACKEND/pkg/config"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

func main() {
	// Load environment files explicitly
	envFiles := []string{".env.local", ".env.development", ".env"}
	config.LoadEnvFiles(envFiles)

	// Load configuration from YAML; fall back to env-driven defaults when
	// no config file is deployed alongside the binary
	var cfg *config.Config
	if _, err := os.Stat("config.yaml"); err == nil {
		cfg, err = config.LoadFromFile("config.yaml")
		if err != nil {
			fiberlog.Fatalf("Failed to load config: %v", err)
		}
	} else {
		cfg = config.Default()
	}

	server := pkgconfig.NewServer(cfg)

	if err := server.Run(); err != nil {
		fiberlog.Fatalf("Server failed: %v", err)
	}
}
