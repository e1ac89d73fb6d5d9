package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ratneshsingh30/study-assistant/internal/config"
	"github.com/ratneshsingh30/study-assistant/internal/server"
	"github.com/ratneshsingh30/study-assistant/internal/studykit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the REST API server. Endpoints:

  POST /v1/generate   generate one section of a given shape
  POST /v1/kits       build a full study kit
  GET  /v1/kits       list recent kits (requires a database)
  GET  /v1/kits/{id}  fetch one kit with its sections
  GET  /v1/providers  report configured backends and selection order
  GET  /health        health check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	creds := config.LoadCredentials()
	chain := buildChain(cfg, creds)
	builder := studykit.NewBuilder(chain)

	log.Printf("Provider order: %v (static fallback always available)", chain.Order())

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
	}, builder, creds)
	if err != nil {
		return err
	}

	return srv.Start()
}
