package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/scheduler"
	"github.com/jonathan/recruiter-agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for candidate search, query parsing, query enhancement and recruiter authentication. Also runs the periodic stale profile refresh when a database is configured.`,
	RunE:  runServe,
}

var (
	serveConfigPath      string
	servePort            string
	serveRefreshInterval int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to PORT env var or 8080)")
	serveCmd.Flags().IntVar(&serveRefreshInterval, "refresh-interval", 6, "Hours between stale profile refresh sweeps (0 disables)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	p, cleanup, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to load password config: %w", err)
	}

	if serveRefreshInterval > 0 && p.Store != nil {
		window := time.Duration(cfg.FreshnessDays) * 24 * time.Hour
		sched := scheduler.New(p, window, serveRefreshInterval)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		LLM:       p.LLM,
		Pipeline:  p,
		Store:     p.Store,
		JWT:       jwtConfig,
		Passwords: passwordConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
