package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/catalog"
	"github.com/openhire/matchengine/internal/config"
	"github.com/openhire/matchengine/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the scoring, trust, salary, digest, and proof task endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{Port: servePort}
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cat, err := loadCatalog(cfg.SkillsFile, cfg.BenchmarksFile)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		Catalog:     cat,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadCatalog loads the embedded lookup tables, applying file overrides
// when configured.
func loadCatalog(skillsFile, benchmarksFile string) (*catalog.Catalog, error) {
	cat, err := catalog.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if skillsFile != "" {
		if err := cat.LoadSkillsFile(skillsFile); err != nil {
			return nil, err
		}
	}
	if benchmarksFile != "" {
		if err := cat.LoadBenchmarksFile(benchmarksFile); err != nil {
			return nil, err
		}
	}
	return cat, nil
}
