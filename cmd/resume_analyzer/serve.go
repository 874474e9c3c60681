package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/annotate"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	servePort      int
	configPath     string
	skillsDataPath string
	rolesDataPath  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume analysis endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&skillsDataPath, "skills-data", "", "Path to the skills catalog JSON file")
	rootCmd.PersistentFlags().StringVar(&rolesDataPath, "roles-data", "", "Path to the job roles catalog JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port}, newPipeline(cfg))
	return srv.Start()
}

// resolveConfig layers CLI flags over environment variables over the optional
// config file, then fills remaining gaps with defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		Port:       servePort,
		SkillsData: skillsDataPath,
		RolesData:  rolesDataPath,
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newPipeline loads the catalogs once and builds the shared analysis
// pipeline. An unset catalog path means the built-in defaults are used.
func newPipeline(cfg config.Config) *pipeline.Pipeline {
	return pipeline.New(
		catalog.LoadSkillCatalog(cfg.SkillsData),
		catalog.LoadRoleCatalog(cfg.RolesData),
		annotate.NewHeuristic(),
	)
}
