package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/server"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/config"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/dataset"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/synth"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/duckdb"
	datasetstore "github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/duckdb/dataset"
)

var profilePath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve generated multi-cloud datasets over a mock cost API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "config", "c", "profile.yaml",
		"Path to the generation profile (YAML)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load generation profile: %w", err)
	}

	generator := synth.NewGenerator(synth.Config{
		Seed:              profile.Seed,
		ReferenceDate:     profile.ReferenceDate,
		Currency:          profile.Currency,
		AnomalyMultiplier: profile.AnomalyMultiplier,
	})

	datasets := make([]*domain.ScenarioDataset, 0, len(profile.Scenarios))
	for _, spec := range profile.Scenarios {
		ds, err := generator.GenerateScenario(synth.ScenarioConfig{
			Name:           spec.Name,
			TotalResources: spec.TotalResources,
			WindowDays:     spec.WindowDays,
			UsageInterval:  spec.UsageInterval,
		})
		if err != nil {
			return fmt.Errorf("failed to generate scenario %q: %w", spec.Name, err)
		}
		datasets = append(datasets, ds)

		logger.Info().
			Str("scenario", ds.Scenario).
			Int("resources", ds.Summary.TotalResources).
			Float64("total_cost", ds.Summary.TotalCost).
			Msg("generated scenario dataset")
	}

	if profile.DatabasePath != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.DatabasePath})
		if err != nil {
			return fmt.Errorf("failed to open DuckDB at %s: %w", profile.DatabasePath, err)
		}
		defer db.Close()

		store, err := datasetstore.NewStore(db)
		if err != nil {
			return err
		}
		for _, ds := range datasets {
			if err := store.AddDataset(ctx, ds); err != nil {
				return fmt.Errorf("failed to persist scenario %q: %w", ds.Scenario, err)
			}
		}
		logger.Info().Str("path", profile.DatabasePath).Msg("datasets persisted to DuckDB")
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Datasets: dataset.NewService(datasets),
		},
	})

	return webAPI.Start()
}
