package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	arearepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/area"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/localservice"
	placerepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/place"
	"github.com/heartmarshall/tringgo-backend/internal/app/seeder"
)

var (
	seedConfigPath string
	seedFile       string
	seedDryRun     bool
	seedPhases     []string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load areas, places and services from a YAML file",
	Long: `Seed reads a directory dataset and inserts what is missing.

Areas are upserted by name. Places and services are skipped when their
area already lists an entry with the same name, so the command can be
re-run safely.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "seeder-config", "", "seeder settings file (falls back to SEEDER_* env)")
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "seed data file (overrides SEEDER_FILE)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "validate and count without writing")
	seedCmd.Flags().StringSliceVar(&seedPhases, "phase", nil, "run only these phases (areas, places, services)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	scfg, err := seeder.LoadConfig(seedConfigPath)
	if err != nil {
		return err
	}
	if seedFile != "" {
		scfg.FilePath = seedFile
	}
	if seedDryRun {
		scfg.DryRun = true
	}
	if scfg.FilePath == "" {
		return errors.New("seed: no data file, pass --file or set SEEDER_FILE")
	}

	data, err := seeder.LoadFile(scfg.FilePath)
	if err != nil {
		return err
	}

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger,
		arearepo.New(pool), placerepo.New(pool), localservice.New(pool), *scfg)
	if err := pipeline.Run(ctx, data, seedPhases); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	results := pipeline.Results()
	phases := make([]string, 0, len(results))
	for name := range results {
		phases = append(phases, name)
	}
	sort.Strings(phases)
	for _, name := range phases {
		r := results[name]
		fmt.Fprintf(cmd.OutOrStdout(), "%-9s inserted=%d updated=%d skipped=%d errors=%d\n",
			name, r.Inserted, r.Updated, r.Skipped, r.Errors)
	}

	if pipeline.HasErrors() {
		logger.Warn("seed finished with errors", slog.String("file", scfg.FilePath))
		return errors.New("seed: some rows were rejected")
	}
	return nil
}
