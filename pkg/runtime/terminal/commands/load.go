package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/datafiles"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/duckdb"
	datasetstore "github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/duckdb/dataset"
)

type LoadCmd struct {
	dbPath    string
	inputDir  string
	scenarios []string
	out       io.Writer
}

// NewLoadCmd loads previously generated JSON datasets into DuckDB so they
// can be queried with SQL.
func NewLoadCmd(out io.Writer) *cobra.Command {
	lc := &LoadCmd{out: out}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load generated datasets into DuckDB",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.dbPath, "db", "cloud-cost.db", "Path to the DuckDB database file")
	cmd.Flags().StringVar(&lc.inputDir, "dir", "datasets", "Directory holding the generated JSON files")
	cmd.Flags().StringSliceVar(&lc.scenarios, "scenarios", nil, "Scenarios to load")

	_ = cmd.MarkFlagRequired("scenarios")

	return cmd
}

func (lc *LoadCmd) run(cmd *cobra.Command, args []string) error {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: lc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open DuckDB at %s: %w", lc.dbPath, err)
	}
	defer db.Close()

	store, err := datasetstore.NewStore(db)
	if err != nil {
		return err
	}

	loader := datafiles.NewLoader(lc.inputDir)
	ctx := cmd.Context()

	for _, name := range lc.scenarios {
		ds, err := loader.LoadDataset(name)
		if err != nil {
			return err
		}

		if err := store.AddDataset(ctx, ds); err != nil {
			return fmt.Errorf("failed to load scenario %q into %s: %w", name, lc.dbPath, err)
		}

		stats, err := store.GetStats(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(lc.out, "loaded %s: %d resources, %d cost entries, %d usage samples\n",
			name, stats.ResourceCount, stats.CostEntries, stats.UsageSamples)
	}

	return nil
}
