// Package datafiles persists generated scenario datasets as JSON documents,
// one file per collection plus a combined document, so that tests and mock
// API layers can load them without re-running the generator.
package datafiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

const (
	resourcesSuffix     = "_resources.json"
	costEntriesSuffix   = "_cost_entries.json"
	usagePatternsSuffix = "_usage_patterns.json"
	summarySuffix       = "_summary.json"
	completeSuffix      = "_complete.json"
)

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteDataset writes the dataset's collections into the writer's directory,
// creating it if needed. File names are keyed by scenario so multiple
// scenarios can share one directory.
func (w *Writer) WriteDataset(ds *domain.ScenarioDataset) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", w.dir, err)
	}

	files := map[string]any{
		ds.Scenario + resourcesSuffix:     ds.Resources,
		ds.Scenario + costEntriesSuffix:   ds.CostEntries,
		ds.Scenario + usagePatternsSuffix: ds.UsagePatterns,
		ds.Scenario + summarySuffix:       ds.Summary,
		ds.Scenario + completeSuffix:      ds,
	}

	for name, payload := range files {
		if err := w.writeJSON(name, payload); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeJSON(name string, payload any) error {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// LoadDataset reads a previously written combined document back.
func (l *Loader) LoadDataset(scenario string) (*domain.ScenarioDataset, error) {
	path := filepath.Join(l.dir, scenario+completeSuffix)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var ds domain.ScenarioDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &ds, nil
}
