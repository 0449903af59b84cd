package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

type TableConfig struct {
	ProviderWidth  int
	ResourcesWidth int
	CostWidth      int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ProviderWidth:  10,
		ResourcesWidth: 10,
		CostWidth:      14,
	}
}

// Reporter renders a generated dataset's summary as a console table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type providerRow struct {
	Provider  string
	Resources int
	Cost      float64
}

func (c *Reporter) Handle(ds *domain.ScenarioDataset) error {
	funcMap := template.FuncMap{
		"formatRow": func(provider string, resources any, cost any) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*v |",
				c.config.ProviderWidth, provider,
				c.config.ResourcesWidth, resources,
				c.config.CostWidth, cost)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.ProviderWidth+2),
				strings.Repeat("-", c.config.ResourcesWidth+2),
				strings.Repeat("-", c.config.CostWidth+2))
		},
	}

	tmpl := `
Scenario: {{.Scenario}}

Resources:      {{.Summary.TotalResources}}
Cost Entries:   {{len .CostEntries}}
Usage Patterns: {{len .UsagePatterns}}
Total Cost:     {{.Summary.Currency}} {{printf "%.2f" .Summary.TotalCost}}

{{separator}}
{{formatRow "Provider" "Resources" "Total Cost"}}
{{separator}}
{{range .Rows}}{{formatRow .Provider .Resources (printf "%.2f" .Cost)}}
{{end}}{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	rows := make([]providerRow, 0, len(ds.Summary.ResourcesByProvider))
	for provider, count := range ds.Summary.ResourcesByProvider {
		rows = append(rows, providerRow{
			Provider:  string(provider),
			Resources: count,
			Cost:      ds.Summary.CostByProvider[provider],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Provider < rows[j].Provider })

	data := struct {
		*domain.ScenarioDataset
		Rows []providerRow
	}{ds, rows}

	return t.Execute(c.writer, data)
}
