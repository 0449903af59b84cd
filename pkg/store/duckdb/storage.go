package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ResourcesTableSchema = `
	CREATE TABLE IF NOT EXISTS resources (
		id VARCHAR NOT NULL,
		scenario VARCHAR NOT NULL,
		provider VARCHAR NOT NULL,
		resource_id VARCHAR NOT NULL,
		resource_type VARCHAR NOT NULL,
		name VARCHAR,
		region VARCHAR,
		tags JSON,
		specifications JSON,
		created_at TIMESTAMP,
		updated_at TIMESTAMP,
		PRIMARY KEY (scenario, id)
	);
`

const CostEntriesTableSchema = `
	CREATE TABLE IF NOT EXISTS cost_entries (
		id VARCHAR NOT NULL,
		scenario VARCHAR NOT NULL,
		resource_id VARCHAR NOT NULL,
		provider VARCHAR NOT NULL,
		service VARCHAR,
		region VARCHAR,
		cost DOUBLE,
		currency VARCHAR,
		entry_date DATE,
		tags JSON,
		PRIMARY KEY (scenario, id)
	);
`

const UsagePatternsTableSchema = `
	CREATE TABLE IF NOT EXISTS usage_patterns (
		scenario VARCHAR NOT NULL,
		resource_id VARCHAR NOT NULL,
		sampled_at TIMESTAMP,
		cpu_utilization DOUBLE,
		memory_utilization DOUBLE,
		network_in DOUBLE,
		network_out DOUBLE,
		storage_used DOUBLE,
		requests_per_minute DOUBLE
	);
`

var bootQueries = []string{
	ResourcesTableSchema,
	CostEntriesTableSchema,
	UsagePatternsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
