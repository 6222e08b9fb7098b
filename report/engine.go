// Package report runs the fixed analysis queries and exports each result set
// as a CSV file in a directory named for the run date.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"jobsweep/errors"
	"jobsweep/logger"
	"jobsweep/store"
)

// Engine runs a fixed query set against the store and writes CSV artifacts
type Engine struct {
	store       *store.Store
	exportsRoot string
	queries     []Query
	logger      *zap.SugaredLogger
}

// NewEngine creates an engine exporting the canonical query set under exportsRoot
func NewEngine(st *store.Store, exportsRoot string) *Engine {
	return &Engine{
		store:       st,
		exportsRoot: exportsRoot,
		queries:     Canonical,
		logger:      logger.ComponentLogger("report"),
	}
}

// Run executes every query in order and writes one CSV per query into
// <exportsRoot>/<run-date>/query<N>_<run-date>.csv, creating the directory if
// absent. It returns the run directory and the written file paths; the first
// failed query aborts the remaining reports.
func (e *Engine) Run(runDate time.Time) (string, []string, error) {
	date := runDate.Format("2006-01-02")
	runDir := filepath.Join(e.exportsRoot, date)

	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", nil, errors.WrapDelivery(err, "create run directory "+runDir)
	}

	var written []string
	for i, query := range e.queries {
		result, err := e.store.Query(query.SQL)
		if err != nil {
			return runDir, written, errors.Wrapf(err, "report %d (%s)", i+1, query.Name)
		}

		path := filepath.Join(runDir, fmt.Sprintf("query%d_%s.csv", i+1, date))
		if err := writeCSV(path, result); err != nil {
			return runDir, written, errors.Wrapf(err, "report %d (%s)", i+1, query.Name)
		}
		written = append(written, path)

		e.logger.Infow("Report written",
			"report", query.Name,
			"path", path,
			"rows", len(result.Rows),
		)
	}

	return runDir, written, nil
}

// writeCSV writes one header row of column names followed by the data rows
func writeCSV(path string, result *store.ResultSet) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WrapDelivery(err, "create "+path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(result.Columns); err != nil {
		return errors.WrapDelivery(err, "write header")
	}
	if err := writer.WriteAll(result.Rows); err != nil {
		return errors.WrapDelivery(err, "write rows")
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.WrapDelivery(err, "flush "+path)
	}
	return nil
}
