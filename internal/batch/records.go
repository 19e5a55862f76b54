// Package batch replays a list of organizations through the discovery
// service and collects one result row per organization.
package batch

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/phone-discovery/internal/fetcher"
)

// Record is one organization read from the input file.
type Record struct {
	Name     string
	District string
	Email    string
}

var (
	nameColumns     = []string{"ngo_name", "name"}
	districtColumns = []string{"registered_district", "district"}
	emailColumns    = []string{"ngo_email", "email"}
)

// ReadRecords loads organizations from a CSV or XLSX file. Rows with a
// blank name are skipped. District and email columns are optional.
func ReadRecords(ctx context.Context, path string) ([]Record, error) {
	tbl, err := fetcher.ReadFile(ctx, path)
	if err != nil {
		return nil, eris.Wrap(err, "batch: read input")
	}
	return recordsFromTable(tbl)
}

func recordsFromTable(tbl *fetcher.Table) ([]Record, error) {
	nameCol := tbl.Column(nameColumns...)
	if nameCol < 0 {
		return nil, eris.Errorf("batch: input has no %q column", nameColumns[0])
	}
	districtCol := tbl.Column(districtColumns...)
	emailCol := tbl.Column(emailColumns...)

	records := make([]Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		name := fetcher.Cell(row, nameCol)
		if name == "" {
			continue
		}
		records = append(records, Record{
			Name:     name,
			District: fetcher.Cell(row, districtCol),
			Email:    fetcher.Cell(row, emailCol),
		})
	}
	return records, nil
}
