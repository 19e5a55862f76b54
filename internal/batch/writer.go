package batch

import (
	"strconv"

	"github.com/sells-group/phone-discovery/internal/fetcher"
)

// Header is the output column order.
var Header = []string{"ngo_name", "district", "email", "phone", "confidence", "source", "status"}

// WriteResults writes rows to path as XLSX when it ends in .xlsx, CSV
// otherwise.
func WriteResults(path string, rows []Row) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Name,
			r.District,
			r.Email,
			r.Phone,
			strconv.FormatFloat(r.Confidence, 'f', -1, 64),
			r.Source,
			string(r.Status),
		})
	}
	return fetcher.WriteFile(path, Header, out)
}
