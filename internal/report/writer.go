// Package report writes scan results as CSV or Excel files.
package report

import (
	"fmt"
	"strings"

	"github.com/simonhull/echoproc"
)

// Row is one line of a scan report.
type Row struct {
	Path       string
	Format     string
	SonarModel string
	Status     string
	ErrorKind  string
	Message    string
}

var headers = []string{"Path", "Format", "SonarModel", "Status", "ErrorKind", "Message"}

func (r Row) values() []string {
	return []string{r.Path, r.Format, r.SonarModel, r.Status, r.ErrorKind, r.Message}
}

// RowsFromResults converts dispatch results into report rows, in order.
func RowsFromResults(results []echoproc.Result) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		format, _ := echoproc.FormatFromPath(r.Path)
		row := Row{Path: r.Path, Format: format.String(), Status: "ok"}
		if r.Processor != nil {
			row.SonarModel = r.Processor.Model().String()
		}
		if r.Err != nil {
			row.Status = "failed"
			row.ErrorKind = r.Kind().String()
			row.Message = r.Err.Error()
		}
		rows = append(rows, row)
	}
	return rows
}

type Writer interface {
	Write(path string, rows []Row) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
