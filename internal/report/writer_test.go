package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/simonhull/echoproc"
	"github.com/simonhull/echoproc/internal/testutil"
)

func sampleRows(t *testing.T) []Row {
	t.Helper()

	path := testutil.WriteNetCDF(t, t.TempDir(), "ek80.nc", testutil.Keywords("EK80"))
	p, err := echoproc.Process(path)
	require.NoError(t, err)

	return RowsFromResults([]echoproc.Result{
		{Path: path, Processor: p},
		{Path: "notes.txt", Err: &echoproc.InvalidFormatError{Path: "notes.txt", Ext: ".txt"}},
	})
}

func TestRowsFromResults(t *testing.T) {
	rows := sampleRows(t)
	require.Len(t, rows, 2)

	assert.Equal(t, "NetCDF", rows[0].Format)
	assert.Equal(t, "EK80", rows[0].SonarModel)
	assert.Equal(t, "ok", rows[0].Status)
	assert.Empty(t, rows[0].ErrorKind)

	assert.Equal(t, "Unknown", rows[1].Format)
	assert.Equal(t, "failed", rows[1].Status)
	assert.Equal(t, "invalid-format", rows[1].ErrorKind)
	assert.Contains(t, rows[1].Message, "notes.txt")
}

func TestWriterForFormat(t *testing.T) {
	for _, format := range []string{"csv", " CSV ", "excel", "xlsx"} {
		w, err := WriterForFormat(format)
		require.NoError(t, err, format)
		assert.NotNil(t, w)
	}

	_, err := WriterForFormat("pdf")
	assert.Error(t, err)
}

func TestCSVWriter(t *testing.T) {
	rows := sampleRows(t)
	out := filepath.Join(t.TempDir(), "scan.csv")

	require.NoError(t, (&CSVWriter{}).Write(out, rows))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, headers, records[0])
	assert.Equal(t, rows[0].values(), records[1])
	assert.Equal(t, "invalid-format", records[2][4])
}

func TestExcelWriter(t *testing.T) {
	rows := sampleRows(t)
	out := filepath.Join(t.TempDir(), "scan.xlsx")

	require.NoError(t, (&ExcelWriter{}).Write(out, rows))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, "EK80", got[1][2])
	assert.Equal(t, "failed", got[2][3])
}
