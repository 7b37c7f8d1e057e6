package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/simonhull/echoproc"
	"github.com/simonhull/echoproc/internal/catalog"
	"github.com/simonhull/echoproc/internal/testutil"
)

// run executes the command tree with an isolated HOME and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func cruise(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	testutil.WriteNetCDF(t, root, "ek60.nc", testutil.Keywords("EK60"))
	testutil.WriteZarr(t, root, "ek80.zarr", testutil.ZarrConsolidated, map[string]any{"keywords": "EK80"})
	testutil.WriteNetCDF(t, root, "bare.nc", testutil.Attr{Name: "title", Value: "no keywords"})
	testutil.WriteZarr(t, root, "other.zarr", testutil.ZarrV3, map[string]any{"keywords": "ES70"})
	return root
}

func TestInspect(t *testing.T) {
	root := t.TempDir()
	ek := testutil.WriteNetCDF(t, root, "ek.nc", testutil.Keywords("EK80"))
	azfp := testutil.WriteZarr(t, root, "azfp.zarr", testutil.ZarrV2, map[string]any{"keywords": "AZFP"})

	out, err := run(t, "inspect", ek, azfp)
	require.NoError(t, err)
	assert.Contains(t, out, ek+"\tNetCDF\tEK80\tSimrad")
	assert.Contains(t, out, azfp+"\tZarr\tAZFP\tASL Environmental Sciences")
}

func TestInspect_Failures(t *testing.T) {
	root := t.TempDir()
	bare := testutil.WriteNetCDF(t, root, "bare.nc", testutil.Attr{Name: "title", Value: "x"})

	out, err := run(t, "inspect", bare, "notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 datasets failed")
	assert.Contains(t, out, bare+"\tincompatible-file")
	assert.Contains(t, out, "notes.txt\tinvalid-format")
}

func TestInspect_RequiresPath(t *testing.T) {
	_, err := run(t, "inspect")
	assert.Error(t, err)
}

func TestScan_Summary(t *testing.T) {
	out, err := run(t, "scan", cruise(t), "--workers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "scanned 4 datasets")
	assert.Regexp(t, `ok\s+2`, out)
	assert.Regexp(t, `incompatible-file\s+1`, out)
	assert.Regexp(t, `unsupported-type\s+1`, out)
}

func TestScan_ReportAndCatalog(t *testing.T) {
	root := cruise(t)
	work := t.TempDir()
	reportPath := filepath.Join(work, "scan.xlsx")
	dbPath := filepath.Join(work, "cruise.db")

	out, err := run(t, "scan", root,
		"--report", reportPath,
		"--report-format", "excel",
		"--catalog", dbPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "report written to "+reportPath)
	assert.Contains(t, out, "catalog updated: "+dbPath)

	f, err := excelize.OpenFile(reportPath)
	require.NoError(t, err)
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Len(t, rows, 5)

	store, err := catalog.Open(dbPath)
	require.NoError(t, err)
	count, err := store.Count()
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.Equal(t, 4, count)

	out, err = run(t, "catalog", "list", "--catalog", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, filepath.Join(root, "ek80.zarr"))
	assert.Contains(t, out, "unsupported-type")
}

func TestScan_InvalidWorkers(t *testing.T) {
	_, err := run(t, "scan", t.TempDir(), "--workers", "0")
	assert.ErrorContains(t, err, "validation failed")
}

func TestCatalogList_NoCatalog(t *testing.T) {
	_, err := run(t, "catalog", "list")
	assert.ErrorContains(t, err, "no catalog configured")
}

func TestConfigShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "echoproc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan:\n  workers: 3\nreport:\n  format: excel\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# loaded from "+cfgPath)
	assert.Contains(t, out, "workers: 3")
	assert.Contains(t, out, "format: excel")
}

func TestConfigShow_EnvOverride(t *testing.T) {
	t.Setenv("ECHOPROC_LOGGING_LEVEL", "debug")

	out, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "level: debug")
}

func TestConfigExample(t *testing.T) {
	out, err := run(t, "config", "example")
	require.NoError(t, err)
	assert.Contains(t, out, "# echoproc configuration")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "echoproc "+echoproc.Version)
	assert.Contains(t, out, "formats: [NetCDF Zarr]")
	assert.Contains(t, out, "models:  [EK60 EK80 AZFP]")
}
