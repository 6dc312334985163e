package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/binpack/internal/model"
)

func TestExportXLSX_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	result := buildTestResult()
	result.Unplaced = []model.ItemSpec{model.NewItemSpec("poster.png", 2048, 2048, 2)}
	require.NoError(t, ExportXLSX(path, result, buildTestSettings()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetPlacements, SheetUnplaced}, f.GetSheetList())

	rows, err := f.GetRows(SheetPlacements)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Bin", "Label", "X", "Y", "Width", "Height", "Area"}, rows[0])
	assert.Equal(t, []string{"1", "tiles.png", "512", "0", "256", "256", "65536"}, rows[2])
	assert.Equal(t, []string{"2", "background.png", "0", "0", "1024", "768", "786432"}, rows[4])

	unplaced, err := f.GetRows(SheetUnplaced)
	require.NoError(t, err)
	require.Len(t, unplaced, 2)
	assert.Equal(t, []string{"poster.png", "2048", "2048", "2"}, unplaced[1])

	v, err := f.GetCellValue(SheetSummary, "B7")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	v, err = f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "shelf", v)
}

func TestExportXLSX_NoUnplacedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")
	require.NoError(t, ExportXLSX(path, buildTestResult(), buildTestSettings()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetPlacements}, f.GetSheetList())

	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	// 10 key/value rows, a blank row, the header, two bins.
	assert.Len(t, rows, 14)
	assert.Equal(t, "Bin", rows[11][0])
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 70.0, round1(70.0))
	assert.Equal(t, 33.3, round1(33.333))
	assert.Equal(t, 66.7, round1(66.666))
}
