package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gopile/internal/capacity"
	"github.com/alexiusacademia/gopile/internal/params"
	"github.com/alexiusacademia/gopile/internal/soil"
)

func sweepFixture(t *testing.T) (*params.Document, []capacity.Curve) {
	t.Helper()

	doc := params.Default()
	doc.Layers = []soil.Layer{
		{Name: "Unit 1", TopDepth: 0, SkinFriction: 10, EndBearing: 500},
	}

	profile, err := soil.NewProfile(doc.Layers)
	require.NoError(t, err)

	engine := capacity.NewEngine()
	curves, err := engine.ComputeSweep(profile, capacity.Sweep{
		DiameterMin: doc.Params.DiameterMin,
		DiameterMax: doc.Params.DiameterMax,
		LengthMin:   doc.Params.LengthMin,
		LengthMax:   doc.Params.LengthMax,
	})
	require.NoError(t, err)
	return doc, curves
}

func TestWriteWorkbook(t *testing.T) {
	doc, curves := sweepFixture(t)
	path := filepath.Join(t.TempDir(), "curves.xlsx")

	require.NoError(t, WriteWorkbook(doc, curves, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Capacity", "A1")
	require.NoError(t, err)
	assert.Equal(t, "length (m)", got)

	got, err = f.GetCellValue("Capacity", "B1")
	require.NoError(t, err)
	assert.Equal(t, "D=0.3m (kN)", got)

	// One header row plus one row per length step.
	rows, err := f.GetRows("Capacity")
	require.NoError(t, err)
	assert.Len(t, rows, len(curves[0].Points)+1)

	got, err = f.GetCellValue("Inputs", "A2")
	require.NoError(t, err)
	assert.Equal(t, "diameter_min", got)
}

func TestWriteWorkbook_NoCurves(t *testing.T) {
	doc := params.Default()
	err := WriteWorkbook(doc, nil, filepath.Join(t.TempDir(), "empty.xlsx"))
	require.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	doc, _ := sweepFixture(t)

	profile, err := soil.NewProfile(doc.Layers)
	require.NoError(t, err)

	engine := capacity.NewEngine()
	result, err := engine.ComputeOne(profile, 0.6, 10)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, WriteReport(profile, result, 0.6, 10, false, false, path))
	assert.FileExists(t, path)
}
