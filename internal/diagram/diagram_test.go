package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() []tower.Series {
	return tower.Profile(tower.Build(20).Stress, "P2")
}

func TestDrawASCIIProfile(t *testing.T) {
	out := DrawASCIIProfile("P2", testSeries())
	assert.Contains(t, out, "Gravity - P2, stress (kPa) over levels 1..20")
	assert.Contains(t, out, "Wind - P2")
	assert.Contains(t, out, "Seismic - P2")
}

func TestDrawASCIIProfileEmpty(t *testing.T) {
	out := DrawASCIIProfile("P9", tower.Profile(nil, "P9"))
	assert.Contains(t, out, "Gravity - P9: no data in range")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("MAX STRESS", []string{"P1  6944.44 kPa"})
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "MAX STRESS")
	assert.Contains(t, out, "P1  6944.44 kPa")
}

func TestProfilePlot(t *testing.T) {
	p, err := ProfilePlot("P2", testSeries())
	require.NoError(t, err)
	assert.Equal(t, "Level", p.Y.Label.Text)
}

func TestExportProfile(t *testing.T) {
	dir := t.TempDir()

	svg := filepath.Join(dir, "out", "p2.svg")
	require.NoError(t, ExportProfile("P2", testSeries(), svg))
	_, err := os.Stat(svg)
	assert.NoError(t, err)

	noExt := filepath.Join(dir, "p2")
	require.NoError(t, ExportProfile("P2", testSeries(), noExt))
	_, err = os.Stat(noExt + ".png")
	assert.NoError(t, err)
}
