package procuracao

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectPDFRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 not really"), 0o644))

	info, err := InspectPDF(path)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func TestInspectPDFMissingFile(t *testing.T) {
	_, err := InspectPDF(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func TestInspectPDFOnePage(t *testing.T) {
	info, err := InspectPDF(filepath.Join("testdata", "a4.pdf"))
	require.NoError(t, err)

	assert.Equal(t, 1, info.Pages)
	assert.InDelta(t, 595, info.Width, 0.5)
	assert.InDelta(t, 842, info.Height, 0.5)
}
