package procuracao

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandquad/procuracao/colorutils"
)

func TestRenderCover(t *testing.T) {
	if !vips.IsTypeSupported(vips.ImageTypePDF) {
		t.Skip("libvips built without pdf loader")
	}
	bg, err := colorutils.ParseHex("#ffffff")
	require.NoError(t, err)

	cover := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, RenderCover(filepath.Join("testdata", "a4.pdf"), cover, 64, bg))

	f, err := os.Open(cover)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Height)
	assert.InDelta(t, 45, cfg.Width, 1)
}

func TestRenderCoverRejectsGarbage(t *testing.T) {
	src := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 not really"), 0o644))
	cover := filepath.Join(t.TempDir(), "cover.png")
	bg, err := colorutils.ParseHex("#ffffff")
	require.NoError(t, err)

	assert.Error(t, RenderCover(src, cover, 64, bg))
	assert.NoFileExists(t, cover)
}
