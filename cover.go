package procuracao

import (
	"math"
	"os"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/brandquad/procuracao/colorutils"
)

// RenderCover writes a PNG thumbnail of the first page of pdfPath, height
// pixels tall, flattened over background.
func RenderCover(pdfPath, coverPath string, height int, background colorful.Color) error {
	ref, err := vips.NewImageFromFile(pdfPath)
	if err != nil {
		return err
	}
	defer ref.Close()

	if ref.HasAlpha() {
		r, g, b := colorutils.RGB8(background)
		if err = ref.Flatten(&vips.Color{R: r, G: g, B: b}); err != nil {
			return err
		}
	}

	width := 1
	if ref.Height() > 0 {
		width = int(math.Max(1, math.Round(float64(ref.Width())*float64(height)/float64(ref.Height()))))
	}
	if err = ref.Thumbnail(width, height, vips.InterestingNone); err != nil {
		return err
	}

	buffer, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return err
	}
	return os.WriteFile(coverPath, buffer, DefaultFilePerm)
}
