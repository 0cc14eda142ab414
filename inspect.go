package procuracao

import (
	"fmt"
	"sync"

	poppler "github.com/johbar/go-poppler"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFInfo describes a produced PDF. Width and Height are those of the first
// page, in points.
type PDFInfo struct {
	Pages  int
	Width  float64
	Height float64
}

var pdfcpuOnce sync.Once

func pdfcpuConfig() *model.Configuration {
	pdfcpuOnce.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// InspectPDF checks that path is a well-formed PDF with at least one page.
// Structure is validated by pdfcpu, page geometry is read through poppler.
func InspectPDF(path string) (*PDFInfo, error) {
	if err := api.ValidateFile(path, pdfcpuConfig()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	doc, err := poppler.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	defer doc.Close()

	info := &PDFInfo{Pages: doc.GetNPages()}
	if info.Pages == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrInvalidPDF)
	}
	info.Width, info.Height = doc.GetPage(0).Size()
	return info, nil
}
