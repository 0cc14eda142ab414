package procuracao

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOutput is returned when the converter exits cleanly but the
	// expected file is not on disk.
	ErrNoOutput = errors.New("converter produced no output")
	// ErrInvalidPDF is returned when the produced file does not parse as a PDF.
	ErrInvalidPDF = errors.New("invalid pdf")
)

// ConversionError reports a failed DOCX to PDF conversion. Output holds
// whatever the external tool printed.
type ConversionError struct {
	Source string
	Output string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Source, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
