package procuracao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alitto/pond"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao/colorutils"
)

const (
	DefaultMaxConversions  = 2
	DefaultCoverBackground = "#ffffff"
)

type Config struct {
	OutputDir string
	// MaxConversions caps how many converter processes run at once.
	MaxConversions int
	// VerifyPDF inspects every produced PDF before handing it out.
	VerifyPDF bool
	// CoverHeight > 0 also renders a PNG cover of page one.
	CoverHeight     int
	CoverBackground string
	Document        DocumentOptions
}

// Result points at a generated file.
type Result struct {
	Path       string
	Filename   string
	MediaType  string
	ClientName string
	Slug       string
	Fields     int
	PDF        *PDFInfo
	CoverPath  string
}

type Generator struct {
	cfg       Config
	converter Converter
	logger    *zap.Logger
	pool      *pond.WorkerPool
	inspect   func(path string) (*PDFInfo, error)
	coverBg   colorful.Color
}

func NewGenerator(cfg Config, converter Converter, logger *zap.Logger) (*Generator, error) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, errors.New("output dir is required")
	}
	if converter == nil {
		return nil, errors.New("converter is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxConversions <= 0 {
		cfg.MaxConversions = DefaultMaxConversions
	}
	if cfg.CoverBackground == "" {
		cfg.CoverBackground = DefaultCoverBackground
	}
	coverBg, err := colorutils.ParseHex(cfg.CoverBackground)
	if err != nil {
		return nil, fmt.Errorf("cover background: %w", err)
	}

	if err = PrepareFolders(cfg.OutputDir); err != nil {
		return nil, err
	}

	panicHandler := func(p interface{}) {
		logger.Error("[!] Conversion task panicked", zap.Any("panic", p))
	}

	g := &Generator{
		cfg:       cfg,
		converter: converter,
		logger:    logger,
		pool:      pond.New(cfg.MaxConversions, 1000, pond.PanicHandler(panicHandler)),
		coverBg:   coverBg,
	}
	if cfg.VerifyPDF {
		g.inspect = InspectPDF
	}
	return g, nil
}

// Close waits for running conversions and stops the pool.
func (g *Generator) Close() {
	g.pool.StopAndWait()
}

func (g *Generator) OutputDir() string {
	return g.cfg.OutputDir
}

// GenerateDOCX parses block and writes the .docx for the client it names.
func (g *Generator) GenerateDOCX(ctx context.Context, block string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := time.Now()
	fields := ParseFields(block)
	name := ExtractClientName(fields)
	path := OutputPath(g.cfg.OutputDir, name, "docx")

	g.logger.Info("[>] Generate docx", zap.String("client", name), zap.Int("fields", fields.Len()))
	if err := WriteDocument(fields, path, g.cfg.Document); err != nil {
		return nil, err
	}
	g.logger.Info("[<] Generate docx", zap.String("path", path), zap.Duration("elapsed", time.Since(st)))

	return &Result{
		Path:       path,
		Filename:   filepath.Base(path),
		MediaType:  DocxMediaType,
		ClientName: name,
		Slug:       Slug(name),
		Fields:     fields.Len(),
	}, nil
}

// GeneratePDF produces the .docx and converts it next to itself.
func (g *Generator) GeneratePDF(ctx context.Context, block string) (*Result, error) {
	docx, err := g.GenerateDOCX(ctx, block)
	if err != nil {
		return nil, err
	}

	st := time.Now()
	pdfPath := OutputPath(g.cfg.OutputDir, docx.ClientName, "pdf")
	g.logger.Info("[>] Convert to PDF", zap.String("source", docx.Path))

	convErr := errors.New("conversion task did not complete")
	g.pool.SubmitAndWait(func() {
		convErr = g.converter.Convert(ctx, docx.Path, pdfPath)
	})
	if convErr != nil {
		g.logger.Error("[!] Convert to PDF", zap.String("source", docx.Path), zap.Error(convErr))
		var ce *ConversionError
		if !errors.As(convErr, &ce) {
			convErr = &ConversionError{Source: docx.Path, Err: convErr}
		}
		return nil, convErr
	}

	result := &Result{
		Path:       pdfPath,
		Filename:   filepath.Base(pdfPath),
		MediaType:  PdfMediaType,
		ClientName: docx.ClientName,
		Slug:       docx.Slug,
		Fields:     docx.Fields,
	}

	if g.inspect != nil {
		info, err := g.inspect(pdfPath)
		if err != nil {
			return nil, &ConversionError{Source: docx.Path, Err: err}
		}
		result.PDF = info
	}
	g.logger.Info("[<] Convert to PDF", zap.String("path", pdfPath), zap.Duration("elapsed", time.Since(st)))

	if g.cfg.CoverHeight > 0 {
		coverPath := OutputPath(g.cfg.OutputDir, docx.ClientName, "png")
		if err := RenderCover(pdfPath, coverPath, g.cfg.CoverHeight, g.coverBg); err != nil {
			g.logger.Warn("[!] Render cover", zap.String("path", pdfPath), zap.Error(err))
		} else {
			result.CoverPath = coverPath
		}
	}

	return result, nil
}

// Lookup resolves the name of a previously generated file inside the output
// folder. Anything that is not a bare generated file name is reported as
// not existing.
func (g *Generator) Lookup(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`) ||
		!strings.HasPrefix(filename, filePrefix) {
		return "", os.ErrNotExist
	}
	path := filepath.Join(g.cfg.OutputDir, filename)
	if !fileExists(path) {
		return "", os.ErrNotExist
	}
	return path, nil
}
