package procuracao

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Converter turns the document at src into a PDF at dst.
type Converter interface {
	Convert(ctx context.Context, src, dst string) error
}

const DefaultLibreOfficePath = "libreoffice"

// LibreOffice converts through `libreoffice --headless --convert-to pdf`.
type LibreOffice struct {
	// Path is the soffice/libreoffice binary.
	Path string
	// Timeout bounds a single conversion. Zero waits forever.
	Timeout time.Duration
	// ProfileRoot receives a throwaway user profile per run, so parallel
	// conversions do not fight over the same lock file.
	ProfileRoot string
	Logger      *zap.Logger
}

var _ Converter = (*LibreOffice)(nil)

var outputPathRe = regexp.MustCompile(`->\s+(.+?\.(pdf|PDF))\s`)

// extractOutputPath reads the target file from LibreOffice's
// "convert a.docx -> /out/a.pdf using filter : writer_pdf_Export" line.
func extractOutputPath(log string) (string, error) {
	matches := outputPathRe.FindStringSubmatch(log)
	if len(matches) < 2 {
		return "", fmt.Errorf("no pdf path in converter output")
	}
	return matches[1], nil
}

func (l *LibreOffice) Convert(ctx context.Context, src, dst string) error {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	binary := l.Path
	if binary == "" {
		binary = DefaultLibreOfficePath
	}
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	outDir := filepath.Dir(dst)
	if err := PrepareFolders(outDir); err != nil {
		return &ConversionError{Source: src, Err: err}
	}

	profileRoot := l.ProfileRoot
	if profileRoot == "" {
		profileRoot = os.TempDir()
	}
	profile, err := filepath.Abs(filepath.Join(profileRoot, "lo-"+uuid.New().String()))
	if err != nil {
		return &ConversionError{Source: src, Err: err}
	}
	defer func() {
		if err := os.RemoveAll(profile); err != nil {
			logger.Warn("remove libreoffice profile", zap.String("profile", profile), zap.Error(err))
		}
	}()

	args := []string{
		"-env:UserInstallation=" + (&url.URL{Scheme: "file", Path: filepath.ToSlash(profile)}).String(),
		"--headless",
		"--convert-to",
		"pdf",
		"--outdir",
		outDir,
		src,
	}

	// LibreOffice keeps the source's base name. A leftover from an earlier
	// run would hide a conversion that silently wrote nothing.
	produced := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))+".pdf")
	if err := os.Remove(produced); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &ConversionError{Source: src, Err: err}
	}

	st := time.Now()
	logger.Debug("[>] libreoffice", zap.String("source", src), zap.String("outdir", outDir))
	output, err := execCmd(ctx, binary, args...)
	logger.Debug("[<] libreoffice", zap.String("source", src), zap.Duration("elapsed", time.Since(st)))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return &ConversionError{Source: src, Output: string(output), Err: err}
	}

	if !fileExists(produced) {
		reported, perr := extractOutputPath(string(output))
		if perr != nil || !fileExists(reported) {
			return &ConversionError{Source: src, Output: string(output), Err: ErrNoOutput}
		}
		produced = reported
	}
	if produced != filepath.Clean(dst) {
		if err := os.Rename(produced, dst); err != nil {
			return &ConversionError{Source: src, Output: string(output), Err: err}
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
