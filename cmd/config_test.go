package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
)

// writes <outdir>/<stem of source>.pdf, the source being the last argument
const fakeLibreOffice = `#!/bin/sh
while [ $# -gt 1 ]; do
  [ "$1" = "--outdir" ] && outdir="$2"
  shift
done
name=$(basename "$1")
printf '%%PDF-1.4 fake\n' > "$outdir/${name%.*}.pdf"
`

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8011", c.Addr)
	assert.Equal(t, "saida", c.OutputDir)
	assert.Equal(t, "libreoffice", c.LibreOfficePath)
	assert.Equal(t, time.Duration(0), c.ConvertTimeout)
	assert.Equal(t, 2, c.MaxConversions)
	assert.Equal(t, int64(1048576), c.MaxBodyBytes)
	assert.True(t, c.VerifyPDF)
	assert.False(t, c.Debug)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PROCURACAO_OUTPUT_DIR", "/tmp/docs")
	t.Setenv("PROCURACAO_CONVERT_TIMEOUT", "45s")
	t.Setenv("PROCURACAO_MAX_CONVERSIONS", "4")
	t.Setenv("PROCURACAO_HEADING_COLOR", "c00000")

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/docs", c.OutputDir)
	assert.Equal(t, 45*time.Second, c.ConvertTimeout)

	cfg, err := c.MakeConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxConversions)
	assert.Equal(t, "C00000", cfg.Document.HeadingColor)

	lo := c.MakeConverter(nil)
	assert.Equal(t, 45*time.Second, lo.Timeout)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("PROCURACAO_MAX_CONVERSIONS", "muitas")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestMakeConfigErrors(t *testing.T) {
	c, err := loadConfig()
	require.NoError(t, err)

	bad := c
	bad.HeadingColor = "azul"
	_, err = bad.MakeConfig()
	assert.ErrorContains(t, err, "heading color")

	bad = c
	bad.CoverHeight = -1
	_, err = bad.MakeConfig()
	assert.ErrorContains(t, err, "cover height")
}

func TestGenerateCommandDocx(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROCURACAO_OUTPUT_DIR", dir)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"gerar"})
	root.SetIn(strings.NewReader("Nome completo: Maria da Silva\nCPF: 000.000.000-00\n"))
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	want := filepath.Join(dir, "02_Procuracao_Kit_Consignado_Maria_Silva_Autor.docx")
	assert.Equal(t, want, strings.TrimSpace(out.String()))
	_, err := os.Stat(want)
	assert.NoError(t, err)
}

func TestGenerateCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROCURACAO_OUTPUT_DIR", dir)
	input := filepath.Join(t.TempDir(), "dados.txt")
	require.NoError(t, os.WriteFile(input, []byte("Cliente: João Pereira"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"gerar", "-f", input})
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	assert.Equal(t, filepath.Join(dir, "02_Procuracao_Kit_Consignado_Joao_Pereira_Autor.docx"), strings.TrimSpace(out.String()))
}

func TestGenerateCommandMissingFile(t *testing.T) {
	t.Setenv("PROCURACAO_OUTPUT_DIR", t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{"gerar", "-f", filepath.Join(t.TempDir(), "nada.txt")})
	root.SetOut(&bytes.Buffer{})
	assert.ErrorIs(t, root.Execute(), os.ErrNotExist)
}

func TestStartVipsDisabled(t *testing.T) {
	stop := startVips(procuracao.Config{}, zap.NewNop())
	require.NotNil(t, stop)
	stop()
}

func TestGenerateCommandPdfWithCover(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script converter")
	}
	bin := filepath.Join(t.TempDir(), "libreoffice")
	require.NoError(t, os.WriteFile(bin, []byte(fakeLibreOffice), 0o755))

	dir := t.TempDir()
	t.Setenv("PROCURACAO_OUTPUT_DIR", dir)
	t.Setenv("PROCURACAO_LIBREOFFICE_PATH", bin)
	t.Setenv("PROCURACAO_VERIFY_PDF", "false")
	t.Setenv("PROCURACAO_COVER_HEIGHT", "64")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"gerar", "--pdf"})
	root.SetIn(strings.NewReader("Nome: Maria da Silva"))
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	want := filepath.Join(dir, "02_Procuracao_Kit_Consignado_Maria_Silva_Autor.pdf")
	assert.Equal(t, want, strings.TrimSpace(out.String()))
	assert.FileExists(t, want)
	// the fake pdf cannot be rasterised, which must not fail the command
	assert.NoFileExists(t, strings.TrimSuffix(want, ".pdf")+".png")
}
