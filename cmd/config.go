package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
	"github.com/brandquad/procuracao/colorutils"
	"github.com/brandquad/procuracao/web"
)

type Config struct {
	Addr            string        `envconfig:"PROCURACAO_ADDR" default:":8011"`
	OutputDir       string        `envconfig:"PROCURACAO_OUTPUT_DIR" default:"saida"`
	LibreOfficePath string        `envconfig:"PROCURACAO_LIBREOFFICE_PATH" default:"libreoffice"`
	ConvertTimeout  time.Duration `envconfig:"PROCURACAO_CONVERT_TIMEOUT" default:"0s"`
	MaxConversions  int           `envconfig:"PROCURACAO_MAX_CONVERSIONS" default:"2"`
	MaxBodyBytes    int64         `envconfig:"PROCURACAO_MAX_BODY_BYTES" default:"1048576"`
	HeadingColor    string        `envconfig:"PROCURACAO_HEADING_COLOR" default:"#1F3864"`
	CoverHeight     int           `envconfig:"PROCURACAO_COVER_HEIGHT" default:"0"`
	CoverBackground string        `envconfig:"PROCURACAO_COVER_BACKGROUND" default:"#ffffff"`
	VerifyPDF       bool          `envconfig:"PROCURACAO_VERIFY_PDF" default:"true"`
	Title           string        `envconfig:"PROCURACAO_TITLE"`
	Debug           bool          `envconfig:"PROCURACAO_DEBUG" default:"false"`
}

func loadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) MakeConfig() (procuracao.Config, error) {
	heading, err := colorutils.ParseHex(c.HeadingColor)
	if err != nil {
		return procuracao.Config{}, fmt.Errorf("heading color: %w", err)
	}
	if c.CoverHeight < 0 {
		return procuracao.Config{}, fmt.Errorf("cover height must not be negative, got %d", c.CoverHeight)
	}
	return procuracao.Config{
		OutputDir:       c.OutputDir,
		MaxConversions:  c.MaxConversions,
		VerifyPDF:       c.VerifyPDF,
		CoverHeight:     c.CoverHeight,
		CoverBackground: c.CoverBackground,
		Document: procuracao.DocumentOptions{
			HeadingColor: colorutils.WordHex(heading),
		},
	}, nil
}

func (c Config) MakeConverter(logger *zap.Logger) *procuracao.LibreOffice {
	return &procuracao.LibreOffice{
		Path:    c.LibreOfficePath,
		Timeout: c.ConvertTimeout,
		Logger:  logger,
	}
}

func (c Config) MakeWebConfig() web.Config {
	return web.Config{
		Title:        c.Title,
		MaxBodyBytes: c.MaxBodyBytes,
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
