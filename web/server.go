// Package web exposes the document generator over HTTP: the dashboard, the
// two form pages and the two form targets that stream the generated file.
package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
	"github.com/brandquad/procuracao/assets"
)

const (
	DefaultTitle        = "Jul.IA – Automação de Procuração e Contrato de Consignado"
	DefaultMaxBodyBytes = 1 << 20

	formField = "bloco_dados"
)

// Generator is the part of procuracao.Generator the handlers need.
type Generator interface {
	GenerateDOCX(ctx context.Context, block string) (*procuracao.Result, error)
	GeneratePDF(ctx context.Context, block string) (*procuracao.Result, error)
	Lookup(filename string) (string, error)
}

var _ Generator = (*procuracao.Generator)(nil)

type Config struct {
	Title        string
	MaxBodyBytes int64
}

func (c *Config) defaults() {
	if strings.TrimSpace(c.Title) == "" {
		c.Title = DefaultTitle
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

type Server struct {
	router chi.Router
	gen    Generator
	cfg    Config
	logger *zap.Logger
}

func NewServer(gen Generator, cfg Config, logger *zap.Logger) *Server {
	cfg.defaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		router: chi.NewRouter(),
		gen:    gen,
		cfg:    cfg,
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(maxFormBody(s.cfg.MaxBodyBytes))

	r.Get("/", s.page("index.html", "", ""))
	r.Get("/docx", s.page("docx.html", "/gerar-docx", "Gerar DOCX"))
	r.Get("/pdf", s.page("pdf.html", "/gerar-pdf", "Gerar PDF"))

	r.Post("/gerar-docx", s.generate(s.gen.GenerateDOCX))
	r.Post("/gerar-pdf", s.generate(s.gen.GeneratePDF))

	r.Get("/arquivos/{nome}", s.download)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.Static))))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
