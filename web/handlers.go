package web

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
	"github.com/brandquad/procuracao/assets"
)

type pageData struct {
	TituloPagina string
	Action       string
	Button       string
}

func (s *Server) page(name, action, button string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		data := pageData{TituloPagina: s.cfg.Title, Action: action, Button: button}
		if err := assets.Pages.ExecuteTemplate(&buf, name, data); err != nil {
			s.logger.Error("render page", zap.String("page", name), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

type generateFunc func(ctx context.Context, block string) (*procuracao.Result, error)

func (s *Server) generate(fn generateFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(s.cfg.MaxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// an empty value counts as missing, whitespace does not
		values := r.PostForm[formField]
		if len(values) == 0 || values[0] == "" {
			http.Error(w, "field required: "+formField, http.StatusUnprocessableEntity)
			return
		}

		result, err := fn(r.Context(), values[0])
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.serveFile(w, r, result.Path, result.Filename, result.MediaType, result)
	}
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	path, err := s.gen.Lookup(chi.URLParam(r, "nome"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	name := filepath.Base(path)
	s.serveFile(w, r, path, name, mediaTypeFor(name), nil)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, path, name, mediaType string, result *procuracao.Result) {
	f, err := os.Open(path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	if result != nil && result.PDF != nil {
		w.Header().Set("X-Document-Pages", strconv.Itoa(result.PDF.Pages))
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var ce *procuracao.ConversionError
	switch {
	case errors.As(err, &ce):
		status = http.StatusBadGateway
	case errors.Is(err, os.ErrNotExist):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled):
		// client went away, nobody reads the answer
		return
	}
	s.logger.Error("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(status), status)
}

func mediaTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		return procuracao.DocxMediaType
	case ".pdf":
		return procuracao.PdfMediaType
	case ".png":
		return "image/png"
	}
	return "application/octet-stream"
}
