package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"mosql_gen/internal/domain"
	"mosql_gen/internal/generator"
	"mosql_gen/internal/logger"
	"mosql_gen/internal/model"
)

const ContentTypeYAML = "text/yaml; charset=utf-8"

// SchemaNameFunc выбирает имя схемы для загруженной модели
type SchemaNameFunc func(m *domain.SchemaModel) (string, error)

// FixedSchemaName всегда одно и то же имя
func FixedSchemaName(name string) SchemaNameFunc {
	return func(*domain.SchemaModel) (string, error) {
		return name, nil
	}
}

// Handler отдает свежесгенерированный документ MoSQL как вложение
type Handler struct {
	source     model.Source
	generator  *generator.Generator
	schemaName SchemaNameFunc
	logger     *logger.Log
	now        func() time.Time
}

type HandlerOption func(*Handler)

// WithClock подменяет часы (для тестов)
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

func NewHandler(source model.Source, gen *generator.Generator, schemaName SchemaNameFunc, l *logger.Log, opts ...HandlerOption) *Handler {
	if l == nil {
		l = logger.NewNop()
	}
	h := &Handler{
		source:     source,
		generator:  gen,
		schemaName: schemaName,
		logger:     l,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Filename имя файла вида 20261019-shop-MoSQL.yaml, дата в UTC
func Filename(schemaName string, at time.Time) string {
	date := strings.ReplaceAll(at.UTC().Format(time.DateOnly), "-", "")
	return fmt.Sprintf("%s-%s-MoSQL.yaml", date, schemaName)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m, err := h.source.Load(r.Context())
	if err != nil {
		h.logger.Errorf("failed to load content model: %v", err)
		http.Error(w, "failed to load content model", http.StatusInternalServerError)
		return
	}

	name, err := h.schemaName(m)
	if err != nil {
		h.logger.Errorf("failed to resolve schema name: %v", err)
		http.Error(w, "failed to resolve schema name", http.StatusInternalServerError)
		return
	}

	doc := h.generator.Generate(name, m)
	filename := Filename(name, h.now())

	w.Header().Set("Content-Type", ContentTypeYAML)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		h.logger.Errorf("failed to write response: %v", err)
		return
	}
	h.logger.Infof("served %s (%d bytes)", filename, len(doc))
}
