package model

import (
	"context"

	"mosql_gen/internal/domain"
)

// Source отдает снимок контент-модели
type Source interface {
	Load(ctx context.Context) (*domain.SchemaModel, error)
}

// Static источник с заранее собранной моделью
type Static struct {
	Model *domain.SchemaModel
}

func (s Static) Load(context.Context) (*domain.SchemaModel, error) {
	return s.Model, nil
}
