package generator

import (
	"mosql_gen/internal/domain"
	"mosql_gen/internal/mapper"
)

// Generator собирает документ MoSQL из контент-модели.
// Не хранит изменяемого состояния, один экземпляр можно звать из разных горутин.
type Generator struct {
	mapper *mapper.Mapper
	namer  TableNamer
}

type Option func(*Generator)

func WithTypeTable(table mapper.TypeTable) Option {
	return func(g *Generator) {
		g.mapper = mapper.New(table)
	}
}

func WithTableNamer(namer TableNamer) Option {
	return func(g *Generator) {
		if namer != nil {
			g.namer = namer
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		mapper: mapper.New(mapper.StandardTypeTable()),
		namer:  LowerCase(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate возвращает текст документа для схемы schemaName
func (g *Generator) Generate(schemaName string, model *domain.SchemaModel) string {
	return Render(schemaName, g.Plan(model))
}
