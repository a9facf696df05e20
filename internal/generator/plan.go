package generator

import (
	"mosql_gen/internal/domain"
	"mosql_gen/internal/mapper"
)

// Колонка id есть у каждой таблицы и всегда идет первой
var idColumn = domain.ColumnSpec{Name: "id", Source: "_id", Type: mapper.TypeText}

// Entry строка секции columns: либо колонка, либо комментарий
type Entry struct {
	Column  *domain.ColumnSpec
	Comment string
}

// TableSpec разрешенная таблица: имя и упорядоченные записи
type TableSpec struct {
	List    string
	Name    string
	Entries []Entry
}

// Columns возвращает только колонки, без комментариев
func (t TableSpec) Columns() []domain.ColumnSpec {
	cols := make([]domain.ColumnSpec, 0, len(t.Entries))
	for _, e := range t.Entries {
		if e.Column != nil {
			cols = append(cols, *e.Column)
		}
	}
	return cols
}

func columnEntry(c domain.ColumnSpec) Entry {
	return Entry{Column: &c}
}

func commentEntry(text string) Entry {
	return Entry{Comment: text}
}

// fieldEntries переводит результат маппинга в записи секции
func fieldEntries(out mapper.Outcome) []Entry {
	switch v := out.(type) {
	case mapper.Scalar:
		return []Entry{columnEntry(v.Column)}
	case mapper.Decomposed:
		entries := make([]Entry, 0, len(v.Columns))
		for _, c := range v.Columns {
			entries = append(entries, columnEntry(c))
		}
		return entries
	case mapper.Excluded:
		return []Entry{commentEntry(v.FieldType + " field excluded")}
	case mapper.Unrecognized:
		return []Entry{commentEntry("field type not recognised: " + v.FieldType)}
	default:
		panic("generator: unknown mapper outcome")
	}
}

func (g *Generator) planTable(list domain.ListDescriptor) TableSpec {
	entries := []Entry{columnEntry(idColumn)}
	for _, f := range list.Fields {
		entries = append(entries, fieldEntries(g.mapper.Map(f))...)
	}
	return TableSpec{
		List:    list.Key,
		Name:    g.namer.TableName(list),
		Entries: entries,
	}
}

// Plan строит таблицы для всех списков модели в исходном порядке
func (g *Generator) Plan(model *domain.SchemaModel) []TableSpec {
	if model == nil {
		return nil
	}
	tables := make([]TableSpec, 0, len(model.Lists))
	for _, list := range model.Lists {
		tables = append(tables, g.planTable(list))
	}
	return tables
}
