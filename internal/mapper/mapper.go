package mapper

import "mosql_gen/internal/domain"

// Mapper переводит тип поля контент-модели в колонки целевой таблицы
type Mapper struct {
	table TypeTable
}

func New(table TypeTable) *Mapper {
	return &Mapper{table: table}
}

// Map строит колонки для поля, имя колонки получается из пути поля
func (m *Mapper) Map(field domain.FieldDescriptor) Outcome {
	return m.Resolve(field, SanitizeColumnName(field.Path))
}

// Resolve применяет правила по порядку, первое совпавшее побеждает.
// Порядок важен: relationship с many перекрывает скалярный relationship.
func (m *Mapper) Resolve(field domain.FieldDescriptor, column string) Outcome {
	if field.Type == FieldTypeRelationship && field.Many {
		manyType := m.table.ManyRelation
		if manyType == "" {
			manyType = TypeTextArray
		}
		return Scalar{Column: domain.ColumnSpec{Name: column, Source: field.Path, Type: manyType}}
	}

	if m.table.Excluded[field.Type] {
		return Excluded{FieldType: field.Type}
	}

	if subFields, ok := m.table.Composites[field.Type]; ok {
		columns := make([]domain.ColumnSpec, 0, len(subFields))
		for _, sf := range subFields {
			columns = append(columns, domain.ColumnSpec{
				Name:   column + "_" + sf.Suffix,
				Source: field.Path + "." + sf.Source,
				Type:   sf.Type,
			})
		}
		return Decomposed{Columns: columns}
	}

	relType, ok := m.table.Scalars[field.Type]
	if !ok {
		return Unrecognized{FieldType: field.Type}
	}
	return Scalar{Column: domain.ColumnSpec{Name: column, Source: field.Path, Type: relType}}
}
