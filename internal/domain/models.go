package domain

import "strings"

// FieldDescriptor описывает одно поле списка контент-модели
type FieldDescriptor struct {
	Key  string
	Path string
	Type string
	Many bool // имеет смысл только для relationship
}

// ListDescriptor описывает список (коллекцию) контент-модели
type ListDescriptor struct {
	Key    string
	Table  string // явно заданное имя таблицы, может быть пустым
	Fields []FieldDescriptor
}

// SchemaModel корневая модель: списки в порядке объявления
type SchemaModel struct {
	Name  string
	Lists []ListDescriptor
}

// ColumnSpec описывает одну колонку целевой таблицы
type ColumnSpec struct {
	Name   string
	Source string
	Type   string
}

// TableSchema описывает структуру таблицы в целевой БД
type TableSchema struct {
	Name       string
	Columns    []ColumnInfo
	PrimaryKey string
}

type ColumnInfo struct {
	Name       string
	DataType   string
	IsNullable bool
}

func (c *ColumnInfo) GetColumnName(isMapping bool) string {
	if isMapping {
		return strings.ToLower(c.Name)
	} else {
		return c.Name
	}
}

// Column ищет колонку без учета регистра
func (t *TableSchema) Column(name string) (ColumnInfo, bool) {
	for _, c := range t.Columns {
		if c.GetColumnName(true) == strings.ToLower(name) {
			return c, true
		}
	}
	return ColumnInfo{}, false
}
