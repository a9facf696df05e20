package generator

import (
	"strings"

	"mosql_gen/internal/domain"
)

func columnLines(c domain.ColumnSpec) []string {
	return []string{
		"    - " + c.Name + ":",
		"      :source: " + c.Source,
		"      :type: " + c.Type,
	}
}

func entryLines(e Entry) []string {
	if e.Column != nil {
		return columnLines(*e.Column)
	}
	return []string{"    # " + e.Comment}
}

func tableLines(t TableSpec) []string {
	lines := []string{
		"",
		"  " + t.Name + ":",
		"    :meta:",
		"      :table: " + t.Name,
		"      :extra_props: false",
		"    :columns:",
	}
	for _, e := range t.Entries {
		lines = append(lines, entryLines(e)...)
	}
	return lines
}

// Lines возвращает документ построчно, без финального склеивания
func Lines(schemaName string, tables []TableSpec) []string {
	lines := []string{"---", schemaName + ":"}
	for _, t := range tables {
		lines = append(lines, tableLines(t)...)
	}
	return lines
}

// Render собирает YAML документ MoSQL
func Render(schemaName string, tables []TableSpec) string {
	return strings.Join(Lines(schemaName, tables), "\n")
}
