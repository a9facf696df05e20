package schema_check

import (
	"strings"

	"mosql_gen/internal/domain"
	"mosql_gen/internal/generator"
)

// Checker сравнивает колонки, описанные в маппинге, со схемой целевой таблицы
type Checker struct {
	ignore      map[string]bool
	strictTypes bool
}

func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{ignore: make(map[string]bool)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare находит расхождения для одной таблицы
func (c *Checker) Compare(table generator.TableSpec, actual *domain.TableSchema) []Finding {
	if actual == nil || len(actual.Columns) == 0 {
		return []Finding{{Table: table.Name, Kind: MissingTable}}
	}

	var findings []Finding
	expected := make(map[string]bool)
	for _, col := range table.Columns() {
		expected[strings.ToLower(col.Name)] = true

		info, ok := actual.Column(col.Name)
		if !ok {
			findings = append(findings, Finding{Table: table.Name, Column: col.Name, Kind: MissingColumn, Expected: col.Type})
			continue
		}
		if c.strictTypes && !sameType(col.Type, info.DataType) {
			findings = append(findings, Finding{
				Table:    table.Name,
				Column:   col.Name,
				Kind:     TypeMismatch,
				Expected: col.Type,
				Actual:   info.DataType,
			})
		}
	}

	for _, info := range actual.Columns {
		name := info.GetColumnName(true)
		if expected[name] || c.ignore[name] {
			continue
		}
		findings = append(findings, Finding{Table: table.Name, Column: info.Name, Kind: UnexpectedColumn, Actual: info.DataType})
	}
	return findings
}

// Типы MoSQL против того, что отдает information_schema
var typeAliases = map[string][]string{
	"text":                     {"text", "character varying", "varchar"},
	"int":                      {"integer", "int", "int4"},
	"numeric":                  {"numeric", "decimal"},
	"double precision":         {"double precision", "float8", "double"},
	"boolean":                  {"boolean", "bool", "tinyint"},
	"timestamp":                {"timestamp without time zone", "timestamp", "datetime"},
	"timestamp with time zone": {"timestamp with time zone", "timestamptz"},
	"text array":               {"array", "_text"},
	"double precision array":   {"array", "_float8"},
}

func sameType(mosqlType, dbType string) bool {
	dbType = strings.ToLower(strings.TrimSpace(dbType))
	aliases, ok := typeAliases[strings.ToLower(mosqlType)]
	if !ok {
		return strings.EqualFold(mosqlType, dbType)
	}
	for _, a := range aliases {
		if a == dbType {
			return true
		}
	}
	return false
}
