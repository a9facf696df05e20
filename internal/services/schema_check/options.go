package schema_check

import "strings"

type CheckerOption func(*Checker)

// WithIgnoreColumns колонки, которые есть в целевой таблице, но не описаны
// в маппинге (служебные, триггерные и т.п.), не считаются расхождением
func WithIgnoreColumns(columns ...string) CheckerOption {
	return func(c *Checker) {
		for _, col := range columns {
			c.ignore[strings.ToLower(col)] = true
		}
	}
}

// WithStrictTypes дополнительно сравнивает типы колонок
func WithStrictTypes() CheckerOption {
	return func(c *Checker) {
		c.strictTypes = true
	}
}
