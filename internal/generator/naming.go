package generator

import (
	"strings"

	"mosql_gen/internal/domain"
)

// TableNamer определяет физическое имя таблицы/коллекции для списка
type TableNamer interface {
	TableName(list domain.ListDescriptor) string
}

// TableNamerFunc адаптер для обычной функции
type TableNamerFunc func(list domain.ListDescriptor) string

func (f TableNamerFunc) TableName(list domain.ListDescriptor) string {
	return f(list)
}

// LowerCase имя таблицы = ключ списка в нижнем регистре
func LowerCase() TableNamer {
	return TableNamerFunc(func(list domain.ListDescriptor) string {
		return strings.ToLower(list.Key)
	})
}

// Prefixed добавляет префикс моделей: prefix_key
func Prefixed(prefix string) TableNamer {
	if prefix == "" {
		return LowerCase()
	}
	return TableNamerFunc(func(list domain.ListDescriptor) string {
		return prefix + "_" + strings.ToLower(list.Key)
	})
}

// Configured использует явно заданное имя таблицы, иначе fallback
func Configured(fallback TableNamer) TableNamer {
	if fallback == nil {
		fallback = LowerCase()
	}
	return TableNamerFunc(func(list domain.ListDescriptor) string {
		if list.Table != "" {
			return list.Table
		}
		return fallback.TableName(list)
	})
}
