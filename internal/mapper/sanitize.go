package mapper

import (
	"regexp"
	"strings"
)

var (
	// первый проход: выкидываем все кроме букв, цифр, '-', '_', пробела и точки
	stripChars = regexp.MustCompile(`[^a-zA-Z0-9\-_ .]`)
	// второй проход: оставшиеся разделители превращаем в '_'
	replaceChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// SanitizeColumnName строит имя колонки из пути поля.
// Функция тотальная: для любой строки возвращает результат из [a-z0-9_].
func SanitizeColumnName(path string) string {
	column := strings.ToLower(path)
	column = stripChars.ReplaceAllString(column, "")
	return replaceChars.ReplaceAllString(column, "_")
}
