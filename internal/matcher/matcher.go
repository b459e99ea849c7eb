// Package matcher filters lines of a text that contain the query - case-sensitive or not
package matcher

import (
	"strings"
)

// Search возвращает строки text, содержащие query, в исходном порядке.
// Возвращаемые строки - срезы text, содержимое не копируется.
func Search(query, text string) []string {
	result := []string{}
	for _, line := range Lines(text) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive - то же, что Search, но сравнение идет в нижнем регистре.
// В результат попадают исходные строки с исходным регистром.
func SearchCaseInsensitive(query, text string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for _, line := range Lines(text) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// Find выбирает нужный фильтр по флагу ignoreCase
func Find(query, text string, ignoreCase bool) []string {
	if ignoreCase {
		return SearchCaseInsensitive(query, text)
	}
	return Search(query, text)
}

// Lines разбивает text по '\n'. Завершающий перевод строки не дает пустой строки в конце,
// '\r' отбрасывается только в паре "\r\n".
func Lines(text string) []string {
	lines := []string{}
	for line := range strings.Lines(text) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
