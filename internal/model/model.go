// Package model contains data structures for launch configuration and search DTOs
package model

// Config - параметры одного запуска поиска из командной строки, после сборки не меняется
type Config struct {
	Query      string // подстрока для поиска
	FilePath   string // путь к файлу, в котором ищем
	IgnoreCase bool   // выставляется наличием переменной окружения IGNORE_CASE
}

// ServerConfig - параметры запуска HTTP-сервиса поиска
type ServerConfig struct {
	Address string
}

const DefaultServerAddress = ":8080"

// SearchRequest - задание на поиск, приходящее в HTTP-сервис
type SearchRequest struct {
	RequestID  string `json:"request_id"`
	Query      string `json:"query"`
	Text       string `json:"text"`
	IgnoreCase bool   `json:"ignore_case"`
}

// SearchResult - результат поиска с хеш-суммой найденных строк
type SearchResult struct {
	RequestID string   `json:"request_id"`
	Hash      uint64   `json:"hash"`
	Lines     []string `json:"lines"`
}
