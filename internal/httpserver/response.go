package httpserver

import (
	"encoding/json"
	"net/http"

	"drugdiscovery/internal/analysis"
)

// WriteJSON отдаёт уже сериализованное тело как есть.
func WriteJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteJSONError возвращает ошибку в едином формате {"error": "..."}.
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	body, err := json.Marshal(analysis.ErrorResult{Error: message})
	if err != nil {
		body = []byte(`{"error":"Unknown error occurred"}`)
	}
	WriteJSON(w, status, body)
}
