package handlers

import (
	"encoding/json"
	"net/http"

	"travelsuzBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// language returns the request language: the lang query parameter wins, then
// the value the middleware resolved from Accept-Language, then Uzbek.
func language(r *http.Request) models.Language {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return models.ParseLanguage(lang)
	}
	if lang, ok := r.Context().Value("lang").(models.Language); ok {
		return lang
	}
	return models.LangUz
}
