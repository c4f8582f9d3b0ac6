package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"authortally/internal/database"
	"authortally/internal/services"
)

// AuthorCounts returns the handler for the /authors/counts endpoint. It reads
// the configured authors column, runs extraction, normalization, and
// aggregation, and responds with the count table in first-seen order.
//
// Normalization may halt early on a structurally broken entry, so the table
// can reflect only part of the dataset; the "total" field carries the number
// of names that were actually counted.
func AuthorCounts(dbPath, column string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db, err := sql.Open("sqlite3", dbPath)
		if err != nil {
			http.Error(w, "Database connection error.", http.StatusInternalServerError)
			return
		}
		defer db.Close()

		fields, err := database.GetAuthorFields(db, column)
		if err != nil {
			log.Error("Failed to read author fields", "column", column, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		names := services.ExtractAuthors(fields)
		keys := services.CleanAuthorNames(names)
		table := services.CountAuthors(keys)

		response := map[string]any{
			"total":   len(keys),
			"authors": table,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
