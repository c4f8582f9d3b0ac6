package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"authortally/internal/database"
	"authortally/internal/handlers"
)

func main() {
	dbPath := pflag.String("db", "./papers.db", "path to the SQLite database file")
	addr := pflag.String("addr", ":8080", "address to listen on")
	column := pflag.String("column", "Authors", "name of the column holding delimited author lists")
	pflag.Parse()

	// Set up the database
	if err := database.SetupDatabase(*dbPath); err != nil {
		log.Fatal("Failed to set up database", "error", err)
	}

	// Set up the HTTP server
	countsHandler := handlers.AuthorCounts(*dbPath, *column)
	http.HandleFunc("/authors/counts", func(w http.ResponseWriter, r *http.Request) {
		requestStart := time.Now()
		countsHandler(w, r)
		log.Info("Request processed", "duration", time.Since(requestStart))
	})

	log.Info("Server is running", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
