package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"authortally/internal/models"
)

// SamplePapers is the dataset seeded by SetupDatabase.
var SamplePapers = []models.Paper{
	{Title: "Paper 1", Authors: "Doe J., Smith J., Johnson A."},
	{Title: "Paper 2", Authors: "Williams A., Brown B."},
	{Title: "Paper 3", Authors: "Smith J., Doe J."},
	{Title: "Paper 4", Authors: "Brown B."},
}

// SetupDatabase initializes the SQLite database and inserts sample papers.
// Any existing file at path is removed first.
func SetupDatabase(path string) error {
	os.Remove(path)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY,
			Title TEXT,
			Authors TEXT
		)
	`)
	if err != nil {
		return err
	}

	statement, err := db.Prepare(`
		INSERT INTO papers(Title, Authors) VALUES (?, ?)
	`)
	if err != nil {
		return err
	}
	defer statement.Close()

	for _, paper := range SamplePapers {
		if _, err := statement.Exec(paper.Title, paper.Authors); err != nil {
			return err
		}
	}
	return nil
}

// GetAuthorFields reads the named column from every row of the papers table,
// in row order. Values are returned as-is, so a NULL column value comes back
// as a non-string entry for the normalizer to reject.
//
// The column name is checked against the table's actual columns before it is
// interpolated, so an arbitrary string cannot reach the SQL. The check also
// keeps SQLite's double-quoted-string fallback from silently turning a
// misconfigured column name into a literal.
func GetAuthorFields(db *sql.DB, column string) ([]any, error) {
	if err := checkColumn(db, column); err != nil {
		return nil, err
	}

	quoted := `"` + strings.ReplaceAll(column, `"`, `""`) + `"`
	rows, err := db.Query(`SELECT ` + quoted + ` FROM papers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading column %q: %w", column, err)
	}
	defer rows.Close()

	var fields []any
	for rows.Next() {
		var value any
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		fields = append(fields, value)
	}
	return fields, rows.Err()
}

// checkColumn verifies that the papers table has a column with the given name.
func checkColumn(db *sql.DB, column string) error {
	rows, err := db.Query(`SELECT name FROM pragma_table_info('papers')`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return fmt.Errorf("no such column %q in papers", column)
}
