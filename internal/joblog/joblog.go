package joblog

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Entry struct {
	ID        string
	Source    string
	Width     int
	Height    int
	Layout    int
	Bytes     int
	Status    string
	Error     string
	CreatedAt time.Time
}

func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// sqlite allows one writer; a larger pool only queues on its lock
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS print_jobs (
		id TEXT PRIMARY KEY,
		source TEXT,
		width INTEGER,
		height INTEGER,
		layout INTEGER,
		bytes INTEGER,
		status TEXT,
		error TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

// Journal keeps an append-only record of print jobs.
type Journal struct {
	db *sql.DB
}

func (j *Journal) Append(e Entry) error {
	_, err := j.db.Exec(
		`INSERT INTO print_jobs (id, source, width, height, layout, bytes, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Source, e.Width, e.Height, e.Layout, e.Bytes, e.Status, e.Error,
	)
	return err
}

func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, source, width, height, layout, bytes, status, error, created_at
		 FROM print_jobs ORDER BY rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.Width, &e.Height, &e.Layout,
			&e.Bytes, &e.Status, &e.Error, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
