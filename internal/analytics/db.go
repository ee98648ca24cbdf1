package analytics

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// Open connects the recorder to Postgres. An empty DSN yields a no-op
// recorder so the rest of the app never has to care.
func Open(dsn string) (*Recorder, error) {
	if dsn == "" {
		return &Recorder{}, nil
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Recorder{db: db}, nil
}

func (rec *Recorder) Close() error {
	if rec == nil || rec.db == nil {
		return nil
	}
	return rec.db.Close()
}
