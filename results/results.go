// Package results records validation runs in an sqlite database.
package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jtejido/elft"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	implementation TEXT NOT NULL,
	library TEXT,
	version INTEGER,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	error TEXT
);
CREATE TABLE IF NOT EXISTS templates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(id),
	template_type TEXT NOT NULL,
	identifier TEXT NOT NULL,
	result TEXT NOT NULL,
	message TEXT,
	size INTEGER,
	elapsed_ms INTEGER
);
CREATE TABLE IF NOT EXISTS searches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(id),
	probe TEXT NOT NULL,
	result TEXT NOT NULL,
	message TEXT,
	decision INTEGER,
	elapsed_ms INTEGER
);
CREATE TABLE IF NOT EXISTS candidates (
	search_id INTEGER NOT NULL REFERENCES searches(id),
	rank INTEGER NOT NULL,
	identifier TEXT NOT NULL,
	frgp INTEGER,
	similarity REAL
);
CREATE INDEX IF NOT EXISTS idx_templates_run ON templates(run_id);
CREATE INDEX IF NOT EXISTS idx_searches_run ON searches(run_id);
CREATE INDEX IF NOT EXISTS idx_candidates_search ON candidates(search_id);`

// Recorder writes the outcome of one run. It is safe for concurrent use.
type Recorder struct {
	db    *sql.DB
	runID uuid.UUID
}

// Open creates the database at path if needed and starts a new run for the
// described implementation.
func Open(path, implementation string, id elft.SubmissionIdentification) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// One connection serializes writers from concurrent template workers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create results schema: %w", err)
	}

	r := &Recorder{db: db, runID: uuid.New()}
	_, err = db.Exec("INSERT INTO runs (id, implementation, library, version, started_at) VALUES (?, ?, ?, ?, ?)",
		r.runID.String(), implementation, id.LibraryIdentifier, id.VersionNumber, now())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	return r, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// RunID identifies the run being recorded.
func (r *Recorder) RunID() uuid.UUID { return r.runID }

func (r *Recorder) RecordTemplate(t elft.TemplateType, identifier string, status elft.ReturnStatus, size int,
	elapsed time.Duration) error {
	_, err := r.db.Exec(`INSERT INTO templates (run_id, template_type, identifier, result, message, size, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.runID.String(), t.String(), identifier, status.Result.String(), status.Message, size, elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("cannot insert template %s: %w", identifier, err)
	}
	return nil
}

func (r *Recorder) RecordSearch(probe string, status elft.ReturnStatus, decision bool, candidates []elft.Candidate,
	elapsed time.Duration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO searches (run_id, probe, result, message, decision, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.runID.String(), probe, status.Result.String(), status.Message, decision, elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("cannot insert search %s: %w", probe, err)
	}
	searchID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO candidates (search_id, rank, identifier, frgp, similarity) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("cannot prepare candidate insert: %w", err)
	}
	defer stmt.Close()
	for i, c := range candidates {
		if _, err := stmt.Exec(searchID, i+1, c.Identifier, int(c.FRGP), c.Similarity); err != nil {
			return fmt.Errorf("cannot insert candidate %s for %s: %w", c.Identifier, probe, err)
		}
	}
	return tx.Commit()
}

// Finish marks the run finished, with runErr as its outcome.
func (r *Recorder) Finish(runErr error) error {
	var msg sql.NullString
	if runErr != nil {
		msg = sql.NullString{String: runErr.Error(), Valid: true}
	}
	_, err := r.db.Exec("UPDATE runs SET finished_at = ?, error = ? WHERE id = ?", now(), msg, r.runID.String())
	return err
}

// Close closes the database.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Stats summarizes one run.
type Stats struct {
	Templates        int
	TemplateFailures int
	Searches         int
	SearchFailures   int
	// Mated counts searches whose top candidate has the probe's subject,
	// taken as the probe identifier up to the first underscore.
	Mated int
}

// Stats summarizes the run being recorded.
func (r *Recorder) Stats() (*Stats, error) {
	var s Stats
	id := r.runID.String()
	queries := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM templates WHERE run_id = ?", &s.Templates},
		{"SELECT COUNT(*) FROM templates WHERE run_id = ? AND result != 'Success'", &s.TemplateFailures},
		{"SELECT COUNT(*) FROM searches WHERE run_id = ?", &s.Searches},
		{"SELECT COUNT(*) FROM searches WHERE run_id = ? AND result != 'Success'", &s.SearchFailures},
		{`SELECT COUNT(*) FROM searches s JOIN candidates c ON c.search_id = s.id
			WHERE s.run_id = ? AND c.rank = 1 AND instr(s.probe, '_') > 0
			AND c.identifier = substr(s.probe, 1, instr(s.probe, '_') - 1)`, &s.Mated},
	}
	for _, q := range queries {
		if err := r.db.QueryRow(q.query, id).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("failed to summarize run: %w", err)
		}
	}
	return &s, nil
}
