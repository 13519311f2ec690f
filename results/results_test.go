package results

import (
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtejido/elft"
)

func open(t *testing.T) (*Recorder, string) {
	path := filepath.Join(t.TempDir(), "results.db")
	r, err := Open(path, "sample", elft.NewSubmissionIdentification(3, "sample", nil, nil))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r, path
}

func TestRecordRun(t *testing.T) {
	r, path := open(t)

	var wg sync.WaitGroup
	for _, id := range []string{"00002357", "00002325", "00002644"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, r.RecordTemplate(elft.Reference, id, elft.StatusOK(), 128, time.Millisecond))
		}(id)
	}
	wg.Wait()
	require.NoError(t, r.RecordTemplate(elft.Probe, "00002357_2B", elft.StatusFailure("no minutiae"), 0, 0))

	require.NoError(t, r.RecordSearch("00002357_1G", elft.StatusOK(), true, []elft.Candidate{
		elft.NewCandidate("00002357", elft.FRGPRightIndex, 80),
		elft.NewCandidate("00002325", elft.FRGPLeftThumb, 10),
	}, 5*time.Millisecond))
	require.NoError(t, r.RecordSearch("00002325_3", elft.StatusOK(), false, []elft.Candidate{
		elft.NewCandidate("00002644", elft.FRGPRightThumb, 2),
	}, time.Millisecond))
	require.NoError(t, r.RecordSearch("00002644_1", elft.StatusFailure("bad template"), false, nil, 0))

	stats, err := r.Stats()
	require.NoError(t, err)
	assert.Equal(t, &Stats{Templates: 4, TemplateFailures: 1, Searches: 3, SearchFailures: 1, Mated: 1}, stats)

	require.NoError(t, r.Finish(errors.New("1 search failed")))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var msg string
	require.NoError(t, db.QueryRow("SELECT error FROM runs WHERE id = ?", r.RunID().String()).Scan(&msg))
	assert.Equal(t, "1 search failed", msg)

	var rank int
	var ident string
	require.NoError(t, db.QueryRow(`SELECT rank, identifier FROM candidates c JOIN searches s ON c.search_id = s.id
		WHERE s.probe = ? ORDER BY rank DESC LIMIT 1`, "00002357_1G").Scan(&rank, &ident))
	assert.Equal(t, 2, rank)
	assert.Equal(t, "00002325", ident)
}

func TestRunsAreSeparate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	id := elft.NewSubmissionIdentification(1, "sample", nil, nil)

	first, err := Open(path, "sample", id)
	require.NoError(t, err)
	require.NoError(t, first.RecordTemplate(elft.Probe, "a", elft.StatusOK(), 1, 0))
	require.NoError(t, first.Finish(nil))
	require.NoError(t, first.Close())

	second, err := Open(path, "sample", id)
	require.NoError(t, err)
	defer second.Close()
	assert.NotEqual(t, first.RunID(), second.RunID())

	stats, err := second.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Templates)
}
