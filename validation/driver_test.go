package validation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/jtejido/elft"
	"github.com/jtejido/elft/config"
	"github.com/jtejido/elft/imageio"
)

// blank serves every image from one shared zero buffer.
var blank = make([]byte, 32<<20)

func fakeImages() *imageio.Registry {
	r := imageio.NewRegistry()
	r.Register(".gray", imageio.LoaderFunc(func(path string, h imageio.Hint) (elft.Image, error) {
		img := elft.NewImage(h.Identifier, h.Width, h.Height, h.PPI, h.BPC, h.BPP, nil)
		img.Pixels = blank[:img.ExpectedPixelLen()]
		return img, nil
	}))
	return r
}

type fakeExtractor struct {
	failures map[string]bool

	mu    sync.Mutex
	calls int
	refs  []string
}

func (e *fakeExtractor) Identification() elft.SubmissionIdentification {
	return elft.NewSubmissionIdentification(1, "fake", nil, nil)
}

func (e *fakeExtractor) CreateTemplate(ctx context.Context, t elft.TemplateType, id string, samples []elft.Sample) elft.CreateTemplateResult {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	if e.failures[id] {
		return elft.CreateTemplateResult{Status: elft.StatusFailure("cannot extract %s", id)}
	}
	for i, s := range samples {
		if s.Image == nil || s.EFS == nil || s.Image.Identifier != s.EFS.ImageIdentifier || int(s.Image.Identifier) != i {
			return elft.CreateTemplateResult{Status: elft.StatusFailure("sample %d mismatched", i)}
		}
	}
	return elft.CreateTemplateResult{Status: elft.StatusOK(), Data: []byte(t.String() + ":" + id)}
}

func (e *fakeExtractor) ExtractTemplateData(ctx context.Context, t elft.TemplateType, res elft.CreateTemplateResult) elft.TemplateDataResult {
	return elft.TemplateDataResult{Status: elft.StatusNotImplemented("")}
}

func (e *fakeExtractor) CreateReferenceDatabase(ctx context.Context, r elft.TemplateReader, dir string, maxSize uint64) elft.ReturnStatus {
	for _, id := range r.Identifiers() {
		data, err := r.Read(id)
		if err != nil {
			return elft.StatusFailure("%v", err)
		}
		if string(data) != "Reference:"+id {
			return elft.StatusFailure("%s holds %q", id, data)
		}
		e.refs = append(e.refs, id)
	}
	return elft.StatusOK()
}

type fakeSearcher struct {
	loaded  bool
	tooMany string
}

func (s *fakeSearcher) Identification() elft.SubmissionIdentification {
	return elft.NewSubmissionIdentification(1, "fake", nil, nil)
}

func (s *fakeSearcher) Load(ctx context.Context, maxSize uint64) elft.ReturnStatus {
	s.loaded = true
	return elft.StatusOK()
}

func (s *fakeSearcher) Search(ctx context.Context, probe []byte, max uint16) elft.SearchResult {
	n := 3
	if strings.HasSuffix(string(probe), s.tooMany) {
		n = int(max) + 1
	}
	candidates := make([]elft.Candidate, n)
	for i := range candidates {
		candidates[i] = elft.NewCandidate("00002644", elft.FRGPRightThumb, float64(i))
	}
	return elft.SearchResult{Status: elft.StatusOK(), Candidates: candidates}
}

func (s *fakeSearcher) ExtractCorrespondence(ctx context.Context, probe []byte, res elft.SearchResult) elft.CorrespondenceResult {
	return elft.CorrespondenceResult{Status: elft.StatusNotImplemented("")}
}

type fakeRecorder struct {
	mu         sync.Mutex
	templates  int
	searches   int
	candidates [][]elft.Candidate
}

func (r *fakeRecorder) RecordTemplate(elft.TemplateType, string, elft.ReturnStatus, int, time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates++
	return nil
}

func (r *fakeRecorder) RecordSearch(probe string, status elft.ReturnStatus, decision bool, c []elft.Candidate, elapsed time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches++
	r.candidates = append(r.candidates, c)
	return nil
}

func testSettings(t *testing.T) *config.Settings {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.ImageDir = filepath.Join(dir, "images")
	cfg.OutputDir = filepath.Join(dir, "output")
	cfg.DatabaseDir = filepath.Join(dir, "output", "database")
	cfg.Workers = 4
	cfg.MaxCandidates = 5
	return cfg
}

func TestDriverRun(t *testing.T) {
	cfg := testSettings(t)
	failing := Latents()[3].Identifier
	extractor := &fakeExtractor{failures: map[string]bool{failing: true}}
	searcher := &fakeSearcher{tooMany: Latents()[7].Identifier}
	recorder := &fakeRecorder{}

	d := NewDriverWithExtractor(cfg, extractor,
		WithImageRegistry(fakeImages()), WithSearcher(searcher), WithRecorder(recorder))
	ctx := context.Background()

	require.NoError(t, d.CreateTemplates(ctx, elft.Reference))
	err := d.CreateTemplates(ctx, elft.Probe)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.ErrorContains(t, err, "cannot extract "+failing)
	assert.Equal(t, 155, extractor.calls)

	probes, err := NewDirTemplateReader(filepath.Join(cfg.OutputDir, "templates", "latent"))
	require.NoError(t, err)
	assert.Len(t, probes.Identifiers(), 99)

	require.NoError(t, d.CreateReferenceDatabase(ctx))
	assert.Len(t, extractor.refs, 55)

	err = d.Search(ctx)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.ErrorContains(t, err, "6 candidates, at most 5 allowed")
	assert.True(t, searcher.loaded)

	assert.Equal(t, 155, recorder.templates)
	assert.Equal(t, 99, recorder.searches)
	for _, c := range recorder.candidates {
		for i := 1; i < len(c); i++ {
			assert.GreaterOrEqual(t, c[i-1].Similarity, c[i].Similarity)
		}
	}

	tlog, err := os.ReadFile(filepath.Join(cfg.OutputDir, TemplateCreationLog))
	require.NoError(t, err)
	assert.Contains(t, string(tlog), "Probe "+failing+" Failure")
	assert.Equal(t, 156, strings.Count(string(tlog), "\n"))

	slog, err := os.ReadFile(filepath.Join(cfg.OutputDir, SearchLog))
	require.NoError(t, err)
	assert.Contains(t, string(slog), Latents()[0].Identifier+" Success false 1 00002644 1 2 ")
}

func TestDriverRemovesStaleTemplate(t *testing.T) {
	cfg := testSettings(t)
	failing := Latents()[3].Identifier
	d := NewDriverWithExtractor(cfg, &fakeExtractor{failures: map[string]bool{failing: true}},
		WithImageRegistry(fakeImages()))

	stale, err := TemplatePath(cfg.OutputDir, elft.Probe, failing)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("from an earlier run"), 0644))

	err = d.CreateTemplates(context.Background(), elft.Probe)
	assert.ErrorContains(t, err, "cannot extract "+failing)
	assert.NoFileExists(t, stale)

	latents, err := NewDirTemplateReader(filepath.Dir(stale))
	require.NoError(t, err)
	assert.Len(t, latents.Identifiers(), 99)
	assert.NotContains(t, latents.Identifiers(), failing)
}

func TestOpenLogHeaderWriteFails(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	_, err := openLog("/dev", "full", "type identifier")
	assert.ErrorContains(t, err, "failed to write full")
}

func TestOpenLogHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		l, err := openLog(dir, "x.log", "header")
		require.NoError(t, err)
		l.Printf("line %d", i)
		require.NoError(t, l.Close())
	}
	data, err := os.ReadFile(filepath.Join(dir, "x.log"))
	require.NoError(t, err)
	assert.Equal(t, "header\nline 0\nline 1\n", string(data))
}

func TestDriverMissingImages(t *testing.T) {
	cfg := testSettings(t)
	d := NewDriverWithExtractor(cfg, &fakeExtractor{})

	err := d.CreateTemplates(context.Background(), elft.Reference)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 55)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDriverInvalidImage(t *testing.T) {
	cfg := testSettings(t)
	r := imageio.NewRegistry()
	r.Register(".gray", imageio.LoaderFunc(func(path string, h imageio.Hint) (elft.Image, error) {
		return elft.NewImage(h.Identifier, h.Width, h.Height, 0, h.BPC, h.BPP, blank[:int(h.Width)*int(h.Height)]), nil
	}))
	d := NewDriverWithExtractor(cfg, &fakeExtractor{}, WithImageRegistry(r))

	err := d.CreateTemplates(context.Background(), elft.Reference)
	assert.ErrorIs(t, err, elft.ErrInvalidImage)
}

func TestDriverCanceled(t *testing.T) {
	cfg := testSettings(t)
	d := NewDriverWithExtractor(cfg, &fakeExtractor{}, WithImageRegistry(fakeImages()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.CreateTemplates(ctx, elft.Probe), context.Canceled)
}

func TestNewDriverUnknownImplementation(t *testing.T) {
	cfg := testSettings(t)
	cfg.Implementation = "nonexistent"
	_, err := NewDriver(cfg)
	assert.ErrorIs(t, err, elft.ErrUnknownImplementation)
}

func TestDirTemplateReader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"+TemplateSuffix), []byte("B"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"+TemplateSuffix), []byte("A"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "c"+TemplateSuffix), 0755))

	r, err := NewDirTemplateReader(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Identifiers())

	data, err := r.Read("b")
	require.NoError(t, err)
	assert.Equal(t, []byte("B"), data)

	_, err = r.Read("notes")
	assert.Error(t, err)

	_, err = NewDirTemplateReader(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
