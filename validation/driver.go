package validation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/jtejido/elft"
	"github.com/jtejido/elft/config"
	"github.com/jtejido/elft/imageio"
	"github.com/jtejido/elft/logging"
)

// Recorder receives the outcome of every template creation and search.
type Recorder interface {
	RecordTemplate(t elft.TemplateType, identifier string, status elft.ReturnStatus, size int, elapsed time.Duration) error
	RecordSearch(probe string, status elft.ReturnStatus, decision bool, candidates []elft.Candidate, elapsed time.Duration) error
}

// Driver runs an implementation over the validation images.
type Driver struct {
	cfg       *config.Settings
	extractor elft.Extractor
	searcher  elft.Searcher
	log       logging.Logger
	recorder  Recorder
	images    *imageio.Registry
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithRecorder sets where results are recorded.
func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// WithSearcher uses s instead of creating a searcher by name when searching.
func WithSearcher(s elft.Searcher) Option {
	return func(d *Driver) { d.searcher = s }
}

// WithImageRegistry replaces the image loaders.
func WithImageRegistry(r *imageio.Registry) Option {
	return func(d *Driver) { d.images = r }
}

// NewDriver returns a driver for the extractor registered as
// cfg.Implementation.
func NewDriver(cfg *config.Settings, opts ...Option) (*Driver, error) {
	extractor, err := elft.NewExtractor(cfg.Implementation, cfg.ConfigDir)
	if err != nil {
		return nil, err
	}
	return NewDriverWithExtractor(cfg, extractor, opts...), nil
}

// NewDriverWithExtractor returns a driver for extractor.
func NewDriverWithExtractor(cfg *config.Settings, extractor elft.Extractor, opts ...Option) *Driver {
	d := &Driver{
		cfg:       cfg,
		extractor: extractor,
		log:       logging.Nop(),
		images:    imageio.NewRegistry(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run creates reference and probe templates, enrolls the references and
// searches every probe.
func (d *Driver) Run(ctx context.Context) error {
	id := d.extractor.Identification()
	d.log.Infof("validating %s", id)

	for _, t := range []elft.TemplateType{elft.Reference, elft.Probe} {
		if err := d.CreateTemplates(ctx, t); err != nil {
			return err
		}
	}
	if err := d.CreateReferenceDatabase(ctx); err != nil {
		return err
	}
	return d.Search(ctx)
}

// syncLog serializes lines written by concurrent workers.
type syncLog struct {
	mu sync.Mutex
	f  *os.File
}

func openLog(dir, name, header string) (*syncLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	if st, err := f.Stat(); err == nil && st.Size() == 0 {
		if _, err := io.WriteString(f, header+"\n"); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return &syncLog{f: f}, nil
}

func (l *syncLog) Printf(format string, a ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.f, format+"\n", a...)
}

func (l *syncLog) Close() error { return l.f.Close() }

// CreateTemplates creates a template of type t for every image set and
// writes it below the output directory. Up to cfg.Workers sets are processed
// at once. A failed set does not stop the others; every failure is returned.
func (d *Driver) CreateTemplates(ctx context.Context, t elft.TemplateType) error {
	sets, err := ImageSets(t)
	if err != nil {
		return err
	}
	dir, err := TemplateDirFor(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(d.cfg.OutputDir, filepath.FromSlash(dir)), 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	tlog, err := openLog(d.cfg.OutputDir, TemplateCreationLog, "type identifier result size features elapsed message")
	if err != nil {
		return err
	}
	defer tlog.Close()

	workers := d.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	d.log.Infof("creating %d %s templates with %d workers", len(sets), t, workers)
	start := time.Now()

	var (
		mu       sync.Mutex
		failures error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, set := range sets {
		set := set
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := d.createTemplate(gctx, t, set, tlog); err != nil {
				d.log.Errorf("%s %s: %v", t, set.Identifier, err)
				mu.Lock()
				failures = multierr.Append(failures, fmt.Errorf("%s %s: %w", t, set.Identifier, err))
				mu.Unlock()
			}
			return nil
		})
	}
	err = multierr.Append(g.Wait(), failures)

	d.log.Infof("created %s templates in %s, %d failed", t, time.Since(start), len(multierr.Errors(failures)))
	return err
}

func (d *Driver) loadSamples(set ImageSet) ([]elft.Sample, error) {
	samples := make([]elft.Sample, 0, len(set.Images))
	for _, m := range set.Images {
		var id uint8
		if m.EFS != nil {
			id = m.EFS.ImageIdentifier
		}
		img, err := d.images.Load(filepath.Join(d.cfg.ImageDir, m.Filename), imageio.Hint{
			Identifier: id,
			Width:      m.Width,
			Height:     m.Height,
			PPI:        m.PPI,
			BPC:        m.BPC,
			BPP:        m.BPP,
		})
		if err != nil {
			return nil, err
		}
		if err := img.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", m.Filename, err)
		}
		samples = append(samples, elft.Sample{Image: &img, EFS: m.EFS})
	}
	return samples, nil
}

func (d *Driver) createTemplate(ctx context.Context, t elft.TemplateType, set ImageSet, tlog *syncLog) error {
	samples, err := d.loadSamples(set)
	if err != nil {
		return err
	}

	start := time.Now()
	res := d.extractor.CreateTemplate(ctx, t, set.Identifier, samples)
	elapsed := time.Since(start)
	if d.recorder != nil {
		if rerr := d.recorder.RecordTemplate(t, set.Identifier, res.Status, len(res.Data), elapsed); rerr != nil {
			d.log.Warnf("failed to record template %s: %v", set.Identifier, rerr)
		}
	}
	path, err := TemplatePath(d.cfg.OutputDir, t, set.Identifier)
	if err != nil {
		return err
	}
	if !res.Status.OK() {
		tlog.Printf("%s %s %s 0 0 %d %q", t, set.Identifier, res.Status.Result, elapsed.Milliseconds(), res.Status.Message)
		// A template left by an earlier run must not be enrolled or searched.
		if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			return multierr.Append(res.Status.Err(), fmt.Errorf("failed to remove stale template: %w", rerr))
		}
		return res.Status.Err()
	}
	if err := os.WriteFile(path, res.Data, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	features := "-"
	data := d.extractor.ExtractTemplateData(ctx, t, res)
	switch {
	case data.Status.OK():
		features = fmt.Sprint(len(data.Features))
	case data.Status.Result != elft.NotImplemented:
		d.log.Warnf("%s %s: template data: %s", t, set.Identifier, data.Status)
	}
	tlog.Printf("%s %s %s %d %s %d %q", t, set.Identifier, res.Status.Result, len(res.Data), features,
		elapsed.Milliseconds(), res.Status.Message)
	d.log.Debugf("%s %s: %d bytes in %s", t, set.Identifier, len(res.Data), elapsed)
	return nil
}

// CreateReferenceDatabase enrolls every reference template in the output
// directory into cfg.DatabaseDir.
func (d *Driver) CreateReferenceDatabase(ctx context.Context) error {
	reader, err := NewDirTemplateReader(filepath.Join(d.cfg.OutputDir, filepath.FromSlash(ReferenceTemplateDir)))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.cfg.DatabaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	start := time.Now()
	status := d.extractor.CreateReferenceDatabase(ctx, reader, d.cfg.DatabaseDir, d.cfg.ReferenceDatabaseMaxSize)
	if err := status.Err(); err != nil {
		return fmt.Errorf("failed to create reference database: %w", err)
	}
	d.log.Infof("enrolled %d references in %s", len(reader.Identifiers()), time.Since(start))
	return nil
}

func (d *Driver) loadSearcher(ctx context.Context) (elft.Searcher, error) {
	s := d.searcher
	if s == nil {
		var err error
		s, err = elft.NewSearcher(d.cfg.Implementation, d.cfg.ConfigDir, d.cfg.DatabaseDir)
		if err != nil {
			return nil, err
		}
	}
	if err := s.Load(ctx, d.cfg.ReferenceDatabaseMaxSize).Err(); err != nil {
		return nil, fmt.Errorf("failed to load reference database: %w", err)
	}
	return s, nil
}

// Search searches every probe template in the output directory against the
// reference database.
func (d *Driver) Search(ctx context.Context) error {
	searcher, err := d.loadSearcher(ctx)
	if err != nil {
		return err
	}
	reader, err := NewDirTemplateReader(filepath.Join(d.cfg.OutputDir, filepath.FromSlash(LatentTemplateDir)))
	if err != nil {
		return err
	}
	searchLog, err := openLog(d.cfg.OutputDir, SearchLog, "probe result decision rank reference frgp similarity elapsed")
	if err != nil {
		return err
	}
	defer searchLog.Close()

	var failures error
	for _, id := range reader.Identifiers() {
		if err := ctx.Err(); err != nil {
			return multierr.Append(failures, err)
		}
		if err := d.search(ctx, searcher, reader, id, searchLog); err != nil {
			d.log.Errorf("search %s: %v", id, err)
			failures = multierr.Append(failures, fmt.Errorf("search %s: %w", id, err))
		}
	}
	d.log.Infof("searched %d probes, %d failed", len(reader.Identifiers()), len(multierr.Errors(failures)))
	return failures
}

func (d *Driver) search(ctx context.Context, searcher elft.Searcher, reader *DirTemplateReader, id string, searchLog *syncLog) error {
	probe, err := reader.Read(id)
	if err != nil {
		return err
	}

	start := time.Now()
	res := searcher.Search(ctx, probe, d.cfg.MaxCandidates)
	elapsed := time.Since(start)
	if res.Status.OK() {
		elft.SortCandidates(res.Candidates)
	}
	if d.recorder != nil {
		if rerr := d.recorder.RecordSearch(id, res.Status, res.Decision, res.Candidates, elapsed); rerr != nil {
			d.log.Warnf("failed to record search %s: %v", id, rerr)
		}
	}
	if !res.Status.OK() {
		searchLog.Printf("%s %s - - - - - %d", id, res.Status.Result, elapsed.Milliseconds())
		return res.Status.Err()
	}
	if len(res.Candidates) > int(d.cfg.MaxCandidates) {
		return fmt.Errorf("returned %d candidates, at most %d allowed", len(res.Candidates), d.cfg.MaxCandidates)
	}

	lines := make([]string, 0, len(res.Candidates))
	for rank, c := range res.Candidates {
		lines = append(lines, fmt.Sprintf("%s %s %t %d %s %d %g %d", id, res.Status.Result, res.Decision,
			rank+1, c.Identifier, c.FRGP, c.Similarity, elapsed.Milliseconds()))
	}
	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("%s %s %t - - - - %d", id, res.Status.Result, res.Decision, elapsed.Milliseconds()))
	}
	searchLog.Printf("%s", strings.Join(lines, "\n"))

	corr := searcher.ExtractCorrespondence(ctx, probe, res)
	switch {
	case corr.Status.OK():
		d.log.Debugf("search %s: %d correspondences, complex %t", id, len(corr.Correspondences), corr.Complex)
	case corr.Status.Result == elft.NotImplemented:
	default:
		return fmt.Errorf("correspondence: %w", corr.Status.Err())
	}
	return nil
}
