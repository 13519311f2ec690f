package sample

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtejido/elft"
)

// pattern draws a distinct grayscale texture for each kind.
func pattern(kind int, w, h uint16) elft.Image {
	pixels := make([]byte, int(w)*int(h))
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			var v int
			switch kind {
			case 0:
				v = (x / 8 % 2) * 255
			case 1:
				v = (y / 8 % 2) * 255
			case 2:
				v = ((x/16 + y/16) % 2) * 255
			default:
				v = (x * 255) / int(w)
			}
			pixels[y*int(w)+x] = byte(v)
		}
	}
	return elft.NewImage(0, w, h, 500, 8, 8, pixels)
}

func sampleOf(kind int, frgp elft.FrictionRidgeGeneralizedPosition) elft.Sample {
	img := pattern(kind, 128, 128)
	return elft.Sample{Image: &img, EFS: &elft.EFS{FRGP: frgp, Impression: elft.ImpressionRolledContact}}
}

type memReader map[string][]byte

func (r memReader) Identifiers() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	return ids
}

func (r memReader) Read(id string) ([]byte, error) {
	if data, ok := r[id]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func writeOptions(t *testing.T, content string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OptionsFile), []byte(content), 0644))
	return dir
}

func TestLoadOptions(t *testing.T) {
	o, err := LoadOptions(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), o)
	assert.Equal(t, 50.0, o.DecisionThreshold)

	o, err = LoadOptions(writeOptions(t, "decision_threshold = 2.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, o.DecisionThreshold)
	assert.Equal(t, 16, o.MaxImagesPerTemplate)

	_, err = LoadOptions(writeOptions(t, "threshold = 1\n"))
	assert.ErrorContains(t, err, "unknown keys")
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, elft.Implementations(), Name)
	e, err := elft.NewExtractor(Name, "")
	require.NoError(t, err)
	assert.Equal(t, Name, e.Identification().LibraryIdentifier)
}

func TestCreateTemplateAndData(t *testing.T) {
	e, err := NewExtractor("")
	require.NoError(t, err)
	ctx := context.Background()

	res := e.CreateTemplate(ctx, elft.Reference, "subject", []elft.Sample{
		sampleOf(0, elft.FRGPRightThumb),
		{EFS: &elft.EFS{FRGP: elft.FRGPRightIndex}},
		sampleOf(1, elft.FRGPLeftThumb),
	})
	require.True(t, res.Status.OK(), res.Status.String())
	require.NotEmpty(t, res.Data)

	data := e.ExtractTemplateData(ctx, elft.Reference, res)
	require.True(t, data.Status.OK(), data.Status.String())
	require.Len(t, data.Features, 2)
	assert.Equal(t, elft.FRGPRightThumb, data.Features[0].FRGP)
	assert.Equal(t, elft.FRGPLeftThumb, data.Features[1].FRGP)
	assert.Equal(t, elft.ImpressionRolledContact, data.Features[1].Impression)

	assert.False(t, e.ExtractTemplateData(ctx, elft.Probe, res).Status.OK())
	assert.False(t, e.ExtractTemplateData(ctx, elft.Reference, elft.CreateTemplateResult{Data: []byte{0xff}}).Status.OK())
}

func TestCreateTemplateFailures(t *testing.T) {
	e, err := NewExtractor("")
	require.NoError(t, err)
	ctx := context.Background()

	res := e.CreateTemplate(ctx, elft.Probe, "none", []elft.Sample{{EFS: &elft.EFS{}}})
	assert.Equal(t, elft.Failure, res.Status.Result)

	bad := elft.NewImage(0, 10, 10, 500, 8, 8, []byte{1, 2, 3})
	res = e.CreateTemplate(ctx, elft.Probe, "bad", []elft.Sample{{Image: &bad}})
	assert.Equal(t, elft.Failure, res.Status.Result)

	res = e.CreateTemplate(ctx, elft.TemplateType(9), "odd", []elft.Sample{sampleOf(0, elft.FRGPUnknownFinger)})
	assert.Equal(t, elft.Failure, res.Status.Result)
}

func TestSearch(t *testing.T) {
	e, err := NewExtractor("")
	require.NoError(t, err)
	ctx := context.Background()

	refs := memReader{}
	for i, id := range []string{"stripes", "bars", "checks", "ramp"} {
		res := e.CreateTemplate(ctx, elft.Reference, id, []elft.Sample{sampleOf(i, elft.FRGPRightThumb + elft.FrictionRidgeGeneralizedPosition(i))})
		require.True(t, res.Status.OK(), res.Status.String())
		refs[id] = res.Data
	}

	dbDir := filepath.Join(t.TempDir(), "db")
	require.Equal(t, elft.Failure, e.CreateReferenceDatabase(ctx, refs, dbDir, 16).Result)
	require.True(t, e.CreateReferenceDatabase(ctx, refs, dbDir, 1<<30).OK())

	s, err := NewSearcher(writeOptions(t, "decision_threshold = 0\n"), dbDir)
	require.NoError(t, err)

	probe := e.CreateTemplate(ctx, elft.Probe, "latent", []elft.Sample{sampleOf(2, elft.FRGPUnknownFinger)})
	require.True(t, probe.Status.OK())

	assert.Equal(t, elft.Failure, s.Search(ctx, probe.Data, 10).Status.Result, "not loaded")
	assert.Equal(t, elft.Failure, s.Load(ctx, 16).Result)
	require.True(t, s.Load(ctx, 1<<30).OK())

	res := s.Search(ctx, probe.Data, 10)
	require.True(t, res.Status.OK(), res.Status.String())
	require.NotEmpty(t, res.Candidates)
	assert.LessOrEqual(t, len(res.Candidates), 4)
	assert.Equal(t, "checks", res.Candidates[0].Identifier)
	assert.Equal(t, elft.FRGPRightThumb+2, res.Candidates[0].FRGP)
	assert.True(t, res.Decision)
	for i := 1; i < len(res.Candidates); i++ {
		assert.GreaterOrEqual(t, res.Candidates[i-1].Similarity, res.Candidates[i].Similarity)
	}

	one := s.Search(ctx, probe.Data, 1)
	require.Len(t, one.Candidates, 1)
	assert.True(t, one.Candidates[0].Equal(res.Candidates[0]))

	assert.Empty(t, s.Search(ctx, probe.Data, 0).Candidates)
	assert.Equal(t, elft.Failure, s.Search(ctx, refs["ramp"], 10).Status.Result)

	corr := s.ExtractCorrespondence(ctx, probe.Data, res)
	assert.Equal(t, elft.NotImplemented, corr.Status.Result)
}

func TestCreateReferenceDatabaseRejectsProbe(t *testing.T) {
	e, err := NewExtractor("")
	require.NoError(t, err)
	ctx := context.Background()

	probe := e.CreateTemplate(ctx, elft.Probe, "latent", []elft.Sample{sampleOf(0, elft.FRGPUnknownFinger)})
	require.True(t, probe.Status.OK())

	status := e.CreateReferenceDatabase(ctx, memReader{"latent": probe.Data}, t.TempDir(), 1<<30)
	assert.Equal(t, elft.Failure, status.Result)
}

func TestTopCandidates(t *testing.T) {
	best := map[string]elft.Candidate{
		"a": elft.NewCandidate("a", elft.FRGPRightThumb, 3),
		"b": elft.NewCandidate("b", elft.FRGPRightThumb, 9),
		"c": elft.NewCandidate("c", elft.FRGPRightThumb, 3),
		"d": elft.NewCandidate("d", elft.FRGPRightThumb, 1),
	}
	top := topCandidates(best, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{top[0].Identifier, top[1].Identifier, top[2].Identifier})

	assert.Len(t, topCandidates(best, 10), 4)
	assert.Empty(t, topCandidates(best, 0))
}
