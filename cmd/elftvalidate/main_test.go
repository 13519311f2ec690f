package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtejido/elft"
	"github.com/jtejido/elft/validation"
)

func runApp(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp(&env{})
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"elftvalidate"}, args...))
	return out.String(), err
}

func TestParseTemplateType(t *testing.T) {
	for in, want := range map[string]elft.TemplateType{
		"":          elft.Probe,
		"probe":     elft.Probe,
		"Latent":    elft.Probe,
		"reference": elft.Reference,
		"EXEMPLAR":  elft.Reference,
	} {
		got, err := parseTemplateType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseTemplateType("gallery")
	assert.ErrorIs(t, err, validation.ErrUnknownTemplateType)
}

func TestImplementations(t *testing.T) {
	out, err := runApp(t, "implementations")
	require.NoError(t, err)
	assert.Contains(t, out, "sample\n")
}

func TestFixturesCommands(t *testing.T) {
	out, err := runApp(t, "fixtures", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "100 latent and 55 reference sets are consistent")

	out, err = runApp(t, "fixtures", "list", "--type", "reference")
	require.NoError(t, err)
	assert.Contains(t, out, "00002644\t10 images\n")
	assert.Contains(t, out, "00002644_V_500_roll_01_800x750.gray\t800x750\t500 ppi\t8 bpp\tRightThumb")

	_, err = runApp(t, "fixtures", "list", "--type", "gallery")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	images := t.TempDir()
	set, err := validation.Lookup(elft.Reference, "00002325")
	require.NoError(t, err)
	for _, m := range set.Images {
		pixels := make([]byte, int(m.Width)*int(m.Height))
		require.NoError(t, os.WriteFile(filepath.Join(images, m.Filename), pixels, 0644))
	}

	dest := filepath.Join(t.TempDir(), "pgm")
	_, err = runApp(t, "--images", images, "export", "--type", "reference", "--id", "00002325", "--destination", dest)
	require.NoError(t, err)

	written, err := filepath.Glob(filepath.Join(dest, "*.pgm"))
	require.NoError(t, err)
	assert.Len(t, written, len(set.Images))

	_, err = runApp(t, "--images", images, "export", "--type", "reference", "--id", "missing")
	assert.ErrorIs(t, err, validation.ErrUnknownImageSet)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elft.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_candidates = 0\n"), 0644))
	_, err := runApp(t, "--config", path, "implementations")
	assert.ErrorContains(t, err, "max_candidates must be positive")
}

func TestZeroWorkersUsesAllCPUs(t *testing.T) {
	e := &env{}
	app := newApp(e)
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	require.NoError(t, app.Run([]string{"elftvalidate", "--workers", "0", "implementations"}))
	assert.Equal(t, runtime.NumCPU(), e.cfg.Workers)
}
