package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/jtejido/elft"
	"github.com/jtejido/elft/imageio"
	"github.com/jtejido/elft/results"
	"github.com/jtejido/elft/validation"
)

func parseTemplateType(s string) (elft.TemplateType, error) {
	switch strings.ToLower(s) {
	case "probe", "latent", "":
		return elft.Probe, nil
	case "reference", "exemplar":
		return elft.Reference, nil
	}
	return 0, fmt.Errorf("%w: %q", validation.ErrUnknownTemplateType, s)
}

// driver builds a validation driver, with a results recorder when one is
// configured. The returned function finishes the recorded run.
func (e *env) driver() (*validation.Driver, func(error) error, error) {
	extractor, err := elft.NewExtractor(e.cfg.Implementation, e.cfg.ConfigDir)
	if err != nil {
		return nil, nil, err
	}
	opts := []validation.Option{validation.WithLogger(e.log)}
	finish := func(err error) error { return err }

	if e.cfg.ResultsDatabase != "" {
		rec, rerr := results.Open(e.cfg.ResultsDatabase, e.cfg.Implementation, extractor.Identification())
		if rerr != nil {
			return nil, nil, rerr
		}
		e.log.Infof("recording run %s in %s", rec.RunID(), e.cfg.ResultsDatabase)
		opts = append(opts, validation.WithRecorder(rec))
		finish = func(err error) error {
			if stats, serr := rec.Stats(); serr == nil {
				e.log.Infof("run %s: %d templates (%d failed), %d searches (%d failed), %d mated at rank 1",
					rec.RunID(), stats.Templates, stats.TemplateFailures, stats.Searches, stats.SearchFailures, stats.Mated)
			}
			err = multierr.Append(err, rec.Finish(err))
			return multierr.Append(err, rec.Close())
		}
	}
	return validation.NewDriverWithExtractor(e.cfg, extractor, opts...), finish, nil
}

func (e *env) withDriver(c *cli.Context, fn func(context.Context, *validation.Driver) error) error {
	d, finish, err := e.driver()
	if err != nil {
		return err
	}
	return finish(fn(c.Context, d))
}

func (e *env) run(c *cli.Context) error {
	return e.withDriver(c, func(ctx context.Context, d *validation.Driver) error {
		return d.Run(ctx)
	})
}

func (e *env) templates(c *cli.Context) error {
	t, err := parseTemplateType(c.String(flagType))
	if err != nil {
		return err
	}
	return e.withDriver(c, func(ctx context.Context, d *validation.Driver) error {
		return d.CreateTemplates(ctx, t)
	})
}

func (e *env) database(c *cli.Context) error {
	return e.withDriver(c, func(ctx context.Context, d *validation.Driver) error {
		return d.CreateReferenceDatabase(ctx)
	})
}

func (e *env) search(c *cli.Context) error {
	return e.withDriver(c, func(ctx context.Context, d *validation.Driver) error {
		return d.Search(ctx)
	})
}

func (e *env) listFixtures(c *cli.Context) error {
	t, err := parseTemplateType(c.String(flagType))
	if err != nil {
		return err
	}
	sets, err := validation.ImageSets(t)
	if err != nil {
		return err
	}
	w := c.App.Writer
	for _, s := range sets {
		fmt.Fprintf(w, "%s\t%d images\n", s.Identifier, len(s.Images))
		for _, m := range s.Images {
			frgp := elft.FRGPUnknownFinger
			if m.EFS != nil {
				frgp = m.EFS.FRGP
			}
			fmt.Fprintf(w, "\t%s\t%dx%d\t%d ppi\t%d bpp\t%s\n", m.Filename, m.Width, m.Height, m.PPI, m.BPP, frgp)
		}
	}
	return nil
}

func (e *env) checkFixtures(c *cli.Context) error {
	if err := validation.CheckFixtures(); err != nil {
		for _, ferr := range multierr.Errors(err) {
			e.log.Errorf("%v", ferr)
		}
		return fmt.Errorf("%d fixture problems", len(multierr.Errors(err)))
	}
	fmt.Fprintf(c.App.Writer, "%d latent and %d reference sets are consistent\n",
		len(validation.Latents()), len(validation.References()))
	return nil
}

func (e *env) export(c *cli.Context) error {
	t, err := parseTemplateType(c.String(flagType))
	if err != nil {
		return err
	}
	set, err := validation.Lookup(t, c.String(flagID))
	if err != nil {
		return err
	}
	dest := c.String(flagDestination)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}

	for _, m := range set.Images {
		img, err := imageio.Load(filepath.Join(e.cfg.ImageDir, m.Filename), imageio.Hint{
			Width: m.Width, Height: m.Height, PPI: m.PPI, BPC: m.BPC, BPP: m.BPP,
		})
		if err != nil {
			return err
		}
		out := filepath.Join(dest, strings.TrimSuffix(m.Filename, filepath.Ext(m.Filename))+".pgm")
		if err := imageio.SavePGM(out, img); err != nil {
			return err
		}
		e.log.Infof("wrote %s", out)
	}
	return nil
}

func (e *env) implementations(c *cli.Context) error {
	for _, name := range elft.Implementations() {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}
