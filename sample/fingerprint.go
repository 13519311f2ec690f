// Package sample is a demonstration implementation of the elft contracts,
// registered as "sample". Templates hold perceptual image hashes, so it
// finds near-duplicate images rather than matching friction ridge detail.
package sample

import (
	"context"
	"fmt"

	"github.com/rivo/duplo"

	"github.com/jtejido/elft"
	"github.com/jtejido/elft/imageio"
)

// Name is the name the implementation is registered under.
const Name = "sample"

func init() {
	elft.RegisterExtractor(Name, func(configDir string) (elft.Extractor, error) {
		return NewExtractor(configDir)
	})
	elft.RegisterSearcher(Name, func(configDir, databaseDir string) (elft.Searcher, error) {
		return NewSearcher(configDir, databaseDir)
	})
}

var productIdentifier = elft.ProductIdentifier{Marketing: "duplo perceptual hash"}

func identification() elft.SubmissionIdentification {
	exemplar, latent := productIdentifier, productIdentifier
	return elft.NewSubmissionIdentification(1, Name, &exemplar, &latent)
}

// Extractor creates hash templates. It is safe for concurrent use.
type Extractor struct {
	opts Options
}

// NewExtractor returns an extractor configured from configDir.
func NewExtractor(configDir string) (*Extractor, error) {
	opts, err := LoadOptions(configDir)
	if err != nil {
		return nil, err
	}
	return &Extractor{opts: opts}, nil
}

func (e *Extractor) Identification() elft.SubmissionIdentification {
	return identification()
}

func hashImage(img *elft.Image) (duplo.Hash, error) {
	gray, err := imageio.ToImage(*img)
	if err != nil {
		return duplo.Hash{}, err
	}
	hash, _ := duplo.CreateHash(gray)
	return hash, nil
}

func (e *Extractor) CreateTemplate(ctx context.Context, templateType elft.TemplateType, identifier string,
	samples []elft.Sample) elft.CreateTemplateResult {
	if templateType != elft.Probe && templateType != elft.Reference {
		return elft.CreateTemplateResult{Status: elft.StatusFailure("unknown template type %v", templateType)}
	}

	t := &template{Version: templateVersion, Type: templateType, Identifier: identifier}
	for i, s := range samples {
		if err := ctx.Err(); err != nil {
			return elft.CreateTemplateResult{Status: elft.StatusFailure("%v", err)}
		}
		if s.Image == nil {
			// Features without an image carry nothing to hash.
			continue
		}
		if len(t.Entries) == e.opts.MaxImagesPerTemplate {
			break
		}

		hash, err := hashImage(s.Image)
		if err != nil {
			return elft.CreateTemplateResult{Status: elft.StatusFailure("sample %d: %v", i, err)}
		}
		en := entry{
			ImageIdentifier: s.Image.Identifier,
			FRGP:            elft.FRGPUnknownFinger,
			Width:           s.Image.Width,
			Height:          s.Image.Height,
			PPI:             s.Image.PPI,
			Hash:            hash,
		}
		if s.EFS != nil {
			en.FRGP = s.EFS.FRGP
			en.Impression = s.EFS.Impression
			en.FRCT = s.EFS.FRCT
		}
		t.Entries = append(t.Entries, en)
	}
	if len(t.Entries) == 0 {
		return elft.CreateTemplateResult{Status: elft.StatusFailure("no images in %d samples", len(samples))}
	}

	data, err := encodeTemplate(t)
	if err != nil {
		return elft.CreateTemplateResult{Status: elft.StatusFailure("failed to encode template: %v", err)}
	}
	return elft.CreateTemplateResult{Status: elft.StatusOK(), Data: data}
}

func (e *Extractor) ExtractTemplateData(ctx context.Context, templateType elft.TemplateType,
	res elft.CreateTemplateResult) elft.TemplateDataResult {
	t, err := decodeTemplate(res.Data)
	if err != nil {
		return elft.TemplateDataResult{Status: elft.StatusFailure("%v", err)}
	}
	if t.Type != templateType {
		return elft.TemplateDataResult{Status: elft.StatusFailure("template is a %s template, not %s", t.Type, templateType)}
	}
	return elft.TemplateDataResult{Status: elft.StatusOK(), Features: t.features()}
}

// String describes the extractor for logs.
func (e *Extractor) String() string {
	return fmt.Sprintf("%s (threshold %g)", identification(), e.opts.DecisionThreshold)
}
