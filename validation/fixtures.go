package validation

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/exp/slices"

	"github.com/jtejido/elft"
)

// ErrUnknownImageSet is returned by Lookup when no set has the identifier.
var ErrUnknownImageSet = errors.New("unknown image set")

// ImageMetadata describes one validation image file and the features known
// about it before extraction.
type ImageMetadata struct {
	Filename string
	Width    uint16
	Height   uint16
	PPI      uint16
	BPC      uint8
	BPP      uint8
	EFS      *elft.EFS
}

// Clone returns a copy that shares no memory with m.
func (m ImageMetadata) Clone() ImageMetadata {
	c := m
	if m.EFS != nil {
		efs := m.EFS.Clone()
		c.EFS = &efs
	}
	return c
}

// ImageSet is the group of images that becomes one template.
type ImageSet struct {
	Identifier string
	Images     []ImageMetadata
}

// Clone returns a copy that shares no memory with s.
func (s ImageSet) Clone() ImageSet {
	c := ImageSet{Identifier: s.Identifier, Images: make([]ImageMetadata, len(s.Images))}
	for i, m := range s.Images {
		c.Images[i] = m.Clone()
	}
	return c
}

func latent(name string, width, height, ppi uint16, depth uint8, frct elft.FrictionRidgeCaptureTechnology,
	methods ...elft.ProcessingMethod) ImageSet {
	return ImageSet{
		Identifier: name,
		Images: []ImageMetadata{{
			Filename: name + ".gray",
			Width:    width,
			Height:   height,
			PPI:      ppi,
			BPC:      depth,
			BPP:      depth,
			EFS: &elft.EFS{
				Impression:        elft.ImpressionLatent,
				FRCT:              frct,
				FRGP:              elft.FRGPUnknownFinger,
				ProcessingMethods: methods,
			},
		}},
	}
}

func exemplar(filename string, width, height, ppi uint16, imp elft.Impression,
	frct elft.FrictionRidgeCaptureTechnology, frgp elft.FrictionRidgeGeneralizedPosition) ImageMetadata {
	value := elft.AssessmentValue
	return ImageMetadata{
		Filename: filename,
		Width:    width,
		Height:   height,
		PPI:      ppi,
		BPC:      8,
		BPP:      8,
		EFS: &elft.EFS{
			Impression:      imp,
			FRCT:            frct,
			FRGP:            frgp,
			ValueAssessment: &value,
		},
	}
}

// reference numbers images in the order given.
func reference(id string, images ...ImageMetadata) ImageSet {
	for i := range images {
		images[i].EFS.ImageIdentifier = uint8(i)
	}
	return ImageSet{Identifier: id, Images: images}
}

func cloneSets(sets []ImageSet) []ImageSet {
	out := make([]ImageSet, len(sets))
	for i, s := range sets {
		out[i] = s.Clone()
	}
	return out
}

// Latents returns the probe image sets. Callers own the result.
func Latents() []ImageSet { return cloneSets(latents) }

// References returns the reference image sets. Callers own the result.
func References() []ImageSet { return cloneSets(references) }

// ImageSets returns the image sets made into templates of type t.
func ImageSets(t elft.TemplateType) ([]ImageSet, error) {
	switch t {
	case elft.Probe:
		return Latents(), nil
	case elft.Reference:
		return References(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownTemplateType, t)
}

func table(t elft.TemplateType) ([]ImageSet, error) {
	switch t {
	case elft.Probe:
		return latents, nil
	case elft.Reference:
		return references, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownTemplateType, t)
}

// Lookup returns the image set of type t with the given identifier.
func Lookup(t elft.TemplateType, identifier string) (ImageSet, error) {
	sets, err := table(t)
	if err != nil {
		return ImageSet{}, err
	}
	i := slices.IndexFunc(sets, func(s ImageSet) bool { return s.Identifier == identifier })
	if i < 0 {
		return ImageSet{}, fmt.Errorf("%w: %s %s", ErrUnknownImageSet, t, identifier)
	}
	return sets[i].Clone(), nil
}

// Validate checks that m agrees with itself.
func (m ImageMetadata) Validate() error {
	var err error
	if m.Filename == "" {
		err = multierr.Append(err, errors.New("empty filename"))
	}
	if m.Width == 0 || m.Height == 0 {
		err = multierr.Append(err, fmt.Errorf("%s: zero dimensions %dx%d", m.Filename, m.Width, m.Height))
	}
	if m.PPI == 0 {
		err = multierr.Append(err, fmt.Errorf("%s: zero resolution", m.Filename))
	}
	if m.BPC != 8 && m.BPC != 16 {
		err = multierr.Append(err, fmt.Errorf("%s: unsupported bits per component %d", m.Filename, m.BPC))
	} else if m.BPP%m.BPC != 0 || m.BPP == 0 {
		err = multierr.Append(err, fmt.Errorf("%s: %d bits per pixel is not a multiple of %d",
			m.Filename, m.BPP, m.BPC))
	}
	if m.EFS == nil {
		err = multierr.Append(err, fmt.Errorf("%s: no features", m.Filename))
	}
	return err
}

// CheckFixtures reports every inconsistency in the fixture tables.
func CheckFixtures() error {
	var err error
	for _, t := range []elft.TemplateType{elft.Probe, elft.Reference} {
		sets, _ := table(t)
		err = multierr.Append(err, checkSets(t, sets))
	}
	return err
}

func checkSets(t elft.TemplateType, sets []ImageSet) error {
	var err error
	seenSets := make(map[string]bool, len(sets))
	for _, s := range sets {
		if seenSets[s.Identifier] {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate image set %s", t, s.Identifier))
		}
		seenSets[s.Identifier] = true

		if len(s.Images) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s %s: no images", t, s.Identifier))
		}
		seenFiles := make(map[string]bool, len(s.Images))
		for i, m := range s.Images {
			if seenFiles[m.Filename] {
				err = multierr.Append(err, fmt.Errorf("%s %s: duplicate file %s", t, s.Identifier, m.Filename))
			}
			seenFiles[m.Filename] = true
			if verr := m.Validate(); verr != nil {
				err = multierr.Append(err, fmt.Errorf("%s %s: %w", t, s.Identifier, verr))
			}
			if m.EFS != nil && int(m.EFS.ImageIdentifier) != i {
				err = multierr.Append(err, fmt.Errorf("%s %s: %s has image identifier %d at position %d",
					t, s.Identifier, m.Filename, m.EFS.ImageIdentifier, i))
			}
		}
	}
	return err
}
