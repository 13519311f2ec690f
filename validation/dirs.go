package validation

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jtejido/elft"
)

const (
	// TemplateDir is where templates are written, relative to the output
	// directory.
	TemplateDir = "templates"
	// LatentTemplateDir holds probe templates, relative to the output directory.
	LatentTemplateDir = TemplateDir + "/latent"
	// ReferenceTemplateDir holds reference templates, relative to the output
	// directory.
	ReferenceTemplateDir = TemplateDir + "/reference"
	// TemplateSuffix ends every template filename.
	TemplateSuffix = ".tmpl"

	// TemplateCreationLog and SearchLog are written to the output directory.
	TemplateCreationLog = "template_creation.log"
	SearchLog           = "search.log"
)

// ErrUnknownTemplateType is returned for a template type with no directory.
var ErrUnknownTemplateType = errors.New("unknown template type")

// TemplateDirFor returns the template directory for t, relative to the
// output directory.
func TemplateDirFor(t elft.TemplateType) (string, error) {
	switch t {
	case elft.Probe:
		return LatentTemplateDir, nil
	case elft.Reference:
		return ReferenceTemplateDir, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownTemplateType, t)
}

// TemplatePath returns where the template of type t for identifier lives.
func TemplatePath(outputDir string, t elft.TemplateType, identifier string) (string, error) {
	dir, err := TemplateDirFor(t)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, filepath.FromSlash(dir), identifier+TemplateSuffix), nil
}
