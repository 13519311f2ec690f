package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// DirTemplateReader reads templates written by Driver.CreateTemplates from a
// template directory.
type DirTemplateReader struct {
	dir string
	ids []string
}

// NewDirTemplateReader lists the templates in dir. Files without
// TemplateSuffix are ignored.
func NewDirTemplateReader(dir string) (*DirTemplateReader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	r := &DirTemplateReader{dir: dir}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), TemplateSuffix) {
			continue
		}
		r.ids = append(r.ids, strings.TrimSuffix(e.Name(), TemplateSuffix))
	}
	slices.Sort(r.ids)
	return r, nil
}

// Identifiers returns template identifiers in lexical order.
func (r *DirTemplateReader) Identifiers() []string {
	return slices.Clone(r.ids)
}

func (r *DirTemplateReader) Read(identifier string) ([]byte, error) {
	if _, found := slices.BinarySearch(r.ids, identifier); !found {
		return nil, fmt.Errorf("no template %q in %s", identifier, r.dir)
	}
	return os.ReadFile(filepath.Join(r.dir, identifier+TemplateSuffix))
}
