package imageio

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	wsq "github.com/jtejido/go-wsq"
	"github.com/spakin/netpbm"
	_ "golang.org/x/image/tiff"

	"github.com/jtejido/elft"
)

// Loader reads one image file.
type Loader interface {
	Load(path string, hint Hint) (elft.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string, hint Hint) (elft.Image, error)

func (f LoaderFunc) Load(path string, hint Hint) (elft.Image, error) { return f(path, hint) }

// Registry picks a Loader by file extension.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry returns a registry that knows raw grayscale, netpbm, WSQ,
// PNG, JPEG and TIFF files.
func NewRegistry() *Registry {
	r := &Registry{loaders: make(map[string]Loader)}

	raw := LoaderFunc(loadRaw)
	r.Register(".gray", raw)
	r.Register(".raw", raw)

	pnm := decodeLoader(func(rd io.Reader) (image.Image, error) {
		img, err := netpbm.Decode(rd, nil)
		if err != nil {
			return nil, err
		}
		return img, nil
	})
	r.Register(".pgm", pnm)
	r.Register(".pnm", pnm)

	r.Register(".wsq", decodeLoader(wsq.Decode))

	// PNG, JPEG and TIFF decoders register themselves with the image package.
	std := decodeLoader(func(rd io.Reader) (image.Image, error) {
		img, _, err := image.Decode(rd)
		return img, err
	})
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".tif", ".tiff"} {
		r.Register(ext, std)
	}
	return r
}

// Register sets the loader for a file extension, replacing any previous one.
func (r *Registry) Register(ext string, loader Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[strings.ToLower(ext)] = loader
}

// CanLoad reports whether a loader is registered for path's extension.
func (r *Registry) CanLoad(path string) bool {
	_, ok := r.lookup(path)
	return ok
}

func (r *Registry) lookup(path string) (Loader, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	return l, ok
}

// Load reads path with the loader registered for its extension.
func (r *Registry) Load(path string, hint Hint) (elft.Image, error) {
	l, ok := r.lookup(path)
	if !ok {
		return elft.Image{}, fmt.Errorf("no loader for %s", path)
	}
	img, err := l.Load(path, hint)
	if err != nil {
		return elft.Image{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return img, nil
}

var defaultRegistry = NewRegistry()

// Load reads path with the default registry.
func Load(path string, hint Hint) (elft.Image, error) {
	return defaultRegistry.Load(path, hint)
}

// loadRaw reads headerless pixels whose geometry comes from the hint.
func loadRaw(path string, hint Hint) (elft.Image, error) {
	if hint.Width == 0 || hint.Height == 0 || hint.BPP == 0 {
		return elft.Image{}, fmt.Errorf("%w: raw image needs width, height and depth", ErrGeometry)
	}
	pixels, err := os.ReadFile(path)
	if err != nil {
		return elft.Image{}, err
	}
	img := elft.NewImage(hint.Identifier, hint.Width, hint.Height, hint.PPI, hint.BPC, hint.BPP, pixels)
	if len(pixels) != img.ExpectedPixelLen() {
		return elft.Image{}, fmt.Errorf("%w: file has %d bytes, %dx%d at %d bpp needs %d",
			ErrGeometry, len(pixels), hint.Width, hint.Height, hint.BPP, img.ExpectedPixelLen())
	}
	return img, nil
}

func decodeLoader(decode func(io.Reader) (image.Image, error)) Loader {
	return LoaderFunc(func(path string, hint Hint) (elft.Image, error) {
		f, err := os.Open(path)
		if err != nil {
			return elft.Image{}, err
		}
		defer f.Close()

		decoded, err := decode(bufio.NewReader(f))
		if err != nil {
			return elft.Image{}, err
		}
		img, err := FromImage(decoded, hint.Identifier, hint.PPI)
		if err != nil {
			return elft.Image{}, err
		}
		if hint.Width != 0 && hint.Height != 0 && (img.Width != hint.Width || img.Height != hint.Height) {
			return elft.Image{}, fmt.Errorf("%w: decoded %dx%d, expected %dx%d",
				ErrGeometry, img.Width, img.Height, hint.Width, hint.Height)
		}
		return img, nil
	})
}
