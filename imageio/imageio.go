// Package imageio loads friction ridge images from disk into elft.Image
// values and writes them back out for inspection.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/spakin/netpbm"

	"github.com/jtejido/elft"
)

// ErrGeometry is returned when a file disagrees with the expected geometry.
var ErrGeometry = errors.New("image geometry mismatch")

// Hint carries what is known about an image before it is read. Raw files
// need every field; decoded formats take Identifier and PPI from the hint
// and check Width and Height when they are set.
type Hint struct {
	Identifier uint8
	Width      uint16
	Height     uint16
	PPI        uint16
	BPC        uint8
	BPP        uint8
}

// FromImage converts any image to an elft.Image. 16 bit grayscale images
// keep their depth; everything else becomes 8 bit grayscale.
func FromImage(img image.Image, identifier uint8, ppi uint16) (elft.Image, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 || width > 0xFFFF || height > 0xFFFF {
		return elft.Image{}, fmt.Errorf("%w: unsupported size %dx%d", ErrGeometry, width, height)
	}

	if g16, ok := img.(*image.Gray16); ok {
		pixels := make([]byte, 0, width*height*2)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			start := g16.PixOffset(bounds.Min.X, y)
			pixels = append(pixels, g16.Pix[start:start+width*2]...)
		}
		return elft.NewImage(identifier, uint16(width), uint16(height), ppi, 16, 16, pixels), nil
	}
	if isDeep(img) {
		pixels := make([]byte, 0, width*height*2)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				v := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
				pixels = append(pixels, byte(v>>8), byte(v))
			}
		}
		return elft.NewImage(identifier, uint16(width), uint16(height), ppi, 16, 16, pixels), nil
	}

	pixels := make([]byte, 0, width*height)
	if gray, ok := img.(*image.Gray); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			start := gray.PixOffset(bounds.Min.X, y)
			pixels = append(pixels, gray.Pix[start:start+width]...)
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
			}
		}
	}
	return elft.NewImage(identifier, uint16(width), uint16(height), ppi, 8, 8, pixels), nil
}

// isDeep reports whether img carries more than 8 bits of gray, as 16 bit
// netpbm images do.
func isDeep(img image.Image) bool {
	if img.ColorModel() == color.Gray16Model {
		return true
	}
	if pnm, ok := img.(netpbm.Image); ok {
		return pnm.MaxValue() > 255 && pnm.Format() == netpbm.PGM
	}
	return false
}

// ToImage returns a grayscale view of img: *image.Gray for 8 bit images and
// *image.Gray16 for 16 bit images. The pixel buffer is shared, not copied.
func ToImage(img elft.Image) (image.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, int(img.Width), int(img.Height))
	switch {
	case img.BPC == 8 && img.BPP == 8:
		return &image.Gray{Pix: img.Pixels, Stride: int(img.Width), Rect: rect}, nil
	case img.BPC == 16 && img.BPP == 16:
		return &image.Gray16{Pix: img.Pixels, Stride: int(img.Width) * 2, Rect: rect}, nil
	}
	return nil, fmt.Errorf("%w: %d bits per pixel is not grayscale", elft.ErrInvalidImage, img.BPP)
}

// WritePGM writes img as a binary PGM file.
func WritePGM(w io.Writer, img elft.Image) error {
	gray, err := ToImage(img)
	if err != nil {
		return err
	}
	maxValue := uint16(255)
	if img.BPC == 16 {
		maxValue = 65535
	}
	return netpbm.Encode(w, gray, &netpbm.EncodeOptions{
		Format:   netpbm.PGM,
		MaxValue: maxValue,
		Comments: []string{fmt.Sprintf("%d ppi", img.PPI)},
	})
}

// SavePGM writes img to path as a binary PGM file.
func SavePGM(path string, img elft.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePGM(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
