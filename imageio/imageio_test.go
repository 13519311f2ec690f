package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	wsq "github.com/jtejido/go-wsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtejido/elft"
)

func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x*16 + y)})
		}
	}
	return img
}

func TestFromImageGray(t *testing.T) {
	src := gradient(4, 3)
	img, err := FromImage(src, 2, 500)
	require.NoError(t, err)

	assert.Equal(t, uint8(2), img.Identifier)
	assert.Equal(t, uint16(4), img.Width)
	assert.Equal(t, uint16(3), img.Height)
	assert.Equal(t, uint8(8), img.BPP)
	assert.Equal(t, src.Pix, img.Pixels)
	assert.NoError(t, img.Validate())
}

func TestFromImageSubImage(t *testing.T) {
	src := gradient(4, 4).SubImage(image.Rect(1, 1, 3, 3))
	img, err := FromImage(src, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, []byte{17, 33, 18, 34}, img.Pixels)
}

func TestFromImageColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.White)
	src.Set(1, 0, color.Black)
	img, err := FromImage(src, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 0}, img.Pixels)
}

func TestGray16RoundTrip(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 2))
	src.SetGray16(1, 0, color.Gray16{Y: 0x1234})
	img, err := FromImage(src, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint8(16), img.BPC)
	assert.Equal(t, []byte{0, 0, 0x12, 0x34, 0, 0, 0, 0}, img.Pixels)

	back, err := ToImage(img)
	require.NoError(t, err)
	assert.Equal(t, color.Gray16{Y: 0x1234}, back.At(1, 0))
}

func TestToImageRejectsInvalid(t *testing.T) {
	_, err := ToImage(elft.NewImage(0, 2, 2, 500, 8, 8, []byte{1}))
	assert.ErrorIs(t, err, elft.ErrInvalidImage)

	_, err = ToImage(elft.NewImage(0, 1, 1, 500, 8, 24, []byte{1, 2, 3}))
	assert.ErrorIs(t, err, elft.ErrInvalidImage)
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latent.gray")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6}, 0644))

	img, err := Load(path, Hint{Identifier: 1, Width: 3, Height: 2, PPI: 1000, BPC: 8, BPP: 8})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, img.Pixels)
	assert.Equal(t, uint16(1000), img.PPI)

	_, err = Load(path, Hint{Width: 4, Height: 2, PPI: 1000, BPC: 8, BPP: 8})
	assert.ErrorIs(t, err, ErrGeometry)

	_, err = Load(path, Hint{})
	assert.ErrorIs(t, err, ErrGeometry)
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exemplar.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(5, 2)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	img, err := Load(path, Hint{PPI: 500})
	require.NoError(t, err)
	assert.Equal(t, gradient(5, 2).Pix, img.Pixels)

	_, err = Load(path, Hint{Width: 6, Height: 2, PPI: 500})
	assert.ErrorIs(t, err, ErrGeometry)
}

func TestPGMRoundTrip(t *testing.T) {
	src, err := FromImage(gradient(6, 4), 0, 500)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.pgm")
	require.NoError(t, SavePGM(path, src))

	img, err := Load(path, Hint{PPI: 500})
	require.NoError(t, err)
	assert.Equal(t, src.Width, img.Width)
	assert.Equal(t, src.Height, img.Height)
	assert.Equal(t, src.Pixels, img.Pixels)
}

func TestPGM16RoundTrip(t *testing.T) {
	src := elft.NewImage(0, 2, 1, 1000, 16, 16, []byte{0x12, 0x34, 0xab, 0xcd})
	path := filepath.Join(t.TempDir(), "deep.pgm")
	require.NoError(t, SavePGM(path, src))

	img, err := Load(path, Hint{PPI: 1000})
	require.NoError(t, err)
	assert.Equal(t, uint8(16), img.BPC)
	assert.Equal(t, uint8(16), img.BPP)
	assert.Equal(t, src.Pixels, img.Pixels)
}

func TestLoadWSQ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latent.wsq")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, wsq.Encode(f, gradient(256, 256), &wsq.Options{Bitrate: 2.25}))
	require.NoError(t, f.Close())

	img, err := Load(path, Hint{Identifier: 2, PPI: 500})
	require.NoError(t, err)
	assert.Equal(t, uint16(256), img.Width)
	assert.Equal(t, uint16(256), img.Height)
	assert.Equal(t, uint8(8), img.BPP)
	assert.Equal(t, uint8(2), img.Identifier)
	assert.Len(t, img.Pixels, 256*256)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.CanLoad("a.WSQ"))
	assert.True(t, r.CanLoad("b.tiff"))
	assert.False(t, r.CanLoad("c.bmp"))

	_, err := r.Load("c.bmp", Hint{})
	assert.ErrorContains(t, err, "no loader")

	called := false
	r.Register(".bmp", LoaderFunc(func(string, Hint) (elft.Image, error) {
		called = true
		return elft.Image{}, nil
	}))
	_, err = r.Load("c.BMP", Hint{})
	require.NoError(t, err)
	assert.True(t, called)
}
