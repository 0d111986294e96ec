package output

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-stochastic-raytracer/pkg/loaders"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		format Format
	}{
		{"render.png", PNG},
		{"out/render.PNG", PNG},
		{"render.ppm", PPM},
		{"render.bmp", BMP},
		{"render.tif", TIFF},
		{"render.tiff", TIFF},
	}
	for _, tt := range tests {
		format, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.format, format, tt.path)
	}

	for _, bad := range []string{"render.jpg", "render", "render.png.gz"} {
		_, err := FormatFromPath(bad)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, bad)
	}
}

func TestEncodePPM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, PPM, testImage()))

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"10 20 30\n"
	assert.Equal(t, expected, buf.String())
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	// PPM has no decoder in the loaders; it is covered by TestEncodePPM
	for _, name := range []string{"render.png", "nested/render.bmp", "render.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, img))

			data, err := loaders.LoadImage(path)
			require.NoError(t, err)
			require.Equal(t, 2, data.Width)
			require.Equal(t, 2, data.Height)

			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					c := img.RGBAAt(x, y)
					want := [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
					got := data.Pixels[y*2+x]
					for channel := 0; channel < 3; channel++ {
						assert.InDelta(t, want[channel], got[channel], 1e-9, "pixel (%d, %d)", x, y)
					}
				}
			}
		})
	}
}

func TestSave_Errors(t *testing.T) {
	dir := t.TempDir()

	err := Save(filepath.Join(dir, "render.jpg"), testImage())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, statErr := os.Stat(filepath.Join(dir, "render.jpg"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written for an unsupported format")

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, Format("gif"), testImage()), ErrUnsupportedFormat)
}
