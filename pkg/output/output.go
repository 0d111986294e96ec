package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Format is an image file format, named by its usual extension
type Format string

const (
	PNG  Format = "png"
	PPM  Format = "ppm"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{PNG, PPM, BMP, TIFF}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return PNG, nil
	case "ppm":
		return PPM, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save writes img to path in the format given by its extension, creating
// parent directories as needed
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(file, format, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}

// Encode writes img to w in the given format
func Encode(w io.Writer, format Format, img image.Image) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case PPM:
		return encodePPM(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// encodePPM writes a plain-text (P3) portable pixmap, one pixel per line,
// top row first
func encodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fmt.Fprintf(out, "%d %d %d\n", r>>8, g>>8, b>>8)
		}
	}

	return out.Flush()
}
