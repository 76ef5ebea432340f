package rendering

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported image formats.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Formats lists the formats accepted by Encode.
var Formats = []string{FormatPNG, FormatBMP, FormatTIFF}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF, "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unsupported image format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Extension returns the file extension, with dot, for a format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatTIFF, "tif":
		return ".tiff"
	default:
		return "." + strings.ToLower(format)
	}
}

// FormatOf guesses the format from a file name's extension.
func FormatOf(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case FormatPNG, FormatBMP, FormatTIFF:
		return ext, nil
	case "tif":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("cannot infer image format from %q", path)
}
