package image

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output file format.
type Format int

const (
	// FormatPNG is the default format.
	FormatPNG Format = iota
	FormatTIFF
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatTIFF:
		return "TIFF"
	case FormatBMP:
		return "BMP"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor returns the format for the extension of path. Unknown
// extensions give PNG.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return FormatTIFF
	case ".bmp":
		return FormatBMP
	default:
		return FormatPNG
	}
}

// Encode writes the planes in format f. Only PNG keeps the note and the
// resolution.
func Encode(w io.Writer, f Format, planes [3][]byte, width int, note string, pixelsPerMM float64) error {
	switch f {
	case FormatTIFF:
		img, err := ToRGBA(planes, width)
		if err != nil {
			return err
		}
		opts := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
		if err := tiff.Encode(w, img, opts); err != nil {
			return fmt.Errorf("image: encode TIFF: %w", err)
		}
		return nil
	case FormatBMP:
		img, err := ToRGBA(planes, width)
		if err != nil {
			return err
		}
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("image: encode BMP: %w", err)
		}
		return nil
	default:
		return EncodePNG(w, planes, width, note, pixelsPerMM)
	}
}

// Save writes the planes to the file at path in the format chosen by its
// extension.
func Save(path string, planes [3][]byte, width int, note string, pixelsPerMM float64) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, FormatFor(path), planes, width, note, pixelsPerMM); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("image: write file: %w", err)
	}
	return f.Close()
}

// ToRGBA interleaves the planes into an opaque RGBA image.
func ToRGBA(planes [3][]byte, width int) (*image.RGBA, error) {
	height, err := rows(planes, width)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range planes[0] {
		o := 4 * i
		img.Pix[o] = planes[0][i]
		img.Pix[o+1] = planes[1][i]
		img.Pix[o+2] = planes[2][i]
		img.Pix[o+3] = 255
	}
	return img, nil
}
