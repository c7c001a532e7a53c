// Package image writes scale card rasters to files.
//
// A raster is three equal-length byte planes holding the red, green and
// blue channels row by row, and the width of a row in pixels.
package image

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding errors.
var (
	// ErrEmptyPlanes is returned when there are no pixels to encode.
	ErrEmptyPlanes = errors.New("image: empty planes")

	// ErrPlaneSize is returned when the planes differ in length or are not
	// a whole number of rows.
	ErrPlaneSize = errors.New("image: inconsistent plane size")
)

var pngSignature = [8]byte{137, 'P', 'N', 'G', '\r', '\n', 26, '\n'}

// textKeyword is the keyword of the metadata chunk holding the note.
const textKeyword = "Software"

// rows validates the planes and returns the number of rows.
func rows(planes [3][]byte, width int) (int, error) {
	n := len(planes[0])
	if width <= 0 || n == 0 {
		return 0, ErrEmptyPlanes
	}
	if len(planes[1]) != n || len(planes[2]) != n || n%width != 0 {
		return 0, ErrPlaneSize
	}
	return n / width, nil
}

// EncodePNG writes the planes as an 8-bit truecolor PNG. The image carries
// its resolution in a pHYs chunk and note in a tEXt chunk. The same input
// always gives the same bytes.
func EncodePNG(w io.Writer, planes [3][]byte, width int, note string, pixelsPerMM float64) error {
	height, err := rows(planes, width)
	if err != nil {
		return err
	}

	var hdr [13]byte
	binary.BigEndian.PutUint32(hdr[0:], uint32(width))
	binary.BigEndian.PutUint32(hdr[4:], uint32(height))
	hdr[8] = 8 // bit depth
	hdr[9] = 2 // truecolor
	// compression, filter and interlace methods are all 0

	var phys [9]byte
	ppm := uint32(pixelsPerMM*1000 + 0.5)
	binary.BigEndian.PutUint32(phys[0:], ppm)
	binary.BigEndian.PutUint32(phys[4:], ppm)
	phys[8] = 1 // metre

	text, err := textData(note)
	if err != nil {
		return err
	}

	idat, err := compress(planes, width, height)
	if err != nil {
		return err
	}

	if _, err := w.Write(pngSignature[:]); err != nil {
		return fmt.Errorf("image: write PNG: %w", err)
	}
	chunks := []struct {
		typ  string
		data []byte
	}{
		{"IHDR", hdr[:]},
		{"pHYs", phys[:]},
		{"tEXt", text},
		{"IDAT", idat},
		{"IEND", nil},
	}
	for _, c := range chunks {
		if err := writeChunk(w, c.typ, c.data); err != nil {
			return fmt.Errorf("image: write PNG: %w", err)
		}
	}
	return nil
}

// writeChunk writes the length, type, data and CRC of one chunk. The CRC
// covers type and data.
func writeChunk(w io.Writer, typ string, data []byte) error {
	buf := make([]byte, 0, 12+len(data))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
	buf = append(buf, typ...)
	buf = append(buf, data...)
	buf = binary.BigEndian.AppendUint32(buf, crc32.ChecksumIEEE(buf[4:]))
	_, err := w.Write(buf)
	return err
}

// textData returns the tEXt payload: keyword, NUL, note in Latin-1. Runes
// the chunk cannot hold become question marks.
func textData(note string) ([]byte, error) {
	note = strings.Map(func(r rune) rune {
		if r == '\n' || (r >= 0x20 && r < 0x7f) || (r >= 0xa1 && r <= 0xff) {
			return r
		}
		return '?'
	}, note)
	latin, err := charmap.ISO8859_1.NewEncoder().String(note)
	if err != nil {
		return nil, fmt.Errorf("image: encode note: %w", err)
	}
	return append([]byte(textKeyword+"\x00"), latin...), nil
}

// compress returns the zlib stream of the scanlines, each a filter byte of
// 0 followed by the interleaved RGB samples.
func compress(planes [3][]byte, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	line := make([]byte, 1+3*width)
	for y := range height {
		row := y * width
		for x := range width {
			for p := range planes {
				line[1+3*x+p] = planes[p][row+x]
			}
		}
		if _, err := zw.Write(line); err != nil {
			return nil, fmt.Errorf("image: compress: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("image: compress: %w", err)
	}
	return buf.Bytes(), nil
}
