// Package scalecard draws scale cards for analog meter movements.
//
// # Overview
//
// A card is described by a small text language of commands, each a word
// followed by numbers or backtick strings:
//
//	card-size 6cm 4cm
//	resolution 600dpi
//	pivot 50% 90%
//	span 90
//	arc 30 # the scale line
//	mark 30 33 0 10 20 30 40 50 60 70 80 90 100
//	label 26 `0` 0 `5` 50 `10` 100
//
// Render runs a design and returns the finished Card, which can be encoded
// as PNG or saved to a file:
//
//	card, err := scalecard.Render(ctx, src)
//	if err != nil {
//	    fmt.Println(scalecard.Highlight(src, err))
//	    return err
//	}
//	err = card.Save("card.png")
//
// # Architecture
//
// The work is split between sub-packages:
//   - script: lexer and parser producing commands
//   - unit: lengths and resolutions in physical units
//   - interp: drawing state and command execution
//   - canvas: pixel planes, soft-edged stroking, text and scale geometry
//   - glyph: the stroke fonts used for text
//
// # Coordinate System
//
// Lengths are millimetres unless a unit follows the number:
//   - Origin (0,0) at the top-left corner of the card
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is straight up, increasing clockwise
//
// The image also carries a one inch bleed around the card with crop marks
// and a credit line.
package scalecard

// Version information
const (
	// Version is the current version of the library
	Version = "0.9.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 9

	// VersionPatch is the patch version
	VersionPatch = 0
)
