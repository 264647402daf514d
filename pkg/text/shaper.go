// Package text defines the measurement interface between elements and the
// text shaping engine. The engine itself is an external collaborator;
// elements only ever ask for the unclipped size of a string under given
// text properties.
package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
)

// Shaper measures text. Implementations must be deterministic: elements
// cache measured sizes and only re-measure on content or style changes.
type Shaper interface {
	// Measure returns the desired unclipped size of a single line of text.
	Measure(text string, props style.TextProperties) graphics.Size
}

// FaceShaper measures text using a font face from golang.org/x/image/font.
// The face is pre-sized; the FontSize property is ignored for widths and
// LineHeight still comes from the style (row layout depends on it being a
// per-style constant).
type FaceShaper struct {
	Face font.Face
}

// NewFaceShaper wraps a font face. A nil face falls back to the bundled
// fixed-size face.
func NewFaceShaper(face font.Face) *FaceShaper {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceShaper{Face: face}
}

func (s *FaceShaper) Measure(text string, props style.TextProperties) graphics.Size {
	width := math.Ceil(float64(font.MeasureString(s.Face, text)) / 64.0)
	return graphics.Size{Width: width, Height: props.LineHeight}
}

// FixedShaper measures every rune as a fixed advance. It exists for tests
// and headless layout, where deterministic widths matter more than glyph
// fidelity.
type FixedShaper struct {
	// Advance is the width of one rune. Zero means 8.
	Advance float64
}

func (s FixedShaper) Measure(text string, props style.TextProperties) graphics.Size {
	advance := s.Advance
	if advance == 0 {
		advance = 8
	}
	count := 0
	for range text {
		count++
	}
	return graphics.Size{Width: advance * float64(count), Height: props.LineHeight}
}
