package theme

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
)

// ParseColor parses a "#RRGGBB" or "#RRGGBBAA" hex color.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing leading #", s)
	}
	var alpha uint8 = 0xff
	switch len(hex) {
	case 6:
	case 8:
		v, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		alpha = uint8(v)
		hex = hex[:6]
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits, got %d", s, len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return graphics.RGBA8(uint8(v>>16), uint8(v>>8), uint8(v), alpha), nil
}

// colorSpec decodes a YAML scalar hex color.
type colorSpec struct {
	value graphics.Color
}

func (c *colorSpec) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.value = parsed
	return nil
}

// paddingSpec decodes a YAML [top, right, bottom, left] sequence or a
// single uniform value.
type paddingSpec struct {
	value style.Padding
}

func (p *paddingSpec) UnmarshalYAML(node *yaml.Node) error {
	var uniform float64
	if err := node.Decode(&uniform); err == nil {
		p.value = style.UniformPadding(uniform)
		return nil
	}
	var sides []float64
	if err := node.Decode(&sides); err != nil {
		return err
	}
	if len(sides) != 4 {
		return fmt.Errorf("padding: want 4 values [top, right, bottom, left], got %d", len(sides))
	}
	p.value = style.NewPadding(sides[0], sides[1], sides[2], sides[3])
	return nil
}

func (s *textSpec) apply(dst *style.TextProperties) {
	if s.FontSize != nil {
		dst.FontSize = *s.FontSize
	}
	if s.LineHeight != nil {
		dst.LineHeight = *s.LineHeight
	}
	if s.Align != nil {
		switch *s.Align {
		case "center":
			dst.Align = style.AlignCenter
		case "end":
			dst.Align = style.AlignEnd
		default:
			dst.Align = style.AlignStart
		}
	}
}

func (q *quadSpec) apply(dst *style.QuadStyle) {
	if q.Color != nil {
		dst.Bg = style.SolidBackground(q.Color.value)
	}
	if q.BorderColor != nil {
		dst.Border.Color = q.BorderColor.value
	}
	if q.BorderWidth != nil {
		dst.Border.Width = *q.BorderWidth
	}
	if q.BorderRadius != nil {
		dst.Border.Radius = *q.BorderRadius
	}
}
