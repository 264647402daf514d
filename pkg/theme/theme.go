// Package theme bundles the widget styles of one application look and
// loads style overrides from YAML theme files. A theme starts from the
// stock defaults; a file only needs to name the fields it changes.
package theme

import (
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/murl-digital/Yarrow/pkg/elements"
	"github.com/murl-digital/Yarrow/pkg/errors"
)

// Theme is one complete set of widget styles. The style pointers are
// published as immutable: restyling a live widget hands it a pointer from
// a new Theme, never mutates one in place.
type Theme struct {
	Label        *elements.LabelStyle
	Button       *elements.ButtonStyle
	ToggleButton *elements.ToggleButtonStyle
	DropDownMenu *elements.DropDownMenuStyle
}

// Default returns the stock theme.
func Default() *Theme {
	return &Theme{
		Label:        elements.DefaultLabelStyle(),
		Button:       elements.DefaultButtonStyle(),
		ToggleButton: elements.DefaultToggleButtonStyle(),
		DropDownMenu: elements.DefaultDropDownMenuStyle(),
	}
}

// Load reads a YAML theme document and applies it on top of the defaults.
func Load(r io.Reader) (*Theme, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, themeError("theme.Load", err)
	}
	return Parse(raw)
}

// LoadFile reads a YAML theme file and applies it on top of the defaults.
func LoadFile(path string) (*Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, themeError("theme.LoadFile", err)
	}
	return Parse(raw)
}

// Parse applies a YAML theme document on top of the defaults.
func Parse(raw []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, themeError("theme.Parse", err)
	}
	t := Default()
	file.apply(t)
	return t, nil
}

func themeError(op string, err error) error {
	return &errors.CoreError{
		Op:        op,
		Kind:      errors.KindTheme,
		Err:       err,
		Timestamp: time.Now(),
	}
}

type themeFile struct {
	Label        *labelSpec  `yaml:"label"`
	Button       *buttonSpec `yaml:"button"`
	ToggleButton *toggleSpec `yaml:"toggle-button"`
	DropDownMenu *menuSpec   `yaml:"drop-down-menu"`
}

func (f *themeFile) apply(t *Theme) {
	if f.Label != nil {
		f.Label.apply(t.Label)
	}
	if f.Button != nil {
		f.Button.apply(t.Button)
	}
	if f.ToggleButton != nil {
		f.ToggleButton.apply(t.ToggleButton)
	}
	if f.DropDownMenu != nil {
		f.DropDownMenu.apply(t.DropDownMenu)
	}
}

type labelSpec struct {
	Text      *textSpec    `yaml:"text"`
	Padding   *paddingSpec `yaml:"padding"`
	FontColor *colorSpec   `yaml:"font-color"`
	Quad      *quadSpec    `yaml:"background"`
}

func (s *labelSpec) apply(dst *elements.LabelStyle) {
	if s.Text != nil {
		s.Text.apply(&dst.Properties)
	}
	if s.Padding != nil {
		dst.Padding = s.Padding.value
	}
	if s.FontColor != nil {
		dst.FontColor = s.FontColor.value
	}
	if s.Quad != nil {
		s.Quad.apply(&dst.BackQuad)
	}
}

type buttonSpec struct {
	Text     *textSpec    `yaml:"text"`
	Padding  *paddingSpec `yaml:"padding"`
	Idle     *partSpec    `yaml:"idle"`
	Hovered  *partSpec    `yaml:"hovered"`
	Down     *partSpec    `yaml:"down"`
	Disabled *partSpec    `yaml:"disabled"`
}

func (s *buttonSpec) apply(dst *elements.ButtonStyle) {
	if s.Text != nil {
		s.Text.apply(&dst.Properties)
	}
	if s.Padding != nil {
		dst.Padding = s.Padding.value
	}
	applyPart(s.Idle, &dst.Idle)
	applyPart(s.Hovered, &dst.Hovered)
	applyPart(s.Down, &dst.Down)
	applyPart(s.Disabled, &dst.Disabled)
}

type toggleSpec struct {
	Text    *textSpec    `yaml:"text"`
	Padding *paddingSpec `yaml:"padding"`

	IdleOn     *partSpec `yaml:"idle-on"`
	HoveredOn  *partSpec `yaml:"hovered-on"`
	DisabledOn *partSpec `yaml:"disabled-on"`

	IdleOff     *partSpec `yaml:"idle-off"`
	HoveredOff  *partSpec `yaml:"hovered-off"`
	DisabledOff *partSpec `yaml:"disabled-off"`
}

func (s *toggleSpec) apply(dst *elements.ToggleButtonStyle) {
	if s.Text != nil {
		s.Text.apply(&dst.Properties)
	}
	if s.Padding != nil {
		dst.Padding = s.Padding.value
	}
	applyPart(s.IdleOn, &dst.IdleOn)
	applyPart(s.HoveredOn, &dst.HoveredOn)
	applyPart(s.DisabledOn, &dst.DisabledOn)
	applyPart(s.IdleOff, &dst.IdleOff)
	applyPart(s.HoveredOff, &dst.HoveredOff)
	applyPart(s.DisabledOff, &dst.DisabledOff)
}

type menuPartSpec struct {
	LeftFontColor  *colorSpec `yaml:"left-font-color"`
	RightFontColor *colorSpec `yaml:"right-font-color"`
	Quad           *quadSpec  `yaml:"background"`
}

func (s *menuPartSpec) apply(dst *elements.DropDownMenuStylePart) {
	if s.LeftFontColor != nil {
		dst.LeftFontColor = s.LeftFontColor.value
	}
	if s.RightFontColor != nil {
		dst.RightFontColor = s.RightFontColor.value
	}
	if s.Quad != nil {
		s.Quad.apply(&dst.BackQuad)
	}
}

type menuSpec struct {
	LeftText  *textSpec `yaml:"left-text"`
	RightText *textSpec `yaml:"right-text"`

	Idle    *menuPartSpec `yaml:"idle"`
	Hovered *menuPartSpec `yaml:"hovered"`

	OuterPadding *float64     `yaml:"outer-padding"`
	LeftPadding  *paddingSpec `yaml:"left-padding"`
	RightPadding *paddingSpec `yaml:"right-padding"`

	DividerColor   *colorSpec `yaml:"divider-color"`
	DividerWidth   *float64   `yaml:"divider-width"`
	DividerPadding *float64   `yaml:"divider-padding"`

	Quad *quadSpec `yaml:"background"`
}

func (s *menuSpec) apply(dst *elements.DropDownMenuStyle) {
	if s.LeftText != nil {
		s.LeftText.apply(&dst.LeftProperties)
	}
	if s.RightText != nil {
		s.RightText.apply(&dst.RightProperties)
	}
	if s.Idle != nil {
		s.Idle.apply(&dst.Idle)
	}
	if s.Hovered != nil {
		s.Hovered.apply(&dst.Hovered)
	}
	if s.OuterPadding != nil {
		dst.OuterPadding = *s.OuterPadding
	}
	if s.LeftPadding != nil {
		dst.LeftPadding = s.LeftPadding.value
	}
	if s.RightPadding != nil {
		dst.RightPadding = s.RightPadding.value
	}
	if s.DividerColor != nil {
		dst.DividerColor = s.DividerColor.value
	}
	if s.DividerWidth != nil {
		dst.DividerWidth = *s.DividerWidth
	}
	if s.DividerPadding != nil {
		dst.DividerPadding = *s.DividerPadding
	}
	if s.Quad != nil {
		s.Quad.apply(&dst.BackQuad)
	}
}

type partSpec struct {
	FontColor *colorSpec `yaml:"font-color"`
	Quad      *quadSpec  `yaml:"background"`
}

func applyPart(src *partSpec, dst *elements.ButtonStylePart) {
	if src == nil {
		return
	}
	if src.FontColor != nil {
		dst.FontColor = src.FontColor.value
	}
	if src.Quad != nil {
		src.Quad.apply(&dst.BackQuad)
	}
}

type textSpec struct {
	FontSize   *float64 `yaml:"font-size"`
	LineHeight *float64 `yaml:"line-height"`
	Align      *string  `yaml:"align"`
}

type quadSpec struct {
	Color        *colorSpec `yaml:"color"`
	BorderColor  *colorSpec `yaml:"border-color"`
	BorderWidth  *float64   `yaml:"border-width"`
	BorderRadius *float64   `yaml:"border-radius"`
}
