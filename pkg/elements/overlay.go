package elements

import "github.com/murl-digital/Yarrow/pkg/graphics"

// ContainOverlayRect corrects an overlay's desired rectangle so it stays
// inside a viewport anchored at the origin.
//
// Width and height are clamped to the viewport first. Then each axis is
// repositioned: an origin at or before the viewport edge snaps to 0, and
// an overlay running past the far edge snaps flush against it. Origins
// already inside are kept.
//
// corrected reports whether the returned rectangle differs from desired;
// callers use it to skip redundant bounds updates. Applying the function
// to its own output always reports no correction.
func ContainOverlayRect(desired graphics.Rect, viewport graphics.Size) (rect graphics.Rect, corrected, widthClipped, heightClipped bool) {
	rect = desired
	if rect.Size.Width > viewport.Width {
		rect.Size.Width = viewport.Width
		widthClipped = true
	}
	if rect.Size.Height > viewport.Height {
		rect.Size.Height = viewport.Height
		heightClipped = true
	}

	if rect.Origin.X <= 0 {
		rect.Origin.X = 0
	} else if rect.Origin.X+rect.Size.Width > viewport.Width {
		rect.Origin.X = viewport.Width - rect.Size.Width
	}
	if rect.Origin.Y <= 0 {
		rect.Origin.Y = 0
	} else if rect.Origin.Y+rect.Size.Height > viewport.Height {
		rect.Origin.Y = viewport.Height - rect.Size.Height
	}

	corrected = rect != desired
	return rect, corrected, widthClipped, heightClipped
}
