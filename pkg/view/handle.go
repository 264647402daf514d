package view

import (
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
)

// ElementHandle is the public, freely-copied reference to an element.
// Widget handles embed it to reach the view; it carries no widget state of
// its own and never touches the element's transient render state.
type ElementHandle struct {
	view  *View
	entry *elementEntry
}

// NotifyCustomStateChange queues a CustomStateChanged delivery for the
// element. Multiple notifications before the next Update coalesce into the
// drains the element performs; an empty drain is a legal no-op.
func (h ElementHandle) NotifyCustomStateChange() {
	h.view.enqueue(h.entry, event.CustomStateChanged{})
}

// Rect returns the element's current bounding rectangle.
func (h ElementHandle) Rect() graphics.Rect {
	return h.entry.rect
}

// SetPos moves the element's bounding rectangle origin. Elements that
// listen for position changes receive a deferred PositionChanged event.
func (h ElementHandle) SetPos(pos graphics.Offset) {
	if h.entry.rect.Origin == pos {
		return
	}
	h.entry.rect = h.entry.rect.WithOrigin(pos)
	h.view.needsRepaint = true
	if h.entry.flags.Has(FlagListensToPositionChange) {
		h.view.enqueue(h.entry, event.PositionChanged{})
	}
}

// SetZIndex changes the element's paint order.
func (h ElementHandle) SetZIndex(z int) {
	if h.entry.zIndex == z {
		return
	}
	h.entry.zIndex = z
	h.view.needsRepaint = true
}

// SetHidden manually hides or shows the element. Hidden elements neither
// paint nor receive pointer events.
func (h ElementHandle) SetHidden(hidden bool) {
	if h.entry.hidden == hidden {
		return
	}
	h.entry.hidden = hidden
	h.view.needsRepaint = true
}

// Hidden reports whether the element is manually hidden.
func (h ElementHandle) Hidden() bool {
	return h.entry.hidden
}
