// Package elements implements the interactive widgets of the toolkit:
// labels, buttons, toggle buttons and drop down menus.
//
// Every widget follows the same split. A handle is the public half:
// application code holds it for as long as it likes and mutates the widget
// through it. The element is the view-resident half: it reacts to pointer
// and focus events and emits render primitives. The two halves share a
// configuration cell; handle writes land in the cell and flag the element
// with a deferred notification, which the element drains at the start of
// its next event delivery. The element never exposes its transient state
// back through the handle.
package elements
