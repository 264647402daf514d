package graphics

import "sort"

// PrimitiveGroup is an ordered, z-indexed append target for primitives.
// Primitives added at the same z index keep their insertion order; Sorted
// interleaves z indices stably so backends can replay the list directly.
type PrimitiveGroup struct {
	z     int
	items []groupItem
}

type groupItem struct {
	z         int
	primitive Primitive
}

// SetZIndex sets the z index applied to subsequently added primitives.
func (g *PrimitiveGroup) SetZIndex(z int) {
	g.z = z
}

// ZIndex returns the z index currently in effect.
func (g *PrimitiveGroup) ZIndex() int {
	return g.z
}

// Add appends a single primitive at the current z index.
func (g *PrimitiveGroup) Add(p Primitive) {
	g.items = append(g.items, groupItem{z: g.z, primitive: p})
}

// AddSolidQuadBatch appends a batch of quads at the current z index.
// Batching same-kind primitives lets the backend draw them in one pass.
func (g *PrimitiveGroup) AddSolidQuadBatch(quads []SolidQuadPrimitive) {
	for _, q := range quads {
		g.Add(q)
	}
}

// AddTextBatch appends a batch of text runs at the current z index.
func (g *PrimitiveGroup) AddTextBatch(texts []TextPrimitive) {
	for _, t := range texts {
		g.Add(t)
	}
}

// Len returns the number of recorded primitives.
func (g *PrimitiveGroup) Len() int {
	return len(g.items)
}

// Reset clears the group for reuse and restores z index 0.
func (g *PrimitiveGroup) Reset() {
	g.items = g.items[:0]
	g.z = 0
}

// Sorted returns the primitives in paint order: ascending z index,
// insertion order within the same index.
func (g *PrimitiveGroup) Sorted() []Primitive {
	sorted := make([]groupItem, len(g.items))
	copy(sorted, g.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].z < sorted[j].z
	})
	out := make([]Primitive, len(sorted))
	for i, item := range sorted {
		out[i] = item.primitive
	}
	return out
}
