package strokedpath

// PartitionedPoints is a single contiguous vertex array shared by the
// "with closing edge" and "without closing edge" views of one point
// set. Closing-edge vertices occupy the tail; the without-closing view
// is the prefix. This supports dash-aware and dash-free stroking from
// one allocation at zero copy cost.
type PartitionedPoints struct {
	all        []Vertex
	withoutLen int
}

// WithClosing returns every vertex, closing-edge geometry included.
func (p PartitionedPoints) WithClosing() []Vertex { return p.all }

// WithoutClosing returns the prefix that excludes closing-edge geometry.
func (p PartitionedPoints) WithoutClosing() []Vertex { return p.all[:p.withoutLen] }

// Len returns the length of the requested view.
func (p PartitionedPoints) Len(includingClosing bool) int {
	if includingClosing {
		return len(p.all)
	}
	return p.withoutLen
}

// View returns the requested view; includingClosing follows the
// true=1/false=0 convention used throughout this package's public API.
func (p PartitionedPoints) View(includingClosing bool) []Vertex {
	if includingClosing {
		return p.WithClosing()
	}
	return p.WithoutClosing()
}

// PartitionedIndices is the index-array counterpart of
// PartitionedPoints: closing-edge indices occupy the head, so the
// without-closing view is the suffix.
type PartitionedIndices struct {
	all        []uint32
	withoutLen int
}

func (p PartitionedIndices) WithClosing() []uint32 { return p.all }

func (p PartitionedIndices) WithoutClosing() []uint32 {
	return p.all[len(p.all)-p.withoutLen:]
}

func (p PartitionedIndices) Len(includingClosing bool) int {
	if includingClosing {
		return len(p.all)
	}
	return p.withoutLen
}

func (p PartitionedIndices) View(includingClosing bool) []uint32 {
	if includingClosing {
		return p.WithClosing()
	}
	return p.WithoutClosing()
}

// JoinLocation records where one (contour, join, kind) triple's
// vertices and indices live within a point set's combined ("with
// closing") views, so a caller can include or exclude a single join
// (needed by dash-aware stroking).
type JoinLocation struct {
	AttribBegin, AttribEnd int
	IndexBegin, IndexEnd   int
}

func (j JoinLocation) AttribRange() (int, int) { return j.AttribBegin, j.AttribEnd }
func (j JoinLocation) IndexRange() (int, int)  { return j.IndexBegin, j.IndexEnd }

// joinKey indexes the per-point-set JoinLocation table.
type joinKey struct {
	Contour, Join int
}

// partitionBuilder accumulates a point set's vertices/indices across a
// non-closing pass followed by a closing pass, then assembles the
// final PartitionedPoints/PartitionedIndices per the tail/head
// convention described above.
type partitionBuilder struct {
	nonClosingVerts []Vertex
	nonClosingIdx   []uint32
	closingVerts    []Vertex
	closingIdx      []uint32

	depth           uint32
	preCloseDepth   uint32
	inClosingPhase  bool
}

// nextDepthGroup returns the raw, pre-inversion depth value for the
// next primitive group and advances the counter. One counter runs
// across both the non-closing and closing passes, matching the source's
// single running depth counter.
func (b *partitionBuilder) nextDepthGroup() uint32 {
	d := b.depth
	b.depth++
	return d
}

// beginClosingPhase must be called exactly once, after every
// non-closing primitive group has been emitted and before the first
// closing one.
func (b *partitionBuilder) beginClosingPhase() {
	b.preCloseDepth = b.depth
	b.inClosingPhase = true
}

func (b *partitionBuilder) appendVertices(verts []Vertex) (base uint32) {
	if b.inClosingPhase {
		base = uint32(len(b.closingVerts))
		b.closingVerts = append(b.closingVerts, verts...)
	} else {
		base = uint32(len(b.nonClosingVerts))
		b.nonClosingVerts = append(b.nonClosingVerts, verts...)
	}
	return base
}

func (b *partitionBuilder) appendIndices(idx []uint32) {
	if b.inClosingPhase {
		b.closingIdx = append(b.closingIdx, idx...)
	} else {
		b.nonClosingIdx = append(b.nonClosingIdx, idx...)
	}
}

// finish inverts depths per the two-pass depth-ordering discipline and
// assembles the partitioned vertex/index arrays. Non-closing depths
// invert to a bijection onto [0, preCloseDepth) so the without-closing
// view is self-contained; closing depths invert onto the range sitting
// directly above that, [preCloseDepth, total), so the combined
// with-closing view is a single bijection onto [0, total) with every
// closing vertex strictly deeper than every non-closing one.
func (b *partitionBuilder) finish() (PartitionedPoints, PartitionedIndices, uint32, uint32) {
	total := b.depth
	if !b.inClosingPhase {
		// No closing primitives were ever emitted; preCloseDepth never
		// got set, so treat the whole pass as non-closing.
		b.preCloseDepth = total
	}
	closeCount := total - b.preCloseDepth

	for i := range b.nonClosingVerts {
		v := &b.nonClosingVerts[i]
		v.Depth = b.preCloseDepth - v.Depth - 1
	}
	for i := range b.closingVerts {
		v := &b.closingVerts[i]
		local := v.Depth - b.preCloseDepth
		v.Depth = b.preCloseDepth + (closeCount - local - 1)
	}

	nonClosingVertCount := uint32(len(b.nonClosingVerts))
	allVerts := make([]Vertex, 0, len(b.nonClosingVerts)+len(b.closingVerts))
	allVerts = append(allVerts, b.nonClosingVerts...)
	allVerts = append(allVerts, b.closingVerts...)

	allIdx := make([]uint32, 0, len(b.nonClosingIdx)+len(b.closingIdx))
	for _, ix := range b.closingIdx {
		allIdx = append(allIdx, ix+nonClosingVertCount)
	}
	allIdx = append(allIdx, b.nonClosingIdx...)

	points := PartitionedPoints{all: allVerts, withoutLen: len(b.nonClosingVerts)}
	indices := PartitionedIndices{all: allIdx, withoutLen: len(b.nonClosingIdx)}
	return points, indices, b.preCloseDepth, total
}
