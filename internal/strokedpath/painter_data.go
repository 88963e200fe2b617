package strokedpath

import "sync"

// PainterAttributeSet snapshots one point set's two partition views.
// The attribute-packing format a painter ultimately needs is out of
// scope for this package (see the root PURPOSE & SCOPE section); this
// is the minimal aggregation the generator itself owns before handing
// off to that layer.
type PainterAttributeSet struct {
	VerticesWithClosing    []Vertex
	IndicesWithClosing     []uint32
	VerticesWithoutClosing []Vertex
	IndicesWithoutClosing  []uint32
}

// PainterAttributeData is the lazily-built, cached aggregate of every
// point set's geometry, built on first access per the object's
// documented non-thread-safe-first-access contract: callers must
// serialize the first call to StrokedPath.PainterData, or call it once
// eagerly themselves before sharing the StrokedPath across goroutines.
type PainterAttributeData struct {
	Sets [numPointSets]PainterAttributeSet
}

// painterCache defers building PainterAttributeData to first access,
// avoiding the dependency-cycle risk building it eagerly at
// construction time would create with reference-counted path objects
// upstream (see Design Notes).
type painterCache struct {
	sp   *StrokedPath
	once sync.Once
	data *PainterAttributeData
}

func newPainterCache(sp *StrokedPath) *painterCache {
	return &painterCache{sp: sp}
}

func (c *painterCache) get() *PainterAttributeData {
	c.once.Do(func() {
		var d PainterAttributeData
		for i := 0; i < numPointSets; i++ {
			set := PointSet(i)
			d.Sets[i] = PainterAttributeSet{
				VerticesWithClosing:    c.sp.Points(set, true),
				IndicesWithClosing:     c.sp.Indices(set, true),
				VerticesWithoutClosing: c.sp.Points(set, false),
				IndicesWithoutClosing:  c.sp.Indices(set, false),
			}
		}
		c.data = &d
	})
	return c.data
}

// PainterData returns the lazily-built PainterAttributeData, building
// it on the first call. See painterCache's doc comment for the
// first-access contract.
func (sp *StrokedPath) PainterData() *PainterAttributeData {
	return sp.painter.get()
}
