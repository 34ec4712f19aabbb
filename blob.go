package lumen

// Blob simulation constants. Distances are surface-local CSS pixels and rates
// are per frame.
const (
	blobDamping     = 0.98
	blobMaxRadius   = 160.0
	blobJitter      = 12.0 // spread of the spawn position around the pointer
	blobTrailScale  = 0.15 // pointer delta → initial velocity
	blobVelJitter   = 0.6
	alphaSpentBelow = 1e-9
)

var (
	blobRadius = Range{Min: 16, Max: 36}
	blobAlpha  = Range{Min: 0.7, Max: 0.9}
	blobGrowth = Range{Min: 0.4, Max: 0.8}
	blobDecay  = Range{Min: 0.018, Max: 0.030}
)

// Blob is one glow particle. Dead blobs keep their slot and are inert until
// the ring buffer overwrites them.
type Blob struct {
	X, Y       float64
	Radius     float64
	Alpha      float64
	VX, VY     float64
	GrowthRate float64
	DecayRate  float64
	Alive      bool
}

// step advances a live blob by one frame and reports whether it survived.
func (b *Blob) step() bool {
	if !b.Alive {
		return false
	}
	b.X += b.VX
	b.Y += b.VY
	b.Radius += b.GrowthRate
	b.Alpha -= b.DecayRate
	b.VX *= blobDamping
	b.VY *= blobDamping
	if b.Alpha <= alphaSpentBelow || b.Radius > blobMaxRadius {
		b.Alive = false
	}
	return b.Alive
}

// Bounds returns the square the blob's sprite covers.
func (b *Blob) Bounds() Rect {
	d := b.Radius * 2
	return Rect{X: b.X - b.Radius, Y: b.Y - b.Radius, Width: d, Height: d}
}
