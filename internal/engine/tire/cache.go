package tire

import (
	"go.uber.org/zap"

	"github.com/Faultbox/stance/internal/catalog"
	"github.com/Faultbox/stance/internal/engine/geometry"
)

// Axle selects a cache slot.
type Axle int

const (
	Front Axle = iota
	Rear
)

// String returns the axle name.
func (a Axle) String() string {
	if a == Front {
		return "front"
	}
	return "rear"
}

// ProfileKey identifies a deformed tire. Any field change forces a rebuild.
type ProfileKey struct {
	TireID       string
	RimDiameter  float64 // inches
	TireDiameter float64 // inches
	WidthMM      float64
}

type slot struct {
	key     ProfileKey
	profile *geometry.Buffer
}

// ProfileCache memoizes one deformed tire per axle. A slot is replaced when
// its key changes; there is no other eviction. Not safe for concurrent use.
type ProfileCache struct {
	slots  [2]slot
	log    *zap.Logger
	hits   int
	misses int
}

// NewProfileCache creates an empty cache. log may be nil.
func NewProfileCache(log *zap.Logger) *ProfileCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileCache{log: log}
}

// Profile returns the deformed tire for axle, rebuilding it from base when
// key differs from the cached one. The returned buffer must be treated as
// read-only; it is replaced, not mutated, on the next rebuild.
func (c *ProfileCache) Profile(axle Axle, key ProfileKey, base *geometry.Buffer, entry catalog.WheelEntry) *geometry.Buffer {
	s := &c.slots[axle]
	if s.profile != nil && s.key == key {
		c.hits++
		return s.profile
	}

	c.misses++
	s.key = key
	s.profile = Deform(base, entry, key.RimDiameter, key.TireDiameter, key.WidthMM)

	c.log.Debug("tire profile rebuilt",
		zap.Stringer("axle", axle),
		zap.String("tire", key.TireID),
		zap.Float64("rim_in", key.RimDiameter),
		zap.Float64("tire_in", key.TireDiameter),
		zap.Float64("width_mm", key.WidthMM),
		zap.Int("vertices", s.profile.Count()),
	)
	return s.profile
}

// Invalidate drops both slots.
func (c *ProfileCache) Invalidate() {
	c.slots = [2]slot{}
}

// Stats returns cache statistics.
func (c *ProfileCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
