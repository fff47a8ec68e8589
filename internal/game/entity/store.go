package entity

import (
	"image/color"
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/engine/camera"
	"github.com/Faultbox/heartfield/internal/engine/physics"
	"github.com/Faultbox/heartfield/internal/engine/picking"
	"github.com/Faultbox/heartfield/internal/logger"
	"github.com/Faultbox/heartfield/pkg/math"
)

// Spawn volume and separation for hearts.
const (
	spawnRange       = 600.0
	minSeparation    = 250.0
	maxSpawnAttempts = 100
	starVolume       = 2000.0
	burstSpeed       = 12.0
)

// StoreConfig configures a particle store.
type StoreConfig struct {
	StarCount int
	Seed      uint64 // 0 picks a time based seed
}

// PopResult describes a heart that was just popped.
type PopResult struct {
	Index     int
	Message   string
	Pos       math.Vec3
	Screen    math.Vec2
	Color     color.RGBA
	Remaining int
}

// ProjectedHeart pairs a heart with its projection for the current frame.
type ProjectedHeart struct {
	Heart *Heart
	camera.Projection
}

// Store owns every particle in the scene. It is the only place a heart's
// popped flag is set.
type Store struct {
	hearts []*Heart
	stars  []Star
	bursts []*Burst

	// Hearts whose spawn ran out of attempts and were placed regardless of
	// separation, for the current generation.
	fallbacks []int

	starCount  int
	rng        *rand.Rand
	seed       uint64
	generation int
}

// NewStore creates an empty store. Call Initialize before use.
func NewStore(cfg StoreConfig) *Store {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	starCount := cfg.StarCount
	if starCount <= 0 {
		starCount = DefaultStarCount
	}
	return &Store{
		starCount: starCount,
		seed:      seed,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Initialize replaces every particle with a fresh scene generation.
func (s *Store) Initialize() {
	s.generation++
	s.spawnHearts()
	s.spawnStars()
	s.bursts = s.bursts[:0]

	logger.Debug("scene generated",
		zap.Int("generation", s.generation),
		zap.Uint64("seed", s.seed),
		zap.Int("hearts", len(s.hearts)),
		zap.Int("stars", len(s.stars)),
		zap.Ints("spawnFallbacks", s.fallbacks),
	)
}

func (s *Store) spawnHearts() {
	s.hearts = make([]*Heart, 0, HeartCount)
	s.fallbacks = s.fallbacks[:0]

	for i := 0; i < HeartCount; i++ {
		var pos math.Vec3
		colliding := true
		for attempt := 0; colliding && attempt < maxSpawnAttempts; attempt++ {
			pos = math.Vec3{
				X: (s.rng.Float64() - 0.5) * spawnRange * 1.5,
				Y: (s.rng.Float64() - 0.5) * spawnRange * 1.2,
				Z: (s.rng.Float64() - 0.5) * spawnRange * 1.5,
			}
			colliding = s.collides(pos)
		}
		// Out of attempts: keep the last candidate so initialization
		// always completes.
		if colliding {
			s.fallbacks = append(s.fallbacks, i)
		}

		s.hearts = append(s.hearts, &Heart{
			Body:    physics.Body{Pos: pos},
			Index:   i,
			Size:    38 + s.rng.Float64()*8,
			Color:   Palette[i%len(Palette)],
			Opacity: 1.0,
			Message: Messages[i],
		})
	}
}

func (s *Store) collides(pos math.Vec3) bool {
	for _, h := range s.hearts {
		if h.Pos.Distance(pos) < minSeparation {
			return true
		}
	}
	return false
}

func (s *Store) spawnStars() {
	s.stars = make([]Star, s.starCount)
	for i := range s.stars {
		s.stars[i] = Star{
			Pos: math.Vec3{
				X: (s.rng.Float64() - 0.5) * starVolume,
				Y: (s.rng.Float64() - 0.5) * starVolume,
				Z: (s.rng.Float64() - 0.5) * starVolume,
			},
			Size:    s.rng.Float64()*1.5 + 0.5,
			Opacity: s.rng.Float64()*0.8 + 0.2,
		}
	}
}

// Generation counts Initialize calls.
func (s *Store) Generation() int {
	return s.generation
}

// Hearts returns all hearts of the current generation in index order.
func (s *Store) Hearts() []*Heart {
	return s.hearts
}

// Stars returns the background stars.
func (s *Store) Stars() []Star {
	return s.stars
}

// Bursts returns the live burst sparks.
func (s *Store) Bursts() []*Burst {
	return s.bursts
}

// SpawnFallbacks returns the indices of hearts placed without full
// separation in the current generation.
func (s *Store) SpawnFallbacks() []int {
	return s.fallbacks
}

// Counters derives the remaining count and the completion flag.
func (s *Store) Counters() Counters {
	remaining := 0
	for _, h := range s.hearts {
		if !h.Popped {
			remaining++
		}
	}
	return Counters{Remaining: remaining, AllPopped: remaining == 0}
}

// NextUnpopped returns the lowest-index heart that is still unpopped.
func (s *Store) NextUnpopped() (*Heart, bool) {
	for _, h := range s.hearts {
		if !h.Popped {
			return h, true
		}
	}
	return nil, false
}

// targets projects the unpopped hearts that are in front of the eye.
func (s *Store) targets(view camera.View) []picking.Target {
	out := make([]picking.Target, 0, len(s.hearts))
	for _, h := range s.hearts {
		if h.Popped {
			continue
		}
		p := view.Project(h.Pos)
		if !p.Visible() {
			continue
		}
		out = append(out, picking.Target{ID: h.Index, Screen: p.Screen})
	}
	return out
}

func (s *Store) applyImpulses(imps []picking.Impulse) {
	for _, imp := range imps {
		s.hearts[imp.ID].Push(imp.Delta)
	}
}

// ApplyRepulsion pushes every unpopped heart near the pointer away from it.
// It returns the number of hearts pushed.
func (s *Store) ApplyRepulsion(pointer math.Vec2, view camera.View) int {
	res := picking.Resolve(pointer, s.targets(view))
	s.applyImpulses(res.Impulses)
	return len(res.Impulses)
}

// PopClosestWithinHitbox pops the unpopped heart nearest to the pointer
// inside the hitbox and spawns its burst. Popped hearts are never candidates.
func (s *Store) PopClosestWithinHitbox(pointer math.Vec2, view camera.View) (PopResult, bool) {
	res := picking.Resolve(pointer, s.targets(view))
	if !res.HitFound {
		return PopResult{}, false
	}
	return s.pop(s.hearts[res.Hit.ID], res.Hit.Screen), true
}

// Interact handles one pointer sample: repulsion always, and a pop when
// click is set. Repulsion only changes velocities, so the pop sees the
// same projections.
func (s *Store) Interact(pointer math.Vec2, view camera.View, click bool) (PopResult, bool) {
	s.ApplyRepulsion(pointer, view)
	if !click {
		return PopResult{}, false
	}
	return s.PopClosestWithinHitbox(pointer, view)
}

func (s *Store) pop(h *Heart, screen math.Vec2) PopResult {
	s.SpawnBurst(h.Pos, h.Color)
	h.Popped = true

	c := s.Counters()
	logger.Info("heart popped",
		zap.Int("index", h.Index),
		zap.String("message", h.Message),
		zap.Int("remaining", c.Remaining),
	)

	return PopResult{
		Index:     h.Index,
		Message:   h.Message,
		Pos:       h.Pos,
		Screen:    screen,
		Color:     h.Color,
		Remaining: c.Remaining,
	}
}

// SpawnBurst adds BurstSize sparks at pos with random isotropic velocity.
func (s *Store) SpawnBurst(pos math.Vec3, c color.RGBA) {
	for i := 0; i < BurstSize; i++ {
		s.bursts = append(s.bursts, &Burst{
			Body: physics.Body{
				Pos: pos,
				Vel: math.Vec3{
					X: (s.rng.Float64() - 0.5) * burstSpeed,
					Y: (s.rng.Float64() - 0.5) * burstSpeed,
					Z: (s.rng.Float64() - 0.5) * burstSpeed,
				},
			},
			Size:  s.rng.Float64()*3 + 1,
			Color: c,
			Life:  1.0,
		})
	}
}

// StepBursts drops dead sparks, then advances the survivors one frame. A
// spark that dies during this step is still returned with Life exactly 0,
// so it draws with zero alpha, and is removed on the next call.
func (s *Store) StepBursts() []*Burst {
	s.bursts = physics.Sweep(s.bursts, func(b *Burst) bool { return b.Life > 0 })
	for _, b := range s.bursts {
		b.Integrate()
		if !physics.Decay(&b.Life) {
			b.Life = 0
		}
	}
	return s.bursts
}

// StepHearts advances every unpopped heart one frame.
func (s *Store) StepHearts() {
	bodies := make([]*physics.Body, 0, len(s.hearts))
	for _, h := range s.hearts {
		if !h.Popped {
			bodies = append(bodies, &h.Body)
		}
	}
	physics.StepDamped(bodies, physics.HeartDamping)
}

// DepthSorted projects the unpopped hearts and orders them farthest first.
func (s *Store) DepthSorted(view camera.View) []ProjectedHeart {
	out := make([]ProjectedHeart, 0, len(s.hearts))
	for _, h := range s.hearts {
		if h.Popped {
			continue
		}
		out = append(out, ProjectedHeart{Heart: h, Projection: view.Project(h.Pos)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}
