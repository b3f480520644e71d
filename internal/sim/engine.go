// Package sim is the game simulation of Crash Course: a car dodges falling
// bricks while the score drives an escalating difficulty tier.
//
// The package knows nothing about rendering, input devices or physics
// detection. A host drives it with timestamps, sampled input flags and
// overlap reports, and gets back spawn/expiry events and steering intents.
// All calls must come from a single goroutine.
package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// EventKind identifies what an Event reports.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventExpired
	EventTierChanged
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventExpired:
		return "expired"
	case EventTierChanged:
		return "tier_changed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something the host has to react to.
type Event struct {
	Kind  EventKind
	At    time.Duration
	Brick Brick // Spawned and Expired
	Tier  Tier  // TierChanged
}

// Stats is a snapshot of a run.
type Stats struct {
	Score      int
	Lives      int
	State      State
	Tier       Tier
	Active     int
	Spawned    int
	Collisions int
	PeakScore  int
	PeakTier   Tier
	StartedAt  time.Duration
	EndedAt    time.Duration // Zero until the game is over
}

// Engine wires the session, difficulty, bricks, car and collisions together
// behind the interface a host calls.
type Engine struct {
	params     Params
	session    *Session
	bricks     *BrickManager
	car        *CarController
	collisions *CollisionResolver
	logger     *log.Logger

	lastTier  Tier
	peakScore int
	peakTier  Tier
	startedAt time.Duration
	endedAt   time.Duration
	events    []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for tier changes and game over.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine and arms the spawn cadence at time zero.
// params must already be valid; see Params.Validate.
func NewEngine(params Params, rng Rand, opts ...Option) *Engine {
	session := NewSession(params.Session)
	bricks := NewBrickManager(params, session, rng)
	e := &Engine{
		params:     params,
		session:    session,
		bricks:     bricks,
		car:        NewCarController(params, session),
		collisions: NewCollisionResolver(params, session, bricks),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	bricks.onEvent = e.record
	e.bricks.Start(0)
	return e
}

// Params returns the engine's tunables.
func (e *Engine) Params() Params {
	return e.params
}

// Session returns the session for reading. Hosts must not hold on to it
// across Reset.
func (e *Engine) Session() *Session {
	return e.session
}

// Tier derives the current tier from the score.
func (e *Engine) Tier() Tier {
	return e.params.Difficulty.TierFor(e.session.Score())
}

// Now returns the engine's clock.
func (e *Engine) Now() time.Duration {
	return e.bricks.Now()
}

// Advance moves the clock to now, firing the spawn cadence and brick expiry
// timers. It returns every event produced since the previous Advance.
func (e *Engine) Advance(now time.Duration) []Event {
	e.bricks.Advance(now)
	events := e.events
	e.events = nil
	return events
}

// OnTick resolves input into a steering intent for now.
func (e *Engine) OnTick(in InputFlags, now time.Duration) CarIntent {
	intent := e.car.Tick(in, now)
	e.observe(now)
	return intent
}

// OnOverlap reports a car/brick overlap. The outcome's GameOver is true only
// for the collision that ended the game, so the host shows its end screen once.
func (e *Engine) OnOverlap(id BrickID, now time.Duration) CollisionOutcome {
	out := e.collisions.Resolve(id, now)
	if !out.Applied {
		return out
	}
	e.logger.Debug("collision",
		"brick", out.Brick.ID,
		"score", e.session.Score(),
		"lives", e.session.Lives(),
	)
	if out.GameOver {
		e.endedAt = now
		e.events = append(e.events, Event{Kind: EventGameOver, At: now})
		e.logger.Info("game over", "score", e.session.Score(), "peak", e.peakScore)
	}
	e.observe(now)
	return out
}

// OnSpawnCadence spawns one brick at now for hosts that run their own
// cadence timer. Expiry is then the host's job via OnExpire.
func (e *Engine) OnSpawnCadence(now time.Duration) (Brick, bool) {
	b, ok := e.bricks.Spawn(now)
	if ok {
		e.observe(now)
	}
	return b, ok
}

// OnExpire removes a brick whose travel time elapsed. It reports whether the
// host should remove the brick's visual.
func (e *Engine) OnExpire(id BrickID) bool {
	return e.bricks.Expire(id)
}

// Bricks returns the active bricks in spawn order.
func (e *Engine) Bricks() []Brick {
	return e.bricks.Active()
}

// Leaning reports whether the car has a lean animation in flight at now.
func (e *Engine) Leaning(now time.Duration) bool {
	return e.car.Leaning(now)
}

// Stats returns a snapshot of the run.
func (e *Engine) Stats() Stats {
	return Stats{
		Score:      e.session.Score(),
		Lives:      e.session.Lives(),
		State:      e.session.State(),
		Tier:       e.Tier(),
		Active:     e.bricks.Len(),
		Spawned:    e.bricks.Spawned(),
		Collisions: e.collisions.Collisions(),
		PeakScore:  e.peakScore,
		PeakTier:   e.peakTier,
		StartedAt:  e.startedAt,
		EndedAt:    e.endedAt,
	}
}

// Reset starts a fresh session at the current clock: score 0, full lives,
// no bricks and a newly armed spawn cadence.
func (e *Engine) Reset() {
	now := e.bricks.Now()
	e.session.Reset()
	e.bricks.Reset(now)
	e.car.Reset()
	e.collisions.Reset()
	e.lastTier = TierNormal
	e.peakScore = 0
	e.peakTier = TierNormal
	e.startedAt = now
	e.endedAt = 0
	e.events = nil
	e.bricks.Start(now)
	e.logger.Debug("session reset", "at", now)
}

// record queues a brick event and observes the score right after the timer
// that produced it, so a tier change lands after the spawn that caused it.
func (e *Engine) record(ev Event) {
	e.events = append(e.events, ev)
	e.observe(ev.At)
}

// observe tracks peaks and emits a TierChanged event when the derived tier
// differs from the last one seen.
func (e *Engine) observe(at time.Duration) {
	score := e.session.Score()
	if score > e.peakScore {
		e.peakScore = score
	}
	tier := e.Tier()
	if tier > e.peakTier {
		e.peakTier = tier
	}
	if tier == e.lastTier {
		return
	}
	e.logger.Debug("tier changed", "from", e.lastTier, "to", tier, "score", score)
	e.lastTier = tier
	e.events = append(e.events, Event{Kind: EventTierChanged, At: at, Tier: tier})
}
