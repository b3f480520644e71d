package sim

import (
	"fmt"
	"math"
	"time"
)

// BrickID identifies a brick for the lifetime of a session.
type BrickID uint64

// Brick is a falling obstacle. The host owns its motion and visuals; the
// simulation owns when it exists.
type Brick struct {
	ID        BrickID
	Column    int           // Lane index in [0, Columns)
	X         float64       // Lateral center of the lane
	Size      float64       // Edge length
	Duration  time.Duration // Time to travel from -Size to Distance
	Distance  float64       // Final y position
	Spin      int           // Total rotation over the travel, degrees
	SpawnTime time.Duration
	Tier      Tier // Tier the brick was spawned under
	Hit       bool // Set once the brick has collided with the car
}

// ExpiresAt returns the time the brick reaches the end of its path.
func (b Brick) ExpiresAt() time.Duration {
	return b.SpawnTime + b.Duration
}

// Progress returns how far along its path the brick is at now, in [0, 1].
func (b Brick) Progress(now time.Duration) float64 {
	if now <= b.SpawnTime {
		return 0
	}
	p := float64(now-b.SpawnTime) / float64(b.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Y returns the brick's vertical center at now, moving linearly from -Size.
func (b Brick) Y(now time.Duration) float64 {
	return -b.Size + (b.Distance+b.Size)*b.Progress(now)
}

// Angle returns the brick's rotation at now, in degrees.
func (b Brick) Angle(now time.Duration) float64 {
	return float64(b.Spin) * b.Progress(now)
}

// BrickManager maintains the active brick set: it spawns on a fixed cadence,
// scales each brick by the current tier and expires bricks once their travel
// time has elapsed. Every timer callback is a no-op once the session is over.
type BrickManager struct {
	params  Params
	session *Session
	rng     Rand
	sched   *Scheduler

	active  map[BrickID]*Brick
	order   []BrickID // spawn order, for deterministic iteration
	nextID  BrickID
	spawned int

	events  []Event
	onEvent func(Event) // called as each event is produced
}

// NewBrickManager creates a manager bound to session. Call Start to arm the
// spawn cadence.
func NewBrickManager(params Params, session *Session, rng Rand) *BrickManager {
	return &BrickManager{
		params:  params,
		session: session,
		rng:     rng,
		sched:   NewScheduler(0),
		active:  make(map[BrickID]*Brick),
	}
}

// Start arms the spawn cadence at now. The cadence keeps firing after the
// game ends; each firing checks the session and does nothing.
func (m *BrickManager) Start(now time.Duration) {
	m.sched.Reset(now)
	m.sched.Every(m.params.SpawnInterval, m.onCadence)
}

// Advance moves the manager's clock to now and returns the events produced
// by the timers that fired, in firing order.
func (m *BrickManager) Advance(now time.Duration) []Event {
	m.sched.Advance(now)
	events := m.events
	m.events = nil
	return events
}

// Now returns the manager's clock.
func (m *BrickManager) Now() time.Duration {
	return m.sched.Now()
}

func (m *BrickManager) onCadence(now time.Duration) {
	brick, ok := m.Spawn(now)
	if !ok {
		return
	}
	m.emit(Event{Kind: EventSpawned, At: now, Brick: brick})

	id := brick.ID
	m.sched.After(brick.Duration, func(at time.Duration) {
		if b, ok := m.active[id]; ok && m.Expire(id) {
			m.emit(Event{Kind: EventExpired, At: at, Brick: *b})
		}
	})
}

func (m *BrickManager) emit(ev Event) {
	m.events = append(m.events, ev)
	if m.onEvent != nil {
		m.onEvent(ev)
	}
}

// Spawn creates one brick at now without scheduling its expiry. The tier is
// read before the spawn reward is credited, so the brick that crosses a
// threshold still uses the lower tier's multipliers.
func (m *BrickManager) Spawn(now time.Duration) (Brick, bool) {
	if m.session.Over() {
		return Brick{}, false
	}

	column := m.rng.IntBetween(0, Columns-1)
	mustColumn(column)

	diff := m.params.Difficulty
	tier := diff.TierFor(m.session.Score())
	mult := diff.MultipliersFor(tier)

	duration := time.Duration(math.Round(float64(m.params.BaseDuration()) * mult.DurationFactor))
	if duration <= 0 {
		panic(fmt.Sprintf("sim: non-positive brick duration %v", duration))
	}
	size := m.params.BaseSize * mult.SizeFactor
	spin := 0
	if !mult.Spin.Empty() {
		spin = m.rng.IntBetween(mult.Spin.Min, mult.Spin.Max)
	}

	m.nextID++
	b := &Brick{
		ID:        m.nextID,
		Column:    column,
		X:         m.params.ColumnX(column),
		Size:      size,
		Duration:  duration,
		Distance:  m.params.DistanceToCover(),
		Spin:      spin,
		SpawnTime: now,
		Tier:      tier,
	}
	m.active[b.ID] = b
	m.order = append(m.order, b.ID)
	m.spawned++

	m.session.ApplySpawnReward()
	return *b, true
}

// Expire removes a brick from the active set. It reports false when the
// session is over or the brick is unknown.
func (m *BrickManager) Expire(id BrickID) bool {
	if m.session.Over() {
		return false
	}
	if _, ok := m.active[id]; !ok {
		return false
	}
	delete(m.active, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear destroys every active brick. It is used when the session ends, so
// it works after game over; timers already scheduled find nothing to expire.
func (m *BrickManager) Clear() {
	clear(m.active)
	m.order = nil
}

// MarkHit flags a brick as disabled after a collision. It reports false if
// the brick is unknown or was already hit.
func (m *BrickManager) MarkHit(id BrickID) bool {
	b, ok := m.active[id]
	if !ok || b.Hit {
		return false
	}
	b.Hit = true
	return true
}

// Get returns a copy of an active brick.
func (m *BrickManager) Get(id BrickID) (Brick, bool) {
	b, ok := m.active[id]
	if !ok {
		return Brick{}, false
	}
	return *b, true
}

// Active returns copies of the active bricks in spawn order.
func (m *BrickManager) Active() []Brick {
	out := make([]Brick, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.active[id])
	}
	return out
}

// Len returns the number of active bricks.
func (m *BrickManager) Len() int {
	return len(m.order)
}

// Spawned returns the number of bricks spawned since the last reset.
func (m *BrickManager) Spawned() int {
	return m.spawned
}

// Reset clears every brick and pending timer. The cadence is not re-armed.
func (m *BrickManager) Reset(now time.Duration) {
	m.active = make(map[BrickID]*Brick)
	m.order = nil
	m.spawned = 0
	m.events = nil
	m.sched.Reset(now)
}
