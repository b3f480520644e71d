// Package crash implements Crash Course, a lane-dodging arcade game.
// The player steers a car sideways to avoid falling bricks; the score climbs
// with every brick and the game speeds up in tiers.
//
// Rules, timing and difficulty live in the sim package. This package is the
// host around it: it moves bricks and the car, detects overlaps, animates
// the lean and collision effects, and draws everything to a core.Screen.
package crash

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jayantbh/crash-course/internal/config"
	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/sim"
	"github.com/jayantbh/crash-course/internal/storage"
)

// ID is the identifier used for logs and storage.
const ID = "crash"

// Summary describes a run, for the scoreboard.
type Summary struct {
	Score      int
	PeakScore  int
	PeakTier   sim.Tier
	Bricks     int
	Collisions int
	Duration   time.Duration
	Seed       int64
}

// Run converts the summary into a scoreboard record for player.
func (s Summary) Run(player string) storage.Run {
	return storage.Run{
		Player:     player,
		Score:      s.Score,
		PeakScore:  s.PeakScore,
		PeakTier:   s.PeakTier.String(),
		Bricks:     s.Bricks,
		Collisions: s.Collisions,
		Duration:   s.Duration,
		Seed:       s.Seed,
	}
}

// effect is the burst left behind by a collision. It follows the brick's
// path until it is dropped.
type effect struct {
	brick sim.Brick
	until time.Duration
}

// Game implements the Crash Course host.
type Game struct {
	cfg     config.CrashConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	engine *sim.Engine
	params sim.Params
	step   time.Duration // simulated time per tick
	now    time.Duration

	car     car
	effects []effect
	input   inputState

	paused   bool
	frozen   bool // game over: all motion stopped
	frozenAt time.Duration
	wreck    []sim.Brick // bricks on the road when the game ended
	ticks    int
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.CrashConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crash Course"
}

// Reset builds a new run sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	fieldW, fieldH := g.cfg.FieldSize(runtime.ScreenW, runtime.ScreenH)
	g.params = g.cfg.Params(fieldW, fieldH)
	g.step = time.Second / time.Duration(runtime.TickRate)
	g.now = 0
	g.engine = sim.NewEngine(g.params, sim.NewRand(runtime.Seed),
		sim.WithLogger(g.logger.With("game", ID)))

	g.resetHost()
	g.logger.Debug("game reset",
		"field", [2]float64{fieldW, fieldH},
		"brick_duration", g.params.BaseDuration(),
		"seed", runtime.Seed,
	)
}

// Resize adapts to a new screen size. The run carries on when the field
// keeps its size or the game is over; otherwise a new run starts.
func (g *Game) Resize(width, height int) {
	runtime := g.runtime
	runtime.ScreenW, runtime.ScreenH = width, height

	fieldW, fieldH := g.cfg.FieldSize(width, height)
	if g.frozen || (fieldW == g.params.FieldWidth && fieldH == g.params.FieldHeight) {
		g.runtime = runtime
		return
	}
	g.Reset(runtime)
}

// Restart begins a new session on the same field, like pressing R.
func (g *Game) Restart() {
	g.engine.Reset()
	g.resetHost()
}

func (g *Game) resetHost() {
	g.car = newCar(g.cfg.Car, g.params)
	g.effects = nil
	g.input = inputState{}
	g.paused = false
	g.frozen = false
	g.frozenAt = 0
	g.wreck = nil
	g.ticks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.frozen {
		if in.Has(core.ActionRestart) {
			g.Restart()
			return core.StepResult{State: g.State()}
		}
		g.advanceFrozen()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.now += g.step

	for _, ev := range g.engine.Advance(g.now) {
		g.logEvent(ev)
	}

	flags := g.input.flags(in, g.now, g.cfg.Controls, g.worldX(in.Touch.Col), g.car.x)
	intent := g.engine.OnTick(flags, g.now)
	if !intent.Frozen {
		g.car.apply(intent, g.now)
		g.car.move(g.step, g.now, g.params.FieldWidth)
	}

	gameOverNow := g.detectOverlaps()
	g.pruneEffects()

	return core.StepResult{State: g.State(), GameOverNow: gameOverNow}
}

// advanceFrozen keeps the clock running while motion is frozen, so effects
// expire on schedule and a restart arms the cadence at the current time.
func (g *Game) advanceFrozen() {
	g.now += g.step
	g.engine.Advance(g.now)
	g.pruneEffects()
}

// detectOverlaps reports car/brick overlaps to the engine. It returns true
// if a collision ended the game.
func (g *Game) detectOverlaps() bool {
	carBox := g.car.box()
	bricks := g.engine.Bricks()
	for _, b := range bricks {
		if b.Hit {
			continue
		}
		if !carBox.Intersects(brickBox(b, g.now)) {
			continue
		}

		out := g.engine.OnOverlap(b.ID, g.now)
		if !out.Applied {
			continue
		}
		g.effects = append(g.effects, effect{brick: out.Brick, until: out.EffectAt})
		if out.GameOver {
			// The engine drops its bricks; the end screen keeps showing them.
			for i := range bricks {
				if bricks[i].ID == out.Brick.ID {
					bricks[i].Hit = true
				}
			}
			g.wreck = bricks
			g.frozen = true
			g.frozenAt = g.now
			return true
		}
	}
	return false
}

func (g *Game) pruneEffects() {
	kept := g.effects[:0]
	for _, e := range g.effects {
		if e.until > g.now {
			kept = append(kept, e)
		}
	}
	g.effects = kept
}

// bricks returns the bricks to draw: the active set, or the road as it was
// when the game ended.
func (g *Game) bricks() []sim.Brick {
	if g.frozen {
		return g.wreck
	}
	return g.engine.Bricks()
}

// motionTime is the time bricks are drawn at: motion stops at game over.
func (g *Game) motionTime() time.Duration {
	if g.frozen {
		return g.frozenAt
	}
	return g.now
}

func brickBox(b sim.Brick, now time.Duration) core.Box {
	return core.NewBox(b.X, b.Y(now), b.Size, b.Size)
}

// worldX converts a screen column to a world x coordinate.
func (g *Game) worldX(col int) float64 {
	return float64(col-g.layout().fieldX) * g.cfg.Field.CellWidth
}

func (g *Game) logEvent(ev sim.Event) {
	switch ev.Kind {
	case sim.EventTierChanged:
		g.logger.Info("tier changed", "tier", ev.Tier, "score", g.engine.Session().Score())
	case sim.EventSpawned:
		g.logger.Debug("brick spawned", "id", ev.Brick.ID, "column", ev.Brick.Column, "spin", ev.Brick.Spin)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.Session()
	return core.GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		Tier:     g.engine.Tier().String(),
		GameOver: s.Over(),
		Paused:   g.paused,
	}
}

// Summary returns the run so far.
func (g *Game) Summary() Summary {
	st := g.engine.Stats()
	end := g.now
	if st.EndedAt > 0 {
		end = st.EndedAt
	}
	return Summary{
		Score:      st.Score,
		PeakScore:  st.PeakScore,
		PeakTier:   st.PeakTier,
		Bricks:     st.Spawned,
		Collisions: st.Collisions,
		Duration:   end - st.StartedAt,
		Seed:       g.runtime.Seed,
	}
}

// Now returns the simulated time of the current run.
func (g *Game) Now() time.Duration {
	return g.now
}
