package crash

import (
	"math"
	"strings"
	"testing"

	"github.com/jayantbh/crash-course/internal/config"
	"github.com/jayantbh/crash-course/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(config.Default(), nil)
	g.Reset(testRuntime(seed))
	return g
}

func idle(g *Game, ticks int) core.StepResult {
	var res core.StepResult
	for i := 0; i < ticks; i++ {
		res = g.Step(core.NewInputFrame())
	}
	return res
}

// chase parks the car under the lowest brick that can still hit it.
func chase(g *Game) {
	carBox := g.car.box()
	lowest, found := 0.0, false
	for _, b := range g.engine.Bricks() {
		if b.Hit {
			continue
		}
		box := brickBox(b, g.now)
		if box.Top() >= carBox.Bottom() {
			continue
		}
		if !found || box.CY > lowest {
			lowest, found = box.CY, true
			g.car.x = b.X
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (Summary, float64) {
		g := newTestGame(12345)
		var pilot Autopilot
		for i := 0; i < 1200; i++ {
			if g.Step(pilot.Next(g)).State.GameOver {
				break
			}
		}
		return g.Summary(), g.car.x
	}

	s1, x1 := run()
	s2, x2 := run()
	if s1 != s2 {
		t.Errorf("Determinism failed: summaries differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if x1 != x2 {
		t.Errorf("Determinism failed: car positions differ. Run1=%v, Run2=%v", x1, x2)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)
	idle(g, 200)

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Score after reset = %d, expected 0", state.Score)
	}
	if state.Lives != 3 {
		t.Errorf("Lives after reset = %d, expected 3", state.Lives)
	}
	if state.GameOver {
		t.Error("GameOver should be false after reset")
	}
	if g.Now() != 0 {
		t.Errorf("Now() after reset = %v, expected 0", g.Now())
	}
	if g.car.x != 200 {
		t.Errorf("car x after reset = %v, expected 200", g.car.x)
	}
}

func TestFieldFromTerminal(t *testing.T) {
	g := newTestGame(1)
	if g.params.FieldWidth != 400 || g.params.FieldHeight != 440 {
		t.Errorf("field = %vx%v, expected 400x440", g.params.FieldWidth, g.params.FieldHeight)
	}
	if math.Abs(g.car.y-352) > 1e-9 {
		t.Errorf("car y = %v, expected 352", g.car.y)
	}
}

func TestIdleCarScores(t *testing.T) {
	// A centered car sits between columns 1 and 2 and cannot be hit.
	g := newTestGame(7)
	res := idle(g, 200) // 3.33s, three spawns

	if res.State.Score != 30 {
		t.Errorf("Score = %d, expected 30", res.State.Score)
	}
	if res.State.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", res.State.Lives)
	}
	if got := g.Summary().Bricks; got != 3 {
		t.Errorf("Summary().Bricks = %d, expected 3", got)
	}
	if res.State.Tier != "Normal" {
		t.Errorf("Tier = %q, expected Normal", res.State.Tier)
	}
}

func TestHeldKeySteering(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	idle(g, 30)

	// One press holds for 180ms: eleven ticks at 200 units/s.
	if g.car.x >= 200 || g.car.x < 150 {
		t.Errorf("car x = %v, expected between 150 and 200", g.car.x)
	}
	if g.car.angle >= 0 {
		t.Errorf("car angle = %v, expected a left lean", g.car.angle)
	}

	stopped := g.car.x
	idle(g, 30)
	if g.car.x != stopped {
		t.Errorf("car x = %v after release, expected %v", g.car.x, stopped)
	}
}

func TestOppositeKeyTakesOver(t *testing.T) {
	g := newTestGame(1)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)

	if g.car.velocity <= 0 {
		t.Errorf("velocity = %v, expected rightward after pressing right", g.car.velocity)
	}
}

func TestCarClampedToField(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 180; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}

	if g.car.x != 382 {
		t.Errorf("car x = %v, expected 382 (field edge minus half the car)", g.car.x)
	}
}

func TestTouchSteering(t *testing.T) {
	g := newTestGame(1)
	l := g.layout()

	in := core.NewInputFrame()
	in.Touch = core.Touch{Down: true, Col: l.fieldX}
	g.Step(in)
	for i := 0; i < 10; i++ {
		g.Step(core.InputFrame{Touch: core.Touch{Col: l.fieldX}})
	}
	if g.car.x >= 200 {
		t.Errorf("car x = %v, expected left of 200 while touching the left edge", g.car.x)
	}

	g.Step(core.InputFrame{Touch: core.Touch{Up: true, Col: l.fieldX}})
	released := g.car.x
	idle(g, 10)
	if g.car.x != released {
		t.Errorf("car x = %v after release, expected %v", g.car.x, released)
	}
}

func TestCollisionPenalty(t *testing.T) {
	g := newTestGame(3)
	idle(g, 61) // first brick spawned at 1s

	bricks := g.engine.Bricks()
	if len(bricks) != 1 {
		t.Fatalf("len(Bricks()) = %d, expected 1", len(bricks))
	}
	g.car.x = bricks[0].X

	var res core.StepResult
	for i := 0; i < 200; i++ {
		res = g.Step(core.NewInputFrame())
		if res.State.Lives < 3 {
			break
		}
	}

	// Hit at ~2.32s, after the second spawn: 20 * 70% = 14.
	if res.State.Lives != 2 {
		t.Fatalf("Lives = %d, expected 2", res.State.Lives)
	}
	if res.State.Score != 14 {
		t.Errorf("Score = %d, expected 14", res.State.Score)
	}
	if res.GameOverNow {
		t.Error("GameOverNow should be false with lives left")
	}
	if len(g.effects) != 1 {
		t.Errorf("len(effects) = %d, expected 1", len(g.effects))
	}
	if got := g.Summary().Collisions; got != 1 {
		t.Errorf("Summary().Collisions = %d, expected 1", got)
	}

	// The effect is dropped after its lifetime. Park the car between
	// columns so nothing else hits it meanwhile.
	g.car.x = 200
	idle(g, 181)
	if len(g.effects) != 0 {
		t.Errorf("len(effects) = %d after 3s, expected 0", len(g.effects))
	}
}

func TestGameOverFreezes(t *testing.T) {
	g := newTestGame(5)

	endings := 0
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		chase(g)
		if g.Step(core.NewInputFrame()).GameOverNow {
			endings++
		}
	}
	if !g.State().GameOver {
		t.Fatal("game should be over after chasing bricks")
	}

	if n := len(g.engine.Bricks()); n != 0 {
		t.Errorf("len(engine.Bricks()) = %d after game over, expected 0", n)
	}
	wreck := len(g.bricks())
	hit := 0
	for _, b := range g.bricks() {
		if b.Hit {
			hit++
		}
	}
	if wreck == 0 || hit == 0 {
		t.Errorf("end screen keeps %d bricks (%d hit), expected the crash to stay visible", wreck, hit)
	}
	score := g.State().Score
	carX := g.car.x
	frozenAt := g.motionTime()

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		if g.Step(in).GameOverNow {
			endings++
		}
	}

	if endings != 1 {
		t.Errorf("GameOverNow reported %d times, expected 1", endings)
	}
	if g.State().Score != score {
		t.Errorf("Score = %d after game over, expected %d", g.State().Score, score)
	}
	if g.car.x != carX {
		t.Errorf("car x = %v after game over, expected %v", g.car.x, carX)
	}
	if len(g.bricks()) != wreck {
		t.Errorf("len(bricks()) = %d after game over, expected %d", len(g.bricks()), wreck)
	}
	if g.motionTime() != frozenAt {
		t.Errorf("motionTime() = %v, expected frozen at %v", g.motionTime(), frozenAt)
	}
	if got := g.Summary().Collisions; got != 3 {
		t.Errorf("Summary().Collisions = %d, expected 3", got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(5)
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		chase(g)
		g.Step(core.NewInputFrame())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.GameOver {
		t.Error("GameOver should be false after restart")
	}
	if res.State.Score != 0 || res.State.Lives != 3 {
		t.Errorf("State = %+v, expected score 0 and 3 lives", res.State)
	}
	if len(g.engine.Bricks()) != 0 || len(g.bricks()) != 0 {
		t.Errorf("bricks remain after restart: engine %d, drawn %d", len(g.engine.Bricks()), len(g.bricks()))
	}

	// Spawning resumes one interval after the restart.
	idle(g, 61)
	if len(g.engine.Bricks()) != 1 {
		t.Errorf("len(Bricks()) = %d, expected 1 after one interval", len(g.engine.Bricks()))
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(1)
	idle(g, 61)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.Score != 10 {
		t.Errorf("Score = %d, expected 10", res.State.Score)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(1)
	idle(g, 10)
	before := g.Now()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Error("Paused should be true after pause")
	}
	idle(g, 100)
	if g.Now() != before {
		t.Errorf("Now() = %v while paused, expected %v", g.Now(), before)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Paused should be false after second pause")
	}
	if g.Now() == before {
		t.Error("time should advance after unpausing")
	}
}

func TestTimeToImpact(t *testing.T) {
	g := newTestGame(9)
	idle(g, 61)

	b := g.engine.Bricks()[0]
	for col := 0; col < 4; col++ {
		got := g.timeToImpact(col)
		if col == b.Column && got >= autopilotHorizon {
			t.Errorf("timeToImpact(%d) = %v, expected less than %v", col, got, autopilotHorizon)
		}
		if col != b.Column && got != autopilotHorizon {
			t.Errorf("timeToImpact(%d) = %v, expected %v", col, got, autopilotHorizon)
		}
	}
}

func TestAutopilotAvoidsBricks(t *testing.T) {
	g := newTestGame(2024)
	idle(g, 61)

	// Put the car in the path of the first brick.
	b := g.engine.Bricks()[0]
	g.car.x = b.X

	var pilot Autopilot
	for i := 0; i < 90; i++ {
		g.Step(pilot.Next(g))
	}

	if got := g.Summary().Collisions; got != 0 {
		t.Errorf("Summary().Collisions = %d, expected the autopilot to dodge", got)
	}
	if g.car.x == b.X {
		t.Errorf("car x = %v, expected the autopilot to leave column %d", g.car.x, b.Column)
	}
}

func TestPathClear(t *testing.T) {
	g := newTestGame(9)
	idle(g, 61)
	b := g.engine.Bricks()[0]
	speed := g.params.Difficulty.Normal.CarSpeed

	// Just spawned: the lane is passed long before the brick arrives.
	g.car.x = b.X + 100
	if !g.pathClear(b.X-100, speed) {
		t.Error("pathClear() = false for a brick far above the car, expected true")
	}

	// Half a second later the brick reaches the car's row mid-crossing.
	idle(g, 50)
	g.car.x = b.X + 100
	if g.pathClear(b.X-100, speed) {
		t.Error("pathClear() = true across a brick about to arrive, expected false")
	}
	if !g.pathClear(b.X+200, speed) {
		t.Error("pathClear() = false away from the brick's lane, expected true")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	idle(g, 90)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 10") {
		t.Errorf("top row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "Lives: 3") {
		t.Errorf("bottom row = %q, expected lives", screen.Row(23))
	}
	if !strings.ContainsRune(screen.String(), '▲') {
		t.Error("car should be drawn")
	}
	if strings.Contains(screen.String(), "GAME.") {
		t.Error("game over text should not be drawn while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(5)
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		chase(g)
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME.", "OVER.", "Lives: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(1)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("screen should show PAUSED")
	}
}

func TestBrickGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '█'},
		{10, '█'},
		{45, '▓'},
		{-45, '▓'},
		{90, '█'},
		{135, '▓'},
		{80, '█'},
	}

	for _, tt := range tests {
		if got := brickGlyph(tt.angle); got != tt.want {
			t.Errorf("brickGlyph(%v) = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(1)
	idle(g, 61)

	// Wider terminal, same capped field width and height.
	g.Resize(120, 24)
	if g.State().Score != 10 {
		t.Errorf("Score = %d after resize, expected the run to continue", g.State().Score)
	}
	if l := g.layout(); l.fieldX != 40 {
		t.Errorf("fieldX = %d, expected 40", l.fieldX)
	}

	// Taller terminal changes the field: a new run starts.
	g.Resize(120, 30)
	if g.State().Score != 0 || g.Now() != 0 {
		t.Errorf("State = %+v at %v, expected a fresh run", g.State(), g.Now())
	}
	if g.params.FieldHeight != 560 {
		t.Errorf("FieldHeight = %v, expected 560", g.params.FieldHeight)
	}
}

func TestSummaryRun(t *testing.T) {
	g := newTestGame(77)
	idle(g, 130)

	run := g.Summary().Run("ada")
	if run.Player != "ada" {
		t.Errorf("Player = %q, expected ada", run.Player)
	}
	if run.Score != 20 || run.Bricks != 2 {
		t.Errorf("Run = %+v, expected score 20 from 2 bricks", run)
	}
	if run.PeakTier != "Normal" {
		t.Errorf("PeakTier = %q, expected Normal", run.PeakTier)
	}
	if run.Seed != 77 {
		t.Errorf("Seed = %d, expected 77", run.Seed)
	}
	if run.Duration != g.Now() {
		t.Errorf("Duration = %v, expected %v", run.Duration, g.Now())
	}
}
