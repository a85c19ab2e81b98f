package ringflip

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/ledger"
	"github.com/vovakirdan/ringflip/internal/registry"
)

type memPrefs struct {
	ints    map[string]int
	strings map[string]string
}

func newMemPrefs() *memPrefs {
	return &memPrefs{ints: map[string]int{}, strings: map[string]string{}}
}

func (m *memPrefs) Int(key string) (int, bool, error) {
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *memPrefs) String(key string) (string, bool, error) {
	v, ok := m.strings[key]
	return v, ok, nil
}

func (m *memPrefs) SetInt(key string, v int) error {
	m.ints[key] = v
	return nil
}

func (m *memPrefs) SetString(key, v string) error {
	m.strings[key] = v
	return nil
}

func newTestGame(seed int64) *Game {
	g := New(registry.Deps{
		Config:     config.DefaultRingflipConfig(),
		Difficulty: config.Medium,
		Ledger:     ledger.New(newMemPrefs()),
	})
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func hasEvent(events []core.Event, ev core.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

// startFalling starts a run and puts the player in a falling state.
func startFalling(g *Game) {
	g.Step(press(core.ActionConfirm))
	g.player.Jump()
	for !g.player.IsFalling() {
		g.player.Integrate(1.0 / 60)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID, registry.Deps{})
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Ring Flip" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestHomeDifficultySelection(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(press(core.ActionUp))
	if g.Difficulty() != config.Easy {
		t.Errorf("Difficulty() = %v, expected Easy", g.Difficulty())
	}
	if !hasEvent(res.Events, core.EventButton) {
		t.Error("changing difficulty should emit a button event")
	}

	res = g.Step(press(core.ActionUp))
	if g.Difficulty() != config.Easy || len(res.Events) != 0 {
		t.Error("moving above Easy should clamp silently")
	}

	for range 3 {
		g.Step(press(core.ActionDown))
	}
	if g.Difficulty() != config.Hard {
		t.Errorf("Difficulty() = %v, expected Hard", g.Difficulty())
	}
}

func TestStartRun(t *testing.T) {
	g := newTestGame(1)
	res := g.Step(press(core.ActionJump))

	if g.Phase() != PhasePlaying || !res.State.Active {
		t.Fatalf("phase = %v, expected playing", g.Phase())
	}
	if !g.session.IsGameActive() {
		t.Error("session should be active")
	}
	rings := g.engine.Rings()
	if len(rings) != 1 || rings[0].Type().String() != "normal" {
		t.Fatalf("expected one normal opening ring, got %d", len(rings))
	}
	if got := rings[0].Position(); got != (core.Vec2{X: 3, Y: 0}) {
		t.Errorf("first ring at %+v, expected (3, 0)", got)
	}
	if g.player.Airborne() {
		t.Error("the start key should not also launch the player")
	}
}

func TestFallingToFloorEndsRun(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionJump))

	var res core.StepResult
	for range 600 {
		res = g.Step(core.NewInputFrame())
		if res.State.GameOver {
			break
		}
	}

	if !res.State.GameOver || g.Phase() != PhaseOver {
		t.Fatal("falling to the floor should end the run")
	}
	if !hasEvent(res.Events, core.EventGameOver) {
		t.Error("missing game over event")
	}
	if y := g.player.Position().Y; y < -4.2-1e-9 {
		t.Errorf("player y = %g, expected clamp at the floor", y)
	}
}

func TestPerfectPassThroughRing(t *testing.T) {
	g := newTestGame(1)
	startFalling(g)

	g.player.SetPosition(core.Vec2{X: 3, Y: -0.1})
	g.resolveContacts(core.Vec2{X: 3, Y: 0.2}, g.player.Position())

	if g.session.Score() != 2 {
		t.Errorf("score = %d, expected 2", g.session.Score())
	}
	if g.popup.text != "PERFECT!" {
		t.Errorf("popup = %q, expected PERFECT!", g.popup.text)
	}
	if !hasEvent(g.events, core.EventPerfectPass) {
		t.Error("missing perfect pass event")
	}
}

func TestRimContactMakesCleanPass(t *testing.T) {
	g := newTestGame(1)
	startFalling(g)

	// Clip the left rim while staying within the perfect tolerance.
	g.resolveContacts(core.Vec2{X: 2.52, Y: 0.3}, core.Vec2{X: 2.52, Y: 0.05})
	g.player.SetPosition(core.Vec2{X: 2.52, Y: -0.1})
	g.resolveContacts(core.Vec2{X: 2.52, Y: 0.05}, g.player.Position())

	if g.session.Score() != 2 {
		t.Errorf("score = %d, expected 2", g.session.Score())
	}
	if !hasEvent(g.events, core.EventRingPassed) || hasEvent(g.events, core.EventPerfectPass) {
		t.Errorf("events = %v, expected a clean pass", g.events)
	}
}

func TestWrongDirectionThroughRing(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.player.Jump() // rising

	g.resolveContacts(core.Vec2{X: 3, Y: -0.2}, core.Vec2{X: 3, Y: 0.1})

	if g.Phase() != PhaseOver {
		t.Error("rising through a ring with normal gravity should end the run")
	}
	if g.session.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.session.Score())
	}
}

func TestShieldAbsorbsBoundaryContact(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.session.ActivateShield()

	g.player.SetPosition(core.Vec2{Y: -5})
	g.checkBounds()
	if g.session.IsGameOver() || g.session.HasShield() {
		t.Fatal("first contact should consume the shield")
	}
	if y := g.player.Position().Y; math.Abs(y+4.2) > 1e-9 {
		t.Errorf("player y = %g, expected held at -4.2", y)
	}

	g.checkBounds()
	if g.session.IsGameOver() {
		t.Fatal("resting on the floor is not a new contact")
	}

	g.player.SetPosition(core.Vec2{})
	g.checkBounds()
	g.player.SetPosition(core.Vec2{Y: 5})
	g.checkBounds()
	if !g.session.IsGameOver() {
		t.Error("second contact without a shield should end the run")
	}
}

func TestImmunityAbsorbsBoundaryContact(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.session.ActivateImmunity(0.5)

	g.player.SetPosition(core.Vec2{Y: 5})
	g.checkBounds()
	if g.session.IsGameOver() {
		t.Error("immunity should absorb the contact")
	}
}

func TestRestartAndHome(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.session.ChangeScore(6)
	g.session.SetGameOver()
	if g.Phase() != PhaseOver {
		t.Fatal("expected game over")
	}

	g.Step(press(core.ActionRestart))
	if g.Phase() != PhasePlaying || g.session.Score() != 0 {
		t.Fatalf("restart should begin a fresh run, phase=%v score=%d", g.Phase(), g.session.Score())
	}

	g.session.SetGameOver()
	g.Step(press(core.ActionBack))
	if g.Phase() != PhaseHome {
		t.Errorf("phase = %v, expected home", g.Phase())
	}
}

func TestGameOverRecordsBest(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.session.ChangeScore(8)
	g.session.SetGameOver()

	if g.stats.AllTimeBest != 8 || g.stats.DailyBest != 8 {
		t.Errorf("stats = %+v, expected bests of 8", g.stats)
	}
	if !g.last.Records.AllTime {
		t.Error("first score should be a new all-time best")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "Score: 8", "Today's Best", "Week's Best", "All-Time Best", "NEW BEST!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over panel missing %q", want)
		}
	}
}

func TestRenderScreens(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "MEDIUM") || !strings.Contains(out, "ALL TIME BEST: 0") {
		t.Error("home panel should list difficulties and the best score")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "MEDIUM MODE: 0") {
		t.Errorf("HUD missing score line:\n%s", out)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%12 == 1:
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() *Game {
		g := newTestGame(12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.session.Score() != g2.session.Score() {
		t.Errorf("scores differ: %d vs %d", g1.session.Score(), g2.session.Score())
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("tick counts differ: %d vs %d", g1.tickCount, g2.tickCount)
	}
	if g1.player.Position() != g2.player.Position() {
		t.Errorf("positions differ: %+v vs %+v", g1.player.Position(), g2.player.Position())
	}
	if len(g1.engine.Rings()) != len(g2.engine.Rings()) {
		t.Error("ring counts differ")
	}
}
