package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulsefield/config"
	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/particle"
	"github.com/lixenwraith/pulsefield/system"
	"github.com/lixenwraith/pulsefield/vmath"
)

// gridMapper maps each cell to a 10px square
type gridMapper struct{}

func (gridMapper) CellToCanvas(col, row int) (float64, float64) {
	return float64(col) * 10, float64(row) * 10
}

type fakeMuter struct{ toggles int }

func (m *fakeMuter) ToggleMute() bool {
	m.toggles++
	return m.toggles%2 == 1
}

func newTestController(t *testing.T) (*Controller, *system.ParticleSystem, *fakeMuter) {
	t.Helper()
	cfg := config.Default()
	cfg.Population.Floor = 0
	ps := system.New(cfg, system.WithRand(vmath.NewFastRand(9)))
	if err := ps.SetBounds(800, 600); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}
	m := &fakeMuter{}
	return NewController(ps, gridMapper{}, m, 12), ps, m
}

func mouse(col, row int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, btn, tcell.ModNone)
}

func TestKeyBindings(t *testing.T) {
	m := NewMachine(nil)
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"quit q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{"quit esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"quit ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
		{"effect 1", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), Intent{Type: IntentEffect, Effect: effect.Normal}},
		{"effect 5", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), Intent{Type: IntentEffect, Effect: effect.Swirl}},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), Intent{Type: IntentReset}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), Intent{Type: IntentToggleMute}},
		{"clear path", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), Intent{Type: IntentClearPath}},
		{"unbound 6", tcell.NewEventKey(tcell.KeyRune, '6', tcell.ModNone), Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Process(tt.ev); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestKeyTableCloneIsolated(t *testing.T) {
	kt := DefaultKeyTable()
	cl := kt.Clone()
	delete(cl.Runes, 'q')
	if _, ok := kt.Runes['q']; !ok {
		t.Error("Expected clone edits not to leak into the original")
	}
}

func TestMouseSequence(t *testing.T) {
	m := NewMachine(nil)
	seq := []struct {
		ev   *tcell.EventMouse
		want IntentType
	}{
		{mouse(1, 1, tcell.ButtonNone), IntentHover},
		{mouse(1, 1, tcell.ButtonNone), IntentNone},
		{mouse(2, 2, tcell.Button1), IntentPress},
		{mouse(2, 2, tcell.Button1), IntentNone},
		{mouse(3, 2, tcell.Button1), IntentDrag},
		{mouse(3, 2, tcell.ButtonNone), IntentRelease},
		{mouse(3, 2, tcell.Button2), IntentSpawn},
	}
	for i, s := range seq {
		if got := m.Process(s.ev).Type; got != s.want {
			t.Errorf("step %d: expected %d, got %d", i, s.want, got)
		}
	}
	if m.Pressed() {
		t.Error("Expected button released")
	}
}

func TestResizeIntent(t *testing.T) {
	got := NewMachine(nil).Process(tcell.NewEventResize(120, 40))
	if got != (Intent{Type: IntentResize, Col: 120, Row: 40}) {
		t.Errorf("Unexpected resize intent %+v", got)
	}
}

func TestClickExplodes(t *testing.T) {
	c, ps, _ := newTestController(t)

	c.Handle(mouse(20, 20, tcell.Button1))
	if !ps.Pointer().Down {
		t.Error("Expected pointer down after press")
	}
	c.Handle(mouse(20, 20, tcell.ButtonNone))

	if ps.Pointer().Down {
		t.Error("Expected pointer up after release")
	}
	if ps.ParticleCount() < 20 {
		t.Errorf("Expected an explosion burst, got %d particles", ps.ParticleCount())
	}
	ps.Particles(func(_ int, p *particle.Particle) bool {
		if p.FollowingPath() {
			t.Fatal("Expected plain explosion for a click")
		}
		return true
	})
}

func TestDragReleaseFollowsPath(t *testing.T) {
	c, ps, _ := newTestController(t)

	c.Handle(mouse(10, 10, tcell.Button1))
	c.Handle(mouse(14, 10, tcell.Button1))
	c.Handle(mouse(18, 12, tcell.Button1))
	if len(c.Path()) != 3 {
		t.Fatalf("Expected 3 recorded points, got %d", len(c.Path()))
	}
	c.Handle(mouse(18, 12, tcell.ButtonNone))

	if c.Path() != nil {
		t.Error("Expected path cleared after release")
	}
	following := 0
	ps.Particles(func(_ int, p *particle.Particle) bool {
		if p.FollowingPath() {
			following++
		}
		return true
	})
	if following == 0 {
		t.Error("Expected path-following burst after a drag")
	}
}

func TestKeysDriveSystem(t *testing.T) {
	c, ps, muter := newTestController(t)

	c.Handle(tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone))
	if ps.Effect().ID != effect.Gravity {
		t.Errorf("Expected gravity effect, got %d", ps.Effect().ID)
	}

	if err := ps.CreateExplosion(100, 100); err != nil {
		t.Fatalf("CreateExplosion: %v", err)
	}
	c.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if ps.ParticleCount() != 12 || ps.Time() != 0 {
		t.Errorf("Expected reset to 12 particles at time 0, got %d at %d", ps.ParticleCount(), ps.Time())
	}
	m := ps.Metrics()
	if m.Ints.Get("explosions").Load() != 0 || m.Ints.Get("particles.spawned").Load() != 12 {
		t.Errorf("Expected counters restarted with the new population: %s", m.Format())
	}

	c.Handle(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if muter.toggles != 1 {
		t.Error("Expected mute toggled")
	}

	c.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !c.Paused() {
		t.Error("Expected paused")
	}
}

func TestRightClickSpawns(t *testing.T) {
	c, ps, _ := newTestController(t)
	c.Handle(mouse(5, 5, tcell.Button2))
	if ps.ParticleCount() == 0 {
		t.Error("Expected spawned cluster")
	}
}
