package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulsefield/stroke"
	"github.com/lixenwraith/pulsefield/system"
	"github.com/lixenwraith/pulsefield/vmath"
)

// CellMapper converts a terminal cell to canvas coordinates
type CellMapper interface {
	CellToCanvas(col, row int) (x, y float64)
}

// Muter is the optional sound control
type Muter interface {
	ToggleMute() bool
}

// Controller applies intents to a particle system
// Press starts a path recording, drag applies forces, release explodes along the path if one was drawn
type Controller struct {
	ps       *system.ParticleSystem
	mapper   CellMapper
	machine  *Machine
	path     *stroke.PathBuffer
	muter    Muter
	populate int

	last   vmath.Vec2
	paused bool
}

// NewController wires a controller; muter may be nil, populate is the count restored on reset
func NewController(ps *system.ParticleSystem, mapper CellMapper, muter Muter, populate int) *Controller {
	return &Controller{
		ps:       ps,
		mapper:   mapper,
		machine:  NewMachine(nil),
		path:     stroke.NewPathBuffer(stroke.DefaultMinSpacing, stroke.DefaultCapacity),
		muter:    muter,
		populate: populate,
	}
}

// Paused reports whether the host should skip simulation updates
func (c *Controller) Paused() bool {
	return c.paused
}

// Path returns the path being drawn, nil when idle
func (c *Controller) Path() []vmath.Vec2 {
	if c.path.Len() == 0 {
		return nil
	}
	return c.path.Points()
}

// Handle parses and applies one event, returning the intent for host-level reactions
func (c *Controller) Handle(ev tcell.Event) Intent {
	in := c.machine.Process(ev)
	c.Apply(in)
	return in
}

// Apply performs the simulation side of an intent
func (c *Controller) Apply(in Intent) {
	switch in.Type {
	case IntentEffect:
		if err := c.ps.SetEffect(in.Effect); err != nil {
			log.Printf("input: effect %d: %v", in.Effect, err)
		}
	case IntentReset:
		c.ps.Reset()
		c.ps.Metrics().Reset()
		c.ps.Populate(c.populate)
		c.path.Clear()
	case IntentClearPath:
		c.path.Clear()
	case IntentPause:
		c.paused = !c.paused
	case IntentToggleMute:
		if c.muter != nil {
			c.muter.ToggleMute()
		}
	case IntentPress:
		pos := c.canvas(in)
		c.path.Clear()
		c.path.Add(pos.X, pos.Y)
		c.last = pos
		c.ps.SetPointer(pos.X, pos.Y, true)
	case IntentDrag:
		pos := c.canvas(in)
		if _, err := c.ps.ApplyEnhancedForce(pos.X, pos.Y, c.last.X, c.last.Y); err != nil {
			log.Printf("input: drag: %v", err)
		}
		c.path.Add(pos.X, pos.Y)
		c.last = pos
		c.ps.SetPointer(pos.X, pos.Y, true)
	case IntentRelease:
		c.release(c.canvas(in))
	case IntentHover:
		pos := c.canvas(in)
		c.ps.SetPointer(pos.X, pos.Y, false)
	case IntentSpawn:
		pos := c.canvas(in)
		if err := c.ps.SpawnAt(pos.X, pos.Y); err != nil {
			log.Printf("input: spawn: %v", err)
		}
	}
}

func (c *Controller) release(pos vmath.Vec2) {
	c.ps.SetPointer(pos.X, pos.Y, false)
	c.path.Add(pos.X, pos.Y)

	var err error
	if c.path.Len() >= 2 {
		// Burst from the stroke's start so particles replay it
		pts := c.path.Points()
		err = c.ps.CreatePathExplosion(pts[0].X, pts[0].Y, pts)
	} else {
		err = c.ps.CreateExplosion(pos.X, pos.Y)
	}
	if err != nil {
		log.Printf("input: explosion: %v", err)
	}
	c.path.Clear()
}

func (c *Controller) canvas(in Intent) vmath.Vec2 {
	return vmath.V2(c.mapper.CellToCanvas(in.Col, in.Row))
}
