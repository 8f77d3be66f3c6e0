package stroke

import (
	"math"
	"testing"

	"github.com/lixenwraith/pulsefield/vmath"
)

const eps = 1e-9

func TestPathBufferMinSpacing(t *testing.T) {
	b := NewPathBuffer(4, 16)

	if !b.Add(0, 0) {
		t.Fatal("first sample rejected")
	}
	if b.Add(1, 1) {
		t.Error("sample closer than min spacing accepted")
	}
	if !b.Add(10, 0) {
		t.Error("spaced sample rejected")
	}
	if b.Add(math.NaN(), 3) {
		t.Error("NaN sample accepted")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestPathBufferCapacityDropsOldest(t *testing.T) {
	b := NewPathBuffer(1, 3)
	for i := 0; i < 5; i++ {
		b.Add(float64(i*10), 0)
	}
	pts := b.Points()
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	if pts[0].X != 20 || pts[2].X != 40 {
		t.Errorf("unexpected retained points: %v", pts)
	}
}

func TestPathBufferPointsIsCopy(t *testing.T) {
	b := NewPathBuffer(1, 8)
	b.Add(0, 0)
	b.Add(5, 5)
	pts := b.Points()
	pts[0].X = 999
	if b.Points()[0].X != 0 {
		t.Error("Points must return a copy")
	}
}

func TestPathBufferLengthAndSimplified(t *testing.T) {
	b := NewPathBuffer(1, 16)
	for _, p := range []vmath.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}} {
		b.Add(p.X, p.Y)
	}
	if math.Abs(b.Length()-30) > eps {
		t.Errorf("Length = %f, want 30", b.Length())
	}
	got := b.Simplified(0.5)
	if len(got) != 3 || got[1] != vmath.V2(20, 0) {
		t.Errorf("Simplified = %v, want corner kept and midpoint dropped", got)
	}
	if b.Len() != 4 {
		t.Error("Simplified must not modify the buffer")
	}
}

func TestSimplifyCollinear(t *testing.T) {
	pts := []vmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	got := Simplify(pts, 0.5)
	if len(got) != 2 {
		t.Fatalf("collinear polyline simplified to %d points, want 2", len(got))
	}
	if got[0] != pts[0] || got[1] != pts[4] {
		t.Errorf("endpoints not kept: %v", got)
	}
}

func TestSimplifyKeepsCorner(t *testing.T) {
	pts := []vmath.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 10, Y: 10}}
	got := Simplify(pts, 0.5)
	if len(got) != 3 || got[1] != (vmath.Vec2{X: 10, Y: 0}) {
		t.Errorf("corner lost: %v", got)
	}
}

func TestSampleInterpolation(t *testing.T) {
	pts := []vmath.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	p, tan := Sample(pts, 0.25)
	if math.Abs(p.X-5) > eps || math.Abs(p.Y) > eps {
		t.Errorf("Sample(0.25) = %v, want {5 0}", p)
	}
	if math.Abs(tan.X-1) > eps || math.Abs(tan.Y) > eps {
		t.Errorf("tangent = %v, want {1 0}", tan)
	}

	p, tan = Sample(pts, 0.75)
	if math.Abs(p.X-10) > eps || math.Abs(p.Y-5) > eps {
		t.Errorf("Sample(0.75) = %v, want {10 5}", p)
	}
	if math.Abs(tan.Y-1) > eps {
		t.Errorf("tangent = %v, want {0 1}", tan)
	}

	p, _ = Sample(pts, 1)
	if p != pts[2] {
		t.Errorf("Sample(1) = %v, want end point", p)
	}
}

func TestSampleDegenerate(t *testing.T) {
	if p, tan := Sample(nil, 0.5); p != (vmath.Vec2{}) || tan != (vmath.Vec2{}) {
		t.Error("empty polyline should sample to zero")
	}
	single := []vmath.Vec2{{X: 3, Y: 4}}
	if p, tan := Sample(single, 0.5); p != single[0] || tan != (vmath.Vec2{}) {
		t.Error("single point should sample to itself with zero tangent")
	}
}

func TestSanitize(t *testing.T) {
	pts := []vmath.Vec2{{X: 1, Y: 1}, {X: math.Inf(1), Y: 0}, {X: 2, Y: math.NaN()}, {X: 3, Y: 3}}
	if got := Sanitize(pts); len(got) != 2 {
		t.Errorf("Sanitize kept %d points, want 2", len(got))
	}
}

func TestSanitizeDropsOverflowingSegments(t *testing.T) {
	pts := []vmath.Vec2{{X: -1e308, Y: 0}, {X: 1e308, Y: 0}, {X: -1e308, Y: 10}}
	got := Sanitize(pts)
	if len(got) != 2 || got[1] != pts[2] {
		t.Fatalf("Sanitize kept %v", got)
	}
	if l := Length(got); math.IsInf(l, 0) || math.IsNaN(l) {
		t.Errorf("Expected finite arc length, got %f", l)
	}
	p, tan := Sample(got, 0.5)
	if !p.IsFinite() || !tan.IsFinite() {
		t.Errorf("Expected finite sample, got %v %v", p, tan)
	}
}
