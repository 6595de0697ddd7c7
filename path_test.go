package clsvg

import (
	"math"
	"testing"
)

func rectPath(x, y, w, h Length) BezierPath {
	p := BezierPathStart(PtXy(x, y))
	p, _ = p.Connect(VectorIj(w, 0), VectorZero, VectorZero, false, false)
	p, _ = p.Connect(VectorIj(0, h), VectorZero, VectorZero, false, false)
	p, _ = p.Connect(VectorIj(-w, 0), VectorZero, VectorZero, false, false)
	p, _ = p.Connect(VectorIj(0, -h), VectorZero, VectorZero, false, false)
	p, _ = p.Close()
	return p
}

func TestBezierPathConnectAndClose(t *testing.T) {
	p := BezierPathStart(PtOrig)
	p, err := p.Connect(VectorIj(10, 0), VectorZero, VectorZero, false, false)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	p, err = p.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !p.IsClosed() {
		t.Fatalf("path not closed after Close()")
	}
	if !IsEqualPair(p.EndPos(), p.StartPos()) {
		t.Fatalf("closed path end %v != start %v", p.EndPos(), p.StartPos())
	}

	if _, err := p.Close(); err != nil {
		t.Errorf("Close() on already-closed path should be a no-op, got %v", err)
	}
	if _, err := p.Connect(VectorIj(1, 1), VectorZero, VectorZero, false, false); err == nil {
		t.Errorf("Connect() onto closed path should fail")
	}
}

func TestBezierPathReverseIsInvolution(t *testing.T) {
	p := rectPath(0, 0, 100, 50)
	rr := p.Reverse().Reverse()

	if rr.Len() != p.Len() {
		t.Fatalf("Reverse().Reverse() segment count %d != %d", rr.Len(), p.Len())
	}
	if !IsEqualPair(rr.StartPos(), p.StartPos()) {
		t.Errorf("Reverse().Reverse() start %v != %v", rr.StartPos(), p.StartPos())
	}
	pos1, pos2 := p.start, rr.start
	for i := 0; i < p.Len(); i++ {
		if !IsEqualPair(pos1, pos2) {
			t.Errorf("[%d] position mismatch %v != %v", i, pos1, pos2)
		}
		pos1 = pos1.Add(p.Ctrl(i).Pos())
		pos2 = pos2.Add(rr.Ctrl(i).Pos())
	}
}

func TestBezierPathContainsPos(t *testing.T) {
	r := rectPath(0, 0, 200, 100)

	tests := []struct {
		pos    Pt
		inside bool
	}{
		{PtXy(100, 50), true},
		{PtXy(1, 1), true},
		{PtXy(-1, -1), false},
		{PtXy(300, 50), false},
		{r.StartPos(), true},
	}
	for h, test := range tests {
		got, err := r.ContainsPos(test.pos)
		if err != nil {
			t.Fatalf("[%d]ContainsPos(%v) errored: %v", h, test.pos, err)
		}
		if got != test.inside {
			t.Errorf("[%d]ContainsPos(%v) = %t, want %t", h, test.pos, got, test.inside)
		}
	}
}

func TestBezierPathConcaveContainsPos(t *testing.T) {
	// A U shape: two uprights joined by a base, leaving a bay open at the top.
	u := BezierPathStart(PtXy(0, 0))
	u, _ = u.Connect(VectorIj(0, 100), VectorZero, VectorZero, false, false)
	u, _ = u.Connect(VectorIj(20, 0), VectorZero, VectorZero, false, false)
	u, _ = u.Connect(VectorIj(0, -60), VectorZero, VectorZero, false, false)
	u, _ = u.Connect(VectorIj(20, 0), VectorZero, VectorZero, false, false)
	u, _ = u.Connect(VectorIj(0, 60), VectorZero, VectorZero, false, false)
	u, _ = u.Connect(VectorIj(20, 0), VectorZero, VectorZero, false, false)
	u, _ = u.Connect(VectorIj(0, -100), VectorZero, VectorZero, false, false)
	u, _ = u.Close()

	bay, err := u.ContainsPos(PtXy(30, 90))
	if err != nil {
		t.Fatalf("ContainsPos(bay) errored: %v", err)
	}
	if bay {
		t.Errorf("ContainsPos(bay) = true, want false")
	}

	arm, err := u.ContainsPos(PtXy(10, 50))
	if err != nil {
		t.Fatalf("ContainsPos(arm) errored: %v", err)
	}
	if !arm {
		t.Errorf("ContainsPos(arm) = false, want true")
	}
}

func TestBezierPathBooleanLaws(t *testing.T) {
	a := rectPath(0, 0, 100, 100)

	and, err := a.And(a)
	if err != nil || len(and) != 1 {
		t.Fatalf("A&A = %v, %v; want single path", and, err)
	}
	or, err := a.Or(a)
	if err != nil || len(or) != 1 {
		t.Fatalf("A|A = %v, %v; want single path", or, err)
	}
	sub, err := a.Sub(a)
	if err != nil || len(sub) != 0 {
		t.Fatalf("A-A = %v, %v; want empty", sub, err)
	}

	b := rectPath(50, 50, 100, 100)
	union, err := a.Or(b)
	if err != nil {
		t.Fatalf("A|B errored: %v", err)
	}
	if len(union) != 1 {
		t.Fatalf("A|B = %d paths, want 1", len(union))
	}
	if n := union[0].Len(); n != 8 {
		t.Errorf("A|B has %d segments, want 8", n)
	}
	box := union[0].BoundingBox()
	if !IsEqualPair(box.MinPt(), PtXy(0, 0)) || !IsEqualPair(box.MaxPt(), PtXy(150, 150)) {
		t.Errorf("A|B bbox = %v, want (0,0)-(150,150)", box)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("A-B errored: %v", err)
	}
	if len(diff) != 1 {
		t.Fatalf("A-B = %d paths, want 1", len(diff))
	}
	if n := diff[0].Len(); n != 6 {
		t.Errorf("A-B has %d segments, want 6", n)
	}

	disjointB := rectPath(500, 500, 10, 10)
	disjointOr, err := a.Or(disjointB)
	if err != nil || len(disjointOr) != 2 {
		t.Fatalf("disjoint A|B = %v, %v; want 2 separate paths", disjointOr, err)
	}
	disjointAnd, err := a.And(disjointB)
	if err != nil || len(disjointAnd) != 0 {
		t.Fatalf("disjoint A&B = %v, %v; want empty", disjointAnd, err)
	}
}

func TestBezierPathToOutlineCircle(t *testing.T) {
	// Approximate a circle of radius 100 at the origin with four cubic
	// quadrants, matching semicircle's handle ratio.
	r := Length(100)
	k := r * semicircle
	p := BezierPathStart(PtXy(0, -r))
	p, _ = p.Connect(VectorIj(r, r), VectorIj(k, 0), VectorIj(r, r-k), true, false)
	p, _ = p.Connect(VectorIj(-r, r), VectorZero, VectorIj(-r+k, r), true, true)
	p, _ = p.Connect(VectorIj(-r, -r), VectorZero, VectorIj(-r, -r+k), true, true)
	p, _ = p.Connect(VectorIj(r, -r), VectorZero, VectorIj(r-k, -r), true, true)
	p, _ = p.Close()

	sides, err := p.ToOutline(20, JoinRound, CapButt)
	if err != nil {
		t.Fatalf("ToOutline errored: %v", err)
	}
	if len(sides) != 2 {
		t.Fatalf("ToOutline of closed path returned %d sides, want 2", len(sides))
	}
	for i, side := range sides {
		if !side.IsClosed() {
			t.Errorf("[%d] outline side not closed", i)
		}
	}

	outerBox := sides[0].BoundingBox()
	outerR := float64(outerBox.Width() / 2)
	if math.Abs(outerR-110) > 1 {
		t.Errorf("outer radius = %v, want ~110", outerR)
	}
}
