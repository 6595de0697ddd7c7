package svgpath

import (
	"math"
	"testing"

	"github.com/chilingg/clsvg"
)

func TestRectPrimitive(t *testing.T) {
	path, err := Rect(0, 0, 80, 40)
	if err != nil {
		t.Fatalf("Rect errored: %v", err)
	}
	if !path.IsClosed() {
		t.Fatalf("Rect() path is not closed")
	}
	box := path.BoundingBox()
	if !clsvg.IsEqualPair(box.MinPt(), clsvg.PtXy(0, 0)) || !clsvg.IsEqualPair(box.MaxPt(), clsvg.PtXy(80, 40)) {
		t.Errorf("BoundingBox() = %v, want (0,0)-(80,40)", box)
	}
	if a := box.Area(); !clsvg.IsEqual(a, 3200) {
		t.Errorf("Area() = %v, want 3200", a)
	}

	inside, err := path.ContainsPos(clsvg.PtXy(40, 20))
	if err != nil || !inside {
		t.Errorf("ContainsPos(center) = %t, %v, want true, nil", inside, err)
	}
	outside, err := path.ContainsPos(clsvg.PtXy(81, 20))
	if err != nil || outside {
		t.Errorf("ContainsPos(outside) = %t, %v, want false, nil", outside, err)
	}
}

func TestCirclePrimitive(t *testing.T) {
	path, err := Circle(clsvg.PtOrig, 50)
	if err != nil {
		t.Fatalf("Circle errored: %v", err)
	}
	if !path.IsClosed() {
		t.Fatalf("Circle() path is not closed")
	}
	box := path.BoundingBox()
	if w := float64(box.Width()); math.Abs(w-100) > 1e-6 {
		t.Errorf("Width() = %v, want 100", w)
	}
}

func TestLineAndPolyline(t *testing.T) {
	line, err := Line(clsvg.PtXy(0, 0), clsvg.PtXy(10, 10))
	if err != nil {
		t.Fatalf("Line errored: %v", err)
	}
	if line.Len() != 1 {
		t.Fatalf("Line().Len() = %d, want 1", line.Len())
	}

	poly, err := Polyline([]clsvg.Pt{clsvg.PtXy(0, 0), clsvg.PtXy(10, 0), clsvg.PtXy(10, 10)})
	if err != nil {
		t.Fatalf("Polyline errored: %v", err)
	}
	if poly.Len() != 2 {
		t.Fatalf("Polyline().Len() = %d, want 2", poly.Len())
	}
	if !clsvg.IsEqualPair(poly.EndPos(), clsvg.PtXy(10, 10)) {
		t.Errorf("Polyline().EndPos() = %v, want (10,10)", poly.EndPos())
	}
}
