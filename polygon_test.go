package clsvg

import (
	"math"
	"testing"
)

func TestRectangle(t *testing.T) {
	identityTests := []struct {
		a        Rectangle
		s        string
		min, max Pt
		w, h     Length
	}{
		{
			//0
			RectanglePt(PtXy(2, -2), PtXy(-2, 2)),
			"Rectangle[ Polygon(Point({-2, -2}), Point({-2, 2}), Point({2, 2}), Point({2, -2})) ]",
			PtXy(-2, -2), PtXy(2, 2),
			4, 4,
		},
	}
	for h, test := range identityTests {
		a := test.a
		if s := a.String(); s != test.s {
			t.Errorf("[%d](%s).String() failed. %s != %s",
				h, a, s, test.s)
		}
		if min := a.MinPt(); !IsEqualPair(min, test.min) {
			t.Errorf("[%d](%s).MinPt() failed. %v != %v",
				h, a, min, test.min)
		}
		if max := a.MaxPt(); !IsEqualPair(max, test.max) {
			t.Errorf("[%d](%s).MaxPt() failed. %v != %v",
				h, a, max, test.max)
		}
		if width := a.Width(); !IsEqual(width, test.w) {
			t.Errorf("[%d](%s).Width() failed. %f != %f",
				h, a, width, test.w)
		}
		if height := a.Height(); !IsEqual(height, test.h) {
			t.Errorf("[%d](%s).Height() failed. %f != %f",
				h, a, height, test.h)
		}
		if width, height := a.Dims(); !IsEqual(width, test.w) || !IsEqual(height, test.h) {
			t.Errorf("[%d](%s).Dims() failed. (%f, %f) != (%f, %f)",
				h, a, width, height, test.w, test.h)
		}

	}

	errorTests := []struct {
		a     Rectangle
		isErr bool
	}{
		{RectanglePt(PtXy(1, 1), PtXy(5, 5)), false},
		{RectanglePt(PtXy(-1, -1), PtXy(-5, -5)), false},
		{RectanglePt(PtXy(Length(math.NaN()), 1), PtXy(5, 5)), true},
		{RectanglePt(PtXy(1, 1), PtXy(5, Length(math.NaN()))), true},
		{RectanglePt(PtXy(1, Length(math.Inf(1))), PtXy(5, 5)), true},
		{RectanglePt(PtXy(1, 1), PtXy(Length(math.Inf(-1)), 5)), true},
	}
	for h, test := range errorTests {
		a := test.a
		_, err := a.OrErr()
		if (err != nil) != test.isErr {
			t.Errorf("[%d](%v).OrErr() failed. %t != %t. %v",
				h, test.a, (err != nil), test.isErr, err)
		}
	}
}

func TestIntersectionRectangleRectangle(t *testing.T) {
	tests := []struct {
		a, b Rectangle
		want []Rectangle
	}{
		{
			//0
			RectanglePt(PtXy(0, 0), PtXy(10, 10)),
			RectanglePt(PtXy(5, 5), PtXy(15, 15)),
			[]Rectangle{RectanglePt(PtXy(5, 5), PtXy(10, 10))},
		}, {
			RectanglePt(PtXy(0, 0), PtXy(10, 10)),
			RectanglePt(PtXy(20, 20), PtXy(30, 30)),
			nil,
		},
	}
	for h, test := range tests {
		got := IntersectionRectangleRectangle(test.a, test.b)
		if len(got) != len(test.want) {
			t.Fatalf("[%d]IntersectionRectangleRectangle(%v, %v) (length) failed. %v != %v",
				h, test.a, test.b, got, test.want)
		}
		for i := range got {
			if !IsEqualPair(got[i].MinPt(), test.want[i].MinPt()) || !IsEqualPair(got[i].MaxPt(), test.want[i].MaxPt()) {
				t.Errorf("[%d][%d]IntersectionRectangleRectangle(%v, %v) failed. %v != %v",
					h, i, test.a, test.b, got[i], test.want[i])
			}
		}
	}
}

func BenchmarkRectangleRectangle(b *testing.B) {
	a := RectanglePt(PtXy(1, 1), PtXy(5, 5))
	c := RectanglePt(PtXy(3, 3), PtXy(8, 8))
	for h := 0; h < b.N; h++ {
		IntersectionRectangleRectangle(a, c)
	}
}
