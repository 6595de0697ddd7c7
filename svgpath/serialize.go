package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chilingg/clsvg"
)

func fnum(v clsvg.Length) string {
	return strconv.FormatFloat(math.Round(float64(v)*1000)/1000, 'f', -1, 64)
}

// Serialize emits shape as SVG path-data: one absolute moveto per path,
// each segment as `l`/`h`/`v` when both controls are zero (picking `h`/`v`
// when the other axis doesn't move), otherwise an absolute `C`, and a
// trailing `z` on every closed path.
func Serialize(shape clsvg.BezierShape) string {
	var b strings.Builder
	for i := 0; i < shape.Len(); i++ {
		path := shape.Path(i)
		pos := path.StartPos()
		fmt.Fprintf(&b, "M %s,%s ", fnum(pos.X()), fnum(pos.Y()))

		for j := 0; j < path.Len(); j++ {
			ctrl := path.Ctrl(j)
			dx, dy := ctrl.Pos().Units()
			if isZeroVector(ctrl.P1()) && isZeroVector(ctrl.P2()) {
				switch {
				case dx == 0:
					fmt.Fprintf(&b, "v %s ", fnum(dy))
				case dy == 0:
					fmt.Fprintf(&b, "h %s ", fnum(dx))
				default:
					fmt.Fprintf(&b, "l %s,%s ", fnum(dx), fnum(dy))
				}
			} else {
				p1, p2 := ctrl.P1(), ctrl.P2()
				fmt.Fprintf(&b, "C %s,%s %s,%s %s,%s ",
					fnum(pos.X()+vx(p1)), fnum(pos.Y()+vy(p1)),
					fnum(pos.X()+vx(p2)), fnum(pos.Y()+vy(p2)),
					fnum(pos.X()+dx), fnum(pos.Y()+dy),
				)
			}
			pos = pos.Add(ctrl.Pos())
		}

		if path.IsClosed() {
			b.WriteString("z ")
		}
	}
	return strings.TrimSpace(b.String())
}

func isZeroVector(v clsvg.Vector) bool { return clsvg.IsZeroPair(v) }
func vx(v clsvg.Vector) clsvg.Length   { x, _ := v.Units(); return x }
func vy(v clsvg.Vector) clsvg.Length   { _, y := v.Units(); return y }
