// Package svgpath is the SVG adapter for the clsvg geometry kernel: it
// translates between SVG path-data strings / primitive elements and
// clsvg.BezierShape, and never builds its own curve math.
package svgpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/chilingg/clsvg"
)

// ErrUnknownCommand is returned when a path-data string contains a command
// letter this parser doesn't recognise, or a recognised command runs out of
// numeric operands.
var ErrUnknownCommand = errors.New("svgpath: unknown path command")

var (
	reArgs = regexp.MustCompile(`[a-zA-Z][^a-zA-Z]*`)
	reNum  = regexp.MustCompile(`[+-]?\d+(\.\d*)?`)
)

// Parse walks an SVG path-data string (the contents of a `d` attribute) and
// translates it into a BezierShape. A new subpath opens on every `M`, on an
// `m` that is the first command, and after every `Z`/`z` (starting at the
// origin); any later `m` is a relative line-to. A drawing command before the
// first moveto returns ErrUnknownCommand.
func Parse(d string) (clsvg.BezierShape, error) {
	var shape clsvg.BezierShape
	var bezier clsvg.BezierPath
	started := false
	pos := clsvg.PtOrig
	first := true

	flush := func() {
		if started && bezier.Len() > 0 {
			shape = shape.Add(bezier)
		}
		started = false
	}

	for _, chunk := range reArgs.FindAllString(d, -1) {
		cmd := rune(chunk[0])
		nums := reNum.FindAllString(chunk[1:], -1)
		i := 0
		next := func() (clsvg.Length, error) {
			if i >= len(nums) {
				return 0, fmt.Errorf("%w: %c missing an operand", ErrUnknownCommand, cmd)
			}
			v, err := strconv.ParseFloat(nums[i], 64)
			i++
			if err != nil {
				return 0, fmt.Errorf("%w: %c has a malformed operand: %v", ErrUnknownCommand, cmd, err)
			}
			return clsvg.Length(v), nil
		}
		nextPair := func() (clsvg.Length, clsvg.Length, error) {
			x, err := next()
			if err != nil {
				return 0, 0, err
			}
			y, err := next()
			if err != nil {
				return 0, 0, err
			}
			return x, y, nil
		}
		requireOpen := func() error {
			if !started {
				return fmt.Errorf("%w: %c with no open subpath", ErrUnknownCommand, cmd)
			}
			return nil
		}

		var err error
		switch cmd {
		case 'M', 'm':
			x, y, e := nextPair()
			if e != nil {
				return shape, e
			}
			if cmd == 'M' || first {
				var dest clsvg.Pt
				if cmd == 'M' {
					dest = clsvg.PtXy(x, y)
				} else {
					dest = pos.Add(clsvg.VectorIj(x, y))
				}
				flush()
				bezier = clsvg.BezierPathStart(dest)
				started = true
				pos = dest
			} else {
				if e := requireOpen(); e != nil {
					return shape, e
				}
				delta := clsvg.VectorIj(x, y)
				bezier, err = bezier.Connect(delta, clsvg.VectorZero, clsvg.VectorZero, false, false)
				pos = pos.Add(delta)
			}
		case 'L', 'l':
			x, y, e := nextPair()
			if e != nil {
				return shape, e
			}
			if e := requireOpen(); e != nil {
				return shape, e
			}
			var delta clsvg.Vector
			if cmd == 'L' {
				delta = pos.VectorTo(clsvg.PtXy(x, y))
			} else {
				delta = clsvg.VectorIj(x, y)
			}
			bezier, err = bezier.Connect(delta, clsvg.VectorZero, clsvg.VectorZero, false, false)
			pos = pos.Add(delta)
		case 'H', 'h':
			x, e := next()
			if e != nil {
				return shape, e
			}
			if e := requireOpen(); e != nil {
				return shape, e
			}
			var dx clsvg.Length
			if cmd == 'H' {
				dx = x - pos.X()
			} else {
				dx = x
			}
			delta := clsvg.VectorIj(dx, 0)
			bezier, err = bezier.Connect(delta, clsvg.VectorZero, clsvg.VectorZero, false, false)
			pos = pos.Add(delta)
		case 'V', 'v':
			y, e := next()
			if e != nil {
				return shape, e
			}
			if e := requireOpen(); e != nil {
				return shape, e
			}
			var dy clsvg.Length
			if cmd == 'V' {
				dy = y - pos.Y()
			} else {
				dy = y
			}
			delta := clsvg.VectorIj(0, dy)
			bezier, err = bezier.Connect(delta, clsvg.VectorZero, clsvg.VectorZero, false, false)
			pos = pos.Add(delta)
		case 'C', 'c':
			x1, y1, e := nextPair()
			if e != nil {
				return shape, e
			}
			x2, y2, e := nextPair()
			if e != nil {
				return shape, e
			}
			x, y, e := nextPair()
			if e != nil {
				return shape, e
			}
			if e := requireOpen(); e != nil {
				return shape, e
			}
			var p1, p2, dest clsvg.Vector
			if cmd == 'C' {
				p1 = pos.VectorTo(clsvg.PtXy(x1, y1))
				p2 = pos.VectorTo(clsvg.PtXy(x2, y2))
				dest = pos.VectorTo(clsvg.PtXy(x, y))
			} else {
				p1 = clsvg.VectorIj(x1, y1)
				p2 = clsvg.VectorIj(x2, y2)
				dest = clsvg.VectorIj(x, y)
			}
			bezier, err = bezier.Connect(dest, p1, p2, true, false)
			pos = pos.Add(dest)
		case 'S', 's':
			x2, y2, e := nextPair()
			if e != nil {
				return shape, e
			}
			x, y, e := nextPair()
			if e != nil {
				return shape, e
			}
			if e := requireOpen(); e != nil {
				return shape, e
			}
			var p2, dest clsvg.Vector
			if cmd == 'S' {
				p2 = pos.VectorTo(clsvg.PtXy(x2, y2))
				dest = pos.VectorTo(clsvg.PtXy(x, y))
			} else {
				p2 = clsvg.VectorIj(x2, y2)
				dest = clsvg.VectorIj(x, y)
			}
			bezier, err = bezier.Connect(dest, clsvg.VectorZero, p2, true, true)
			pos = pos.Add(dest)
		case 'Z', 'z':
			if e := requireOpen(); e != nil {
				return shape, e
			}
			bezier, err = bezier.Close()
			shape = shape.Add(bezier)
			bezier = clsvg.BezierPathStart(clsvg.PtOrig)
			pos = clsvg.PtOrig
		default:
			return shape, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		}
		if err != nil {
			return shape, err
		}
		first = false
	}

	flush()
	return shape, nil
}
