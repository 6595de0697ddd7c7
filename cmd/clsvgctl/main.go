// Command clsvgctl is a small front end over the clsvg geometry kernel: it
// reads SVG path-data strings as positional arguments and prints the result
// of a kernel operation on stdout: a single number for length, path-data for
// outline and bool.
package main

import (
	"fmt"
	"os"

	"github.com/chilingg/clsvg"
	"github.com/chilingg/clsvg/svgpath"
	"github.com/spf13/cobra"
)

func firstClosedOrFirst(shape clsvg.BezierShape) (clsvg.BezierPath, error) {
	if shape.Len() == 0 {
		return clsvg.BezierPath{}, fmt.Errorf("path-data contains no subpaths")
	}
	for i := 0; i < shape.Len(); i++ {
		if p := shape.Path(i); p.IsClosed() {
			return p, nil
		}
	}
	return shape.Path(0), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clsvgctl",
		Short: "Inspect and transform SVG path-data through the clsvg kernel",
	}
	root.AddCommand(newLengthCmd(), newOutlineCmd(), newBoolCmd())
	return root
}

func newLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length <d>",
		Short: "Print the approximate total arc length of every subpath",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := svgpath.Parse(args[0])
			if err != nil {
				return err
			}
			var total clsvg.Length
			for i := 0; i < shape.Len(); i++ {
				path := shape.Path(i)
				for j := 0; j < path.Len(); j++ {
					total += path.Ctrl(j).ApproximatedLength(12)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", total)
			return nil
		},
	}
}

func newOutlineCmd() *cobra.Command {
	var join, capFlag string
	cmd := &cobra.Command{
		Use:   "outline <d> <width>",
		Short: "Stroke the first closed subpath (or the first subpath) into its offset outline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := svgpath.Parse(args[0])
			if err != nil {
				return err
			}
			path, err := firstClosedOrFirst(shape)
			if err != nil {
				return err
			}
			var width float64
			if _, err := fmt.Sscanf(args[1], "%g", &width); err != nil {
				return fmt.Errorf("invalid width %q: %w", args[1], err)
			}

			joinType, err := parseJoin(join)
			if err != nil {
				return err
			}
			capType, err := parseCap(capFlag)
			if err != nil {
				return err
			}

			sides, err := path.ToOutline(clsvg.Length(width), joinType, capType)
			if err != nil {
				return err
			}
			var out clsvg.BezierShape
			for _, side := range sides {
				out = out.Add(side)
			}
			fmt.Fprintln(cmd.OutOrStdout(), svgpath.Serialize(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&join, "join", "miter", "corner join style: miter or round")
	cmd.Flags().StringVar(&capFlag, "cap", "butt", "open-path end cap style: butt or round")
	return cmd
}

func parseJoin(s string) (clsvg.JoinType, error) {
	switch s {
	case "miter":
		return clsvg.JoinMiter, nil
	case "round":
		return clsvg.JoinRound, nil
	default:
		return 0, fmt.Errorf("unknown join style %q", s)
	}
}

func parseCap(s string) (clsvg.CapType, error) {
	switch s {
	case "butt":
		return clsvg.CapButt, nil
	case "round":
		return clsvg.CapRound, nil
	default:
		return 0, fmt.Errorf("unknown cap style %q", s)
	}
}

func newBoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bool <and|or|sub> <d-a> <d-b>",
		Short: "Combine the first closed subpath (or the first subpath) of each operand",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapeA, err := svgpath.Parse(args[1])
			if err != nil {
				return err
			}
			shapeB, err := svgpath.Parse(args[2])
			if err != nil {
				return err
			}
			a, err := firstClosedOrFirst(shapeA)
			if err != nil {
				return err
			}
			b, err := firstClosedOrFirst(shapeB)
			if err != nil {
				return err
			}

			var result []clsvg.BezierPath
			switch args[0] {
			case "and":
				result, err = a.And(b)
			case "or":
				result, err = a.Or(b)
			case "sub":
				result, err = a.Sub(b)
			default:
				return fmt.Errorf("unknown bool operator %q", args[0])
			}
			if err != nil {
				return err
			}

			var out clsvg.BezierShape
			for _, p := range result {
				out = out.Add(p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), svgpath.Serialize(out))
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
