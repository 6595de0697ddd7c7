package clsvg

import "testing"

func assertGroupInvariants(t *testing.T, nodes []GroupNode, depth int) {
	t.Helper()
	for _, n := range nodes {
		if !n.Path.IsClosed() {
			t.Errorf("node at depth %d has an unclosed path", depth)
		}
		want := -1
		if depth%2 == 1 {
			want = 1
		}
		if r := n.Path.Rotations(); r != want && r != 0 {
			t.Errorf("node at depth %d has rotations %d, want %d", depth, r, want)
		}
		for _, c := range n.Children {
			contains, err := n.Path.ContainsPos(samplePos(c.Path))
			if err != nil {
				t.Fatalf("ContainsPos errored: %v", err)
			}
			if !contains {
				t.Errorf("parent at depth %d does not contain child's sample point", depth)
			}
		}
		assertGroupInvariants(t, n.Children, depth+1)
	}
}

func TestNewGroupShapeNesting(t *testing.T) {
	var shape BezierShape
	shape = shape.Add(rectPath(0, 0, 200, 200))
	shape = shape.Add(rectPath(50, 50, 100, 100))
	shape = shape.Add(rectPath(75, 75, 50, 50))

	g, err := NewGroupShape(shape)
	if err != nil {
		t.Fatalf("NewGroupShape errored: %v", err)
	}
	if len(g.Nodes) != 1 {
		t.Fatalf("len(g.Nodes) = %d, want 1 (single outer root)", len(g.Nodes))
	}
	if len(g.Nodes[0].Children) != 1 {
		t.Fatalf("outer node has %d children, want 1", len(g.Nodes[0].Children))
	}
	middle := g.Nodes[0].Children[0]
	if len(middle.Children) != 1 {
		t.Fatalf("middle node has %d children, want 1", len(middle.Children))
	}

	assertGroupInvariants(t, g.Nodes, 0)
}

func TestGroupShapeOrMergesOverlappingRegions(t *testing.T) {
	a, err := NewGroupShape(BezierShape{}.Add(rectPath(0, 0, 100, 100)))
	if err != nil {
		t.Fatalf("NewGroupShape(a) errored: %v", err)
	}
	b, err := NewGroupShape(BezierShape{}.Add(rectPath(50, 50, 100, 100)))
	if err != nil {
		t.Fatalf("NewGroupShape(b) errored: %v", err)
	}

	merged, err := a.Or(b)
	if err != nil {
		t.Fatalf("Or errored: %v", err)
	}
	if len(merged.Nodes) != 1 {
		t.Fatalf("overlapping union has %d top-level nodes, want 1", len(merged.Nodes))
	}
	assertGroupInvariants(t, merged.Nodes, 0)
}

func TestGroupShapeOrKeepsDisjointRegionsSeparate(t *testing.T) {
	a, err := NewGroupShape(BezierShape{}.Add(rectPath(0, 0, 10, 10)))
	if err != nil {
		t.Fatalf("NewGroupShape(a) errored: %v", err)
	}
	b, err := NewGroupShape(BezierShape{}.Add(rectPath(500, 500, 10, 10)))
	if err != nil {
		t.Fatalf("NewGroupShape(b) errored: %v", err)
	}

	merged, err := a.Or(b)
	if err != nil {
		t.Fatalf("Or errored: %v", err)
	}
	if len(merged.Nodes) != 2 {
		t.Fatalf("disjoint union has %d top-level nodes, want 2", len(merged.Nodes))
	}
}
