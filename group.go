package clsvg

// GroupNode is one region of a GroupShape forest: Path is the region's own
// boundary, and Children are the holes cut into it (whose own Children are,
// in turn, solids nested inside those holes, and so on).
type GroupNode struct {
	Path     BezierPath
	Children []GroupNode
}

// GroupShape represents a shape with hole semantics: each tree node is a
// region, its children are holes in that region, their children are solids
// nested inside those holes, and so on, alternating orientation by depth.
type GroupShape struct {
	Nodes []GroupNode
}

func samplePos(p BezierPath) Pt {
	if p.Len() == 0 {
		return p.StartPos()
	}
	return vectorToPt(p.Ctrl(0).ValueAt(0.5, ptVector(p.StartPos())))
}

// groupInto finds sNode's place among dGroup's top-level nodes: nested
// inside the first existing node that contains it, adopting any existing
// nodes it contains as its own children, or else appended as a new
// top-level node.
func groupInto(sNode GroupNode, dGroup []GroupNode) ([]GroupNode, error) {
	apos := samplePos(sNode.Path)
	removed := make([]bool, len(dGroup))
	for i := range dGroup {
		contains, err := dGroup[i].Path.ContainsPos(apos)
		if err != nil {
			return nil, err
		}
		if contains {
			children, err := groupInto(sNode, dGroup[i].Children)
			if err != nil {
				return nil, err
			}
			dGroup[i].Children = children
			return dGroup, nil
		}

		dpos := samplePos(dGroup[i].Path)
		contains2, err := sNode.Path.ContainsPos(dpos)
		if err != nil {
			return nil, err
		}
		if contains2 {
			sNode.Children = append(sNode.Children, dGroup[i])
			removed[i] = true
		}
	}

	out := make([]GroupNode, 0, len(dGroup)+1)
	for i, d := range dGroup {
		if !removed[i] {
			out = append(out, d)
		}
	}
	return append(out, sNode), nil
}

// direction reverses any node whose own winding sign disagrees with d,
// then recurses into its children with the orientation flipped.
func direction(d int, nodes []GroupNode) {
	for i := range nodes {
		if r := nodes[i].Path.Rotations(); r != d && r != 0 {
			nodes[i].Path = nodes[i].Path.Reverse()
		}
		direction(-d, nodes[i].Children)
	}
}

// NewGroupShape builds a GroupShape from every closed path in shape,
// nesting each one inside the first existing node whose region contains it,
// then fixes up winding so that orientation alternates with depth (roots
// wind -1, their children +1, and so on).
func NewGroupShape(shape BezierShape) (GroupShape, error) {
	var nodes []GroupNode
	for i := 0; i < shape.Len(); i++ {
		p := shape.Path(i)
		if !p.IsClosed() {
			continue
		}
		var err error
		nodes, err = groupInto(GroupNode{Path: p}, nodes)
		if err != nil {
			return GroupShape{}, err
		}
	}
	direction(-1, nodes)
	return GroupShape{Nodes: nodes}, nil
}

// ToShape flattens the forest, depth first, into a plain BezierShape.
func (g GroupShape) ToShape() BezierShape {
	var out BezierShape
	var walk func(nodes []GroupNode)
	walk = func(nodes []GroupNode) {
		for _, n := range nodes {
			out = out.Add(n.Path)
			walk(n.Children)
		}
	}
	walk(g.Nodes)
	return out
}

// distributeRemainder appends the pieces of a Sub() result beyond the first
// (temp[1:]) onto tempW, following each piece's own winding: a piece that
// still winds like a fresh hole (+1) becomes its own top-level entry in
// tempW, otherwise it nests as a child of the entry tempW just grew.
func distributeRemainder(tempW []GroupNode, pieces []BezierPath) []GroupNode {
	for _, piece := range pieces {
		if piece.Rotations() == 1 {
			tempW = append(tempW, GroupNode{Path: piece})
		} else if len(tempW) > 0 {
			last := &tempW[len(tempW)-1]
			last.Children = append(last.Children, GroupNode{Path: piece})
		}
	}
	return tempW
}

// anding attempts to merge two top-level nodes of a union. It succeeds only
// when the path-level union b1|b2 collapses to a single closed region; on
// success it returns the merged node (new outer boundary, holes carried
// forward or newly cut by the opposite solid). On failure it returns n2
// unchanged, signalling that b1 and b2 don't touch.
func anding(n1, n2 GroupNode) (bool, GroupNode, error) {
	unionPaths, err := n1.Path.Or(n2.Path)
	if err != nil {
		return false, n2, err
	}
	incGroup, err := NewGroupShape(BezierShape{paths: unionPaths})
	if err != nil {
		return false, n2, err
	}
	if len(incGroup.Nodes) != 1 {
		return false, n2, nil
	}

	tempW := append([]GroupNode(nil), incGroup.Nodes[0].Children...)

	// Re-home any solid nested inside one of n1's holes that the union of
	// b2 with that solid also collapses to a single region: it merges into
	// b2/n2 rather than remaining a child of the hole.
	ws1 := make([]GroupNode, 0, len(n1.Children))
	for _, holeNode := range n1.Children {
		blacks := holeNode.Children
		if len(blacks) == 0 {
			ws1 = append(ws1, holeNode)
			continue
		}
		var kept []GroupNode
		for _, bNode := range blacks {
			tmpPaths, err := n2.Path.Or(bNode.Path)
			if err != nil {
				return false, n2, err
			}
			tmpGroup, err := NewGroupShape(BezierShape{paths: tmpPaths})
			if err != nil {
				return false, n2, err
			}
			if len(tmpGroup.Nodes) == 1 {
				n2.Path = tmpGroup.Nodes[0].Path
				n2.Children = tmpGroup.Nodes[0].Children
			} else {
				kept = append(kept, bNode)
			}
		}
		ws1 = append(ws1, GroupNode{Path: holeNode.Path, Children: kept})
	}

	for _, w1Node := range ws1 {
		remainder, err := w1Node.Path.Sub(n2.Path)
		if err != nil {
			return false, n2, err
		}
		if len(remainder) != 0 {
			tempW = append(tempW, GroupNode{Path: remainder[0], Children: w1Node.Children})
		}
		if len(remainder) > 1 {
			tempW = distributeRemainder(tempW, remainder[1:])
		}
		for _, w2Node := range n2.Children {
			inter, err := w2Node.Path.And(w1Node.Path)
			if err != nil {
				return false, n2, err
			}
			for _, u := range inter {
				tempW = append(tempW, GroupNode{Path: u})
			}
		}
	}

	for _, w2Node := range n2.Children {
		remainder, err := w2Node.Path.Sub(n1.Path)
		if err != nil {
			return false, n2, err
		}
		if len(remainder) != 0 {
			tempW = append(tempW, GroupNode{Path: remainder[0], Children: w2Node.Children})
		}
		if len(remainder) > 1 {
			tempW = distributeRemainder(tempW, remainder[1:])
		}
	}

	return true, GroupNode{Path: incGroup.Nodes[0].Path, Children: tempW}, nil
}

// Or returns the union of g and other across their top-level regions,
// transitively re-merging a node that absorbs another against the rest of
// the opposite group, with any node that never finds a match carried
// forward unchanged.
func (g GroupShape) Or(other GroupShape) (GroupShape, error) {
	if len(g.Nodes) == 0 {
		return other, nil
	}
	if len(other.Nodes) == 0 {
		return g, nil
	}

	newGroup := append([]GroupNode(nil), other.Nodes...)
	var oldGroup []GroupNode

	for _, n1 := range g.Nodes {
		p1, g1 := n1.Path, n1.Children
		i := 0
		hIndex := -1
		for i < len(newGroup) {
			ok, merged, err := anding(GroupNode{Path: p1, Children: g1}, newGroup[i])
			if err != nil {
				return GroupShape{}, err
			}
			newGroup[i] = merged
			if ok {
				p1, g1 = merged.Path, merged.Children
				if hIndex != -1 {
					newGroup = append(newGroup[:hIndex], newGroup[hIndex+1:]...)
					hIndex = i - 1
				} else {
					hIndex = i
					i++
				}
			} else {
				i++
			}
		}
		if hIndex == -1 {
			oldGroup = append(oldGroup, GroupNode{Path: p1, Children: g1})
		}
	}

	return GroupShape{Nodes: append(newGroup, oldGroup...)}, nil
}
