package bptree

// CheckInvariants runs the structural and quantitative checks from the
// node model and reports the first violation found, with enough
// detail (node id, index) to locate it. A nil result means every
// invariant holds.
func (t *Tree[K, V]) CheckInvariants() error {
	if err := t.checkStructure(); err != nil {
		return err
	}
	return t.checkLeafChain()
}

// checkStructure walks the tree once, checking key order and
// minimum fill within every node, branch/child count consistency,
// separator correctness, and uniform leaf depth.
func (t *Tree[K, V]) checkStructure() error {
	var zero K
	leafDepth := -1

	var walk func(ref NodeRef, depth int, isRoot bool) (minKey K, hasKeys bool, err error)
	walk = func(ref NodeRef, depth int, isRoot bool) (K, bool, error) {
		if ref.IsLeaf() {
			leaf := t.leaves.get(ref.ID())
			if !isRoot && leaf.isUnderfull(t.capacity) {
				return zero, false, corruptStateError("leaf below minimum fill", ref.ID(), len(leaf.keys))
			}
			for i := 1; i < len(leaf.keys); i++ {
				if !(leaf.keys[i-1] < leaf.keys[i]) {
					return zero, false, corruptStateError("leaf keys out of order", ref.ID(), i)
				}
			}
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return zero, false, corruptStateError("uneven leaf depth", ref.ID(), depth)
			}
			if len(leaf.keys) == 0 {
				return zero, false, nil
			}
			return leaf.keys[0], true, nil
		}

		branch := t.branches.get(ref.ID())
		if !isRoot && branch.isUnderfull(t.capacity) {
			return zero, false, corruptStateError("branch below minimum fill", ref.ID(), len(branch.keys))
		}
		if len(branch.children) != len(branch.keys)+1 {
			return zero, false, corruptStateError("branch child/separator count mismatch", ref.ID(), len(branch.children))
		}
		for i := 1; i < len(branch.keys); i++ {
			if !(branch.keys[i-1] < branch.keys[i]) {
				return zero, false, corruptStateError("branch separators out of order", ref.ID(), i)
			}
		}

		var minKey K
		var has bool
		for i, child := range branch.children {
			childMin, childHas, err := walk(child, depth+1, false)
			if err != nil {
				return zero, false, err
			}
			if !childHas {
				continue
			}
			if i > 0 && !(branch.keys[i-1] == childMin) {
				return zero, false, corruptStateError("separator does not match child minimum", ref.ID(), i-1)
			}
			if !has {
				minKey = childMin
				has = true
			}
		}
		return minKey, has, nil
	}

	_, _, err := walk(t.root, 0, true)
	return err
}

// checkLeafChain walks the sibling chain from the leftmost leaf,
// verifying it visits every leaf exactly once in ascending key order
// and terminates at NULL_NODE, and that the running total matches the
// externally reported length.
func (t *Tree[K, V]) checkLeafChain() error {
	id := t.leftmostLeaf()
	var prevMax K
	havePrev := false
	visited := 0
	seenCount := 0
	maxSlots := t.leaves.len() + t.leaves.freeCountOf() + 1

	for id != nullNode {
		visited++
		if visited > maxSlots {
			return corruptStateError("leaf chain does not terminate", id, visited)
		}
		leaf := t.leaves.get(id)
		if havePrev && len(leaf.keys) > 0 && !(prevMax < leaf.keys[0]) {
			return corruptStateError("leaf chain out of order", id, 0)
		}
		for i := 1; i < len(leaf.keys); i++ {
			if !(leaf.keys[i-1] < leaf.keys[i]) {
				return corruptStateError("leaf chain keys out of order", id, i)
			}
		}
		seenCount += len(leaf.keys)
		if len(leaf.keys) > 0 {
			prevMax = leaf.keys[len(leaf.keys)-1]
			havePrev = true
		}
		id = leaf.next
	}

	if seenCount != t.count {
		return corruptStateError("reported length does not match leaf chain total", nullNode, seenCount)
	}
	return nil
}
