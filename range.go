package bptree

// BoundKind distinguishes the three ways a Bound can constrain one end
// of a range.
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one endpoint of a Range call: either unconstrained, or a
// key that is itself included or excluded from the scan.
type Bound[K ordered] struct {
	Kind BoundKind
	Key  K
}

// UnboundedBound builds an unconstrained endpoint.
func UnboundedBound[K ordered]() Bound[K] { return Bound[K]{Kind: Unbounded} }

// IncludedBound builds an endpoint that itself is part of the range.
func IncludedBound[K ordered](k K) Bound[K] { return Bound[K]{Kind: Included, Key: k} }

// ExcludedBound builds an endpoint that is the boundary but not part
// of the range.
func ExcludedBound[K ordered](k K) Bound[K] { return Bound[K]{Kind: Excluded, Key: k} }

// RangeIterator walks the leaf chain from a single resolved start
// position, checking the end bound per item with a direct conditional
// rather than a combinator chain.
type RangeIterator[K ordered, V any] struct {
	tree   *Tree[K, V]
	leafID NodeId
	index  int
	hi     Bound[K]
	done   bool
}

// Range builds an iterator over keys satisfying lo on the low end and
// hi on the high end. It resolves the start position with a single
// descent; InvalidRange is returned immediately if lo is strictly
// greater than hi, rather than silently yielding an empty sequence.
func (t *Tree[K, V]) Range(lo, hi Bound[K]) (*RangeIterator[K, V], error) {
	if lo.Kind != Unbounded && hi.Kind != Unbounded && lo.Key > hi.Key {
		return nil, invalidRangeError()
	}
	leafID, index := t.resolveRangeStart(lo)
	return &RangeIterator[K, V]{tree: t, leafID: leafID, index: index, hi: hi, done: t.count == 0}, nil
}

func (t *Tree[K, V]) resolveRangeStart(lo Bound[K]) (leafID NodeId, index int) {
	if lo.Kind == Unbounded {
		return t.leftmostLeaf(), 0
	}
	ref := t.root
	for !ref.IsLeaf() {
		branch := t.branches.get(ref.ID())
		ref = branch.children[branch.childIndexFor(lo.Key)]
	}
	leaf := t.leaves.get(ref.ID())
	i, found := leaf.search(lo.Key)
	if lo.Kind == Excluded && found {
		i++
	}
	return ref.ID(), i
}

// Next returns the next pair within the range, in ascending order, or
// ok == false once the range or the tree is exhausted. Advancing past
// the end of a leaf follows the sibling chain without re-descending the
// tree.
func (it *RangeIterator[K, V]) Next() (k K, v V, ok bool) {
	if it.done {
		return
	}
	for {
		leaf := it.tree.leaves.get(it.leafID)
		if it.index >= len(leaf.keys) {
			if leaf.next == nullNode {
				it.done = true
				return
			}
			it.leafID = leaf.next
			it.index = 0
			continue
		}
		key := leaf.keys[it.index]
		switch it.hi.Kind {
		case Included:
			if key > it.hi.Key {
				it.done = true
				return
			}
		case Excluded:
			if key >= it.hi.Key {
				it.done = true
				return
			}
		}
		v = leaf.values[it.index]
		it.index++
		k, ok = key, true
		return
	}
}
