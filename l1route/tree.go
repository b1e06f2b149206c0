package l1route

import "sort"

// L1RouteTree is a prefix tree over routes sharing a common head: each
// node holds the segment slice from its parent to itself, and children are
// kept sorted by Less for deterministic iteration.
type L1RouteTree struct {
	Head     []L1RouteSegment
	Children []*L1RouteTree
}

// NewL1RouteTree builds a single-node tree whose head is route.
func NewL1RouteTree(route []L1RouteSegment) *L1RouteTree {
	return &L1RouteTree{Head: append([]L1RouteSegment{}, route...)}
}

// commonPrefixLen returns how many leading segments a and b share.
func commonPrefixLen(a, b []L1RouteSegment) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i].Equal(b[i]) {
		i++
	}
	return i
}

// Add inserts route into the tree, splitting the head at the first point
// of divergence and demoting the old tail into a new child subtree. If
// route is a strict prefix of the head, an empty child subtree is added to
// mark an en-passant target along the way.
func (t *L1RouteTree) Add(route []L1RouteSegment) {
	n := commonPrefixLen(t.Head, route)

	switch {
	case n == len(t.Head) && n == len(route):
		// Identical route; nothing to do.
		return

	case n == len(t.Head):
		// route extends past the current head; recurse into (or create) a
		// child matching the remainder.
		rest := route[n:]
		for _, c := range t.Children {
			if len(c.Head) > 0 && len(rest) > 0 && c.Head[0].Equal(rest[0]) {
				c.Add(rest)
				t.sortChildren()
				return
			}
		}
		t.Children = append(t.Children, NewL1RouteTree(rest))
		t.sortChildren()
		return

	default:
		// Divergence at n (n < len(Head)): demote the old tail as a new
		// subtree, truncate head to the shared prefix, and attach the
		// incoming remainder (possibly empty, marking an en-passant
		// target) as a sibling subtree.
		oldTail := append([]L1RouteSegment{}, t.Head[n:]...)
		oldChildren := t.Children

		t.Head = append([]L1RouteSegment{}, t.Head[:n]...)
		t.Children = []*L1RouteTree{{Head: oldTail, Children: oldChildren}}

		newTail := append([]L1RouteSegment{}, route[n:]...)
		t.Children = append(t.Children, &L1RouteTree{Head: newTail})
		t.sortChildren()
	}
}

func (t *L1RouteTree) sortChildren() {
	sort.Slice(t.Children, func(i, j int) bool {
		a, b := t.Children[i].Head, t.Children[j].Head
		if len(a) == 0 || len(b) == 0 {
			return len(a) < len(b)
		}
		return Less(a[0], b[0])
	})
}

// Routes returns every full route (head concatenated through each leaf)
// represented by the tree, in deterministic child order.
func (t *L1RouteTree) Routes() [][]L1RouteSegment {
	if len(t.Children) == 0 {
		return [][]L1RouteSegment{append([]L1RouteSegment{}, t.Head...)}
	}
	var out [][]L1RouteSegment
	for _, c := range t.Children {
		for _, sub := range c.Routes() {
			full := make([]L1RouteSegment, 0, len(t.Head)+len(sub))
			full = append(full, t.Head...)
			full = append(full, sub...)
			out = append(out, full)
		}
	}
	return out
}
