package router

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1graph"
)

// BranchScorer scores a candidate vertical branch by the vertices on it
// that satisfy reached targets; the default scorer used when nil is
// passed to BackboneRoute simply counts them.
type BranchScorer func(reached []l1graph.VertexID) int

func defaultBranchScorer(reached []l1graph.VertexID) int { return len(reached) }

// step is one hop recorded while walking the backbone, used to rebuild a
// path once a branch successfully reaches its target.
type step struct {
	from, to l1graph.VertexID
}

// BackboneRoute walks east and west from source along horizontal
// continuation lines, detouring onto a vertical line and back when a
// direct step is blocked, and at every chip whose column matches a
// target's column, branches off vertically to try to reach it. Crossbar
// exclusivity (no second switch on an already-switched H-line) is
// enforced via used, exactly as in DijkstraRoute.
func BackboneRoute(g *l1graph.Graph, source l1graph.VertexID, targets []Target, scorer BranchScorer, used *UsedSwitches) map[Target][]l1graph.VertexID {
	if scorer == nil {
		scorer = defaultBranchScorer
	}
	if used == nil {
		used = NewUsedSwitches()
	}

	remaining := make(map[Target]bool, len(targets))
	for _, t := range targets {
		remaining[t] = true
	}
	out := make(map[Target][]l1graph.VertexID, len(targets))

	for _, dir := range []int{+1, -1} {
		walkDirection(g, source, dir, remaining, out, scorer, used)
	}
	return out
}

// walkDirection advances the backbone one chip at a time in dir (+1 east,
// -1 west) from cur, branching off at each chip to try any target whose
// column matches, and recording successful branches into out.
func walkDirection(g *l1graph.Graph, start l1graph.VertexID, dir int, remaining map[Target]bool, out map[Target][]l1graph.VertexID, scorer BranchScorer, used *UsedSwitches) {
	cur := start
	path := []l1graph.VertexID{cur}
	visitedChips := map[string]bool{cur.HICANN.String(): true}

	for steps := 0; steps < coord.WaferWidth; steps++ {
		tryBranches(g, cur, path, remaining, out, scorer, used)
		if allFound(remaining) {
			return
		}

		next, ok := stepContinuation(g, cur, dir)
		if !ok {
			next, ok = detour(g, cur, dir, used)
			if !ok {
				return
			}
		}
		if visitedChips[next.HICANN.String()] && next.HICANN == cur.HICANN {
			return
		}
		visitedChips[next.HICANN.String()] = true
		path = append(path, next)
		cur = next
	}
}

func allFound(remaining map[Target]bool) bool {
	for _, want := range remaining {
		if want {
			return false
		}
	}
	return true
}

// stepContinuation follows the unique east/west continuation edge from an
// H-line vertex, if present.
func stepContinuation(g *l1graph.Graph, cur l1graph.VertexID, dir int) (l1graph.VertexID, bool) {
	if cur.Kind != l1graph.LineH {
		return l1graph.VertexID{}, false
	}
	for _, n := range g.Neighbors(cur) {
		if n.Kind != l1graph.LineH || n.Index != cur.Index {
			continue
		}
		if dir > 0 && n.HICANN.X > cur.HICANN.X {
			return n, true
		}
		if dir < 0 && n.HICANN.X < cur.HICANN.X {
			return n, true
		}
	}
	return l1graph.VertexID{}, false
}

// detour tries every connected V-line on the current chip, walks
// perpendicular, and re-enters the original horizontal direction on a new
// H-line; it keeps the candidate that recovers the most horizontal
// progress, requiring an advance of at least one column.
func detour(g *l1graph.Graph, cur l1graph.VertexID, dir int, used *UsedSwitches) (l1graph.VertexID, bool) {
	if cur.Kind != l1graph.LineH {
		return l1graph.VertexID{}, false
	}

	var best l1graph.VertexID
	bestGain := 0
	found := false

	for _, vline := range g.Neighbors(cur) {
		if vline.Kind != l1graph.LineV {
			continue
		}
		if used.conflicts(cur, vline) {
			continue
		}
		for _, reentry := range g.Neighbors(vline) {
			if reentry.Kind != l1graph.LineH || reentry.HICANN == cur.HICANN {
				continue
			}
			gain := int(reentry.HICANN.X-cur.HICANN.X) * dir
			if gain < 1 {
				continue
			}
			if !found || gain > bestGain {
				best, bestGain, found = reentry, gain, true
			}
		}
	}
	return best, found
}

// tryBranches attempts, for every still-unsatisfied target whose column
// matches cur's chip, to walk cur's connected V-lines toward the target's
// row and commits the highest-scoring successful branch (the first one
// found among equal scores).
func tryBranches(g *l1graph.Graph, cur l1graph.VertexID, backbonePath []l1graph.VertexID, remaining map[Target]bool, out map[Target][]l1graph.VertexID, scorer BranchScorer, used *UsedSwitches) {
	for t, want := range remaining {
		if !want || t.HICANN.X != cur.HICANN.X {
			continue
		}
		if t.Orientation == l1graph.LineH && t.HICANN == cur.HICANN {
			remaining[t] = false
			out[t] = append(append([]l1graph.VertexID{}, backbonePath...))
			continue
		}

		var bestBranch []l1graph.VertexID
		bestScore := -1
		for _, vline := range g.Neighbors(cur) {
			if vline.Kind != l1graph.LineV || used.conflicts(cur, vline) {
				continue
			}
			branch := walkVerticalToward(g, vline, t.HICANN.Y)
			if branch == nil {
				continue
			}
			reached := []l1graph.VertexID{branch[len(branch)-1]}
			score := scorer(reached)
			if score > bestScore {
				bestBranch, bestScore = branch, score
			}
		}
		if bestBranch == nil {
			continue
		}
		last := bestBranch[len(bestBranch)-1]
		if last.HICANN.Y != t.HICANN.Y || t.Orientation != l1graph.LineV {
			continue
		}
		full := append(append([]l1graph.VertexID{}, backbonePath...), bestBranch...)
		remaining[t] = false
		out[t] = full
	}
}

// walkVerticalToward follows V-line continuation edges from vline toward
// targetY, returning the chip-by-chip path, or nil if targetY is never
// reached.
func walkVerticalToward(g *l1graph.Graph, vline l1graph.VertexID, targetY int16) []l1graph.VertexID {
	path := []l1graph.VertexID{vline}
	cur := vline
	for i := 0; i < coord.WaferHeight; i++ {
		if cur.HICANN.Y == targetY {
			return path
		}
		dir := int16(1)
		if targetY < cur.HICANN.Y {
			dir = -1
		}
		next, ok := stepVerticalContinuation(g, cur, dir)
		if !ok {
			return nil
		}
		path = append(path, next)
		cur = next
	}
	return nil
}

func stepVerticalContinuation(g *l1graph.Graph, cur l1graph.VertexID, dir int16) (l1graph.VertexID, bool) {
	if cur.Kind != l1graph.LineV {
		return l1graph.VertexID{}, false
	}
	for _, n := range g.Neighbors(cur) {
		if n.Kind != l1graph.LineV || n.Index != cur.Index {
			continue
		}
		if dir > 0 && n.HICANN.Y > cur.HICANN.Y {
			return n, true
		}
		if dir < 0 && n.HICANN.Y < cur.HICANN.Y {
			return n, true
		}
	}
	return l1graph.VertexID{}, false
}
