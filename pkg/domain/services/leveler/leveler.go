// Package leveler assigns each part its low-level code: the longest path
// from any top assembly to that part in the BOM graph.
package leveler

import (
	"sort"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/mrperr"
)

// AssignLevels computes the LLC for every part reachable through bomEdges,
// plus every part named in items that never appears in the BOM (LLC 0).
// All edges participate regardless of date effectivity (§3): LLCs must stay
// stable across time.
//
// The algorithm initialises the frontier to top assemblies — parents that
// are never a child — then repeatedly relaxes edges from parts whose level
// is already known, recording the maximum candidate level ever seen for
// each child, until a pass makes no change. If the loop has not reached a
// fixed point within len(parts)+1 passes the BOM contains a cycle and the
// engine fails with CyclicBOMError carrying the witness path. A child part
// that no top assembly reaches sits on or below a cycle with no top
// assembly above it, and fails the same way.
func AssignLevels(bomEdges []entities.BOMEdge, items []entities.Part) (map[entities.Part]int, error) {
	adjacency := make(map[entities.Part][]entities.Part)
	isChild := make(map[entities.Part]bool)
	isParent := make(map[entities.Part]bool)
	allParts := make(map[entities.Part]bool)

	for _, e := range bomEdges {
		adjacency[e.ParentPart] = append(adjacency[e.ParentPart], e.ChildPart)
		isParent[e.ParentPart] = true
		isChild[e.ChildPart] = true
		allParts[e.ParentPart] = true
		allParts[e.ChildPart] = true
	}
	for _, p := range items {
		allParts[p] = true
	}

	llc := make(map[entities.Part]int)
	for p := range isParent {
		if !isChild[p] {
			llc[p] = 0
		}
	}

	maxPasses := len(allParts) + 1
	changed := true
	for pass := 0; changed && pass < maxPasses; pass++ {
		changed = false
		for _, e := range bomEdges {
			parentLevel, known := llc[e.ParentPart]
			if !known {
				continue
			}
			candidate := parentLevel + 1
			if candidate > llc[e.ChildPart] {
				llc[e.ChildPart] = candidate
				changed = true
			}
		}
	}

	cyclic := changed
	for p := range isChild {
		if _, reached := llc[p]; !reached {
			cyclic = true
		}
	}

	if cyclic {
		witness := findCycle(adjacency)
		return nil, &mrperr.CyclicBOMError{Witness: witness}
	}

	for p := range allParts {
		if _, ok := llc[p]; !ok {
			llc[p] = 0
		}
	}

	return llc, nil
}

// findCycle performs a DFS with an explicit recursion stack to locate and
// reconstruct one complete cycle path, for use as the CyclicBOMError witness.
func findCycle(adjacency map[entities.Part][]entities.Part) []string {
	parts := make([]entities.Part, 0, len(adjacency))
	for p := range adjacency {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i] < parts[j] })

	visited := make(map[entities.Part]bool)
	onStack := make(map[entities.Part]bool)
	var path []entities.Part
	var cycle []string

	var visit func(entities.Part) bool
	visit = func(p entities.Part) bool {
		visited[p] = true
		onStack[p] = true
		path = append(path, p)

		for _, child := range adjacency[p] {
			if !visited[child] {
				if visit(child) {
					return true
				}
			} else if onStack[child] {
				start := 0
				for i, part := range path {
					if part == child {
						start = i
						break
					}
				}
				cycle = make([]string, 0, len(path)-start+1)
				for _, part := range path[start:] {
					cycle = append(cycle, string(part))
				}
				cycle = append(cycle, string(child))
				return true
			}
		}

		path = path[:len(path)-1]
		onStack[p] = false
		return false
	}

	for _, p := range parts {
		if !visited[p] {
			if visit(p) {
				return cycle
			}
		}
	}
	return cycle
}

// PartsByLevel groups parts by their LLC and sorts each level's parts by
// identifier ascending, giving the netter its deterministic per-level
// processing order (§4.1 tie-break).
func PartsByLevel(llc map[entities.Part]int) map[int][]entities.Part {
	byLevel := make(map[int][]entities.Part)
	for part, level := range llc {
		byLevel[level] = append(byLevel[level], part)
	}
	for level := range byLevel {
		sort.Slice(byLevel[level], func(i, j int) bool {
			return byLevel[level][i] < byLevel[level][j]
		})
	}
	return byLevel
}

// MaxLevel returns the highest LLC present, or -1 if llc is empty.
func MaxLevel(llc map[entities.Part]int) int {
	max := -1
	for _, level := range llc {
		if level > max {
			max = level
		}
	}
	return max
}
