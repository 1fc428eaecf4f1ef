package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in ascending index order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels := gg.ComponentLabels()
	var comps [][]int
	for i, l := range labels {
		if l < 0 {
			continue
		}
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], i)
	}

	return comps
}

// ComponentLabels assigns every walkable cell the id of its connected region
// (0, 1, ... in row-major discovery order). Blocked cells get -1.
// Two nodes are mutually reachable iff their labels are equal and >= 0.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) ComponentLabels() []int {
	total := gg.Len()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	queue := make([]int, 0, total)
	var nbrs []int
	for i0 := 0; i0 < total; i0++ {
		if !gg.walkable[i0] || labels[i0] >= 0 {
			continue // blocked or already labelled
		}
		// BFS to flood the component
		queue = append(queue[:0], i0)
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			nbrs = gg.AppendNeighbors(nbrs[:0], queue[qi])
			for _, v := range nbrs {
				if labels[v] < 0 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return labels
}
