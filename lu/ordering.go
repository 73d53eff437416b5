package lu

// chooseMarkowitzPivot refreshes the occupancy counts of the active submatrix
// and selects the pivot position minimizing the Markowitz cost
// (rowCount−1)·(colCount−1) over all active nonzero candidates.
//
// Tie-breaking is fully deterministic: among equal costs the candidate with
// the lowest row index wins, then the lowest column index. ok is false when
// the active submatrix holds no nonzero entry — a structurally or numerically
// singular basis.
//
// Complexity: O(active nnz) per call (one pass to count, one to select).
func (ws *workspace) chooseMarkowitzPivot() (pivotRow, pivotCol int, ok bool) {
	// 1) Refresh occupancy counts. Exact arithmetic can cancel entries to
	//    zero, so counts come from current values, not registration history.
	for i := 0; i < ws.n; i++ {
		ws.rowCount[i] = 0
		ws.colCount[i] = 0
	}
	for j := 0; j < ws.n; j++ {
		if !ws.colActive[j] {
			continue
		}
		for _, i := range ws.cols[j].Indices() {
			if ws.rowActive[i] && !ws.cols[j].At(i).IsZero() {
				ws.rowCount[i]++
				ws.colCount[j]++
			}
		}
	}

	// 2) Scan candidates for the minimal Markowitz cost.
	bestCost := -1
	for j := 0; j < ws.n; j++ {
		if !ws.colActive[j] {
			continue
		}
		for _, i := range ws.cols[j].Indices() {
			if !ws.rowActive[i] || ws.cols[j].At(i).IsZero() {
				continue
			}
			cost := (ws.rowCount[i] - 1) * (ws.colCount[j] - 1)
			switch {
			case bestCost < 0 || cost < bestCost:
				bestCost, pivotRow, pivotCol = cost, i, j
			case cost == bestCost && (i < pivotRow || (i == pivotRow && j < pivotCol)):
				pivotRow, pivotCol = i, j
			}
		}
	}

	return pivotRow, pivotCol, bestCost >= 0
}
