package sheetrepo

// Row location. Indices returned here are positions within the slice handed
// back by Store.ReadAll, where index 0 is the header row; the corresponding
// 1-indexed sheet row is index+1.

// maxKnownIDs caps how many alternative ids a not-found error enumerates.
const maxKnownIDs = 10

// locateFirst returns the index of the first data row whose idColumn cell
// equals id, or -1. Empty rows and rows with an empty id cell are skipped.
func locateFirst(rows [][]string, idColumn int, id string) int {
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if v := cell(row, idColumn); v != "" && v == id {
			return i
		}
	}
	return -1
}

// locateAll returns the indices of every data row whose idColumn cell equals
// id, in row order.
func locateAll(rows [][]string, idColumn int, id string) []int {
	var indices []int
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if v := cell(row, idColumn); v != "" && v == id {
			indices = append(indices, i)
		}
	}
	return indices
}

// knownIDs collects up to maxKnownIDs distinct non-empty ids from idColumn,
// in row order, for not-found diagnostics.
func knownIDs(rows [][]string, idColumn int) []string {
	seen := make(map[string]bool)
	var ids []string
	for i, row := range rows {
		if i == 0 {
			continue
		}
		v := cell(row, idColumn)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		ids = append(ids, v)
		if len(ids) == maxKnownIDs {
			break
		}
	}
	return ids
}

// minIndex returns the smallest value in indices; indices must be non-empty.
func minIndex(indices []int) int {
	min := indices[0]
	for _, idx := range indices {
		if idx < min {
			min = idx
		}
	}
	return min
}
