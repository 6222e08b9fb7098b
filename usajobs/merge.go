package usajobs

// Merge concatenates two position sets and removes duplicates by PositionID,
// keeping the first occurrence. Title-search results go first so they win
// over keyword-search results when the same id appears in both; surviving
// order follows first occurrence in the concatenation.
func Merge(a, b []Position) []Position {
	merged := make([]Position, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))

	for _, position := range append(append([]Position{}, a...), b...) {
		if _, ok := seen[position.PositionID]; ok {
			continue
		}
		seen[position.PositionID] = struct{}{}
		merged = append(merged, position)
	}

	return merged
}
