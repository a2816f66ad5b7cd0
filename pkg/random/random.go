package random

import "math/rand"

// SelectRandomItems selects n random items from slice
// Returns indices of selected items
func SelectRandomItems(totalCount, n int) []int {
	if n <= 0 || totalCount <= 0 {
		return []int{}
	}

	if n > totalCount {
		n = totalCount
	}

	// Create slice of all indices
	allIndices := make([]int, totalCount)
	for i := range allIndices {
		allIndices[i] = i
	}

	// Shuffle using Fisher-Yates algorithm
	for i := len(allIndices) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		allIndices[i], allIndices[j] = allIndices[j], allIndices[i]
	}

	return allIndices[:n]
}

// Pick returns one random element of items.
// The second result is false when items is empty.
func Pick[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[SelectRandomItems(len(items), 1)[0]], true
}
