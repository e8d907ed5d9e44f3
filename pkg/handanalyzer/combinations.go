package handanalyzer

// Combinations returns every k-sized subset of items, each subset keeping the input order.
// The subsets are produced in lexicographic order of their indexes.
// If k is larger than the number of items, no subsets are returned.
func Combinations[T any](items []T, k int) [][]T {
	n := len(items)
	if k < 0 || k > n {
		return nil
	}

	combos := make([][]T, 0, binomial(n, k))

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]T, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		combos = append(combos, combo)

		// find the right-most index that can still move
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return combos
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func binomial(n, k int) int {
	if k > n-k {
		k = n - k
	}

	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}

	return result
}
