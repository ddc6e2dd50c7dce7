package minpairs

import "sort"

// Match pairs the records of a and b that share a skeleton. For each
// shared skeleton it emits every (a-record, b-record) combination.
//
// Output is ordered by skeleton, then by the first record's orthography,
// then the second's, then by record ID, so identical inputs always give
// identical output. No shared skeleton yields an empty, non-nil slice.
func Match(a, b NeutralizationMap) []Pair {
	keys := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		start := len(pairs)
		for _, ra := range a[k] {
			for _, rb := range b[k] {
				pairs = append(pairs, Pair{Skeleton: k, First: ra, Second: rb})
			}
		}
		group := pairs[start:]
		sort.Slice(group, func(i, j int) bool {
			return pairLess(group[i], group[j])
		})
	}
	return pairs
}

func pairLess(x, y Pair) bool {
	if x.First.Orthography != y.First.Orthography {
		return x.First.Orthography < y.First.Orthography
	}
	if x.Second.Orthography != y.Second.Orthography {
		return x.Second.Orthography < y.Second.Orthography
	}
	if x.First.ID != y.First.ID {
		return x.First.ID < y.First.ID
	}
	return x.Second.ID < y.Second.ID
}
