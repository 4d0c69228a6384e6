package services

// reorder moves the items named in order to the front, in that order. Items not
// named keep their relative order after them, so a stale or partial order never drops data.
func reorder[T any](items []T, order []string, id func(T) string) []T {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[id(item)] = i
	}

	placed := make([]bool, len(items))
	result := make([]T, 0, len(items))
	for _, key := range order {
		i, ok := index[key]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		result = append(result, items[i])
	}
	for i, item := range items {
		if !placed[i] {
			result = append(result, item)
		}
	}
	return result
}

func indexOf[T any](items []T, key string, id func(T) string) int {
	for i, item := range items {
		if id(item) == key {
			return i
		}
	}
	return -1
}
