package record

// Counts total y conteo por valor de un campo enum.
type Counts struct {
	Total int            `json:"total"`
	By    map[string]int `json:"by"`
}

// Of devuelve el conteo para v (0 si no aparece).
func (c Counts) Of(v string) int { return c.By[v] }

// Tally agrupa items por el valor de field. Se recalcula en cada llamada.
func Tally[T any](items []T, field func(T) string) Counts {
	c := Counts{Total: len(items), By: make(map[string]int)}
	for _, it := range items {
		c.By[field(it)]++
	}
	return c
}

// Page corta items según limit/offset. limit <= 0 devuelve todo desde offset.
func Page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
