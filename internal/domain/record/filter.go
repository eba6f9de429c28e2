package record

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate condición sobre un registro.
type Predicate[T any] func(T) bool

// AllValue valor de filtro que desactiva un filtro de enum.
const AllValue = "All"

// Where aplica los predicados (AND) preservando el orden.
func Where[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAll(it, preds) {
			out = append(out, it)
		}
	}
	return out
}

func matchAll[T any](it T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(it) {
			return false
		}
	}
	return true
}

// MatchText coincide si query aparece (sin distinguir mayúsculas) en alguno de los campos.
// Una consulta vacía coincide con todo.
func MatchText[T any](query string, fields ...func(T) string) Predicate[T] {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields {
			if strings.Contains(fold(f(it)), q) {
				return true
			}
		}
		return false
	}
}

// MatchEnum coincide por igualdad exacta. "" y "All" desactivan el filtro.
func MatchEnum[T any](want string, field func(T) string) Predicate[T] {
	if want == "" || want == AllValue {
		return nil
	}
	return func(it T) bool { return field(it) == want }
}

// fold usa un Caser por llamada; cases.Caser no es seguro entre goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
