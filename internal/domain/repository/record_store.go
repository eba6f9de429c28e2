package repository

import "github.com/jhoicas/fumimanager/internal/domain/record"

// RecordStore puerto genérico de una colección en memoria; lo implementa *record.Store[T].
type RecordStore[T any] interface {
	Create(draft T) T
	CreateUnique(draft T, same func(existing, draft T) bool) (T, error)
	Get(id string) (T, error)
	Update(id string, apply func(*T) error) (T, error)
	UpdateUnique(id string, apply func(*T) error, same func(existing, draft T) bool) (T, error)
	Remove(id string, confirmed bool) error
	ToggleStatus(id, a, b string) (T, error)
	All() []T
	Filter(preds ...record.Predicate[T]) []T
	Len() int
}

var _ RecordStore[struct{}] = (*record.Store[struct{}])(nil)
