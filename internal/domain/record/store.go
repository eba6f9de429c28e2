package record

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/domain"
)

// Placement posición de inserción de los registros nuevos.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// Schema describe cómo leer y escribir el id y el estado de T.
// Status/SetStatus son opcionales: sin ellos no hay estado por defecto ni ToggleStatus.
type Schema[T any] struct {
	Name          string
	ID            func(*T) string
	SetID         func(*T, string)
	Status        func(*T) string
	SetStatus     func(*T, string)
	DefaultStatus string
	Placement     Placement
}

// Store colección en memoria de registros T. Todas las mutaciones se serializan con un mutex
// y se aplican en un solo paso: una operación fallida no deja cambios.
type Store[T any] struct {
	mu     sync.RWMutex
	schema Schema[T]
	ids    IDAllocator
	items  []T
	log    zerolog.Logger
}

// New crea un store con los registros iniciales en el orden dado.
func New[T any](schema Schema[T], ids IDAllocator, log zerolog.Logger, seed ...T) *Store[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Store[T]{schema: schema, ids: ids, items: items, log: log.With().Str("store", schema.Name).Logger()}
}

// Create asigna un id nuevo, completa el estado por defecto si viene vacío e inserta el registro.
// El id del borrador se ignora.
func (s *Store[T]) Create(draft T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(draft)
}

// CreateUnique igual que Create, pero falla con ErrDuplicate si algún registro existente
// coincide con el borrador según same. La comprobación y la inserción son atómicas.
func (s *Store[T]) CreateUnique(draft T, same func(existing, draft T) bool) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if same(it, draft) {
			var zero T
			return zero, fmt.Errorf("%s: %w", s.schema.Name, domain.ErrDuplicate)
		}
	}
	return s.insert(draft), nil
}

func (s *Store[T]) insert(draft T) T {
	id := s.ids.Next()
	for s.indexOf(id) >= 0 {
		id = s.ids.Next()
	}
	s.schema.SetID(&draft, id)
	if s.schema.SetStatus != nil && s.schema.Status(&draft) == "" {
		s.schema.SetStatus(&draft, s.schema.DefaultStatus)
	}

	if s.schema.Placement == Prepend {
		s.items = append([]T{draft}, s.items...)
	} else {
		s.items = append(s.items, draft)
	}
	return draft
}

// Get devuelve una copia del registro con ese id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, s.notFound("get", id)
	}
	return s.items[i], nil
}

// Update aplica apply sobre una copia del registro y la guarda. El id no puede cambiar.
// Si apply devuelve error el registro queda intacto.
func (s *Store[T]) Update(id string, apply func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, s.notFound("update", id)
	}
	next := s.items[i]
	if err := apply(&next); err != nil {
		var zero T
		return zero, err
	}
	s.schema.SetID(&next, id)
	s.items[i] = next
	return next, nil
}

// UpdateUnique igual que Update, pero falla con ErrDuplicate si el resultado coincide según same
// con otro registro de la colección. La comprobación y la escritura son atómicas.
func (s *Store[T]) UpdateUnique(id string, apply func(*T) error, same func(existing, draft T) bool) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, s.notFound("update", id)
	}
	next := s.items[i]
	if err := apply(&next); err != nil {
		var zero T
		return zero, err
	}
	s.schema.SetID(&next, id)
	for j, it := range s.items {
		if j != i && same(it, next) {
			var zero T
			return zero, fmt.Errorf("%s %s: %w", s.schema.Name, id, domain.ErrDuplicate)
		}
	}
	s.items[i] = next
	return next, nil
}

// Remove elimina el registro solo si confirmed es verdadero.
func (s *Store[T]) Remove(id string, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return s.notFound("remove", id)
	}
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return nil
}

// ToggleStatus alterna el estado entre a y b. Cualquier valor distinto de a pasa a a.
func (s *Store[T]) ToggleStatus(id, a, b string) (T, error) {
	if s.schema.SetStatus == nil {
		var zero T
		return zero, fmt.Errorf("%s: sin campo de estado: %w", s.schema.Name, domain.ErrInvalidInput)
	}
	return s.Update(id, func(rec *T) error {
		if s.schema.Status(rec) == a {
			s.schema.SetStatus(rec, b)
		} else {
			s.schema.SetStatus(rec, a)
		}
		return nil
	})
}

// All devuelve una copia de la colección en su orden actual.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Filter devuelve los registros que cumplen todos los predicados, en el orden de la colección.
func (s *Store[T]) Filter(preds ...Predicate[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Where(s.items, preds...)
}

// Len cantidad de registros.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) indexOf(id string) int {
	for i := range s.items {
		if s.schema.ID(&s.items[i]) == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) notFound(op, id string) error {
	s.log.Warn().Str("op", op).Str("id", id).Msg("registro inexistente")
	return fmt.Errorf("%s %s: %w", s.schema.Name, id, domain.ErrNotFound)
}
