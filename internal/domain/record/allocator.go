package record

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDAllocator genera identificadores nuevos para un Store.
// Los valores devueltos nunca se repiten dentro del mismo allocator.
type IDAllocator interface {
	Next() string
}

// Sequence contador monotónico ("1", "2", ...).
type Sequence struct {
	mu   sync.Mutex
	last int64
}

// NewSequence crea un contador cuyo primer valor será after+1.
func NewSequence(after int64) *Sequence {
	return &Sequence{last: after}
}

func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return strconv.FormatInt(s.last, 10)
}

// Labels etiquetas prefijo-año-correlativo, p. ej. INV-2025-006.
type Labels struct {
	mu     sync.Mutex
	prefix string
	last   int
	now    func() time.Time
}

// NewLabels crea un generador de etiquetas; el primer correlativo será after+1.
// now puede ser nil (usa time.Now).
func NewLabels(prefix string, after int, now func() time.Time) *Labels {
	if now == nil {
		now = time.Now
	}
	return &Labels{prefix: prefix, last: after, now: now}
}

func (l *Labels) Next() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last++
	return fmt.Sprintf("%s-%d-%03d", l.prefix, l.now().Year(), l.last)
}

// UUIDs genera UUID v4.
type UUIDs struct{}

func (UUIDs) Next() string { return uuid.New().String() }
