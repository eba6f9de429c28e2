package auth

import "context"

// LoginLock guarda de reentrada del login: una sola petición en vuelo por clave.
// Acquire no espera: si la clave está tomada devuelve domain.ErrLoginInProgress.
type LoginLock interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
