package repository

import "context"

// SessionStorage almacenamiento clave-valor durable de una sesión (DIP).
// Las claves usadas son entity.SessionKeyRole y entity.SessionKeyName.
type SessionStorage interface {
	// Get devuelve "" y ok=false si la clave no existe.
	Get(ctx context.Context, sessionID, key string) (value string, ok bool, err error)
	// Set escribe todas las claves en un solo paso.
	Set(ctx context.Context, sessionID string, values map[string]string) error
	// Clear elimina todas las claves de la sesión.
	Clear(ctx context.Context, sessionID string) error
}
