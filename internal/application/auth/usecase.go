package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/access"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

// Options parámetros del login.
type Options struct {
	Delay time.Duration       // latencia fija antes de comprobar credenciales
	Sleep func(time.Duration) // por defecto time.Sleep; no se cancela con el contexto
}

// AuthUseCase login, logout y lectura de la sesión.
type AuthUseCase struct {
	storage  repository.SessionStorage
	lock     LoginLock
	creds    []Credential
	activity repository.ActivitySink
	opts     Options
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(storage repository.SessionStorage, lock LoginLock, creds []Credential,
	activity repository.ActivitySink, opts Options, log zerolog.Logger) *AuthUseCase {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if activity == nil {
		activity = repository.NopActivity{}
	}
	return &AuthUseCase{storage: storage, lock: lock, creds: creds, activity: activity, opts: opts, log: log}
}

// Login compara email/password con los pares aceptados tras la latencia configurada.
// Mientras dura, un segundo login con el mismo email devuelve ErrLoginInProgress, venga o no
// de la misma sesión. Si las credenciales no coinciden devuelve ErrInvalidCredentials y no escribe nada.
func (uc *AuthUseCase) Login(ctx context.Context, sessionID, email, password string) (entity.Session, error) {
	release, err := uc.lock.Acquire(ctx, loginKey(email))
	if err != nil {
		return entity.Session{}, err
	}
	defer release()

	uc.opts.Sleep(uc.opts.Delay)

	for _, c := range uc.creds {
		if !c.matches(email, password) {
			continue
		}
		s := entity.Session{Role: c.Role, DisplayName: c.DisplayName}
		if err := uc.storage.Set(ctx, sessionID, map[string]string{
			entity.SessionKeyRole: string(s.Role),
			entity.SessionKeyName: s.DisplayName,
		}); err != nil {
			return entity.Session{}, fmt.Errorf("guardar sesión: %w", err)
		}
		uc.log.Info().Str("email", email).Str("role", string(s.Role)).Msg("login correcto")
		uc.activity.Record("Login", s.DisplayName, entity.ActivityInfo)
		return s, nil
	}

	uc.log.Warn().Str("email", email).Msg("login fallido")
	uc.activity.Record("Login Failed", email, entity.ActivityError)
	return entity.Session{}, domain.ErrInvalidCredentials
}

// loginKey clave de la guarda: el email normalizado. Un guest estrena sesión en cada envío.
func loginKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Logout borra todas las claves de la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.storage.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Current lee la sesión. Sin rol o con un valor desconocido la sesión es guest.
func (uc *AuthUseCase) Current(ctx context.Context, sessionID string) (entity.Session, error) {
	if sessionID == "" {
		return entity.Session{Role: entity.RoleGuest}, nil
	}
	raw, ok, err := uc.storage.Get(ctx, sessionID, entity.SessionKeyRole)
	if err != nil {
		return entity.Session{}, err
	}
	role := entity.ParseRole(raw)
	if !ok || role == entity.RoleGuest {
		return entity.Session{Role: entity.RoleGuest}, nil
	}
	name, _, err := uc.storage.Get(ctx, sessionID, entity.SessionKeyName)
	if err != nil {
		return entity.Session{}, err
	}
	return entity.Session{Role: role, DisplayName: name}, nil
}

// Guard evalúa el acceso de la sesión almacenada.
func (uc *AuthUseCase) Guard(ctx context.Context, sessionID string, req access.Requirement) (access.Decision, error) {
	s, err := uc.Current(ctx, sessionID)
	if err != nil {
		return access.Decision{}, err
	}
	return access.Guard(s, req), nil
}
