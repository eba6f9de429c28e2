package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// Credential par email/contraseña aceptado, con el rol y nombre que deja en la sesión.
type Credential struct {
	Email        string
	PasswordHash []byte
	Role         entity.Role
	DisplayName  string
}

// NewCredential usa hash si viene informado; si no, hashea devPassword (modo desarrollo).
func NewCredential(email, name string, role entity.Role, hash, devPassword string) (Credential, error) {
	c := Credential{Email: email, Role: role, DisplayName: name}
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return Credential{}, fmt.Errorf("hash inválido para %s: %w", email, err)
		}
		c.PasswordHash = []byte(hash)
		return c, nil
	}
	if devPassword == "" {
		return Credential{}, fmt.Errorf("sin hash ni contraseña de desarrollo para %s", email)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, err
	}
	c.PasswordHash = h
	return c, nil
}

func (c Credential) matches(email, password string) bool {
	if email != c.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) == nil
}
