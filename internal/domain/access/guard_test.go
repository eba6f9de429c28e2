package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fumimanager/internal/domain/access"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

func TestGuard_SinSesionRedirigeALogin(t *testing.T) {
	d := access.Guard(entity.Session{}, access.Any)
	assert.False(t, d.Allowed)
	assert.Equal(t, "/login", d.Redirect)

	d = access.Guard(entity.Session{Role: entity.RoleGuest}, access.Only(entity.RoleAdmin))
	assert.Equal(t, "/login", d.Redirect)
}

func TestGuard_AdminSoloParaAdmin(t *testing.T) {
	for _, r := range []entity.Role{entity.RoleGuest, entity.RoleOperator, entity.Role("superadmin"), ""} {
		d := access.Guard(entity.Session{Role: r}, access.Only(entity.RoleAdmin))
		assert.False(t, d.Allowed, "rol %q no debe acceder a vistas de admin", r)
		assert.NotEmpty(t, d.Redirect)
	}

	d := access.Guard(entity.Session{Role: entity.RoleOperator, DisplayName: "Branch Operator"}, access.Only(entity.RoleAdmin))
	assert.Equal(t, "/dashboard", d.Redirect)

	d = access.Guard(entity.Session{Role: entity.RoleAdmin}, access.Only(entity.RoleAdmin))
	assert.True(t, d.Allowed)
}

func TestGuard_CualquierSesion(t *testing.T) {
	assert.True(t, access.Guard(entity.Session{Role: entity.RoleOperator}, access.Any).Allowed)
	assert.True(t, access.Guard(entity.Session{Role: entity.RoleAdmin}, access.Any).Allowed)
}
