package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/navigation"
)

func TestVisibleSections_SoloItemsPermitidos(t *testing.T) {
	menu := navigation.DefaultMenu()
	for _, r := range []entity.Role{entity.RoleGuest, entity.RoleOperator, entity.RoleAdmin} {
		for _, sec := range navigation.VisibleSections(menu, r) {
			require.NotEmpty(t, sec.Items, "sección %q vacía para %s", sec.Title, r)
			for _, it := range sec.Items {
				assert.True(t, it.Allows(r), "%s visible para %s", it.Path, r)
			}
		}
	}
}

func TestVisibleSections_Operador(t *testing.T) {
	got := navigation.VisibleSections(navigation.DefaultMenu(), entity.RoleOperator)
	require.Len(t, got, 2)
	assert.Equal(t, "Main Menu", got[0].Title)
	assert.Equal(t, "Operations", got[1].Title)
	assert.Equal(t, "/dashboard", got[0].Items[0].Path)
	assert.Equal(t, "/billing", got[1].Items[1].Path)
}

func TestVisibleSections_AdminYGuest(t *testing.T) {
	got := navigation.VisibleSections(navigation.DefaultMenu(), entity.RoleAdmin)
	require.Len(t, got, 1)
	assert.Equal(t, "Administration", got[0].Title)
	assert.Len(t, got[0].Items, 5)

	assert.Empty(t, navigation.VisibleSections(navigation.DefaultMenu(), entity.RoleGuest))
}

func TestVisibleSections_NoModificaMenu(t *testing.T) {
	menu := navigation.DefaultMenu()
	_ = navigation.VisibleSections(menu, entity.RoleOperator)
	assert.Equal(t, navigation.DefaultMenu(), menu)
}

// ── Router ──────────────────────────────────────────────────────────────────

func TestNavigate(t *testing.T) {
	rt := navigation.NewRouter(navigation.DefaultRoutes())
	guest := entity.Session{Role: entity.RoleGuest}
	op := entity.Session{Role: entity.RoleOperator, DisplayName: "Branch Operator"}
	admin := entity.Session{Role: entity.RoleAdmin, DisplayName: "Super Admin"}

	cases := []struct {
		name     string
		s        entity.Session
		path     string
		allowed  bool
		redirect string
		notFound bool
	}{
		{"login público", guest, "/login", true, "", false},
		{"guest a dashboard", guest, "/dashboard", false, "/login", false},
		{"operador a billing", op, "/billing", true, "", false},
		{"operador a admin", op, "/admin/users", false, "/dashboard", false},
		{"admin a admin", admin, "/admin/settings", true, "", false},
		{"admin a stock", admin, "/stock", true, "", false},
		{"raíz con sesión", op, "/", false, "/dashboard", false},
		{"raíz sin sesión", guest, "/", false, "/login", false},
		{"barra final", admin, "/admin/branch/", true, "", false},
		{"desconocida", guest, "/nada", true, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rt.Navigate(tc.s, tc.path)
			assert.Equal(t, tc.allowed, got.Allowed)
			assert.Equal(t, tc.redirect, got.Redirect)
			assert.Equal(t, tc.notFound, got.NotFound)
			if tc.notFound {
				assert.Equal(t, "/", got.BackLink)
			}
		})
	}
}

func TestPortalLabel(t *testing.T) {
	assert.Equal(t, "Admin Panel", navigation.PortalLabel(entity.RoleAdmin))
	assert.Equal(t, "Operator Portal", navigation.PortalLabel(entity.RoleOperator))
}
