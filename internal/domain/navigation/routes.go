package navigation

import (
	"strings"

	"github.com/jhoicas/fumimanager/internal/domain/access"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// Route ruta lógica con su requisito de acceso. Public no pasa por el guard.
type Route struct {
	Path   string
	View   string
	Public bool
	Need   access.Requirement
}

// DefaultRoutes tabla de rutas de la aplicación.
func DefaultRoutes() []Route {
	return []Route{
		{Path: access.LoginPath, View: "login", Public: true},
		{Path: "/dashboard", View: "dashboard", Need: access.Any},
		{Path: "/certificates", View: "certificates", Need: access.Any},
		{Path: "/stock", View: "stock", Need: access.Any},
		{Path: "/billing", View: "billing", Need: access.Any},
		{Path: "/reports", View: "reports", Need: access.Any},
		{Path: "/admin/users", View: "admin.users", Need: access.Only(entity.RoleAdmin)},
		{Path: "/admin/masters", View: "admin.masters", Need: access.Only(entity.RoleAdmin)},
		{Path: "/admin/settings", View: "admin.settings", Need: access.Only(entity.RoleAdmin)},
		{Path: "/admin/branch", View: "admin.branch", Need: access.Only(entity.RoleAdmin)},
		{Path: "/admin/dashboard", View: "admin.dashboard", Need: access.Only(entity.RoleAdmin)},
	}
}

// Outcome resultado de navegar a una ruta.
type Outcome struct {
	Path     string `json:"path"`
	View     string `json:"view,omitempty"`
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
	NotFound bool   `json:"not_found,omitempty"`
	BackLink string `json:"back_link,omitempty"`
}

// Router resuelve rutas lógicas.
type Router struct {
	routes map[string]Route
}

// NewRouter indexa la tabla de rutas.
func NewRouter(routes []Route) *Router {
	m := make(map[string]Route, len(routes))
	for _, r := range routes {
		m[r.Path] = r
	}
	return &Router{routes: m}
}

// Navigate aplica la tabla y el guard. "/" pide sesión y redirige a /dashboard;
// una ruta desconocida devuelve la vista not-found con enlace a "/".
func (rt *Router) Navigate(s entity.Session, path string) Outcome {
	path = normalize(path)

	if path == "/" {
		d := access.Guard(s, access.Any)
		if !d.Allowed {
			return Outcome{Path: path, Redirect: d.Redirect}
		}
		return Outcome{Path: path, Redirect: access.LandingPath}
	}

	r, ok := rt.routes[path]
	if !ok {
		return Outcome{Path: path, View: "not-found", Allowed: true, NotFound: true, BackLink: "/"}
	}
	if r.Public {
		return Outcome{Path: path, View: r.View, Allowed: true}
	}
	d := access.Guard(s, r.Need)
	if !d.Allowed {
		return Outcome{Path: path, Redirect: d.Redirect}
	}
	return Outcome{Path: path, View: r.View, Allowed: true}
}

func normalize(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
