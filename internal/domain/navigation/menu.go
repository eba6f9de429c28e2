// Package navigation modela el menú lateral y las rutas lógicas de la aplicación.
package navigation

import "github.com/jhoicas/fumimanager/internal/domain/entity"

// Item entrada del menú con su lista de roles permitidos.
type Item struct {
	Path  string        `json:"path"`
	Label string        `json:"label"`
	Roles []entity.Role `json:"-"`
}

// Allows indica si el rol está en la lista de permitidos.
func (i Item) Allows(r entity.Role) bool {
	for _, allowed := range i.Roles {
		if allowed == r {
			return true
		}
	}
	return false
}

// Section grupo de entradas con título.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

var (
	operatorOnly = []entity.Role{entity.RoleOperator}
	adminOnly    = []entity.Role{entity.RoleAdmin}
)

// DefaultMenu árbol estático del menú.
func DefaultMenu() []Section {
	return []Section{
		{
			Title: "Main Menu",
			Items: []Item{
				{Path: "/dashboard", Label: "Dashboard", Roles: operatorOnly},
				{Path: "/certificates", Label: "Certificates", Roles: operatorOnly},
				{Path: "/reports", Label: "Reports", Roles: operatorOnly},
			},
		},
		{
			Title: "Operations",
			Items: []Item{
				{Path: "/stock", Label: "Stock Inventory", Roles: operatorOnly},
				{Path: "/billing", Label: "Billing", Roles: operatorOnly},
			},
		},
		{
			Title: "Administration",
			Items: []Item{
				{Path: "/admin/dashboard", Label: "Dashboard", Roles: adminOnly},
				{Path: "/admin/users", Label: "User Mgmt", Roles: adminOnly},
				{Path: "/admin/branch", Label: "Branch Mgmt", Roles: adminOnly},
				{Path: "/admin/masters", Label: "Master Data", Roles: adminOnly},
				{Path: "/admin/settings", Label: "System Config", Roles: adminOnly},
			},
		},
	}
}

// VisibleSections conserva las entradas permitidas para role y descarta secciones vacías.
// El orden original de secciones y entradas se mantiene.
func VisibleSections(menu []Section, role entity.Role) []Section {
	out := make([]Section, 0, len(menu))
	for _, sec := range menu {
		items := make([]Item, 0, len(sec.Items))
		for _, it := range sec.Items {
			if it.Allows(role) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, Section{Title: sec.Title, Items: items})
	}
	return out
}

// PortalLabel subtítulo del menú según el rol.
func PortalLabel(role entity.Role) string {
	if role == entity.RoleAdmin {
		return "Admin Panel"
	}
	return "Operator Portal"
}
