package entity

// Categorías de datos maestros.
const (
	MasterCategoryExporters  = "exporters"
	MasterCategoryTreatments = "treatments"
	MasterCategoryBranches   = "branches"
)

// MasterCategories en el orden de las pestañas.
var MasterCategories = []string{MasterCategoryExporters, MasterCategoryTreatments, MasterCategoryBranches}

// IsMasterCategory indica si c es una categoría válida.
func IsMasterCategory(c string) bool {
	for _, mc := range MasterCategories {
		if mc == c {
			return true
		}
	}
	return false
}

// MasterDataEntry entrada de un catálogo (exportador, tratamiento o sucursal).
type MasterDataEntry struct {
	ID       string
	Category string
	Name     string
	Detail   string
	Status   string // Active, Inactive
}
