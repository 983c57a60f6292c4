package game

import "dustward/internal/core"

// Category is the closed set of salvage categories. The set is fixed and
// exhaustive; behavior differences are table lookups, never dispatch.
type Category int

const (
	CategoryElectronics Category = iota
	CategoryPower
	CategoryOptics
	CategoryStructural
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryElectronics:
		return "Electronics"
	case CategoryPower:
		return "Power"
	case CategoryOptics:
		return "Optics"
	case CategoryStructural:
		return "Structural"
	default:
		return "Unknown"
	}
}

// ItemType is one entry of the static salvage catalog.
type ItemType struct {
	Name     string
	Category Category
	Label    string // Category display label
	Color    core.Color
}

// Catalog is the read-only salvage type table. Item type indices in world
// items and inventory slots index into it. Immutable for process lifetime.
var Catalog = [5]ItemType{
	{Name: "Circuit Board", Category: CategoryElectronics, Label: "Electronics", Color: core.ColorGreen},
	{Name: "Power Cell", Category: CategoryPower, Label: "Power", Color: core.ColorYellow},
	{Name: "Lens Array", Category: CategoryOptics, Label: "Optics", Color: core.ColorCyan},
	{Name: "Alloy Strut", Category: CategoryStructural, Label: "Structural", Color: core.ColorGray},
	{Name: "Signal Relay", Category: CategoryElectronics, Label: "Electronics", Color: core.ColorBrightGreen},
}

// TypeCount returns the number of catalog entries.
func TypeCount() int {
	return len(Catalog)
}
