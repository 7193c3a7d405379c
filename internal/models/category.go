package models

// Category is a spending category in the `categorias` catalog. The catalog is
// seeded with a fixed set of names and may grow beyond it.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:categoria;size:100;uniqueIndex;not null" json:"name"`
}

// TableName maps Category to the original categorias table.
func (Category) TableName() string { return "categorias" }

// SeedCategories is the canonical catalog that must exist after bootstrap.
var SeedCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Education",
	"Health",
	"Leisure",
	"Utilities",
	"Clothing",
	"Pets",
	"Other",
}
