package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the age bracket an athlete competes in.
type Category string

const (
	CategorySub11        Category = "sub11"
	CategorySub13        Category = "sub13"
	CategorySub15        Category = "sub15"
	CategorySub17        Category = "sub17"
	CategorySub20        Category = "sub20"
	CategoryProfissional Category = "profissional"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategorySub11, CategorySub13, CategorySub15, CategorySub17, CategorySub20, CategoryProfissional:
		return true
	default:
		return false
	}
}

// AllCategories lists every category from youngest to professional.
func AllCategories() []Category {
	return []Category{CategorySub11, CategorySub13, CategorySub15, CategorySub17, CategorySub20, CategoryProfissional}
}

// Athlete is a registered athlete of the organization. Athletes are the
// subject of every department record; they never sign in themselves.
type Athlete struct {
	ID          uuid.UUID
	Name        string
	BirthDate   time.Time
	Category    Category
	Position    string
	ShirtNumber *int // Optional; unique only by convention within a category.
	Active      bool
	EntryDate   time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
