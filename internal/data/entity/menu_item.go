package entity

type MenuCategory string

const (
	CategoryFood  MenuCategory = "food"
	CategoryDrink MenuCategory = "drink"
	CategorySnack MenuCategory = "snack"
	CategoryOther MenuCategory = "other"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategorySnack, CategoryOther:
		return true
	}
	return false
}

type MenuItem struct {
	Base
	Name            string       `db:"name"`
	Description     *string      `db:"description"`
	Category        MenuCategory `db:"category"`
	Price           float64      `db:"price"`
	Available       bool         `db:"available"`
	Image           *string      `db:"image"`
	Allergens       []string     `db:"allergens"`
	PreparationTime int          `db:"preparation_time"` // minutes
}
