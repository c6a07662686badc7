package domain

import (
	"errors"
)

type Category string

const (
	CategoryMeat          Category = "Meat"
	CategoryPoultry       Category = "Poultry"
	CategorySeafood       Category = "Seafood"
	CategoryVegetables    Category = "Vegetables"
	CategoryFruit         Category = "Fruit"
	CategoryBakery        Category = "Bakery"
	CategoryPreparedMeals Category = "Prepared Meals"
	CategoryDairy         Category = "Dairy"
	CategoryOther         Category = "Other"
)

// CategoryAll is not a real category; it marks an unrestricted browse filter.
const CategoryAll Category = "all"

var ErrInvalidCategory = errors.New("category is not in the known set")

// Categories is the closed set, in display order. Dashboard count ties and
// filter options follow this order.
var Categories = []Category{
	CategoryMeat,
	CategoryPoultry,
	CategorySeafood,
	CategoryVegetables,
	CategoryFruit,
	CategoryBakery,
	CategoryPreparedMeals,
	CategoryDairy,
	CategoryOther,
}

// ShelfLife is the recommended freezer storage range for a category, in months.
type ShelfLife struct {
	MinMonths int `json:"min_months"`
	MaxMonths int `json:"max_months"`
}

var shelfLives = map[Category]ShelfLife{
	CategoryMeat:          {4, 12},
	CategoryPoultry:       {9, 12},
	CategorySeafood:       {2, 6},
	CategoryVegetables:    {8, 12},
	CategoryFruit:         {8, 12},
	CategoryBakery:        {2, 3},
	CategoryPreparedMeals: {2, 3},
	CategoryDairy:         {1, 3},
	CategoryOther:         {1, 6},
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) ShelfLife() ShelfLife {
	return shelfLives[c]
}
