package models

type Category string

const (
	CategoryStarters  Category = "starters"
	CategoryMains     Category = "mains"
	CategoryDesserts  Category = "desserts"
	CategoryBeverages Category = "beverages"
)

func (c Category) IsValid() bool {
	return c == CategoryStarters || c == CategoryMains || c == CategoryDesserts || c == CategoryBeverages
}

type MenuItem struct {
	ID          string   `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Price       float64  `db:"price" json:"price"`
	Category    Category `db:"category" json:"category"`
	Description string   `db:"description" json:"description"`
	ImageURL    string   `db:"image_url" json:"imageUrl,omitempty"`
}

type MenuItemInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    Category `json:"category" validate:"required,oneof=starters mains desserts beverages"`
	Description string   `json:"description" validate:"max=500"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Category    *Category `json:"category" validate:"omitempty,oneof=starters mains desserts beverages"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url"`
}
