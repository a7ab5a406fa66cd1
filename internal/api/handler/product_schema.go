package handler

// productForm is the dashboard's single create/edit form. Whether it creates
// or updates depends on the session's recorded edit target, not on the form.
type productForm struct {
	Name        string  `form:"name"         validate:"required"`
	Category    string  `form:"category"     validate:"required"`
	Price       float64 `form:"price"        validate:"required,gt=0"`
	Quantity    int     `form:"quantity"     validate:"gte=0"`
	Unit        string  `form:"unit"         validate:"required"`
	Description string  `form:"description"  validate:"required"`
	IsAvailable bool    `form:"is_available"`
}

type cartForm struct {
	ProductID string `form:"product_id" validate:"required"`
	Quantity  int    `form:"quantity"   validate:"gte=1"`
}

type statusForm struct {
	Status string `form:"status" validate:"required,oneof=pending completed cancelled"`
}
