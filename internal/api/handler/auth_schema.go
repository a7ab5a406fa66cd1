package handler

// Form schemas own the validate tags: everything here is checked locally,
// before any request leaves for the backend.

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type signupForm struct {
	Name            string `form:"name"             validate:"required"`
	Email           string `form:"email"            validate:"required,email"`
	Phone           string `form:"phone"            validate:"required"`
	Password        string `form:"password"         validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `form:"role"             validate:"required,oneof=farmer consumer"`
	// Farm profile, required only when Role is farmer.
	FarmName     string `form:"farm_name"     validate:"required_if=Role farmer"`
	FarmLocation string `form:"farm_location" validate:"required_if=Role farmer"`
}
