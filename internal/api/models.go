package api

// UserInput defines the payload for the user create and update endpoints.
// Update is a full replace, so the same shape serves both.
type UserInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}
