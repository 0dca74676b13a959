package dtos

// SignInRequest accepts either key; email wins when both are set.
type SignInRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}
