package dto

// RegisterRequest represents a registration attempt
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=USER DRIVER"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRideRequest represents a rider requesting a new ride
type CreateRideRequest struct {
	PickupLocation string `json:"pickupLocation" binding:"required"`
	DropLocation   string `json:"dropLocation" binding:"required"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
