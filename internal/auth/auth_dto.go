package auth

type RegisterRequest struct {
	TenantID     string `json:"tenant_id" binding:"required,uuid"`
	TechnicianID int64  `json:"technician_id"`
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN MANAGER TECHNICIAN"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	TechnicianID int64  `json:"technician_id,omitempty"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
