package employee

// LoginRequest identifies an employee by name and WhatsApp number; employees
// carry no password.
type LoginRequest struct {
	Name           string `json:"name" binding:"required"`
	WhatsappNumber string `json:"whatsappNumber" binding:"required"`
}
