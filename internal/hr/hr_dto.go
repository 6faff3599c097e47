package hr

type LoginRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"required"`
	Password     string `json:"password" binding:"required"`
}
