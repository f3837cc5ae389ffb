package dto

type RegisterDTO struct {
	Name         string `json:"name" binding:"required,max=255"`
	NRIC         string `json:"nric" binding:"required,max=20"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	DepartmentID *uint  `json:"department_id"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
