package dto

type CreateCrfDTO struct {
	Name         string  `form:"name" binding:"required,max=255"`
	NRIC         string  `form:"nric" binding:"required,max=20"`
	DepartmentID uint    `form:"department_id" binding:"required"`
	Designation  string  `form:"designation" binding:"required,max=255"`
	ExtNo        string  `form:"extno" binding:"required,max=10"`
	CategoryID   uint    `form:"category_id" binding:"required"`
	FactorID     *uint   `form:"factor_id"`
	Issue        string  `form:"issue" binding:"required,max=255"`
	Reason       *string `form:"reason"`
}

type AssignCrfDTO struct {
	AssignedTo uint `json:"assigned_to" binding:"required"`
}

type UpdateRemarkDTO struct {
	ITRemark *string `json:"it_remark"`
}

type UpdateFactorDTO struct {
	FactorID uint `json:"factor_id" binding:"required"`
}

type CheckStatusDTO struct {
	Search string `form:"search" binding:"required"`
}
