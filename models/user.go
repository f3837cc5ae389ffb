package models

import "time"

const (
	RoleUser        = "USER"
	RoleHOU         = "HOU"
	RoleITDAdmin    = "ITD ADMIN"
	RoleITDPIC      = "ITD PIC"
	RoleVendorAdmin = "VENDOR ADMIN"
	RoleVendorPIC   = "VENDOR PIC"
	RoleTP          = "Timbalan Pengarah"
)

type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	NRIC         string      `gorm:"size:20" json:"nric"`
	Email        string      `gorm:"size:100;not null;unique" json:"email"`
	Password     string      `gorm:"size:255;not null" json:"-"`
	DepartmentID *uint       `json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Roles        []Role      `gorm:"many2many:user_roles" json:"roles,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;unique" json:"name"`
}

type Department struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DName string `gorm:"size:100;not null;column:dname" json:"dname"`
}

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	CName string `gorm:"size:100;not null;column:cname" json:"cname"`
}

// CategoryHardwareRelocation is the category that requires the extra TP
// approval tier after HOU verification.
const CategoryHardwareRelocation = "Hardware Relocation"

type Factor struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}
