package repositories

import (
	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/models"
)

type UserRepo interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ListByRole(role string) ([]models.User, error)
	ListByRoles(roles []string) ([]models.User, error)
	// FindDepartmentHOU returns the HOU of a department, or nil when the
	// department has none.
	FindDepartmentHOU(departmentID uint) (*models.User, error)
	AssignRole(userID uint, role string) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := db.DB.Preload("Roles").Preload("Department").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := db.DB.Preload("Roles").Preload("Department").
		Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) ListByRole(role string) ([]models.User, error) {
	return r.ListByRoles([]string{role})
}

func (r *DBUserRepo) ListByRoles(roles []string) ([]models.User, error) {
	var users []models.User
	err := db.DB.Preload("Roles").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name IN ?", roles).
		Distinct("users.*").
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) FindDepartmentHOU(departmentID uint) (*models.User, error) {
	var users []models.User
	err := db.DB.Preload("Roles").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name = ? AND users.department_id = ?", models.RoleHOU, departmentID).
		Limit(1).
		Find(&users).Error
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

func (r *DBUserRepo) AssignRole(userID uint, role string) error {
	var roleRow models.Role
	if err := db.DB.Where("name = ?", role).First(&roleRow).Error; err != nil {
		return err
	}
	return db.DB.Model(&models.User{ID: userID}).
		Association("Roles").Append(&roleRow)
}
