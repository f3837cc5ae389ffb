package repositories

import (
	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/models"
)

// LookupRepo serves the static reference tables used to populate forms.
type LookupRepo interface {
	ListDepartments() ([]models.Department, error)
	ListCategories() ([]models.Category, error)
	ListFactors() ([]models.Factor, error)
	FindCategory(id uint) (*models.Category, error)
	FindFactor(id uint) (*models.Factor, error)
	FindDepartment(id uint) (*models.Department, error)
}

type DBLookupRepo struct{}

func (r *DBLookupRepo) ListDepartments() ([]models.Department, error) {
	var departments []models.Department
	err := db.DB.Order("dname asc").Find(&departments).Error
	return departments, err
}

func (r *DBLookupRepo) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := db.DB.Order("cname asc").Find(&categories).Error
	return categories, err
}

func (r *DBLookupRepo) ListFactors() ([]models.Factor, error) {
	var factors []models.Factor
	err := db.DB.Order("name asc").Find(&factors).Error
	return factors, err
}

func (r *DBLookupRepo) FindCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *DBLookupRepo) FindFactor(id uint) (*models.Factor, error) {
	var factor models.Factor
	if err := db.DB.First(&factor, id).Error; err != nil {
		return nil, err
	}
	return &factor, nil
}

func (r *DBLookupRepo) FindDepartment(id uint) (*models.Department, error) {
	var department models.Department
	if err := db.DB.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}
