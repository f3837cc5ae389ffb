package repositories

import (
	"strings"
	"time"

	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/models"
	"gorm.io/gorm"
)

// ReportFilter narrows the report dataset. A nil Statuses slice means no
// status filtering.
type ReportFilter struct {
	Start       time.Time
	End         time.Time
	ActionBy    *uint
	CategoryIDs []uint
	Statuses    []models.StatusCode
}

type CategoryCount struct {
	CategoryID uint   `json:"category_id"`
	CName      string `json:"cname"`
	Count      int64  `json:"count"`
}

type CrfRepo interface {
	Create(tx *gorm.DB, crf *models.Crf) error
	FindByID(id uint) (*models.Crf, error)
	// TransitionStatus applies updates guarded by the expected current status
	// and reports how many rows matched. Zero rows means another transition
	// won the race or the precondition no longer holds.
	TransitionStatus(tx *gorm.DB, id uint, from models.StatusCode, updates map[string]any) (int64, error)
	UpdateFields(tx *gorm.DB, id uint, updates map[string]any) error
	Delete(id uint) error
	Search(term string) ([]models.Crf, error)
	Report(filter ReportFilter) ([]models.Crf, error)
	CountByStatuses(codes []models.StatusCode, userID *uint) (int64, error)
	CountByCategory() ([]CategoryCount, error)
}

type DBCrfRepo struct{}

func (r *DBCrfRepo) Create(tx *gorm.DB, crf *models.Crf) error {
	return tx.Create(crf).Error
}

func (r *DBCrfRepo) FindByID(id uint) (*models.Crf, error) {
	var crf models.Crf
	err := db.DB.
		Preload("User").
		Preload("Department").
		Preload("Category").
		Preload("Factor").
		Preload("ApplicationStatus").
		Preload("Approver").
		Preload("TPApprover").
		Preload("AssignedUser").
		Preload("Attachments").
		First(&crf, id).Error
	if err != nil {
		return nil, err
	}
	return &crf, nil
}

func (r *DBCrfRepo) TransitionStatus(tx *gorm.DB, id uint, from models.StatusCode, updates map[string]any) (int64, error) {
	res := tx.Model(&models.Crf{}).
		Where("id = ? AND application_status_id = ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *DBCrfRepo) UpdateFields(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&models.Crf{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DBCrfRepo) Delete(id uint) error {
	return db.DB.Select("Timeline", "Remarks", "Attachments").
		Delete(&models.Crf{ID: id}).Error
}

// Search matches by id (a leading '#' is stripped), name substring or NRIC
// substring, newest first.
func (r *DBCrfRepo) Search(term string) ([]models.Crf, error) {
	var crfs []models.Crf
	cleaned := strings.TrimPrefix(term, "#")

	query := db.DB.
		Preload("Department").
		Preload("Category").
		Preload("ApplicationStatus").
		Preload("AssignedUser").
		Preload("Approver").
		Where("fname ILIKE ? OR nric ILIKE ?", "%"+term+"%", "%"+term+"%")

	if isNumeric(cleaned) {
		query = db.DB.
			Preload("Department").
			Preload("Category").
			Preload("ApplicationStatus").
			Preload("AssignedUser").
			Preload("Approver").
			Where("id = ? OR fname ILIKE ? OR nric ILIKE ?", cleaned, "%"+term+"%", "%"+term+"%")
	}

	err := query.Order("created_at desc").Find(&crfs).Error
	return crfs, err
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (r *DBCrfRepo) Report(filter ReportFilter) ([]models.Crf, error) {
	var crfs []models.Crf
	query := db.DB.
		Preload("Department").
		Preload("Category").
		Preload("Factor").
		Preload("ApplicationStatus").
		Preload("Approver").
		Preload("AssignedUser").
		Where("created_at BETWEEN ? AND ?", filter.Start, filter.End)

	if filter.ActionBy != nil {
		query = query.Where("assigned_to = ?", *filter.ActionBy)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("application_status_id IN ?", filter.Statuses)
	}

	err := query.Order("created_at desc").Find(&crfs).Error
	return crfs, err
}

func (r *DBCrfRepo) CountByStatuses(codes []models.StatusCode, userID *uint) (int64, error) {
	var count int64
	query := db.DB.Model(&models.Crf{})
	if len(codes) > 0 {
		query = query.Where("application_status_id IN ?", codes)
	}
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *DBCrfRepo) CountByCategory() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := db.DB.Model(&models.Crf{}).
		Select("crforms.category_id, categories.cname, COUNT(*) as count").
		Joins("JOIN categories ON categories.id = crforms.category_id").
		Group("crforms.category_id, categories.cname").
		Scan(&counts).Error
	return counts, err
}
