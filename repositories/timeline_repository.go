package repositories

import (
	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/models"
	"gorm.io/gorm"
)

// TimelineRepo is append-only. There is deliberately no update or delete:
// crf_status_timeline is the audit trail of record.
type TimelineRepo interface {
	Create(tx *gorm.DB, entry *models.CrfStatusTimeline) error
	ListByCrfID(crfID uint) ([]models.CrfStatusTimeline, error)
}

type DBTimelineRepo struct{}

func (r *DBTimelineRepo) Create(tx *gorm.DB, entry *models.CrfStatusTimeline) error {
	return tx.Create(entry).Error
}

func (r *DBTimelineRepo) ListByCrfID(crfID uint) ([]models.CrfStatusTimeline, error) {
	var entries []models.CrfStatusTimeline
	err := db.DB.Where("crf_id = ?", crfID).
		Preload("User").
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}

type RemarkRepo interface {
	Create(tx *gorm.DB, remark *models.CrfRemark) error
	ListByCrfID(crfID uint) ([]models.CrfRemark, error)
}

type DBRemarkRepo struct{}

func (r *DBRemarkRepo) Create(tx *gorm.DB, remark *models.CrfRemark) error {
	return tx.Create(remark).Error
}

func (r *DBRemarkRepo) ListByCrfID(crfID uint) ([]models.CrfRemark, error) {
	var remarks []models.CrfRemark
	err := db.DB.Where("crf_id = ?", crfID).
		Preload("User").
		Order("created_at desc").
		Find(&remarks).Error
	return remarks, err
}
