package repositories

import (
	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/models"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	Create(tx *gorm.DB, attachment *models.CrfAttachment) error
	// FindByID preloads the parent CRF so the download policy can see the
	// submitter, approver and assignee references.
	FindByID(id uint) (*models.CrfAttachment, error)
	ListByCrfID(crfID uint) ([]models.CrfAttachment, error)
}

type DBAttachmentRepo struct{}

func (r *DBAttachmentRepo) Create(tx *gorm.DB, attachment *models.CrfAttachment) error {
	return tx.Create(attachment).Error
}

func (r *DBAttachmentRepo) FindByID(id uint) (*models.CrfAttachment, error) {
	var attachment models.CrfAttachment
	err := db.DB.Preload("Crf").First(&attachment, id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *DBAttachmentRepo) ListByCrfID(crfID uint) ([]models.CrfAttachment, error) {
	var attachments []models.CrfAttachment
	err := db.DB.Where("crf_id = ?", crfID).Find(&attachments).Error
	return attachments, err
}
