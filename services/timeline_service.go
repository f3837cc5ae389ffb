package services

import (
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"gorm.io/gorm"
)

// TimelineService is the recorder for the CRF audit trail. Entries are
// written inside the caller's transaction so a failed append rolls the
// transition back with it.
type TimelineService struct {
	Repos *repositories.Repos
}

func NewTimelineService(repos *repositories.Repos) *TimelineService {
	return &TimelineService{Repos: repos}
}

func (s *TimelineService) Record(tx *gorm.DB, crfID uint, userID *uint, statusLabel string, remark *string, actionType models.ActionType) error {
	return s.Repos.Timeline.Create(tx, &models.CrfStatusTimeline{
		CrfID:      crfID,
		UserID:     userID,
		Status:     statusLabel,
		Remark:     remark,
		ActionType: actionType,
	})
}

// ListFor returns the trail oldest-first for display.
func (s *TimelineService) ListFor(crfID uint) ([]models.CrfStatusTimeline, error) {
	return s.Repos.Timeline.ListByCrfID(crfID)
}
