package services

import (
	"errors"

	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"gorm.io/gorm"
)

// AssignmentService resolves PIC candidates for assignment transitions.
type AssignmentService struct {
	Repos *repositories.Repos
}

func NewAssignmentService(repos *repositories.Repos) *AssignmentService {
	return &AssignmentService{Repos: repos}
}

// Resolve fetches the target user and confirms membership of the required
// PIC role.
func (s *AssignmentService) Resolve(targetID uint, role string) (*models.User, error) {
	user, err := s.Repos.User.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("user #%d", targetID)
		}
		return nil, err
	}
	if !user.HasRole(role) {
		return nil, validationf("selected user is not %s %s", roleArticle(role), role)
	}
	return user, nil
}

func roleArticle(role string) string {
	switch role[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

// ListPICs returns every ITD and Vendor PIC for populating assignment
// dropdowns. Pure read.
func (s *AssignmentService) ListPICs() ([]models.User, error) {
	return s.Repos.User.ListByRoles([]string{models.RoleITDPIC, models.RoleVendorPIC})
}
