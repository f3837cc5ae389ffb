package services

import (
	"errors"

	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"gorm.io/gorm"
)

// Authorizer answers role-membership and capability questions. The workflow
// only asks "does actor hold role R" / "may actor perform C"; request-specific
// checks (department match, assignee match) stay in the workflow because they
// depend on CRF data the Authorizer does not see.
type Authorizer interface {
	HasRole(userID uint, role string) (bool, error)
	RolesOf(userID uint) ([]string, error)
	Can(userID uint, capability models.Capability) (bool, error)
}

// RepoAuthorizer resolves membership from the user repository and grants
// capabilities from the static role table.
type RepoAuthorizer struct {
	Users repositories.UserRepo
}

func NewRepoAuthorizer(users repositories.UserRepo) *RepoAuthorizer {
	return &RepoAuthorizer{Users: users}
}

func (a *RepoAuthorizer) HasRole(userID uint, role string) (bool, error) {
	user, err := a.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.HasRole(role), nil
}

func (a *RepoAuthorizer) RolesOf(userID uint) ([]string, error) {
	user, err := a.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}
	return roles, nil
}

func (a *RepoAuthorizer) Can(userID uint, capability models.Capability) (bool, error) {
	roles, err := a.RolesOf(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	for _, role := range roles {
		if models.RoleHasCapability(role, capability) {
			return true, nil
		}
	}
	return false, nil
}
