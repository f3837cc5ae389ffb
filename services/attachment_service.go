package services

import (
	"context"
	"errors"
	"io"

	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/storage"
	"gorm.io/gorm"
)

type AttachmentService struct {
	Repos *repositories.Repos
	Store storage.Storage
}

func NewAttachmentService(repos *repositories.Repos, store storage.Storage) *AttachmentService {
	return &AttachmentService{Repos: repos, Store: store}
}

// CanDownload is the access rule for attachment downloads: the CRF's
// submitter, its HOU approver or its current assignee. Holding an
// administrative role grants nothing here. Independent of workflow status.
func CanDownload(crf *models.Crf, actorID uint) bool {
	if crf == nil {
		return false
	}
	if crf.UserID == actorID {
		return true
	}
	if crf.ApprovedBy != nil && *crf.ApprovedBy == actorID {
		return true
	}
	if crf.AssignedTo != nil && *crf.AssignedTo == actorID {
		return true
	}
	return false
}

// Download checks the policy and opens the object stream. Callers are
// responsible for closing the reader.
func (s *AttachmentService) Download(ctx context.Context, attachmentID, actorID uint) (*models.CrfAttachment, io.ReadCloser, error) {
	attachment, err := s.Repos.Attachment.FindByID(attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFoundf("attachment #%d", attachmentID)
		}
		return nil, nil, err
	}

	if !CanDownload(attachment.Crf, actorID) {
		return nil, nil, forbiddenf("you do not have permission to download this file")
	}

	exists, err := s.Store.Exists(ctx, attachment.Path)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, notFoundf("file %s", attachment.Path)
	}

	reader, err := s.Store.Open(ctx, attachment.Path)
	if err != nil {
		return nil, nil, err
	}
	return attachment, reader, nil
}
