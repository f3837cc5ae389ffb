package handlers

import (
	"github.com/linskybing/crf-go/notify"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/services"
)

type Handlers struct {
	Crf          *CrfHandler
	Attachment   *AttachmentHandler
	Report       *ReportHandler
	User         *UserHandler
	Notification *NotificationHandler
	Lookup       *LookupHandler
}

func New(svc *services.Services, repos *repositories.Repos, hub *notify.Hub) *Handlers {
	return &Handlers{
		Crf:          NewCrfHandler(svc.Workflow),
		Attachment:   NewAttachmentHandler(svc.Attachment),
		Report:       NewReportHandler(svc.Report),
		User:         NewUserHandler(svc.User),
		Notification: NewNotificationHandler(repos.Notification, hub),
		Lookup:       NewLookupHandler(repos.Lookup, svc.Assignment),
	}
}
