package services

import (
	"github.com/linskybing/crf-go/notify"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/storage"
)

type Services struct {
	Workflow   *WorkflowService
	Assignment *AssignmentService
	Timeline   *TimelineService
	Attachment *AttachmentService
	Report     *ReportService
	User       *UserService
	Auth       Authorizer
	Dispatcher notify.Dispatcher
}

func New(repos *repositories.Repos, store storage.Storage, hub *notify.Hub) *Services {
	auth := NewRepoAuthorizer(repos.User)
	timeline := NewTimelineService(repos)
	assignment := NewAssignmentService(repos)
	dispatcher := notify.NewDBDispatcher(repos.Notification, repos.User, hub)

	return &Services{
		Workflow:   NewWorkflowService(repos, auth, timeline, assignment, dispatcher, store),
		Assignment: assignment,
		Timeline:   timeline,
		Attachment: NewAttachmentService(repos, store),
		Report:     NewReportService(repos),
		User:       NewUserService(repos),
		Auth:       auth,
		Dispatcher: dispatcher,
	}
}
