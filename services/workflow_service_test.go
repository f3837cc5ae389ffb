package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/repositories/mock_repositories"
	"gorm.io/gorm"
)

type sentNotification struct {
	UserID uint
	Role   string
	Kind   models.NotificationKind
}

type fakeDispatcher struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (d *fakeDispatcher) NotifyUser(userID uint, kind models.NotificationKind, payload map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sentNotification{UserID: userID, Kind: kind})
	return nil
}

func (d *fakeDispatcher) NotifyRole(role string, kind models.NotificationKind, payload map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sentNotification{Role: role, Kind: kind})
	return nil
}

func (d *fakeDispatcher) all() []sentNotification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]sentNotification(nil), d.sent...)
}

type fakeStorage struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Store(ctx context.Context, reader io.Reader, size int64, suggestedName, mime string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	path := "crf-uploads/" + suggestedName
	f.objects[path] = data
	return path, nil
}

func (f *fakeStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.objects, path)
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.objects[path]
	return ok, nil
}

type workflowFixture struct {
	svc        *WorkflowService
	crf        *mock_repositories.MockCrfRepo
	timeline   *mock_repositories.MockTimelineRepo
	remark     *mock_repositories.MockRemarkRepo
	attachment *mock_repositories.MockAttachmentRepo
	user       *mock_repositories.MockUserRepo
	lookup     *mock_repositories.MockLookupRepo
	dispatcher *fakeDispatcher
	store      *fakeStorage
}

func setupWorkflow(t *testing.T) *workflowFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	f := &workflowFixture{
		crf:        mock_repositories.NewMockCrfRepo(ctrl),
		timeline:   mock_repositories.NewMockTimelineRepo(ctrl),
		remark:     mock_repositories.NewMockRemarkRepo(ctrl),
		attachment: mock_repositories.NewMockAttachmentRepo(ctrl),
		user:       mock_repositories.NewMockUserRepo(ctrl),
		lookup:     mock_repositories.NewMockLookupRepo(ctrl),
		dispatcher: &fakeDispatcher{},
		store:      newFakeStorage(),
	}

	repos := &repositories.Repos{
		Crf:        f.crf,
		Timeline:   f.timeline,
		Remark:     f.remark,
		Attachment: f.attachment,
		User:       f.user,
		Lookup:     f.lookup,
	}

	auth := NewRepoAuthorizer(f.user)
	f.svc = NewWorkflowService(repos, auth, NewTimelineService(repos),
		NewAssignmentService(repos), f.dispatcher, f.store)

	// No database in unit tests: run the unit of work directly and dispatch
	// inline so assertions see every notification.
	Transactional = func(fn func(tx *gorm.DB) error) error { return fn(nil) }
	Background = func(fn func()) { fn() }

	return f
}

func uintPtr(v uint) *uint { return &v }

func userWithRoles(id uint, name string, departmentID *uint, roles ...string) *models.User {
	user := &models.User{ID: id, Name: name, DepartmentID: departmentID}
	for _, role := range roles {
		user.Roles = append(user.Roles, models.Role{Name: role})
	}
	return user
}

func TestApprove(t *testing.T) {
	t.Run("default category goes to Verified", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusCreated, "Software")
		hou := userWithRoles(2, "Siti", uintPtr(3), models.RoleHOU)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.user.EXPECT().FindByID(uint(2)).Return(hou, nil).AnyTimes()

		var gotUpdates map[string]any
		f.crf.EXPECT().TransitionStatus(gomock.Any(), uint(1), models.StatusCreated, gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, _ uint, _ models.StatusCode, updates map[string]any) (int64, error) {
				gotUpdates = updates
				return 1, nil
			})
		var entry *models.CrfStatusTimeline
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
				entry = e
				return nil
			})

		if _, err := f.svc.Approve(1, 2); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
		if gotUpdates["application_status_id"] != models.StatusVerified {
			t.Fatalf("expected status %d, got %v", models.StatusVerified, gotUpdates["application_status_id"])
		}
		if gotUpdates["approved_by"] != uint(2) {
			t.Fatalf("expected approved_by=2, got %v", gotUpdates["approved_by"])
		}
		if entry.Status != "Verified" {
			t.Fatalf("expected timeline status Verified, got %q", entry.Status)
		}
		sent := f.dispatcher.all()
		if len(sent) != 1 || sent[0].Role != models.RoleITDAdmin || sent[0].Kind != models.NotifCrfVerified {
			t.Fatalf("expected one crf_verified notification for ITD ADMIN, got %+v", sent)
		}
	})

	t.Run("hardware relocation escalates to TP", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusCreated, models.CategoryHardwareRelocation)
		hou := userWithRoles(2, "Siti", uintPtr(3), models.RoleHOU)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.user.EXPECT().FindByID(uint(2)).Return(hou, nil).AnyTimes()

		var gotUpdates map[string]any
		f.crf.EXPECT().TransitionStatus(gomock.Any(), uint(1), models.StatusCreated, gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, _ uint, _ models.StatusCode, updates map[string]any) (int64, error) {
				gotUpdates = updates
				return 1, nil
			})
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := f.svc.Approve(1, 2); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
		if gotUpdates["application_status_id"] != models.StatusVerifiedByHOU {
			t.Fatalf("expected status %d, got %v", models.StatusVerifiedByHOU, gotUpdates["application_status_id"])
		}
		sent := f.dispatcher.all()
		if len(sent) != 1 || sent[0].Role != models.RoleTP || sent[0].Kind != models.NotifCrfVerifiedByHOU {
			t.Fatalf("expected one crf_verified_by_hou notification for TP, got %+v", sent)
		}
	})

	t.Run("HOU of another department is rejected", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusCreated, "Software")
		hou := userWithRoles(2, "Siti", uintPtr(9), models.RoleHOU)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)
		f.user.EXPECT().FindByID(uint(2)).Return(hou, nil).AnyTimes()

		_, err := f.svc.Approve(1, 2)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("already processed request conflicts", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusVerified, "Software")
		hou := userWithRoles(2, "Siti", uintPtr(3), models.RoleHOU)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)
		f.user.EXPECT().FindByID(uint(2)).Return(hou, nil).AnyTimes()

		_, err := f.svc.Approve(1, 2)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("losing the status race conflicts without a timeline entry", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusCreated, "Software")
		hou := userWithRoles(2, "Siti", uintPtr(3), models.RoleHOU)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)
		f.user.EXPECT().FindByID(uint(2)).Return(hou, nil).AnyTimes()
		f.crf.EXPECT().TransitionStatus(gomock.Any(), uint(1), models.StatusCreated, gomock.Any()).
			Return(int64(0), nil)

		_, err := f.svc.Approve(1, 2)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if sent := f.dispatcher.all(); len(sent) != 0 {
			t.Fatalf("expected no notifications after a lost race, got %+v", sent)
		}
	})
}

func TestAssignToITD(t *testing.T) {
	t.Run("assigns an ITD PIC and notifies them", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusAcknowledged, "Software")
		admin := userWithRoles(4, "Farid", nil, models.RoleITDAdmin)
		pic := userWithRoles(5, "Rahim", nil, models.RoleITDPIC)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.user.EXPECT().FindByID(uint(4)).Return(admin, nil).AnyTimes()
		f.user.EXPECT().FindByID(uint(5)).Return(pic, nil)

		var gotUpdates map[string]any
		f.crf.EXPECT().TransitionStatus(gomock.Any(), uint(1), models.StatusAcknowledged, gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, _ uint, _ models.StatusCode, updates map[string]any) (int64, error) {
				gotUpdates = updates
				return 1, nil
			})
		var entry *models.CrfStatusTimeline
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
				entry = e
				return nil
			})

		if _, err := f.svc.AssignToITD(1, 4, 5); err != nil {
			t.Fatalf("AssignToITD failed: %v", err)
		}
		if gotUpdates["application_status_id"] != models.StatusAssignedITD {
			t.Fatalf("expected status %d, got %v", models.StatusAssignedITD, gotUpdates["application_status_id"])
		}
		if gotUpdates["assigned_to"] != uint(5) {
			t.Fatalf("expected assigned_to=5, got %v", gotUpdates["assigned_to"])
		}
		if entry.Status != "Assigned to ITD" || *entry.Remark != "Assigned to Rahim" {
			t.Fatalf("unexpected timeline entry %q / %q", entry.Status, *entry.Remark)
		}
		sent := f.dispatcher.all()
		if len(sent) != 1 || sent[0].UserID != 5 || sent[0].Kind != models.NotifCrfAssigned {
			t.Fatalf("expected crf_assigned for user 5, got %+v", sent)
		}
	})

	t.Run("vendor admin is rejected regardless of status", func(t *testing.T) {
		f := setupWorkflow(t)
		vendorAdmin := userWithRoles(6, "Lim", nil, models.RoleVendorAdmin)
		f.user.EXPECT().FindByID(uint(6)).Return(vendorAdmin, nil).AnyTimes()

		for _, status := range []models.StatusCode{models.StatusAcknowledged, models.StatusClosed} {
			f.crf.EXPECT().FindByID(uint(1)).Return(crfAt(status, "Software"), nil)
			_, err := f.svc.AssignToITD(1, 6, 5)
			if !errors.Is(err, ErrForbidden) {
				t.Fatalf("status %d: expected forbidden, got %v", status, err)
			}
		}
	})

	t.Run("target without the PIC role is rejected", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusAcknowledged, "Software")
		admin := userWithRoles(4, "Farid", nil, models.RoleITDAdmin)
		notPIC := userWithRoles(7, "Aina", nil, models.RoleUser)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)
		f.user.EXPECT().FindByID(uint(4)).Return(admin, nil).AnyTimes()
		f.user.EXPECT().FindByID(uint(7)).Return(notPIC, nil)

		_, err := f.svc.AssignToITD(1, 4, 7)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestReassignToVendorFromInProgress(t *testing.T) {
	f := setupWorkflow(t)
	crf := crfAt(models.StatusInProgress, "Software")
	crf.AssignedTo = uintPtr(5)
	crf.AssignedUser = &models.User{ID: 5, Name: "Rahim"}
	admin := userWithRoles(4, "Farid", nil, models.RoleITDAdmin)
	vendorPIC := userWithRoles(6, "Wong", nil, models.RoleVendorPIC)

	f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
	f.user.EXPECT().FindByID(uint(4)).Return(admin, nil).AnyTimes()
	f.user.EXPECT().FindByID(uint(6)).Return(vendorPIC, nil)

	var gotUpdates map[string]any
	f.crf.EXPECT().TransitionStatus(gomock.Any(), uint(1), models.StatusInProgress, gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, _ uint, _ models.StatusCode, updates map[string]any) (int64, error) {
			gotUpdates = updates
			return 1, nil
		})
	var entry *models.CrfStatusTimeline
	f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
			entry = e
			return nil
		})

	if _, err := f.svc.ReassignToVendor(1, 4, 6); err != nil {
		t.Fatalf("ReassignToVendor failed: %v", err)
	}
	if gotUpdates["application_status_id"] != models.StatusReassignedVendor {
		t.Fatalf("expected status %d, got %v", models.StatusReassignedVendor, gotUpdates["application_status_id"])
	}
	if *entry.Remark != "Reassigned from Rahim to Wong" {
		t.Fatalf("unexpected remark %q", *entry.Remark)
	}
}

func TestMarkInProgress(t *testing.T) {
	t.Run("only the assignee may start work", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusAssignedITD, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)

		_, err := f.svc.MarkInProgress(1, 6)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("requires an assignment lane status", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusAcknowledged, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)

		_, err := f.svc.MarkInProgress(1, 5)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestMarkCompleted(t *testing.T) {
	t.Run("closes from in progress", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.crf.EXPECT().TransitionStatus(gomock.Any(), uint(1), models.StatusInProgress, gomock.Any()).
			Return(int64(1), nil)
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := f.svc.MarkCompleted(1, 5); err != nil {
			t.Fatalf("MarkCompleted failed: %v", err)
		}
	})

	t.Run("cannot close before work started", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusAssignedITD, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)

		_, err := f.svc.MarkCompleted(1, 5)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestUpdateRemark(t *testing.T) {
	t.Run("first remark records remark_added", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.crf.EXPECT().UpdateFields(gomock.Any(), uint(1), gomock.Any()).Return(nil)

		var history *models.CrfRemark
		f.remark.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, r *models.CrfRemark) error {
				history = r
				return nil
			})
		var entry *models.CrfStatusTimeline
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
				entry = e
				return nil
			})

		remark := "Replaced network cable"
		if _, err := f.svc.UpdateRemark(1, 5, &remark); err != nil {
			t.Fatalf("UpdateRemark failed: %v", err)
		}
		if history.Remark != remark || history.UserID != 5 {
			t.Fatalf("unexpected remark history %+v", history)
		}
		if entry.ActionType != models.ActionRemarkAdded {
			t.Fatalf("expected remark_added, got %s", entry.ActionType)
		}
		if entry.Status != "Work in progress" {
			t.Fatalf("expected current status label, got %q", entry.Status)
		}
	})

	t.Run("existing remark records remark_updated", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)
		old := "Investigating"
		crf.ITRemark = &old

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.crf.EXPECT().UpdateFields(gomock.Any(), uint(1), gomock.Any()).Return(nil)
		f.remark.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		var entry *models.CrfStatusTimeline
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
				entry = e
				return nil
			})

		remark := "Resolved"
		if _, err := f.svc.UpdateRemark(1, 5, &remark); err != nil {
			t.Fatalf("UpdateRemark failed: %v", err)
		}
		if entry.ActionType != models.ActionRemarkUpdated {
			t.Fatalf("expected remark_updated, got %s", entry.ActionType)
		}
	})

	t.Run("unchanged remark leaves the timeline alone", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)
		old := "Investigating"
		crf.ITRemark = &old

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.crf.EXPECT().UpdateFields(gomock.Any(), uint(1), gomock.Any()).Return(nil)

		same := "Investigating"
		if _, err := f.svc.UpdateRemark(1, 5, &same); err != nil {
			t.Fatalf("UpdateRemark failed: %v", err)
		}
	})
}

func TestUpdateFactor(t *testing.T) {
	t.Run("always records a factor_updated entry", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil).AnyTimes()
		f.lookup.EXPECT().FindFactor(uint(2)).Return(&models.Factor{ID: 2, Name: "Wear and Tear"}, nil)

		var gotUpdates map[string]any
		f.crf.EXPECT().UpdateFields(gomock.Any(), uint(1), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, _ uint, updates map[string]any) error {
				gotUpdates = updates
				return nil
			})
		var entry *models.CrfStatusTimeline
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
				entry = e
				return nil
			})

		if _, err := f.svc.UpdateFactor(1, 5, 2); err != nil {
			t.Fatalf("UpdateFactor failed: %v", err)
		}
		if gotUpdates["factor_id"] != uint(2) {
			t.Fatalf("expected factor_id=2, got %v", gotUpdates["factor_id"])
		}
		if entry.ActionType != models.ActionFactorUpdated {
			t.Fatalf("expected factor_updated, got %s", entry.ActionType)
		}
		if entry.Remark == nil || *entry.Remark != "Factor set to: Wear and Tear" {
			t.Fatalf("unexpected remark %v", entry.Remark)
		}
		if entry.Status != "Work in progress" {
			t.Fatalf("expected current status label, got %q", entry.Status)
		}
	})

	t.Run("non-assignee is rejected", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)

		_, err := f.svc.UpdateFactor(1, 6, 2)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("unknown factor is rejected", func(t *testing.T) {
		f := setupWorkflow(t)
		crf := crfAt(models.StatusInProgress, "Software")
		crf.AssignedTo = uintPtr(5)

		f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)
		f.lookup.EXPECT().FindFactor(uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.UpdateFactor(1, 5, 99)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("stores attachments and notifies the department HOU", func(t *testing.T) {
		f := setupWorkflow(t)
		submitter := userWithRoles(10, "Ali", nil, models.RoleUser)

		f.user.EXPECT().FindByID(uint(10)).Return(submitter, nil).AnyTimes()
		f.lookup.EXPECT().FindDepartment(uint(3)).Return(&models.Department{ID: 3, DName: "Finance"}, nil)
		f.lookup.EXPECT().FindCategory(uint(2)).Return(&models.Category{ID: 2, CName: "Software"}, nil)

		f.crf.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, crf *models.Crf) error {
				crf.ID = 7
				return nil
			})
		f.attachment.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, att *models.CrfAttachment) error {
				if att.CrfID != 7 || att.Filename != "quote.pdf" {
					t.Fatalf("unexpected attachment row %+v", att)
				}
				return nil
			})
		var entry *models.CrfStatusTimeline
		f.timeline.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *gorm.DB, e *models.CrfStatusTimeline) error {
				entry = e
				return nil
			})
		f.user.EXPECT().FindDepartmentHOU(uint(3)).
			Return(userWithRoles(2, "Siti", uintPtr(3), models.RoleHOU), nil)
		f.crf.EXPECT().FindByID(uint(7)).
			Return(&models.Crf{ID: 7, ApplicationStatusID: models.StatusCreated}, nil)

		input := dto.CreateCrfDTO{
			Name:         "Ali",
			NRIC:         "900101-01-1234",
			DepartmentID: 3,
			Designation:  "Clerk",
			ExtNo:        "1234",
			CategoryID:   2,
			Issue:        "PC cannot boot",
		}
		uploads := []AttachmentUpload{{
			Filename: "quote.pdf",
			Mime:     "application/pdf",
			Size:     4,
			Reader:   strings.NewReader("data"),
		}}

		created, err := f.svc.Create(context.Background(), 10, input, uploads)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID != 7 || created.ApplicationStatusID != models.StatusCreated {
			t.Fatalf("unexpected created CRF %+v", created)
		}
		if entry.Status != "First Created" {
			t.Fatalf("expected First Created entry, got %q", entry.Status)
		}
		if _, ok := f.store.objects["crf-uploads/quote.pdf"]; !ok {
			t.Fatal("attachment object was not stored")
		}
		sent := f.dispatcher.all()
		if len(sent) != 1 || sent[0].UserID != 2 || sent[0].Kind != models.NotifCrfCreated {
			t.Fatalf("expected crf_created for the HOU, got %+v", sent)
		}
	})

	t.Run("failed insert removes stored objects", func(t *testing.T) {
		f := setupWorkflow(t)
		submitter := userWithRoles(10, "Ali", nil, models.RoleUser)

		f.user.EXPECT().FindByID(uint(10)).Return(submitter, nil).AnyTimes()
		f.lookup.EXPECT().FindDepartment(uint(3)).Return(&models.Department{ID: 3}, nil)
		f.lookup.EXPECT().FindCategory(uint(2)).Return(&models.Category{ID: 2}, nil)
		f.crf.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		input := dto.CreateCrfDTO{
			Name: "Ali", NRIC: "900101-01-1234", DepartmentID: 3,
			Designation: "Clerk", ExtNo: "1234", CategoryID: 2, Issue: "PC cannot boot",
		}
		uploads := []AttachmentUpload{{
			Filename: "quote.pdf",
			Mime:     "application/pdf",
			Size:     4,
			Reader:   strings.NewReader("data"),
		}}

		if _, err := f.svc.Create(context.Background(), 10, input, uploads); err == nil {
			t.Fatal("expected error from failed insert")
		}
		if len(f.store.deleted) != 1 || f.store.deleted[0] != "crf-uploads/quote.pdf" {
			t.Fatalf("expected orphaned object cleanup, got %+v", f.store.deleted)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		f := setupWorkflow(t)
		submitter := userWithRoles(10, "Ali", nil, models.RoleUser)

		f.user.EXPECT().FindByID(uint(10)).Return(submitter, nil).AnyTimes()
		f.lookup.EXPECT().FindDepartment(uint(3)).Return(&models.Department{ID: 3}, nil)
		f.lookup.EXPECT().FindCategory(uint(99)).Return(nil, gorm.ErrRecordNotFound)

		input := dto.CreateCrfDTO{
			Name: "Ali", NRIC: "900101-01-1234", DepartmentID: 3,
			Designation: "Clerk", ExtNo: "1234", CategoryID: 99, Issue: "PC cannot boot",
		}
		_, err := f.svc.Create(context.Background(), 10, input, nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestDeleteRemovesStoredObjects(t *testing.T) {
	f := setupWorkflow(t)
	crf := crfAt(models.StatusClosed, "Software")
	crf.Attachments = []models.CrfAttachment{{ID: 1, CrfID: 1, Path: "crf-uploads/quote.pdf"}}
	f.store.objects["crf-uploads/quote.pdf"] = []byte("data")
	admin := userWithRoles(4, "Farid", nil, models.RoleITDAdmin)

	f.crf.EXPECT().FindByID(uint(1)).Return(crf, nil)
	f.user.EXPECT().FindByID(uint(4)).Return(admin, nil).AnyTimes()
	f.crf.EXPECT().Delete(uint(1)).Return(nil)

	if err := f.svc.Delete(context.Background(), 1, 4); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(f.store.deleted) != 1 {
		t.Fatalf("expected stored object removal, got %+v", f.store.deleted)
	}
}
