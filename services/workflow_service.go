package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/linskybing/crf-go/db"
	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/notify"
	"github.com/linskybing/crf-go/repositories"
	"github.com/linskybing/crf-go/storage"
	"gorm.io/gorm"
)

// Transactional wraps one unit of work. Package-level so tests can swap in
// a runner without a database.
var Transactional = func(fn func(tx *gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// Background runs notification dispatch off the caller's critical path.
// Tests swap it for an inline runner.
var Background = func(fn func()) { go fn() }

// WorkflowService owns the CRF lifecycle. Every transition validates
// authority and precondition, then commits the status change and exactly one
// timeline entry in a single transaction. Notification dispatch is
// best-effort and happens off the critical path.
type WorkflowService struct {
	Repos      *repositories.Repos
	Auth       Authorizer
	Timeline   *TimelineService
	Assignment *AssignmentService
	Dispatcher notify.Dispatcher
	Store      storage.Storage
}

func NewWorkflowService(repos *repositories.Repos, auth Authorizer, timeline *TimelineService,
	assignment *AssignmentService, dispatcher notify.Dispatcher, store storage.Storage) *WorkflowService {
	return &WorkflowService{
		Repos:      repos,
		Auth:       auth,
		Timeline:   timeline,
		Assignment: assignment,
		Dispatcher: dispatcher,
		Store:      store,
	}
}

// AttachmentUpload carries one submitted file into Create.
type AttachmentUpload struct {
	Filename string
	Mime     string
	Size     int64
	Reader   io.Reader
}

func (s *WorkflowService) loadCrf(id uint) (*models.Crf, error) {
	crf, err := s.Repos.Crf.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("CRF #%d", id)
		}
		return nil, err
	}
	return crf, nil
}

func (s *WorkflowService) loadActor(id uint) (*models.User, error) {
	actor, err := s.Repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("user #%d", id)
		}
		return nil, err
	}
	return actor, nil
}

func (s *WorkflowService) requireCapability(actorID uint, capability models.Capability) error {
	ok, err := s.Auth.Can(actorID, capability)
	if err != nil {
		return err
	}
	if !ok {
		return forbiddenf("user #%d lacks %s", actorID, capability)
	}
	return nil
}

func (s *WorkflowService) requireAssignee(crf *models.Crf, actorID uint) error {
	if crf.AssignedTo == nil || *crf.AssignedTo != actorID {
		return forbiddenf("user #%d is not the assignee of CRF #%d", actorID, crf.ID)
	}
	return nil
}

// apply commits one decision: status change guarded by the expected source
// status plus the timeline append, atomically. A timeline failure rolls the
// status back; a dispatch failure is logged and swallowed.
func (s *WorkflowService) apply(crf *models.Crf, actorID *uint, d Decision) error {
	updates := map[string]any{"application_status_id": d.To}
	for column, value := range d.Updates {
		updates[column] = value
	}

	err := Transactional(func(tx *gorm.DB) error {
		rows, err := s.Repos.Crf.TransitionStatus(tx, crf.ID, d.From, updates)
		if err != nil {
			return err
		}
		if rows == 0 {
			return conflictf("CRF #%d is no longer at status %q", crf.ID, d.From.Label())
		}
		return s.Timeline.Record(tx, crf.ID, actorID, d.Timeline.Status, d.Timeline.Remark, d.Timeline.ActionType)
	})
	if err != nil {
		return err
	}

	Background(func() { s.dispatch(crf.ID, crf.FName, d.Notify) })
	return nil
}

func (s *WorkflowService) dispatch(crfID uint, fname string, intents []NotificationIntent) {
	for _, intent := range intents {
		payload := notificationPayload(crfID, fname, intent.Kind)
		var err error
		if intent.Role != "" {
			err = s.Dispatcher.NotifyRole(intent.Role, intent.Kind, payload)
		} else {
			err = s.Dispatcher.NotifyUser(intent.UserID, intent.Kind, payload)
		}
		if err != nil {
			log.Printf("dispatch %s for CRF #%d failed: %v", intent.Kind, crfID, err)
		}
	}
}

func notificationPayload(crfID uint, fname string, kind models.NotificationKind) map[string]any {
	payload := map[string]any{
		"crf_id":     crfID,
		"action_url": fmt.Sprintf("/crfs/%d", crfID),
		"type":       string(kind),
	}
	switch kind {
	case models.NotifCrfCreated:
		payload["title"] = "New CRF Created"
		payload["message"] = fmt.Sprintf("%s created a new CRF #%d", fname, crfID)
	case models.NotifCrfAssigned:
		payload["title"] = "CRF Assigned to You"
		payload["message"] = fmt.Sprintf("CRF #%d has been assigned to you", crfID)
	case models.NotifCrfVerified:
		payload["title"] = "CRF Verified"
		payload["message"] = fmt.Sprintf("CRF #%d is ready for acknowledgment", crfID)
	case models.NotifCrfVerifiedByHOU:
		payload["title"] = "CRF Awaiting TP Approval"
		payload["message"] = fmt.Sprintf("CRF #%d has been verified by HOU", crfID)
	}
	return payload
}

// Create registers a new CRF at status Created, stores the supporting files,
// writes the "First Created" timeline entry and notifies the department HOU.
func (s *WorkflowService) Create(ctx context.Context, actorID uint, input dto.CreateCrfDTO, uploads []AttachmentUpload) (*models.Crf, error) {
	if err := s.requireCapability(actorID, models.CapCreateCrf); err != nil {
		return nil, err
	}
	if _, err := s.Repos.Lookup.FindDepartment(input.DepartmentID); err != nil {
		return nil, validationf("unknown department %d", input.DepartmentID)
	}
	if _, err := s.Repos.Lookup.FindCategory(input.CategoryID); err != nil {
		return nil, validationf("unknown category %d", input.CategoryID)
	}
	if input.FactorID != nil {
		if _, err := s.Repos.Lookup.FindFactor(*input.FactorID); err != nil {
			return nil, validationf("unknown factor %d", *input.FactorID)
		}
	}

	crf := &models.Crf{
		UserID:              actorID,
		FName:               input.Name,
		NRIC:                input.NRIC,
		DepartmentID:        input.DepartmentID,
		Designation:         input.Designation,
		ExtNo:               input.ExtNo,
		CategoryID:          input.CategoryID,
		FactorID:            input.FactorID,
		Issue:               input.Issue,
		Reason:              input.Reason,
		ApplicationStatusID: models.StatusCreated,
	}

	// Objects land in storage before the transaction; rows referencing them
	// commit with the CRF. Orphaned objects from a failed commit are removed
	// best-effort below.
	stored := make([]models.CrfAttachment, 0, len(uploads))
	for _, upload := range uploads {
		path, err := s.Store.Store(ctx, upload.Reader, upload.Size, upload.Filename, upload.Mime)
		if err != nil {
			return nil, fmt.Errorf("store attachment %s: %w", upload.Filename, err)
		}
		stored = append(stored, models.CrfAttachment{
			Filename: upload.Filename,
			Path:     path,
			Mime:     upload.Mime,
			Size:     upload.Size,
		})
	}

	err := Transactional(func(tx *gorm.DB) error {
		if err := s.Repos.Crf.Create(tx, crf); err != nil {
			return err
		}
		for i := range stored {
			stored[i].CrfID = crf.ID
			if err := s.Repos.Attachment.Create(tx, &stored[i]); err != nil {
				return err
			}
		}
		return s.Timeline.Record(tx, crf.ID, &actorID,
			models.StatusCreated.Label(), nil, models.ActionStatusChange)
	})
	if err != nil {
		for _, att := range stored {
			if removeErr := s.Store.Delete(ctx, att.Path); removeErr != nil {
				log.Printf("cleanup of %s failed: %v", att.Path, removeErr)
			}
		}
		return nil, err
	}

	Background(func() { s.notifyDepartmentHOU(crf) })

	return s.loadCrf(crf.ID)
}

func (s *WorkflowService) notifyDepartmentHOU(crf *models.Crf) {
	hou, err := s.Repos.User.FindDepartmentHOU(crf.DepartmentID)
	if err != nil {
		log.Printf("lookup HOU for department %d failed: %v", crf.DepartmentID, err)
		return
	}
	if hou == nil {
		return
	}
	payload := notificationPayload(crf.ID, crf.FName, models.NotifCrfCreated)
	if err := s.Dispatcher.NotifyUser(hou.ID, models.NotifCrfCreated, payload); err != nil {
		log.Printf("dispatch crf_created for CRF #%d failed: %v", crf.ID, err)
	}
}

// Approve is the HOU verification. The category routes the CRF either to the
// TP tier (Hardware Relocation) or straight to Verified.
func (s *WorkflowService) Approve(crfID, actorID uint) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	actor, err := s.loadActor(actorID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCapability(actorID, models.CapApprove); err != nil {
		return nil, err
	}
	if actor.DepartmentID == nil || *actor.DepartmentID != crf.DepartmentID {
		return nil, forbiddenf("you can only approve CRFs from your department")
	}

	decision, err := decideApprove(crf, actor)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

func (s *WorkflowService) ApproveByTP(crfID, actorID uint) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	actor, err := s.loadActor(actorID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCapability(actorID, models.CapApproveTP); err != nil {
		return nil, err
	}

	decision, err := decideApproveTP(crf, actor)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

func (s *WorkflowService) Acknowledge(crfID, actorID uint) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCapability(actorID, models.CapAcknowledge); err != nil {
		return nil, err
	}

	decision, err := decideAcknowledge(crf)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

func (s *WorkflowService) AssignToITD(crfID, actorID, targetID uint) (*models.Crf, error) {
	return s.assign(crfID, actorID, targetID, models.CapAssignITD,
		TransitionAssignITD, models.StatusAssignedITD, models.RoleITDPIC)
}

func (s *WorkflowService) AssignToVendor(crfID, actorID, targetID uint) (*models.Crf, error) {
	return s.assign(crfID, actorID, targetID, models.CapAssignVendor,
		TransitionAssignVendor, models.StatusAssignedVendor, models.RoleVendorPIC)
}

func (s *WorkflowService) assign(crfID, actorID, targetID uint, capability models.Capability,
	transition Transition, to models.StatusCode, picRole string) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCapability(actorID, capability); err != nil {
		return nil, err
	}
	target, err := s.Assignment.Resolve(targetID, picRole)
	if err != nil {
		return nil, err
	}

	decision, err := decideAssign(transition, to, crf, target)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

func (s *WorkflowService) ReassignToITD(crfID, actorID, targetID uint) (*models.Crf, error) {
	return s.reassign(crfID, actorID, targetID, models.CapReassignITD,
		TransitionReassignITD, models.StatusReassignedITD, models.RoleITDPIC)
}

func (s *WorkflowService) ReassignToVendor(crfID, actorID, targetID uint) (*models.Crf, error) {
	return s.reassign(crfID, actorID, targetID, models.CapReassignVendor,
		TransitionReassignVendor, models.StatusReassignedVendor, models.RoleVendorPIC)
}

func (s *WorkflowService) reassign(crfID, actorID, targetID uint, capability models.Capability,
	transition Transition, to models.StatusCode, picRole string) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCapability(actorID, capability); err != nil {
		return nil, err
	}
	target, err := s.Assignment.Resolve(targetID, picRole)
	if err != nil {
		return nil, err
	}

	decision, err := decideReassign(transition, to, crf, target)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

func (s *WorkflowService) MarkInProgress(crfID, actorID uint) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignee(crf, actorID); err != nil {
		return nil, err
	}

	decision, err := decideMarkInProgress(crf)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

func (s *WorkflowService) MarkCompleted(crfID, actorID uint) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignee(crf, actorID); err != nil {
		return nil, err
	}

	decision, err := decideMarkCompleted(crf)
	if err != nil {
		return nil, err
	}
	if err := s.apply(crf, &actorID, decision); err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

// UpdateRemark stores the assignee's working remark. The timeline and remark
// history only grow when the text actually changed.
func (s *WorkflowService) UpdateRemark(crfID, actorID uint, remark *string) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignee(crf, actorID); err != nil {
		return nil, err
	}

	oldRemark := ""
	if crf.ITRemark != nil {
		oldRemark = *crf.ITRemark
	}
	newRemark := ""
	if remark != nil {
		newRemark = *remark
	}
	changed := oldRemark != newRemark

	actionType := models.ActionRemarkAdded
	if oldRemark != "" {
		actionType = models.ActionRemarkUpdated
	}
	statusLabel := crf.ApplicationStatusID.Label()

	err = Transactional(func(tx *gorm.DB) error {
		if err := s.Repos.Crf.UpdateFields(tx, crf.ID, map[string]any{"it_remark": remark}); err != nil {
			return err
		}
		if !changed || newRemark == "" {
			return nil
		}
		if err := s.Repos.Remark.Create(tx, &models.CrfRemark{
			CrfID:  crf.ID,
			UserID: actorID,
			Remark: newRemark,
			Status: statusLabel,
		}); err != nil {
			return err
		}
		return s.Timeline.Record(tx, crf.ID, &actorID, statusLabel, &newRemark, actionType)
	})
	if err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

// UpdateFactor retags the CRF and always records a factor_updated entry.
func (s *WorkflowService) UpdateFactor(crfID, actorID, factorID uint) (*models.Crf, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignee(crf, actorID); err != nil {
		return nil, err
	}
	factor, err := s.Repos.Lookup.FindFactor(factorID)
	if err != nil {
		return nil, validationf("unknown factor %d", factorID)
	}

	remark := fmt.Sprintf("Factor set to: %s", factor.Name)
	statusLabel := crf.ApplicationStatusID.Label()

	err = Transactional(func(tx *gorm.DB) error {
		if err := s.Repos.Crf.UpdateFields(tx, crf.ID, map[string]any{"factor_id": factorID}); err != nil {
			return err
		}
		return s.Timeline.Record(tx, crf.ID, &actorID, statusLabel, &remark, models.ActionFactorUpdated)
	})
	if err != nil {
		return nil, err
	}
	return s.loadCrf(crfID)
}

// Delete is an administrative override, not a workflow transition. It removes
// the CRF with its timeline, remarks and attachments.
func (s *WorkflowService) Delete(ctx context.Context, crfID, actorID uint) error {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return err
	}
	if err := s.requireCapability(actorID, models.CapDelete); err != nil {
		return err
	}

	if err := s.Repos.Crf.Delete(crf.ID); err != nil {
		return err
	}
	for _, att := range crf.Attachments {
		if err := s.Store.Delete(ctx, att.Path); err != nil {
			log.Printf("remove object %s failed: %v", att.Path, err)
		}
	}
	return nil
}

// Get returns the CRF projection with its timeline.
func (s *WorkflowService) Get(crfID uint) (*models.Crf, []models.CrfStatusTimeline, error) {
	crf, err := s.loadCrf(crfID)
	if err != nil {
		return nil, nil, err
	}
	timeline, err := s.Timeline.ListFor(crfID)
	if err != nil {
		return nil, nil, err
	}
	return crf, timeline, nil
}

// Search powers the public check-status page.
func (s *WorkflowService) Search(term string) ([]models.Crf, error) {
	return s.Repos.Crf.Search(term)
}
