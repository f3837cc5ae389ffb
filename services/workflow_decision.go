package services

import (
	"fmt"

	"github.com/linskybing/crf-go/models"
)

// Transition names every status-changing operation of the CRF lifecycle.
type Transition string

const (
	TransitionApprove        Transition = "approve"
	TransitionApproveTP      Transition = "approve_tp"
	TransitionAcknowledge    Transition = "acknowledge"
	TransitionAssignITD      Transition = "assign_itd"
	TransitionAssignVendor   Transition = "assign_vendor"
	TransitionReassignITD    Transition = "reassign_itd"
	TransitionReassignVendor Transition = "reassign_vendor"
	TransitionMarkInProgress Transition = "mark_in_progress"
	TransitionMarkCompleted  Transition = "mark_completed"
)

// transitionSources is the closed transition table: the statuses a transition
// may fire from. A transition absent here, or fired from a status not listed,
// is illegal. StatusClosed is terminal and appears in no entry.
var transitionSources = map[Transition][]models.StatusCode{
	TransitionApprove:        {models.StatusCreated},
	TransitionApproveTP:      {models.StatusVerifiedByHOU},
	TransitionAcknowledge:    {models.StatusVerified, models.StatusVerifiedByTP},
	TransitionAssignITD:      {models.StatusAcknowledged},
	TransitionAssignVendor:   {models.StatusAcknowledged},
	TransitionReassignITD:    {models.StatusAssignedITD, models.StatusReassignedITD, models.StatusInProgress},
	TransitionReassignVendor: {models.StatusAssignedVendor, models.StatusReassignedVendor, models.StatusInProgress},
	TransitionMarkInProgress: {
		models.StatusAssignedITD, models.StatusAssignedVendor,
		models.StatusReassignedITD, models.StatusReassignedVendor,
	},
	TransitionMarkCompleted: {models.StatusInProgress},
}

func allowedFrom(t Transition, s models.StatusCode) bool {
	for _, from := range transitionSources[t] {
		if from == s {
			return true
		}
	}
	return false
}

type TimelineEvent struct {
	Status     string
	Remark     *string
	ActionType models.ActionType
}

// NotificationIntent names a recipient (a single user or every holder of a
// role) without touching the transport.
type NotificationIntent struct {
	UserID uint
	Role   string
	Kind   models.NotificationKind
}

// Decision is the pure outcome of a transition: the guarded status change,
// the extra column updates, the single timeline entry and the notification
// intents. Applying it is the shell's job.
type Decision struct {
	From     models.StatusCode
	To       models.StatusCode
	Updates  map[string]any
	Timeline TimelineEvent
	Notify   []NotificationIntent
}

// approvalRoute describes where an HOU approval sends a CRF. Routes are keyed
// by category name so an extra approval tier is a table entry, not a change
// to the approve logic.
type approvalRoute struct {
	To         models.StatusCode
	RemarkFmt  string
	NotifyRole string
	NotifyKind models.NotificationKind
}

var approvalRoutes = map[string]approvalRoute{
	models.CategoryHardwareRelocation: {
		To:         models.StatusVerifiedByHOU,
		RemarkFmt:  "Approved by HOU: %s (Awaiting TP approval)",
		NotifyRole: models.RoleTP,
		NotifyKind: models.NotifCrfVerifiedByHOU,
	},
}

var defaultApprovalRoute = approvalRoute{
	To:         models.StatusVerified,
	RemarkFmt:  "Approved by HOU: %s",
	NotifyRole: models.RoleITDAdmin,
	NotifyKind: models.NotifCrfVerified,
}

func routeForCategory(category string) approvalRoute {
	if route, ok := approvalRoutes[category]; ok {
		return route
	}
	return defaultApprovalRoute
}

func checkSource(t Transition, crf *models.Crf) error {
	if !allowedFrom(t, crf.ApplicationStatusID) {
		return conflictf("CRF #%d is at status %q, transition %s not allowed",
			crf.ID, crf.ApplicationStatusID.Label(), t)
	}
	return nil
}

func decideApprove(crf *models.Crf, actor *models.User) (Decision, error) {
	if err := checkSource(TransitionApprove, crf); err != nil {
		return Decision{}, err
	}

	category := ""
	if crf.Category != nil {
		category = crf.Category.CName
	}
	route := routeForCategory(category)

	remark := fmt.Sprintf(route.RemarkFmt, actor.Name)
	return Decision{
		From:    crf.ApplicationStatusID,
		To:      route.To,
		Updates: map[string]any{"approved_by": actor.ID},
		Timeline: TimelineEvent{
			Status:     route.To.Label(),
			Remark:     &remark,
			ActionType: models.ActionStatusChange,
		},
		Notify: []NotificationIntent{
			{Role: route.NotifyRole, Kind: route.NotifyKind},
		},
	}, nil
}

func decideApproveTP(crf *models.Crf, actor *models.User) (Decision, error) {
	if err := checkSource(TransitionApproveTP, crf); err != nil {
		return Decision{}, err
	}

	remark := fmt.Sprintf("Approved by Timbalan Pengarah: %s", actor.Name)
	return Decision{
		From:    crf.ApplicationStatusID,
		To:      models.StatusVerifiedByTP,
		Updates: map[string]any{"tp_approved_by": actor.ID},
		Timeline: TimelineEvent{
			Status:     models.StatusVerifiedByTP.Label(),
			Remark:     &remark,
			ActionType: models.ActionStatusChange,
		},
		Notify: []NotificationIntent{
			{Role: models.RoleITDAdmin, Kind: models.NotifCrfVerified},
		},
	}, nil
}

func decideAcknowledge(crf *models.Crf) (Decision, error) {
	if err := checkSource(TransitionAcknowledge, crf); err != nil {
		return Decision{}, err
	}

	return Decision{
		From: crf.ApplicationStatusID,
		To:   models.StatusAcknowledged,
		Timeline: TimelineEvent{
			Status:     models.StatusAcknowledged.Label(),
			ActionType: models.ActionStatusChange,
		},
	}, nil
}

func decideAssign(t Transition, to models.StatusCode, crf *models.Crf, target *models.User) (Decision, error) {
	if err := checkSource(t, crf); err != nil {
		return Decision{}, err
	}

	remark := fmt.Sprintf("Assigned to %s", target.Name)
	return Decision{
		From:    crf.ApplicationStatusID,
		To:      to,
		Updates: map[string]any{"assigned_to": target.ID},
		Timeline: TimelineEvent{
			Status:     to.Label(),
			Remark:     &remark,
			ActionType: models.ActionStatusChange,
		},
		Notify: []NotificationIntent{
			{UserID: target.ID, Kind: models.NotifCrfAssigned},
		},
	}, nil
}

func decideReassign(t Transition, to models.StatusCode, crf *models.Crf, target *models.User) (Decision, error) {
	if err := checkSource(t, crf); err != nil {
		return Decision{}, err
	}

	oldName := "N/A"
	if crf.AssignedUser != nil {
		oldName = crf.AssignedUser.Name
	}
	remark := fmt.Sprintf("Reassigned from %s to %s", oldName, target.Name)
	return Decision{
		From:    crf.ApplicationStatusID,
		To:      to,
		Updates: map[string]any{"assigned_to": target.ID},
		Timeline: TimelineEvent{
			Status:     to.Label(),
			Remark:     &remark,
			ActionType: models.ActionStatusChange,
		},
		Notify: []NotificationIntent{
			{UserID: target.ID, Kind: models.NotifCrfAssigned},
		},
	}, nil
}

func decideMarkInProgress(crf *models.Crf) (Decision, error) {
	if err := checkSource(TransitionMarkInProgress, crf); err != nil {
		return Decision{}, err
	}

	return Decision{
		From: crf.ApplicationStatusID,
		To:   models.StatusInProgress,
		Timeline: TimelineEvent{
			Status:     models.StatusInProgress.Label(),
			ActionType: models.ActionStatusChange,
		},
	}, nil
}

func decideMarkCompleted(crf *models.Crf) (Decision, error) {
	if err := checkSource(TransitionMarkCompleted, crf); err != nil {
		return Decision{}, err
	}

	return Decision{
		From: crf.ApplicationStatusID,
		To:   models.StatusClosed,
		Timeline: TimelineEvent{
			Status:     models.StatusClosed.Label(),
			ActionType: models.ActionStatusChange,
		},
	}, nil
}
