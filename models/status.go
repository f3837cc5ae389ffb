package models

import "time"

// StatusCode mirrors the application_statuses primary keys. The numeric values
// are part of the wire contract and must not be renumbered.
type StatusCode uint

const (
	StatusCreated          StatusCode = 1
	StatusVerified         StatusCode = 2
	StatusAcknowledged     StatusCode = 3
	StatusAssignedITD      StatusCode = 4
	StatusAssignedVendor   StatusCode = 5
	StatusReassignedITD    StatusCode = 6
	StatusReassignedVendor StatusCode = 7
	StatusInProgress       StatusCode = 8
	StatusClosed           StatusCode = 9
	StatusVerifiedByHOU    StatusCode = 10
	StatusVerifiedByTP     StatusCode = 11
)

var statusLabels = map[StatusCode]string{
	StatusCreated:          "First Created",
	StatusVerified:         "Verified",
	StatusAcknowledged:     "ITD Acknowledged",
	StatusAssignedITD:      "Assigned to ITD",
	StatusAssignedVendor:   "Assigned to Vendor",
	StatusReassignedITD:    "Reassigned to ITD",
	StatusReassignedVendor: "Reassigned to Vendor",
	StatusInProgress:       "Work in progress",
	StatusClosed:           "Closed",
	StatusVerifiedByHOU:    "Approved by HOU",
	StatusVerifiedByTP:     "Verified by TP",
}

func (s StatusCode) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s StatusCode) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// StatusCatalog returns every known status code in ascending order.
func StatusCatalog() []StatusCode {
	return []StatusCode{
		StatusCreated, StatusVerified, StatusAcknowledged,
		StatusAssignedITD, StatusAssignedVendor,
		StatusReassignedITD, StatusReassignedVendor,
		StatusInProgress, StatusClosed,
		StatusVerifiedByHOU, StatusVerifiedByTP,
	}
}

type ApplicationStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Status    string    `gorm:"size:50;not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ApplicationStatus) TableName() string {
	return "application_statuses"
}
