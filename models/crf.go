package models

import "time"

type ActionType string

const (
	ActionStatusChange  ActionType = "status_change"
	ActionRemarkAdded   ActionType = "remark_added"
	ActionRemarkUpdated ActionType = "remark_updated"
	ActionFactorUpdated ActionType = "factor_updated"
)

type Crf struct {
	ID                  uint                `gorm:"primaryKey" json:"id"`
	UserID              uint                `gorm:"not null" json:"user_id"`
	FName               string              `gorm:"size:255;not null;column:fname" json:"fname"`
	NRIC                string              `gorm:"size:20;not null" json:"nric"`
	DepartmentID        uint                `gorm:"not null" json:"department_id"`
	Designation         string              `gorm:"size:255;not null" json:"designation"`
	ExtNo               string              `gorm:"size:10;not null;column:extno" json:"extno"`
	CategoryID          uint                `gorm:"not null" json:"category_id"`
	FactorID            *uint               `json:"factor_id"`
	Issue               string              `gorm:"size:255;not null" json:"issue"`
	Reason              *string             `gorm:"type:text" json:"reason"`
	ApplicationStatusID StatusCode          `gorm:"not null;default:1" json:"application_status_id"`
	ApprovedBy          *uint               `json:"approved_by"`
	TPApprovedBy        *uint               `gorm:"column:tp_approved_by" json:"tp_approved_by"`
	AssignedTo          *uint               `json:"assigned_to"`
	ITRemark            *string             `gorm:"type:text;column:it_remark" json:"it_remark"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
	User                *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department          *Department         `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Category            *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Factor              *Factor             `gorm:"foreignKey:FactorID" json:"factor,omitempty"`
	ApplicationStatus   *ApplicationStatus  `gorm:"foreignKey:ApplicationStatusID" json:"application_status,omitempty"`
	Approver            *User               `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
	TPApprover          *User               `gorm:"foreignKey:TPApprovedBy" json:"tp_approver,omitempty"`
	AssignedUser        *User               `gorm:"foreignKey:AssignedTo" json:"assigned_user,omitempty"`
	Timeline            []CrfStatusTimeline `gorm:"foreignKey:CrfID;constraint:OnDelete:CASCADE" json:"status_timeline,omitempty"`
	Remarks             []CrfRemark         `gorm:"foreignKey:CrfID;constraint:OnDelete:CASCADE" json:"remarks,omitempty"`
	Attachments         []CrfAttachment     `gorm:"foreignKey:CrfID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

func (Crf) TableName() string {
	return "crforms"
}

// IsHardwareRelocation reports whether the CRF belongs to the category that
// needs the second approval tier. Requires Category preloaded.
func (c *Crf) IsHardwareRelocation() bool {
	return c.Category != nil && c.Category.CName == CategoryHardwareRelocation
}

// CrfStatusTimeline is the append-only audit trail of a CRF. Rows are never
// updated or deleted except when the whole CRF is removed.
type CrfStatusTimeline struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CrfID      uint       `gorm:"not null;index" json:"crf_id"`
	UserID     *uint      `json:"user_id"`
	Status     string     `gorm:"size:50;not null" json:"status"`
	Remark     *string    `gorm:"type:text" json:"remark"`
	ActionType ActionType `gorm:"size:20;not null;default:'status_change'" json:"action_type"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CrfStatusTimeline) TableName() string {
	return "crf_status_timeline"
}

// ActionBy renders the actor name, falling back to "System" for entries
// written without a user.
func (t *CrfStatusTimeline) ActionBy() string {
	if t.User != nil {
		return t.User.Name
	}
	return "System"
}

type CrfRemark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CrfID     uint      `gorm:"not null;index" json:"crf_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Remark    string    `gorm:"type:text;not null" json:"remark"`
	Status    string    `gorm:"size:50" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CrfRemark) TableName() string {
	return "crf_remarks"
}

type CrfAttachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CrfID     uint      `gorm:"not null;index" json:"crf_id"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	Path      string    `gorm:"size:255;not null" json:"path"`
	Mime      string    `gorm:"size:100" json:"mime"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Crf       *Crf      `gorm:"foreignKey:CrfID" json:"crf,omitempty"`
}

func (CrfAttachment) TableName() string {
	return "crf_attachments"
}
