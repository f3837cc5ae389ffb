package models

// Capability is an explicit grant checked by the Authorizer. Using a closed
// enum instead of free-text permission names keeps a typo from silently
// granting or denying access.
type Capability string

const (
	CapCreateCrf      Capability = "crf.create"
	CapApprove        Capability = "crf.approve"
	CapApproveTP      Capability = "crf.approve_tp"
	CapAcknowledge    Capability = "crf.acknowledge"
	CapAssignITD      Capability = "crf.assign_itd"
	CapAssignVendor   Capability = "crf.assign_vendor"
	CapReassignITD    Capability = "crf.reassign_itd"
	CapReassignVendor Capability = "crf.reassign_vendor"
	CapUpdateOwn      Capability = "crf.update_own"
	CapClose          Capability = "crf.close"
	CapDelete         Capability = "crf.delete"
	CapViewReports    Capability = "crf.view_reports"
)

// roleGrants is the static role -> capability table, mirroring the production
// permission seed data.
var roleGrants = map[string][]Capability{
	RoleUser: {CapCreateCrf},
	RoleHOU:  {CapApprove},
	RoleTP:   {CapApproveTP},
	RoleITDAdmin: {
		CapAcknowledge, CapAssignITD, CapAssignVendor,
		CapReassignITD, CapReassignVendor,
		CapClose, CapDelete, CapViewReports,
	},
	RoleITDPIC:    {CapUpdateOwn, CapClose},
	RoleVendorPIC: {CapUpdateOwn, CapClose},
	RoleVendorAdmin: {
		CapAssignVendor, CapReassignVendor, CapViewReports,
	},
}

// RoleGrants returns the capabilities granted to a role name.
func RoleGrants(role string) []Capability {
	return roleGrants[role]
}

func RoleHasCapability(role string, cap Capability) bool {
	for _, c := range roleGrants[role] {
		if c == cap {
			return true
		}
	}
	return false
}
