package models

import "testing"

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role       string
		capability Capability
		want       bool
	}{
		{RoleUser, CapCreateCrf, true},
		{RoleUser, CapApprove, false},
		{RoleHOU, CapApprove, true},
		{RoleHOU, CapApproveTP, false},
		{RoleTP, CapApproveTP, true},
		{RoleITDAdmin, CapAcknowledge, true},
		{RoleITDAdmin, CapAssignITD, true},
		{RoleITDAdmin, CapDelete, true},
		// A vendor admin manages the vendor lane only.
		{RoleVendorAdmin, CapAssignVendor, true},
		{RoleVendorAdmin, CapAssignITD, false},
		{RoleVendorAdmin, CapReassignITD, false},
		{RoleITDPIC, CapUpdateOwn, true},
		{RoleITDPIC, CapAssignITD, false},
		{RoleVendorPIC, CapClose, true},
	}
	for _, tc := range cases {
		if got := RoleHasCapability(tc.role, tc.capability); got != tc.want {
			t.Errorf("RoleHasCapability(%q, %q) = %v, want %v", tc.role, tc.capability, got, tc.want)
		}
	}
}

func TestUnknownRoleHasNoGrants(t *testing.T) {
	if grants := RoleGrants("JANITOR"); len(grants) != 0 {
		t.Fatalf("unexpected grants for unknown role: %v", grants)
	}
}
