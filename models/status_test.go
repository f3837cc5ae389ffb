package models

import "testing"

func TestStatusLabels(t *testing.T) {
	want := map[StatusCode]string{
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
	for code, label := range want {
		if got := code.Label(); got != label {
			t.Errorf("status %d: expected %q, got %q", code, label, got)
		}
	}
}

func TestStatusCatalog(t *testing.T) {
	catalog := StatusCatalog()
	if len(catalog) != 11 {
		t.Fatalf("expected 11 statuses, got %d", len(catalog))
	}
	for i, code := range catalog {
		if uint(code) != uint(i+1) {
			t.Fatalf("catalog[%d] = %d, codes must stay dense and stable", i, code)
		}
		if !code.Known() {
			t.Fatalf("status %d not known", code)
		}
	}
}

func TestUnknownStatus(t *testing.T) {
	for _, code := range []StatusCode{0, 12, 255} {
		if code.Known() {
			t.Errorf("status %d should be unknown", code)
		}
		if got := code.Label(); got != "Unknown" {
			t.Errorf("status %d: expected Unknown label, got %q", code, got)
		}
	}
}
