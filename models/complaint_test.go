package models

import "testing"

func TestValidComplaintStatus(t *testing.T) {
	for _, s := range []ComplaintStatus{ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved} {
		if !ValidComplaintStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []ComplaintStatus{"", "pending", "Open", "Closed"} {
		if ValidComplaintStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestValidComplaintPriority(t *testing.T) {
	for _, p := range []ComplaintPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		if !ValidComplaintPriority(p) {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []ComplaintPriority{"", "urgent", "medium"} {
		if ValidComplaintPriority(p) {
			t.Errorf("%q should be invalid", p)
		}
	}
}
