package service

import (
	"database/sql"
	"testing"

	"suraksha/models"
)

func TestCloseoutAssignment(t *testing.T) {
	t.Run("unassigned stays untouched", func(t *testing.T) {
		if got := closeoutAssignment(models.AssignmentUnassigned); got != nil {
			t.Errorf("expected nil, got %v", *got)
		}
	})

	t.Run("assigned closes out as resolved", func(t *testing.T) {
		got := closeoutAssignment(models.AssignmentAssigned)
		if got == nil || *got != models.AssignmentResolved {
			t.Errorf("expected Resolved, got %v", got)
		}
	})

	t.Run("in progress closes out as resolved", func(t *testing.T) {
		got := closeoutAssignment(models.AssignmentInProgress)
		if got == nil || *got != models.AssignmentResolved {
			t.Errorf("expected Resolved, got %v", got)
		}
	})

	t.Run("already resolved stays untouched", func(t *testing.T) {
		if got := closeoutAssignment(models.AssignmentResolved); got != nil {
			t.Errorf("expected nil, got %v", *got)
		}
	})
}

func TestCanCancelAlert(t *testing.T) {
	alert := &models.Alert{AlertID: 10, UserID: 7}

	cases := []struct {
		name      string
		principal models.Principal
		want      bool
	}{
		{"owner", models.Principal{Role: models.RoleUser, UserID: 7}, true},
		{"other user", models.Principal{Role: models.RoleUser, UserID: 8}, false},
		{"admin", models.Principal{Role: models.RoleAdmin}, true},
		{"police", models.Principal{Role: models.RolePolice, OfficerID: 3, StationID: 1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := canCancelAlert(c.principal, alert); got != c.want {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestCanViewAlert(t *testing.T) {
	view := &models.AlertView{
		Alert: models.Alert{
			AlertID:          10,
			UserID:           7,
			NearestStationID: sql.NullInt64{Int64: 4, Valid: true},
		},
	}

	cases := []struct {
		name      string
		principal models.Principal
		want      bool
	}{
		{"owner", models.Principal{Role: models.RoleUser, UserID: 7}, true},
		{"other user", models.Principal{Role: models.RoleUser, UserID: 9}, false},
		{"officer of assigned station", models.Principal{Role: models.RolePolice, OfficerID: 2, StationID: 4}, true},
		{"officer of another station", models.Principal{Role: models.RolePolice, OfficerID: 2, StationID: 5}, false},
		{"admin", models.Principal{Role: models.RoleAdmin}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := canViewAlert(c.principal, view); got != c.want {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}

	t.Run("police cannot view unassigned alert", func(t *testing.T) {
		unassigned := &models.AlertView{Alert: models.Alert{AlertID: 11, UserID: 7}}
		p := models.Principal{Role: models.RolePolice, OfficerID: 2, StationID: 4}
		if canViewAlert(p, unassigned) {
			t.Error("officer should not see an alert with no station")
		}
	})
}
