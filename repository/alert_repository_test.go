package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"suraksha/models"
)

func TestApplyAssignment(t *testing.T) {
	assignment := &models.AlertAssignment{
		AlertID:           7,
		StationID:         3,
		OfficerIDs:        []int64{11, 12},
		DistanceToStation: 1234.5,
		AssignedAt:        time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	}

	expectAssignment := func(mock sqlmock.Sqlmock, updateChanged int64) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE alerts").
			WithArgs(assignment.StationID, assignment.DistanceToStation,
				string(models.AssignmentAssigned), assignment.AssignedAt, assignment.AlertID).
			WillReturnResult(sqlmock.NewResult(0, updateChanged))
		mock.ExpectExec("DELETE FROM alert_officers").
			WithArgs(assignment.AlertID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		for _, officerID := range assignment.OfficerIDs {
			mock.ExpectExec("INSERT INTO alert_officers").
				WithArgs(assignment.AlertID, officerID).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()
	}

	t.Run("fresh assignment commits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to open mock db: %v", err)
		}
		defer db.Close()

		expectAssignment(mock, 1)
		if err := NewAlertRepository(db).ApplyAssignment(assignment); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	// Re-invoking with the same station in the same second changes no
	// columns, so MySQL reports zero affected rows. The assignment must
	// still replace the officer set and commit, not report a missing alert.
	t.Run("identical re-assignment commits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to open mock db: %v", err)
		}
		defer db.Close()

		expectAssignment(mock, 0)
		if err := NewAlertRepository(db).ApplyAssignment(assignment); err != nil {
			t.Fatalf("re-assignment should succeed, got: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}
