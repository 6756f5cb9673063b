package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
	"aulataller_backend/internals/features/workshops/attendance/model"
)

// AttendanceStore is the slice of the repository the attendance synchronizer
// and the status resolver need. CreateAttendanceBatch must be
// insert-if-absent on (enrollment, session number): the read-then-write
// sequence here is not atomic, and concurrent calls for the same session must
// not produce duplicates.
type AttendanceStore interface {
	ListEnrollments(ctx context.Context, assignmentID uuid.UUID) ([]asgModel.EnrollmentModel, error)
	ListAttendance(ctx context.Context, assignmentID uuid.UUID, sessionNumber int) ([]model.AttendanceRecordModel, error)
	CreateAttendanceBatch(ctx context.Context, records []model.AttendanceRecordModel) error
}

type AttendanceSyncService struct {
	Store AttendanceStore
}

func NewAttendanceSyncService(store AttendanceStore) *AttendanceSyncService {
	return &AttendanceSyncService{Store: store}
}

// EnsureAttendance gives every current enrollment exactly one attendance
// record for the given session, defaulting to present. Existing records are
// never touched, so the call is idempotent and safe on every session-open
// event even after staff has entered real attendance.
func (s *AttendanceSyncService) EnsureAttendance(ctx context.Context, assignmentID uuid.UUID, sessionNumber int, sessionDate time.Time) (int, error) {
	enrollments, err := s.Store.ListEnrollments(ctx, assignmentID)
	if err != nil {
		return 0, err
	}
	if len(enrollments) == 0 {
		return 0, nil
	}

	existing, err := s.Store.ListAttendance(ctx, assignmentID, sessionNumber)
	if err != nil {
		return 0, err
	}
	covered := make(map[uuid.UUID]bool, len(existing))
	for _, rec := range existing {
		covered[rec.AttendanceRecordEnrollmentID] = true
	}

	missing := make([]model.AttendanceRecordModel, 0, len(enrollments))
	for _, enr := range enrollments {
		if covered[enr.EnrollmentID] {
			continue
		}
		missing = append(missing, model.AttendanceRecordModel{
			AttendanceRecordAssignmentID:  assignmentID,
			AttendanceRecordEnrollmentID:  enr.EnrollmentID,
			AttendanceRecordSessionNumber: sessionNumber,
			AttendanceRecordStatus:        model.AttendancePresent,
			AttendanceRecordDate:          sessionDate,
		})
	}
	if len(missing) == 0 {
		return 0, nil
	}

	if err := s.Store.CreateAttendanceBatch(ctx, missing); err != nil {
		return 0, err
	}
	log.Printf("[AttendanceSync] assignment=%s session=%d created=%d", assignmentID, sessionNumber, len(missing))
	return len(missing), nil
}
