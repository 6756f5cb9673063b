package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
	"aulataller_backend/internals/features/workshops/attendance/model"
)

// AttendanceStore is the GORM-backed implementation of
// service.AttendanceStore.
type AttendanceStore struct {
	DB *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{DB: db}
}

func (s *AttendanceStore) ListEnrollments(ctx context.Context, assignmentID uuid.UUID) ([]asgModel.EnrollmentModel, error) {
	var out []asgModel.EnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("enrollment_assignment_id = ?", assignmentID).
		Find(&out).Error
	return out, err
}

func (s *AttendanceStore) ListAttendance(ctx context.Context, assignmentID uuid.UUID, sessionNumber int) ([]model.AttendanceRecordModel, error) {
	var out []model.AttendanceRecordModel
	err := s.DB.WithContext(ctx).
		Where("attendance_record_assignment_id = ? AND attendance_record_session_number = ?", assignmentID, sessionNumber).
		Find(&out).Error
	return out, err
}

// CreateAttendanceBatch inserts records, silently skipping rows whose
// (enrollment, session number) pair already exists. Concurrent ensure calls
// for the same session race on the read-then-write sequence; the conflict
// clause makes the insert itself idempotent.
func (s *AttendanceStore) CreateAttendanceBatch(ctx context.Context, records []model.AttendanceRecordModel) error {
	if len(records) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_enrollment_id"},
				{Name: "attendance_record_session_number"},
			},
			DoNothing: true,
		}).
		CreateInBatches(records, 200).Error
}
