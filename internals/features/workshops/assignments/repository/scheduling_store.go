package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aulataller_backend/internals/features/workshops/assignments/model"
	"aulataller_backend/internals/features/workshops/assignments/service"
)

// SchedulingStore is the GORM-backed implementation of
// service.SchedulingStore.
type SchedulingStore struct {
	DB *gorm.DB
}

func NewSchedulingStore(db *gorm.DB) *SchedulingStore {
	return &SchedulingStore{DB: db}
}

func (s *SchedulingStore) GetAssignment(ctx context.Context, id uuid.UUID) (*model.AssignmentModel, error) {
	var asg model.AssignmentModel
	err := s.DB.WithContext(ctx).
		Preload("Workshop").
		Preload("Workshop.Slots").
		Where("assignment_id = ?", id).
		First(&asg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asg, nil
}

func (s *SchedulingStore) CountAttendance(ctx context.Context, assignmentID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("attendance_records").
		Where("attendance_record_assignment_id = ? AND attendance_record_deleted_at IS NULL", assignmentID).
		Count(&n).Error
	return n, err
}

// ReplaceSessions soft-deletes the assignment's sessions (and their staff
// rows) and inserts the new set, inside one transaction. The attendance guard
// is re-checked in the same transaction: the existence check and the rewrite
// must be atomic per assignment, or a concurrent first attendance write could
// land on sessions this call is about to delete.
func (s *SchedulingStore) ReplaceSessions(ctx context.Context, assignmentID uuid.UUID, sessions []model.SessionModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.
			Table("attendance_records").
			Where("attendance_record_assignment_id = ? AND attendance_record_deleted_at IS NULL", assignmentID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return service.ErrAttendanceRecorded
		}

		if err := tx.
			Where(`session_staff_session_id IN (SELECT session_id FROM sessions WHERE session_assignment_id = ? AND session_deleted_at IS NULL)`, assignmentID).
			Delete(&model.SessionStaffModel{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("session_assignment_id = ?", assignmentID).
			Delete(&model.SessionModel{}).Error; err != nil {
			return err
		}

		if len(sessions) == 0 {
			return nil
		}
		return tx.CreateInBatches(sessions, 200).Error
	})
}
