package repository

import (
	"context"

	"gorm.io/gorm"

	"aulataller_backend/internals/features/calendar/service"
	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
)

// CalendarStore is the GORM-backed implementation of service.CalendarStore.
type CalendarStore struct {
	DB *gorm.DB
}

func NewCalendarStore(db *gorm.DB) *CalendarStore {
	return &CalendarStore{DB: db}
}

// ListMilestones returns alive milestones joined with their phase name.
// milestone_date is legacy text; ISO values compare correctly as strings, so
// the range filter is applied lexicographically and malformed rows are left
// for the aggregator to drop.
func (s *CalendarStore) ListMilestones(ctx context.Context, r service.DateRange) ([]service.MilestoneRow, error) {
	q := s.DB.WithContext(ctx).
		Table("milestones").
		Select(`milestones.milestone_id AS id,
			milestones.milestone_title AS title,
			milestones.milestone_description AS description,
			milestones.milestone_date AS date_raw,
			COALESCE(phases.phase_name, '') AS phase_name`).
		Joins("LEFT JOIN phases ON phases.phase_id = milestones.milestone_phase_id AND phases.phase_deleted_at IS NULL").
		Where("milestones.milestone_deleted_at IS NULL")
	if r.From != nil {
		q = q.Where("milestones.milestone_date >= ?", r.From.Format("2006-01-02"))
	}
	if r.To != nil {
		q = q.Where("milestones.milestone_date <= ?", r.To.Format("2006-01-02"))
	}

	var rows []service.MilestoneRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAssignments returns assignments in scope with Workshop, Organization
// and Sessions (incl. Staff) preloaded. The range matches assignments whose
// start OR end date falls inside the window.
func (s *CalendarStore) ListAssignments(ctx context.Context, scope service.AssignmentScope) ([]asgModel.AssignmentModel, error) {
	q := s.DB.WithContext(ctx).
		Preload("Workshop").
		Preload("Organization").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_number ASC")
		}).
		Preload("Sessions.Staff")

	if scope.Range.From != nil && scope.Range.To != nil {
		q = q.Where(
			"(assignment_start_date BETWEEN ? AND ?) OR (assignment_end_date BETWEEN ? AND ?)",
			*scope.Range.From, *scope.Range.To, *scope.Range.From, *scope.Range.To,
		)
	} else if scope.Range.From != nil {
		q = q.Where("assignment_end_date >= ? OR assignment_end_date IS NULL", *scope.Range.From)
	} else if scope.Range.To != nil {
		q = q.Where("assignment_start_date <= ? OR assignment_start_date IS NULL", *scope.Range.To)
	}

	if scope.OrganizationID != nil {
		q = q.Where("assignment_organization_id = ?", *scope.OrganizationID)
	}

	if len(scope.TeacherIDs) > 0 {
		q = q.Where(`assignment_referent_primary_id IN ?
			OR assignment_referent_secondary_id IN ?
			OR EXISTS (
				SELECT 1 FROM sessions s
				JOIN session_staff st ON st.session_staff_session_id = s.session_id
				WHERE s.session_assignment_id = assignments.assignment_id
				  AND st.session_staff_teacher_id IN ?
				  AND s.session_deleted_at IS NULL
				  AND st.session_staff_deleted_at IS NULL
			)`,
			scope.TeacherIDs, scope.TeacherIDs, scope.TeacherIDs)
	}

	var out []asgModel.AssignmentModel
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
