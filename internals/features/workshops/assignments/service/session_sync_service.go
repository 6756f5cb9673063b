package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"aulataller_backend/internals/features/workshops/assignments/model"
)

var (
	// ErrAssignmentNotFound is returned when the referenced assignment does
	// not exist (a missing start date is NOT an error, just a no-op).
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrAttendanceRecorded is returned by the store when the transactional
	// re-check finds attendance that appeared after the service-level guard.
	ErrAttendanceRecorded = errors.New("attendance already recorded for assignment")
)

// SchedulingStore is the slice of the repository the session synchronizer
// needs. ReplaceSessions must run the delete + recreate inside one
// transaction and re-check the attendance guard there, returning
// ErrAttendanceRecorded when it trips; two concurrent syncs must not be able
// to wipe sessions another caller is already recording attendance against.
type SchedulingStore interface {
	GetAssignment(ctx context.Context, id uuid.UUID) (*model.AssignmentModel, error)
	CountAttendance(ctx context.Context, assignmentID uuid.UUID) (int64, error)
	ReplaceSessions(ctx context.Context, assignmentID uuid.UUID, sessions []model.SessionModel) error
}

type SessionSyncService struct {
	Store SchedulingStore
}

func NewSessionSyncService(store SchedulingStore) *SessionSyncService {
	return &SessionSyncService{Store: store}
}

// SyncResult reports what SyncSessions did.
type SyncResult struct {
	Synced   bool `json:"synced"`
	Sessions int  `json:"sessions"`
}

// SyncSessions regenerates an assignment's session list from its workshop's
// weekly pattern. It is destructive only while no attendance has ever been
// recorded for the assignment; after that it degrades to a no-op so a
// rescheduling event can never wipe recorded history.
func (s *SessionSyncService) SyncSessions(ctx context.Context, assignmentID uuid.UUID) (SyncResult, error) {
	asg, err := s.Store.GetAssignment(ctx, assignmentID)
	if err != nil {
		return SyncResult{}, err
	}
	if asg == nil {
		return SyncResult{}, ErrAssignmentNotFound
	}
	if asg.AssignmentStartDate == nil {
		// nothing to schedule yet
		return SyncResult{}, nil
	}
	if asg.Workshop == nil {
		return SyncResult{}, fmt.Errorf("assignment %s has no workshop template", assignmentID)
	}

	recorded, err := s.Store.CountAttendance(ctx, assignmentID)
	if err != nil {
		return SyncResult{}, err
	}
	if recorded > 0 {
		log.Printf("[SessionSync] assignment=%s has %d attendance records, skipping", assignmentID, recorded)
		return SyncResult{}, nil
	}

	sessions := buildSessions(asg)

	if err := s.Store.ReplaceSessions(ctx, assignmentID, sessions); err != nil {
		if errors.Is(err, ErrAttendanceRecorded) {
			// lost the race against a first attendance write; same outcome
			// as the guard above
			log.Printf("[SessionSync] assignment=%s attendance appeared during sync, skipping", assignmentID)
			return SyncResult{}, nil
		}
		return SyncResult{}, err
	}
	return SyncResult{Synced: true, Sessions: len(sessions)}, nil
}

// buildSessions expands the workshop slots into numbered sessions starting at
// the assignment's start date. Slots also carry the time-of-day window for
// the matching weekday.
func buildSessions(asg *model.AssignmentModel) []model.SessionModel {
	ws := asg.Workshop
	names := make([]string, 0, len(ws.Slots))
	for _, slot := range ws.Slots {
		names = append(names, slot.WorkshopSlotWeekday)
	}
	weekdays := ParseWeekdayNames(names)

	times := map[time.Weekday][2]*string{}
	for _, slot := range ws.Slots {
		if wds := ParseWeekdayNames([]string{slot.WorkshopSlotWeekday}); len(wds) == 1 {
			times[wds[0]] = [2]*string{slot.WorkshopSlotStartTime, slot.WorkshopSlotEndTime}
		}
	}

	dates := GenerateDates(*asg.AssignmentStartDate, weekdays, ws.WorkshopTotalSessions)

	sessions := make([]model.SessionModel, 0, len(dates))
	for i, d := range dates {
		sess := model.SessionModel{
			SessionAssignmentID: asg.AssignmentID,
			SessionNumber:       i + 1,
			SessionDate:         d,
		}
		if tod, ok := times[d.Weekday()]; ok {
			sess.SessionStartTime = tod[0]
			sess.SessionEndTime = tod[1]
		}
		sessions = append(sessions, sess)
	}
	return sessions
}
