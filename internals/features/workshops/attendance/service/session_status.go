package service

import (
	"context"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusRecorded SessionStatus = "recorded"
)

type StatusResolver struct {
	Store AttendanceStore
}

func NewStatusResolver(store AttendanceStore) *StatusResolver {
	return &StatusResolver{Store: store}
}

// GetStatus derives a session's display status from attendance existence:
// recorded as soon as at least one record exists, pending otherwise.
func (r *StatusResolver) GetStatus(ctx context.Context, assignmentID uuid.UUID, sessionNumber int) (SessionStatus, error) {
	records, err := r.Store.ListAttendance(ctx, assignmentID, sessionNumber)
	if err != nil {
		return "", err
	}
	if len(records) > 0 {
		return SessionStatusRecorded, nil
	}
	return SessionStatusPending, nil
}
