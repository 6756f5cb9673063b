package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
	"aulataller_backend/internals/features/workshops/attendance/model"
)

type fakeAttendanceStore struct {
	enrollments []asgModel.EnrollmentModel
	records     []model.AttendanceRecordModel

	listErr   error
	createErr error
}

func (f *fakeAttendanceStore) ListEnrollments(ctx context.Context, assignmentID uuid.UUID) ([]asgModel.EnrollmentModel, error) {
	return f.enrollments, f.listErr
}

func (f *fakeAttendanceStore) ListAttendance(ctx context.Context, assignmentID uuid.UUID, sessionNumber int) ([]model.AttendanceRecordModel, error) {
	out := make([]model.AttendanceRecordModel, 0)
	for _, r := range f.records {
		if r.AttendanceRecordSessionNumber == sessionNumber {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) CreateAttendanceBatch(ctx context.Context, records []model.AttendanceRecordModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	// mirror the unique index: silently drop already-covered pairs
	for _, rec := range records {
		exists := false
		for _, have := range f.records {
			if have.AttendanceRecordEnrollmentID == rec.AttendanceRecordEnrollmentID &&
				have.AttendanceRecordSessionNumber == rec.AttendanceRecordSessionNumber {
				exists = true
				break
			}
		}
		if !exists {
			f.records = append(f.records, rec)
		}
	}
	return nil
}

func enrollment(id uuid.UUID) asgModel.EnrollmentModel {
	return asgModel.EnrollmentModel{EnrollmentID: id}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnsureAttendanceCreatesMissing(t *testing.T) {
	t.Parallel()

	asgID := uuid.New()
	e1, e2, e3 := uuid.New(), uuid.New(), uuid.New()
	store := &fakeAttendanceStore{
		enrollments: []asgModel.EnrollmentModel{enrollment(e1), enrollment(e2), enrollment(e3)},
	}
	svc := NewAttendanceSyncService(store)

	created, err := svc.EnsureAttendance(context.Background(), asgID, 1, day(2026, time.February, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 3 {
		t.Fatalf("created = %d, want 3", created)
	}
	for _, rec := range store.records {
		if rec.AttendanceRecordStatus != model.AttendancePresent {
			t.Errorf("new record status = %s, want present", rec.AttendanceRecordStatus)
		}
		if rec.AttendanceRecordSessionNumber != 1 {
			t.Errorf("new record session = %d, want 1", rec.AttendanceRecordSessionNumber)
		}
	}
}

func TestEnsureAttendanceNeverOverwrites(t *testing.T) {
	t.Parallel()

	asgID := uuid.New()
	e1, e2 := uuid.New(), uuid.New()
	store := &fakeAttendanceStore{
		enrollments: []asgModel.EnrollmentModel{enrollment(e1), enrollment(e2)},
		records: []model.AttendanceRecordModel{
			{
				AttendanceRecordEnrollmentID:  e1,
				AttendanceRecordSessionNumber: 1,
				AttendanceRecordStatus:        model.AttendanceAbsent,
				AttendanceRecordNotes:         "va avisar la família",
			},
		},
	}
	svc := NewAttendanceSyncService(store)

	created, err := svc.EnsureAttendance(context.Background(), asgID, 1, day(2026, time.February, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("created = %d, want only the uncovered enrollment", created)
	}

	for _, rec := range store.records {
		if rec.AttendanceRecordEnrollmentID == e1 {
			if rec.AttendanceRecordStatus != model.AttendanceAbsent || rec.AttendanceRecordNotes == "" {
				t.Fatal("existing record was modified")
			}
		}
	}
}

func TestEnsureAttendanceIdempotent(t *testing.T) {
	t.Parallel()

	asgID := uuid.New()
	store := &fakeAttendanceStore{
		enrollments: []asgModel.EnrollmentModel{enrollment(uuid.New()), enrollment(uuid.New())},
	}
	svc := NewAttendanceSyncService(store)

	first, err := svc.EnsureAttendance(context.Background(), asgID, 2, day(2026, time.February, 9))
	if err != nil || first != 2 {
		t.Fatalf("first run: created=%d err=%v, want 2 created", first, err)
	}
	second, err := svc.EnsureAttendance(context.Background(), asgID, 2, day(2026, time.February, 9))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second != 0 {
		t.Fatalf("second run created %d records, want 0", second)
	}
	if len(store.records) != 2 {
		t.Fatalf("store holds %d records, want 2", len(store.records))
	}
}

func TestEnsureAttendanceSessionsIndependent(t *testing.T) {
	t.Parallel()

	asgID := uuid.New()
	e1 := uuid.New()
	store := &fakeAttendanceStore{
		enrollments: []asgModel.EnrollmentModel{enrollment(e1)},
		records: []model.AttendanceRecordModel{
			{AttendanceRecordEnrollmentID: e1, AttendanceRecordSessionNumber: 1},
		},
	}
	svc := NewAttendanceSyncService(store)

	created, err := svc.EnsureAttendance(context.Background(), asgID, 2, day(2026, time.February, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("created = %d; coverage of session 1 must not count for session 2", created)
	}
}

func TestEnsureAttendanceEmptyRoster(t *testing.T) {
	t.Parallel()

	store := &fakeAttendanceStore{}
	svc := NewAttendanceSyncService(store)

	created, err := svc.EnsureAttendance(context.Background(), uuid.New(), 1, day(2026, time.February, 2))
	if err != nil || created != 0 {
		t.Fatalf("created=%d err=%v, want clean no-op", created, err)
	}
}

func TestEnsureAttendanceStoreErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("store down")
	store := &fakeAttendanceStore{
		enrollments: []asgModel.EnrollmentModel{enrollment(uuid.New())},
		createErr:   boom,
	}
	svc := NewAttendanceSyncService(store)

	_, err := svc.EnsureAttendance(context.Background(), uuid.New(), 1, day(2026, time.February, 2))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want store error", err)
	}
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	asgID := uuid.New()
	store := &fakeAttendanceStore{
		records: []model.AttendanceRecordModel{
			{AttendanceRecordEnrollmentID: uuid.New(), AttendanceRecordSessionNumber: 1},
		},
	}
	resolver := NewStatusResolver(store)

	recorded, err := resolver.GetStatus(context.Background(), asgID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recorded != SessionStatusRecorded {
		t.Fatalf("session 1: got %s, want recorded", recorded)
	}

	pending, err := resolver.GetStatus(context.Background(), asgID, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending != SessionStatusPending {
		t.Fatalf("session 2: got %s, want pending", pending)
	}
}
