package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"aulataller_backend/internals/constants"
	"aulataller_backend/internals/features/calendar/dto"
	orgModel "aulataller_backend/internals/features/organizations/model"
	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
	wsModel "aulataller_backend/internals/features/workshops/workshops/model"
)

type fakeCalendarStore struct {
	milestones  []MilestoneRow
	assignments []asgModel.AssignmentModel

	msErr  error
	asgErr error

	lastScope AssignmentScope
}

func (f *fakeCalendarStore) ListMilestones(ctx context.Context, r DateRange) ([]MilestoneRow, error) {
	return f.milestones, f.msErr
}

func (f *fakeCalendarStore) ListAssignments(ctx context.Context, scope AssignmentScope) ([]asgModel.AssignmentModel, error) {
	f.lastScope = scope
	return f.assignments, f.asgErr
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func datePtr(t time.Time) *time.Time { return &t }

// fixture: one assignment "Teatre" at org "Escola Mar", two sessions, with
// teacherID staffed on session 2 only
func teatreAssignment(teacherID uuid.UUID) asgModel.AssignmentModel {
	asgID := uuid.New()
	return asgModel.AssignmentModel{
		AssignmentID:        asgID,
		AssignmentStartDate: datePtr(day(2026, time.February, 2)),
		AssignmentEndDate:   datePtr(day(2026, time.March, 30)),
		Workshop: &wsModel.WorkshopModel{
			WorkshopTitle: "Teatre",
		},
		Organization: &orgModel.OrganizationModel{
			OrganizationName:    "Escola Mar",
			OrganizationAddress: strPtr("Carrer del Port 3"),
		},
		Sessions: []asgModel.SessionModel{
			{
				SessionID:           uuid.New(),
				SessionAssignmentID: asgID,
				SessionNumber:       1,
				SessionDate:         day(2026, time.February, 2),
				SessionStartTime:    strPtr("17:00"),
			},
			{
				SessionID:           uuid.New(),
				SessionAssignmentID: asgID,
				SessionNumber:       2,
				SessionDate:         day(2026, time.February, 9),
				Staff: []asgModel.SessionStaffModel{
					{SessionStaffTeacherID: teacherID},
				},
			},
		},
	}
}

func eventsOfType(events []dto.CalendarEvent, typ string) []dto.CalendarEvent {
	out := make([]dto.CalendarEvent, 0)
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestGetEventsUnknownRoleEmpty(t *testing.T) {
	t.Parallel()

	store := &fakeCalendarStore{
		milestones: []MilestoneRow{{ID: uuid.New(), Title: "Inici", DateRaw: "2026-02-01"}},
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(), Viewer{UserID: uuid.New(), Role: "family"}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Events) != 0 {
		t.Fatalf("unknown role got %d events, want none", len(res.Events))
	}
}

func TestGetEventsCoordinatorWithoutOrganization(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(&fakeCalendarStore{})

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleCoordinator}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Events) != 0 {
		t.Fatal("coordinator without organization must see nothing")
	}
}

func TestGetEventsAdminSeesBarAndAllSessions(t *testing.T) {
	t.Parallel()

	teacherID := uuid.New()
	store := &fakeCalendarStore{
		assignments: []asgModel.AssignmentModel{teatreAssignment(teacherID)},
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleAdmin}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bars := eventsOfType(res.Events, dto.EventTypeAssignment)
	if len(bars) != 1 {
		t.Fatalf("admin got %d range bars, want 1", len(bars))
	}
	if bars[0].Title != "Teatre · Escola Mar" {
		t.Errorf("admin bar title = %q, want workshop plus organization", bars[0].Title)
	}
	if bars[0].EndDate == nil || *bars[0].EndDate != "2026-03-30" {
		t.Errorf("bar end date = %v, want 2026-03-30", bars[0].EndDate)
	}

	sessions := eventsOfType(res.Events, dto.EventTypeSession)
	if len(sessions) != 2 {
		t.Fatalf("admin got %d sessions, want 2", len(sessions))
	}
	if sessions[0].Title != "Teatre · sessió 1" {
		t.Errorf("session title = %q", sessions[0].Title)
	}
	if sessions[0].Metadata["start_time"] != "17:00" {
		t.Errorf("session metadata start_time = %v", sessions[0].Metadata["start_time"])
	}
	if sessions[0].Metadata["organization_address"] != "Carrer del Port 3" {
		t.Errorf("session metadata address = %v", sessions[0].Metadata["organization_address"])
	}
}

func TestGetEventsCoordinatorShortTitleAndScope(t *testing.T) {
	t.Parallel()

	orgID := uuid.New()
	store := &fakeCalendarStore{
		assignments: []asgModel.AssignmentModel{teatreAssignment(uuid.New())},
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleCoordinator, OrganizationID: &orgID},
		DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.lastScope.OrganizationID == nil || *store.lastScope.OrganizationID != orgID {
		t.Fatal("coordinator query was not scoped to their organization")
	}

	bars := eventsOfType(res.Events, dto.EventTypeAssignment)
	if len(bars) != 1 || bars[0].Title != "Teatre" {
		t.Fatalf("coordinator bar = %+v, want short title", bars)
	}
}

func TestGetEventsTeacherStaffSeesOnlyOwnSessions(t *testing.T) {
	t.Parallel()

	teacherID := uuid.New()
	store := &fakeCalendarStore{
		assignments: []asgModel.AssignmentModel{teatreAssignment(teacherID)},
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: teacherID, Role: constants.RoleTeacher}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bars := eventsOfType(res.Events, dto.EventTypeAssignment); len(bars) != 0 {
		t.Fatal("range bar must be suppressed for teachers")
	}

	sessions := eventsOfType(res.Events, dto.EventTypeSession)
	if len(sessions) != 1 {
		t.Fatalf("teacher got %d sessions, want only the staffed one", len(sessions))
	}
	if sessions[0].Metadata["session_number"] != 2 {
		t.Errorf("teacher sees session %v, want 2", sessions[0].Metadata["session_number"])
	}
}

func TestGetEventsTeacherReferentSeesAllSessions(t *testing.T) {
	t.Parallel()

	teacherID := uuid.New()
	asg := teatreAssignment(uuid.New())
	asg.AssignmentReferentSecondaryID = &teacherID
	store := &fakeCalendarStore{assignments: []asgModel.AssignmentModel{asg}}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: teacherID, Role: constants.RoleTeacher}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sessions := eventsOfType(res.Events, dto.EventTypeSession); len(sessions) != 2 {
		t.Fatalf("referent got %d sessions, want all of them", len(sessions))
	}
}

func TestGetEventsTeacherLegacyProfessorIdentity(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	professorID := uuid.New()
	store := &fakeCalendarStore{
		assignments: []asgModel.AssignmentModel{teatreAssignment(professorID)},
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: userID, Role: constants.RoleTeacher, ProfessorID: &professorID},
		DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sessions := eventsOfType(res.Events, dto.EventTypeSession); len(sessions) != 1 {
		t.Fatal("staff rows keyed by the legacy professor id must still match")
	}

	ids := store.lastScope.TeacherIDs
	if len(ids) != 2 || ids[0] != userID || ids[1] != professorID {
		t.Fatalf("teacher scope ids = %v, want both identities", ids)
	}
}

func TestGetEventsMilestoneDates(t *testing.T) {
	t.Parallel()

	store := &fakeCalendarStore{
		milestones: []MilestoneRow{
			{ID: uuid.New(), Title: "Inici de fase", DateRaw: "2026-02-15", PhaseName: "Fase 2"},
			{ID: uuid.New(), Title: "Data pendent", DateRaw: "per confirmar"},
			{ID: uuid.New(), Title: "Buida", DateRaw: ""},
		},
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleAdmin}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	milestones := eventsOfType(res.Events, dto.EventTypeMilestone)
	if len(milestones) != 1 {
		t.Fatalf("got %d milestones, want 1 valid", len(milestones))
	}
	if milestones[0].Metadata["phase"] != "Fase 2" {
		t.Errorf("milestone phase = %v", milestones[0].Metadata["phase"])
	}
	if res.Skipped != 2 {
		t.Errorf("skipped = %d, want 2 unparseable milestones counted", res.Skipped)
	}
}

func TestGetEventsRangeFiltersSessions(t *testing.T) {
	t.Parallel()

	store := &fakeCalendarStore{
		assignments: []asgModel.AssignmentModel{teatreAssignment(uuid.New())},
	}
	agg := NewAggregator(store)

	// window covers only the first session
	rng := DateRange{
		From: datePtr(day(2026, time.February, 1)),
		To:   datePtr(day(2026, time.February, 5)),
	}
	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleAdmin}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions := eventsOfType(res.Events, dto.EventTypeSession)
	if len(sessions) != 1 || sessions[0].Date != "2026-02-02" {
		t.Fatalf("got sessions %+v, want only 2026-02-02", sessions)
	}
}

func TestGetEventsZeroSessionDateSkipped(t *testing.T) {
	t.Parallel()

	asg := teatreAssignment(uuid.New())
	asg.Sessions[1].SessionDate = time.Time{}
	store := &fakeCalendarStore{assignments: []asgModel.AssignmentModel{asg}}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleAdmin}, DateRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sessions := eventsOfType(res.Events, dto.EventTypeSession); len(sessions) != 1 {
		t.Fatalf("got %d sessions, want the zero-dated one dropped", len(sessions))
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}
}

func TestGetEventsPartialOnSingleFailure(t *testing.T) {
	t.Parallel()

	store := &fakeCalendarStore{
		milestones: []MilestoneRow{{ID: uuid.New(), Title: "Inici", DateRaw: "2026-02-01"}},
		asgErr:     errors.New("timeout"),
	}
	agg := NewAggregator(store)

	res, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleAdmin}, DateRange{})
	if err != nil {
		t.Fatalf("one failed sub-query must not fail the request, got %v", err)
	}
	if !res.Partial {
		t.Fatal("result must be flagged partial")
	}
	if len(res.Events) != 1 {
		t.Fatalf("got %d events, want the surviving milestone", len(res.Events))
	}
}

func TestGetEventsErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	store := &fakeCalendarStore{
		msErr:  errors.New("down"),
		asgErr: errors.New("down"),
	}
	agg := NewAggregator(store)

	if _, err := agg.GetEvents(context.Background(),
		Viewer{UserID: uuid.New(), Role: constants.RoleAdmin}, DateRange{}); err == nil {
		t.Fatal("both sub-queries failing must surface an error")
	}
}
