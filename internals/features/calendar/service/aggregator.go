package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aulataller_backend/internals/constants"
	"aulataller_backend/internals/features/calendar/dto"
	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
)

const dateLayout = "2006-01-02"

// Viewer is the caller identity the aggregator filters by. It is passed
// explicitly (never read from ambient state) so the service stays testable.
// ProfessorID carries the legacy professor-profile id for migrated accounts;
// teacher matching checks both ids.
type Viewer struct {
	UserID         uuid.UUID
	Role           string
	OrganizationID *uuid.UUID
	ProfessorID    *uuid.UUID
}

// TeacherIDs returns every id this viewer may be referenced by in referent or
// session-staff columns.
func (v Viewer) TeacherIDs() []uuid.UUID {
	ids := []uuid.UUID{v.UserID}
	if v.ProfessorID != nil && *v.ProfessorID != uuid.Nil && *v.ProfessorID != v.UserID {
		ids = append(ids, *v.ProfessorID)
	}
	return ids
}

// DateRange is an optional [from, to] calendar-day window.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// MilestoneRow is the flattened milestone projection the store returns; the
// raw date is text from the legacy import and may not parse.
type MilestoneRow struct {
	ID          uuid.UUID
	Title       string
	Description *string
	DateRaw     string
	PhaseName   string
}

// AssignmentScope narrows the assignment query per role.
type AssignmentScope struct {
	Range          DateRange
	OrganizationID *uuid.UUID  // coordinator: only this organization
	TeacherIDs     []uuid.UUID // teacher: referent or session staff match
}

// CalendarStore serves the aggregator's two independent sub-queries.
// ListAssignments must preload Workshop, Organization and Sessions with
// their Staff.
type CalendarStore interface {
	ListMilestones(ctx context.Context, r DateRange) ([]MilestoneRow, error)
	ListAssignments(ctx context.Context, scope AssignmentScope) ([]asgModel.AssignmentModel, error)
}

// Result is the aggregation output. Partial flags that one sub-query failed
// and the event list is incomplete; Skipped counts records dropped for
// unparseable dates.
type Result struct {
	Events  []dto.CalendarEvent `json:"events"`
	Skipped int                 `json:"skipped"`
	Partial bool                `json:"partial"`
}

type Aggregator struct {
	Store CalendarStore
}

func NewAggregator(store CalendarStore) *Aggregator {
	return &Aggregator{Store: store}
}

// GetEvents merges milestones, assignment ranges and individual sessions into
// one event list filtered by the viewer's role and participation. The two
// sub-queries run concurrently; when one fails the other's events are still
// returned with Partial set. No ordering or pagination: callers sort and
// window as needed.
func (a *Aggregator) GetEvents(ctx context.Context, viewer Viewer, rng DateRange) (Result, error) {
	switch viewer.Role {
	case constants.RoleAdmin, constants.RoleCoordinator, constants.RoleTeacher:
	default:
		// unrecognized roles get a fully empty calendar, milestones included;
		// milestone visibility is tied to having a known role, not public
		return Result{Events: []dto.CalendarEvent{}}, nil
	}

	scope := AssignmentScope{Range: rng}
	switch viewer.Role {
	case constants.RoleCoordinator:
		if viewer.OrganizationID == nil {
			return Result{Events: []dto.CalendarEvent{}}, nil
		}
		scope.OrganizationID = viewer.OrganizationID
	case constants.RoleTeacher:
		scope.TeacherIDs = viewer.TeacherIDs()
	}

	var (
		wg          sync.WaitGroup
		milestones  []MilestoneRow
		assignments []asgModel.AssignmentModel
		msErr       error
		asgErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		milestones, msErr = a.Store.ListMilestones(ctx, rng)
	}()
	go func() {
		defer wg.Done()
		assignments, asgErr = a.Store.ListAssignments(ctx, scope)
	}()
	wg.Wait()

	if msErr != nil && asgErr != nil {
		return Result{}, fmt.Errorf("calendar aggregation failed: %v; %v", msErr, asgErr)
	}

	res := Result{Events: []dto.CalendarEvent{}}
	if msErr != nil {
		log.Printf("[Calendar] milestone query failed: %v", msErr)
		res.Partial = true
	}
	if asgErr != nil {
		log.Printf("[Calendar] assignment query failed: %v", asgErr)
		res.Partial = true
	}

	for _, m := range milestones {
		ev, ok := milestoneEvent(m, rng)
		if !ok {
			res.Skipped++
			continue
		}
		res.Events = append(res.Events, ev)
	}

	for i := range assignments {
		a.appendAssignmentEvents(&res, &assignments[i], viewer, rng)
	}
	return res, nil
}

func milestoneEvent(m MilestoneRow, rng DateRange) (dto.CalendarEvent, bool) {
	d, err := time.Parse(dateLayout, m.DateRaw)
	if err != nil {
		return dto.CalendarEvent{}, false
	}
	if !rng.Contains(d) {
		return dto.CalendarEvent{}, false
	}
	return dto.CalendarEvent{
		ID:          "milestone-" + m.ID.String(),
		Title:       m.Title,
		Date:        d.Format(dateLayout),
		Type:        dto.EventTypeMilestone,
		Description: m.Description,
		Metadata:    datatypes.JSONMap{"phase": m.PhaseName},
	}, true
}

func (a *Aggregator) appendAssignmentEvents(res *Result, asg *asgModel.AssignmentModel, viewer Viewer, rng DateRange) {
	title := "Taller"
	if asg.Workshop != nil {
		title = asg.Workshop.WorkshopTitle
	}
	orgName, orgAddress := "", ""
	if asg.Organization != nil {
		orgName = asg.Organization.OrganizationName
		if asg.Organization.OrganizationAddress != nil {
			orgAddress = *asg.Organization.OrganizationAddress
		}
	}

	// range bar: suppressed for teachers, who only see their own sessions
	if viewer.Role != constants.RoleTeacher && asg.AssignmentStartDate != nil && asg.AssignmentEndDate != nil {
		barTitle := title
		if viewer.Role != constants.RoleCoordinator && orgName != "" {
			barTitle = title + " · " + orgName
		}
		end := asg.AssignmentEndDate.Format(dateLayout)
		res.Events = append(res.Events, dto.CalendarEvent{
			ID:      "assignment-" + asg.AssignmentID.String(),
			Title:   barTitle,
			Date:    asg.AssignmentStartDate.Format(dateLayout),
			EndDate: &end,
			Type:    dto.EventTypeAssignment,
			Metadata: datatypes.JSONMap{
				"assignment_id":        asg.AssignmentID.String(),
				"organization_name":    orgName,
				"organization_address": orgAddress,
			},
		})
	}

	teacherIDs := viewer.TeacherIDs()
	isReferent := viewer.Role == constants.RoleTeacher && matchesReferent(asg, teacherIDs)

	for i := range asg.Sessions {
		sess := &asg.Sessions[i]
		if sess.SessionDate.IsZero() {
			res.Skipped++
			continue
		}
		if !rng.Contains(sess.SessionDate) {
			continue
		}
		// per-session visibility for teachers, independent of the
		// assignment-level scope match
		if viewer.Role == constants.RoleTeacher && !isReferent && !matchesStaff(sess, teacherIDs) {
			continue
		}
		meta := datatypes.JSONMap{
			"assignment_id":        asg.AssignmentID.String(),
			"session_number":       sess.SessionNumber,
			"organization_name":    orgName,
			"organization_address": orgAddress,
		}
		if sess.SessionStartTime != nil {
			meta["start_time"] = *sess.SessionStartTime
		}
		if sess.SessionEndTime != nil {
			meta["end_time"] = *sess.SessionEndTime
		}
		res.Events = append(res.Events, dto.CalendarEvent{
			ID:       "session-" + sess.SessionID.String(),
			Title:    fmt.Sprintf("%s · sessió %d", title, sess.SessionNumber),
			Date:     sess.SessionDate.Format(dateLayout),
			Type:     dto.EventTypeSession,
			Metadata: meta,
		})
	}
}

func matchesReferent(asg *asgModel.AssignmentModel, ids []uuid.UUID) bool {
	for _, id := range ids {
		if asg.AssignmentReferentPrimaryID != nil && *asg.AssignmentReferentPrimaryID == id {
			return true
		}
		if asg.AssignmentReferentSecondaryID != nil && *asg.AssignmentReferentSecondaryID == id {
			return true
		}
	}
	return false
}

func matchesStaff(sess *asgModel.SessionModel, ids []uuid.UUID) bool {
	for _, st := range sess.Staff {
		for _, id := range ids {
			if st.SessionStaffTeacherID == id {
				return true
			}
		}
	}
	return false
}
