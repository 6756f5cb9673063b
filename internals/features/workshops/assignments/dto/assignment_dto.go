package dto

import (
	"time"

	"github.com/google/uuid"

	orgDto "aulataller_backend/internals/features/organizations/dto"
	m "aulataller_backend/internals/features/workshops/assignments/model"
	wsDto "aulataller_backend/internals/features/workshops/workshops/dto"
)

type StaffResponse struct {
	SessionStaffID uuid.UUID `json:"session_staff_id"`
	TeacherID      uuid.UUID `json:"teacher_id"`
	TeacherName    *string   `json:"teacher_name,omitempty"`
}

type SessionResponse struct {
	SessionID     uuid.UUID       `json:"session_id"`
	SessionNumber int             `json:"session_number"`
	SessionDate   string          `json:"session_date"`
	StartTime     *string         `json:"start_time,omitempty"`
	EndTime       *string         `json:"end_time,omitempty"`
	Staff         []StaffResponse `json:"staff,omitempty"`
}

func SessionFromModel(s m.SessionModel) SessionResponse {
	resp := SessionResponse{
		SessionID:     s.SessionID,
		SessionNumber: s.SessionNumber,
		SessionDate:   s.SessionDate.Format("2006-01-02"),
		StartTime:     s.SessionStartTime,
		EndTime:       s.SessionEndTime,
	}
	for _, st := range s.Staff {
		resp.Staff = append(resp.Staff, StaffResponse{
			SessionStaffID: st.SessionStaffID,
			TeacherID:      st.SessionStaffTeacherID,
			TeacherName:    st.SessionStaffTeacherName,
		})
	}
	return resp
}

type AssignmentResponse struct {
	AssignmentID        uuid.UUID                    `json:"assignment_id"`
	WorkshopID          uuid.UUID                    `json:"workshop_id"`
	OrganizationID      uuid.UUID                    `json:"organization_id"`
	StartDate           *string                      `json:"start_date,omitempty"`
	EndDate             *string                      `json:"end_date,omitempty"`
	Status              m.AssignmentStatus           `json:"status"`
	ReferentPrimaryID   *uuid.UUID                   `json:"referent_primary_id,omitempty"`
	ReferentSecondaryID *uuid.UUID                   `json:"referent_secondary_id,omitempty"`
	Workshop            *wsDto.WorkshopResponse      `json:"workshop,omitempty"`
	Organization        *orgDto.OrganizationResponse `json:"organization,omitempty"`
	Sessions            []SessionResponse            `json:"sessions,omitempty"`
}

func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func FromModel(a m.AssignmentModel) AssignmentResponse {
	resp := AssignmentResponse{
		AssignmentID:        a.AssignmentID,
		WorkshopID:          a.AssignmentWorkshopID,
		OrganizationID:      a.AssignmentOrganizationID,
		StartDate:           fmtDate(a.AssignmentStartDate),
		EndDate:             fmtDate(a.AssignmentEndDate),
		Status:              a.AssignmentStatus,
		ReferentPrimaryID:   a.AssignmentReferentPrimaryID,
		ReferentSecondaryID: a.AssignmentReferentSecondaryID,
	}
	if a.Workshop != nil {
		ws := wsDto.FromModel(*a.Workshop)
		resp.Workshop = &ws
	}
	if a.Organization != nil {
		org := orgDto.FromModel(*a.Organization)
		resp.Organization = &org
	}
	for _, s := range a.Sessions {
		resp.Sessions = append(resp.Sessions, SessionFromModel(s))
	}
	return resp
}

func FromModels(list []m.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromModel(a))
	}
	return out
}

type EnrollmentResponse struct {
	EnrollmentID    uuid.UUID `json:"enrollment_id"`
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName *string   `json:"participant_name,omitempty"`
}

func EnrollmentsFromModels(list []m.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EnrollmentResponse{
			EnrollmentID:    e.EnrollmentID,
			ParticipantID:   e.EnrollmentParticipantID,
			ParticipantName: e.EnrollmentParticipantName,
		})
	}
	return out
}

// UpdateReferentsRequest designates the named referent staff. Explicit null
// clears a referent, hence the double pointer semantics via presence flags.
type UpdateReferentsRequest struct {
	ReferentPrimaryID   *uuid.UUID `json:"referent_primary_id"`
	ReferentSecondaryID *uuid.UUID `json:"referent_secondary_id"`
}

type AddStaffRequest struct {
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
	TeacherName *string   `json:"teacher_name" validate:"omitempty,max=255"`
}
