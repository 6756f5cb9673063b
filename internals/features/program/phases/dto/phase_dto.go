package dto

import (
	"time"

	"github.com/google/uuid"

	m "aulataller_backend/internals/features/program/phases/model"
)

type PhaseResponse struct {
	PhaseID        uuid.UUID `json:"phase_id"`
	PhaseName      string    `json:"phase_name"`
	PhaseStartDate string    `json:"phase_start_date"`
	PhaseEndDate   string    `json:"phase_end_date"`
	PhaseIsActive  bool      `json:"phase_is_active"`
	PhasePosition  int       `json:"phase_position"`
}

func PhaseFromModel(p m.PhaseModel) PhaseResponse {
	return PhaseResponse{
		PhaseID:        p.PhaseID,
		PhaseName:      p.PhaseName,
		PhaseStartDate: p.PhaseStartDate.Format("2006-01-02"),
		PhaseEndDate:   p.PhaseEndDate.Format("2006-01-02"),
		PhaseIsActive:  p.PhaseIsActive,
		PhasePosition:  p.PhasePosition,
	}
}

func PhasesFromModels(list []m.PhaseModel) []PhaseResponse {
	out := make([]PhaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, PhaseFromModel(p))
	}
	return out
}

type CreateMilestoneRequest struct {
	MilestonePhaseID     uuid.UUID `json:"milestone_phase_id" validate:"required"`
	MilestoneTitle       string    `json:"milestone_title" validate:"required,max=255"`
	MilestoneDescription *string   `json:"milestone_description" validate:"omitempty"`
	MilestoneDate        string    `json:"milestone_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateMilestoneRequest) ToModel() m.MilestoneModel {
	return m.MilestoneModel{
		MilestonePhaseID:     r.MilestonePhaseID,
		MilestoneTitle:       r.MilestoneTitle,
		MilestoneDescription: r.MilestoneDescription,
		MilestoneDate:        r.MilestoneDate,
	}
}

type MilestoneResponse struct {
	MilestoneID          uuid.UUID `json:"milestone_id"`
	MilestonePhaseID     uuid.UUID `json:"milestone_phase_id"`
	MilestoneTitle       string    `json:"milestone_title"`
	MilestoneDescription *string   `json:"milestone_description,omitempty"`
	MilestoneDate        string    `json:"milestone_date"`
	PhaseName            *string   `json:"phase_name,omitempty"`
	MilestoneCreatedAt   time.Time `json:"milestone_created_at"`
}

func MilestoneFromModel(ms m.MilestoneModel) MilestoneResponse {
	resp := MilestoneResponse{
		MilestoneID:          ms.MilestoneID,
		MilestonePhaseID:     ms.MilestonePhaseID,
		MilestoneTitle:       ms.MilestoneTitle,
		MilestoneDescription: ms.MilestoneDescription,
		MilestoneDate:        ms.MilestoneDate,
		MilestoneCreatedAt:   ms.MilestoneCreatedAt,
	}
	if ms.Phase != nil {
		resp.PhaseName = &ms.Phase.PhaseName
	}
	return resp
}

func MilestonesFromModels(list []m.MilestoneModel) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(list))
	for _, ms := range list {
		out = append(out, MilestoneFromModel(ms))
	}
	return out
}
