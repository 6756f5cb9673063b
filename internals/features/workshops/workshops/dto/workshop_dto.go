package dto

import (
	"github.com/google/uuid"

	m "aulataller_backend/internals/features/workshops/workshops/model"
)

type SlotRequest struct {
	Weekday   string  `json:"weekday" validate:"required,max=20"`
	StartTime *string `json:"start_time" validate:"omitempty,len=5"`
	EndTime   *string `json:"end_time" validate:"omitempty,len=5"`
}

type CreateWorkshopRequest struct {
	WorkshopTitle         string        `json:"workshop_title" validate:"required,max=255"`
	WorkshopDescription   *string       `json:"workshop_description"`
	WorkshopCapacity      int           `json:"workshop_capacity" validate:"gte=0"`
	WorkshopTotalSessions int           `json:"workshop_total_sessions" validate:"gte=0"`
	WorkshopTags          []string      `json:"workshop_tags" validate:"omitempty,dive,max=50"`
	Slots                 []SlotRequest `json:"slots" validate:"dive"`
}

func (r CreateWorkshopRequest) ToModel() m.WorkshopModel {
	ws := m.WorkshopModel{
		WorkshopTitle:         r.WorkshopTitle,
		WorkshopDescription:   r.WorkshopDescription,
		WorkshopCapacity:      r.WorkshopCapacity,
		WorkshopTotalSessions: r.WorkshopTotalSessions,
		WorkshopTags:          r.WorkshopTags,
	}
	for _, s := range r.Slots {
		ws.Slots = append(ws.Slots, m.WorkshopSlotModel{
			WorkshopSlotWeekday:   s.Weekday,
			WorkshopSlotStartTime: s.StartTime,
			WorkshopSlotEndTime:   s.EndTime,
		})
	}
	return ws
}

// UpdateWorkshopRequest is pointer-based for PATCH semantics; slots, when
// present, replace the whole set.
type UpdateWorkshopRequest struct {
	WorkshopTitle         *string        `json:"workshop_title" validate:"omitempty,max=255"`
	WorkshopDescription   *string        `json:"workshop_description"`
	WorkshopCapacity      *int           `json:"workshop_capacity" validate:"omitempty,gte=0"`
	WorkshopTotalSessions *int           `json:"workshop_total_sessions" validate:"omitempty,gte=0"`
	WorkshopTags          *[]string      `json:"workshop_tags" validate:"omitempty,dive,max=50"`
	Slots                 *[]SlotRequest `json:"slots" validate:"omitempty,dive"`
}

func (r UpdateWorkshopRequest) Apply(ws *m.WorkshopModel) {
	if r.WorkshopTitle != nil {
		ws.WorkshopTitle = *r.WorkshopTitle
	}
	if r.WorkshopDescription != nil {
		ws.WorkshopDescription = r.WorkshopDescription
	}
	if r.WorkshopCapacity != nil {
		ws.WorkshopCapacity = *r.WorkshopCapacity
	}
	if r.WorkshopTotalSessions != nil {
		ws.WorkshopTotalSessions = *r.WorkshopTotalSessions
	}
	if r.WorkshopTags != nil {
		ws.WorkshopTags = *r.WorkshopTags
	}
}

type SlotResponse struct {
	WorkshopSlotID uuid.UUID `json:"workshop_slot_id"`
	Weekday        string    `json:"weekday"`
	StartTime      *string   `json:"start_time,omitempty"`
	EndTime        *string   `json:"end_time,omitempty"`
}

type WorkshopResponse struct {
	WorkshopID            uuid.UUID      `json:"workshop_id"`
	WorkshopTitle         string         `json:"workshop_title"`
	WorkshopDescription   *string        `json:"workshop_description,omitempty"`
	WorkshopCapacity      int            `json:"workshop_capacity"`
	WorkshopTotalSessions int            `json:"workshop_total_sessions"`
	WorkshopTags          []string       `json:"workshop_tags,omitempty"`
	Slots                 []SlotResponse `json:"slots,omitempty"`
}

func FromModel(ws m.WorkshopModel) WorkshopResponse {
	resp := WorkshopResponse{
		WorkshopID:            ws.WorkshopID,
		WorkshopTitle:         ws.WorkshopTitle,
		WorkshopDescription:   ws.WorkshopDescription,
		WorkshopCapacity:      ws.WorkshopCapacity,
		WorkshopTotalSessions: ws.WorkshopTotalSessions,
		WorkshopTags:          ws.WorkshopTags,
	}
	for _, s := range ws.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			WorkshopSlotID: s.WorkshopSlotID,
			Weekday:        s.WorkshopSlotWeekday,
			StartTime:      s.WorkshopSlotStartTime,
			EndTime:        s.WorkshopSlotEndTime,
		})
	}
	return resp
}

func FromModels(list []m.WorkshopModel) []WorkshopResponse {
	out := make([]WorkshopResponse, 0, len(list))
	for _, ws := range list {
		out = append(out, FromModel(ws))
	}
	return out
}
