package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// WorkshopModel is a reusable workshop template: metadata, capacity and the
// weekly recurrence pattern (slots) assignments are scheduled from.
type WorkshopModel struct {
	WorkshopID uuid.UUID `gorm:"column:workshop_id;type:uuid;default:gen_random_uuid();primaryKey" json:"workshop_id"`

	WorkshopTitle       string  `gorm:"column:workshop_title;type:varchar(255);not null" json:"workshop_title"`
	WorkshopDescription *string `gorm:"column:workshop_description;type:text"            json:"workshop_description,omitempty"`

	WorkshopCapacity      int `gorm:"column:workshop_capacity;not null;default:0"       json:"workshop_capacity"`
	WorkshopTotalSessions int `gorm:"column:workshop_total_sessions;not null;default:0" json:"workshop_total_sessions"`

	// free-form topic tags used by the catalog filter
	WorkshopTags pq.StringArray `gorm:"column:workshop_tags;type:text[]" json:"workshop_tags,omitempty"`

	Slots []WorkshopSlotModel `gorm:"foreignKey:WorkshopSlotWorkshopID;references:WorkshopID" json:"slots,omitempty"`

	WorkshopCreatedAt time.Time      `gorm:"column:workshop_created_at;type:timestamptz;autoCreateTime" json:"workshop_created_at"`
	WorkshopUpdatedAt time.Time      `gorm:"column:workshop_updated_at;type:timestamptz;autoUpdateTime" json:"workshop_updated_at"`
	WorkshopDeletedAt gorm.DeletedAt `gorm:"column:workshop_deleted_at;type:timestamptz;index"          json:"workshop_deleted_at,omitempty"`
}

func (WorkshopModel) TableName() string { return "workshops" }

// WorkshopSlotModel is one weekly slot of a workshop's recurrence pattern.
// Weekday names arrive from the legacy admin UI in Catalan or Spanish
// ("dilluns", "miércoles", ...); normalization happens in the recurrence
// engine, the column stores whatever the operator typed.
type WorkshopSlotModel struct {
	WorkshopSlotID uuid.UUID `gorm:"column:workshop_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"workshop_slot_id"`

	WorkshopSlotWorkshopID uuid.UUID `gorm:"column:workshop_slot_workshop_id;type:uuid;not null;index" json:"workshop_slot_workshop_id"`

	WorkshopSlotWeekday   string  `gorm:"column:workshop_slot_weekday;type:varchar(20);not null" json:"workshop_slot_weekday"`
	WorkshopSlotStartTime *string `gorm:"column:workshop_slot_start_time;type:varchar(5)"        json:"workshop_slot_start_time,omitempty"`
	WorkshopSlotEndTime   *string `gorm:"column:workshop_slot_end_time;type:varchar(5)"          json:"workshop_slot_end_time,omitempty"`

	WorkshopSlotCreatedAt time.Time      `gorm:"column:workshop_slot_created_at;type:timestamptz;autoCreateTime" json:"workshop_slot_created_at"`
	WorkshopSlotDeletedAt gorm.DeletedAt `gorm:"column:workshop_slot_deleted_at;type:timestamptz;index"          json:"workshop_slot_deleted_at,omitempty"`
}

func (WorkshopSlotModel) TableName() string { return "workshop_slots" }
