package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhaseModel is a named period of the program calendar (e.g. "Inscripcions",
// "Tallers", "Avaluació"). Owned by the external phase-management module;
// read-only from the scheduling engine's point of view.
type PhaseModel struct {
	PhaseID uuid.UUID `gorm:"column:phase_id;type:uuid;default:gen_random_uuid();primaryKey" json:"phase_id"`

	PhaseName      string    `gorm:"column:phase_name;type:varchar(120);not null" json:"phase_name"`
	PhaseStartDate time.Time `gorm:"column:phase_start_date;type:date;not null"   json:"phase_start_date"`
	PhaseEndDate   time.Time `gorm:"column:phase_end_date;type:date;not null"     json:"phase_end_date"`
	PhaseIsActive  bool      `gorm:"column:phase_is_active;not null;default:false" json:"phase_is_active"`
	PhasePosition  int       `gorm:"column:phase_position;not null;default:0"      json:"phase_position"`

	PhaseCreatedAt time.Time      `gorm:"column:phase_created_at;type:timestamptz;autoCreateTime" json:"phase_created_at"`
	PhaseUpdatedAt time.Time      `gorm:"column:phase_updated_at;type:timestamptz;autoUpdateTime" json:"phase_updated_at"`
	PhaseDeletedAt gorm.DeletedAt `gorm:"column:phase_deleted_at;type:timestamptz;index"          json:"phase_deleted_at,omitempty"`
}

func (PhaseModel) TableName() string { return "phases" }
