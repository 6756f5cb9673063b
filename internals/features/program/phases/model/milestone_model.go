package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneModel is a dated entry on the program calendar, owned by a Phase.
//
// MilestoneDate is kept as text: rows imported from the legacy system carry
// free-form values, so consumers must parse defensively and skip bad rows.
type MilestoneModel struct {
	MilestoneID uuid.UUID `gorm:"column:milestone_id;type:uuid;default:gen_random_uuid();primaryKey" json:"milestone_id"`

	MilestonePhaseID uuid.UUID `gorm:"column:milestone_phase_id;type:uuid;not null;index" json:"milestone_phase_id"`

	MilestoneTitle       string  `gorm:"column:milestone_title;type:varchar(255);not null" json:"milestone_title"`
	MilestoneDescription *string `gorm:"column:milestone_description;type:text"            json:"milestone_description,omitempty"`
	MilestoneDate        string  `gorm:"column:milestone_date;type:varchar(10);not null"   json:"milestone_date"`

	Phase *PhaseModel `gorm:"foreignKey:MilestonePhaseID;references:PhaseID" json:"phase,omitempty"`

	MilestoneCreatedAt time.Time      `gorm:"column:milestone_created_at;type:timestamptz;autoCreateTime" json:"milestone_created_at"`
	MilestoneUpdatedAt time.Time      `gorm:"column:milestone_updated_at;type:timestamptz;autoUpdateTime" json:"milestone_updated_at"`
	MilestoneDeletedAt gorm.DeletedAt `gorm:"column:milestone_deleted_at;type:timestamptz;index"          json:"milestone_deleted_at,omitempty"`
}

func (MilestoneModel) TableName() string { return "milestones" }
