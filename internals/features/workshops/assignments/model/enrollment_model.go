package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel registers a participant to an Assignment. Rows are created
// by the roster-management module; this engine only reads them.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentAssignmentID  uuid.UUID `gorm:"column:enrollment_assignment_id;type:uuid;not null;index" json:"enrollment_assignment_id"`
	EnrollmentParticipantID uuid.UUID `gorm:"column:enrollment_participant_id;type:uuid;not null"      json:"enrollment_participant_id"`

	EnrollmentParticipantName *string `gorm:"column:enrollment_participant_name;type:varchar(255)" json:"enrollment_participant_name,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;type:timestamptz;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;type:timestamptz;index"          json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
