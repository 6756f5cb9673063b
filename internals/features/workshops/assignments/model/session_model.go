package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionModel is one concrete dated occurrence of an Assignment, numbered
// 1..N within it. Rewritten wholesale by the session synchronizer while no
// attendance exists; afterwards only staff rows may change.
type SessionModel struct {
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`

	SessionAssignmentID uuid.UUID `gorm:"column:session_assignment_id;type:uuid;not null;index" json:"session_assignment_id"`

	// 1-based position within the assignment; unique per assignment
	// (partial unique index created in migration)
	SessionNumber int       `gorm:"column:session_number;not null" json:"session_number"`
	SessionDate   time.Time `gorm:"column:session_date;type:date;not null" json:"session_date"`

	SessionStartTime *string `gorm:"column:session_start_time;type:varchar(5)" json:"session_start_time,omitempty"`
	SessionEndTime   *string `gorm:"column:session_end_time;type:varchar(5)"   json:"session_end_time,omitempty"`

	Staff []SessionStaffModel `gorm:"foreignKey:SessionStaffSessionID;references:SessionID" json:"staff,omitempty"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;type:timestamptz;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;type:timestamptz;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;type:timestamptz;index"          json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }

// SessionStaffModel links a teacher to one session. TeacherID may hold either
// a user id or, for rows migrated from the legacy system, a professor-profile
// id; visibility checks match against both.
type SessionStaffModel struct {
	SessionStaffID uuid.UUID `gorm:"column:session_staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_staff_id"`

	SessionStaffSessionID uuid.UUID `gorm:"column:session_staff_session_id;type:uuid;not null;index" json:"session_staff_session_id"`
	SessionStaffTeacherID uuid.UUID `gorm:"column:session_staff_teacher_id;type:uuid;not null;index" json:"session_staff_teacher_id"`

	// display snapshot, avoids a users join on calendar reads
	SessionStaffTeacherName *string `gorm:"column:session_staff_teacher_name;type:varchar(255)" json:"session_staff_teacher_name,omitempty"`

	SessionStaffCreatedAt time.Time      `gorm:"column:session_staff_created_at;type:timestamptz;autoCreateTime" json:"session_staff_created_at"`
	SessionStaffDeletedAt gorm.DeletedAt `gorm:"column:session_staff_deleted_at;type:timestamptz;index"          json:"session_staff_deleted_at,omitempty"`
}

func (SessionStaffModel) TableName() string { return "session_staff" }
