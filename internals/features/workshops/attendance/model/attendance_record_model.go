package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent         AttendanceStatus = "present"
	AttendanceAbsent          AttendanceStatus = "absent"
	AttendanceJustifiedAbsent AttendanceStatus = "justified_absent"
	AttendanceLate            AttendanceStatus = "late"
)

// AttendanceRecordModel is the per-session attendance outcome for one
// enrollment. Created exactly once per (enrollment, session number) by the
// attendance synchronizer; status/notes are updated later only through the
// evaluation module. Unique index on (enrollment_id, session_number) created
// in migration; the synchronizer relies on it for insert-if-absent.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_record_id"`

	AttendanceRecordAssignmentID uuid.UUID `gorm:"column:attendance_record_assignment_id;type:uuid;not null;index" json:"attendance_record_assignment_id"`
	AttendanceRecordEnrollmentID uuid.UUID `gorm:"column:attendance_record_enrollment_id;type:uuid;not null;uniqueIndex:ux_attendance_enrollment_session" json:"attendance_record_enrollment_id"`

	AttendanceRecordSessionNumber int `gorm:"column:attendance_record_session_number;not null;uniqueIndex:ux_attendance_enrollment_session" json:"attendance_record_session_number"`

	AttendanceRecordStatus AttendanceStatus `gorm:"column:attendance_record_status;type:varchar(20);not null;default:'present'" json:"attendance_record_status"`
	AttendanceRecordNotes  string           `gorm:"column:attendance_record_notes;type:text;not null;default:''"                json:"attendance_record_notes"`

	AttendanceRecordDate time.Time `gorm:"column:attendance_record_date;type:date;not null" json:"attendance_record_date"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;type:timestamptz;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time      `gorm:"column:attendance_record_updated_at;type:timestamptz;autoUpdateTime" json:"attendance_record_updated_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;type:timestamptz;index"          json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
