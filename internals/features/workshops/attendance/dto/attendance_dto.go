package dto

import (
	"github.com/google/uuid"

	m "aulataller_backend/internals/features/workshops/attendance/model"
)

type AttendanceRecordResponse struct {
	AttendanceRecordID uuid.UUID          `json:"attendance_record_id"`
	EnrollmentID       uuid.UUID          `json:"enrollment_id"`
	SessionNumber      int                `json:"session_number"`
	Status             m.AttendanceStatus `json:"status"`
	Notes              string             `json:"notes"`
	Date               string             `json:"date"`
}

func FromModel(r m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID: r.AttendanceRecordID,
		EnrollmentID:       r.AttendanceRecordEnrollmentID,
		SessionNumber:      r.AttendanceRecordSessionNumber,
		Status:             r.AttendanceRecordStatus,
		Notes:              r.AttendanceRecordNotes,
		Date:               r.AttendanceRecordDate.Format("2006-01-02"),
	}
}

func FromModels(list []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromModel(r))
	}
	return out
}
