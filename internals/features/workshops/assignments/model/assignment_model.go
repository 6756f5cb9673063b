package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orgModel "aulataller_backend/internals/features/organizations/model"
	wsModel "aulataller_backend/internals/features/workshops/workshops/model"
)

type AssignmentStatus string

const (
	AssignmentStatusPlanned   AssignmentStatus = "planned"
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusFinished  AssignmentStatus = "finished"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// AssignmentModel is one workshop instance bound to a hosting organization.
// Created on petition approval (external workflow); this engine mutates it
// through referent designation, session sync and status transitions only.
type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`

	AssignmentWorkshopID     uuid.UUID `gorm:"column:assignment_workshop_id;type:uuid;not null;index"     json:"assignment_workshop_id"`
	AssignmentOrganizationID uuid.UUID `gorm:"column:assignment_organization_id;type:uuid;not null;index" json:"assignment_organization_id"`

	AssignmentStartDate *time.Time `gorm:"column:assignment_start_date;type:date" json:"assignment_start_date,omitempty"`
	AssignmentEndDate   *time.Time `gorm:"column:assignment_end_date;type:date"   json:"assignment_end_date,omitempty"`

	AssignmentStatus AssignmentStatus `gorm:"column:assignment_status;type:varchar(20);not null;default:'planned'" json:"assignment_status"`

	// named referent staff; both optional
	AssignmentReferentPrimaryID   *uuid.UUID `gorm:"column:assignment_referent_primary_id;type:uuid"   json:"assignment_referent_primary_id,omitempty"`
	AssignmentReferentSecondaryID *uuid.UUID `gorm:"column:assignment_referent_secondary_id;type:uuid" json:"assignment_referent_secondary_id,omitempty"`

	Workshop     *wsModel.WorkshopModel      `gorm:"foreignKey:AssignmentWorkshopID;references:WorkshopID"         json:"workshop,omitempty"`
	Organization *orgModel.OrganizationModel `gorm:"foreignKey:AssignmentOrganizationID;references:OrganizationID" json:"organization,omitempty"`
	Sessions     []SessionModel              `gorm:"foreignKey:SessionAssignmentID;references:AssignmentID"        json:"sessions,omitempty"`
	Enrollments  []EnrollmentModel           `gorm:"foreignKey:EnrollmentAssignmentID;references:AssignmentID"     json:"enrollments,omitempty"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;type:timestamptz;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;type:timestamptz;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;type:timestamptz;index"          json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }
