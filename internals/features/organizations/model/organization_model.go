package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationModel is a hosting organization (school or community center)
// where workshop assignments take place.
type OrganizationModel struct {
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_id"`

	OrganizationName    string  `gorm:"column:organization_name;type:varchar(255);not null" json:"organization_name"`
	OrganizationAddress *string `gorm:"column:organization_address;type:varchar(255)"       json:"organization_address,omitempty"`
	OrganizationTown    *string `gorm:"column:organization_town;type:varchar(120)"          json:"organization_town,omitempty"`

	OrganizationCreatedAt time.Time      `gorm:"column:organization_created_at;type:timestamptz;autoCreateTime" json:"organization_created_at"`
	OrganizationUpdatedAt time.Time      `gorm:"column:organization_updated_at;type:timestamptz;autoUpdateTime" json:"organization_updated_at"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;type:timestamptz;index"          json:"organization_deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }
