package dto

import (
	"github.com/google/uuid"

	m "aulataller_backend/internals/features/organizations/model"
)

type OrganizationResponse struct {
	OrganizationID      uuid.UUID `json:"organization_id"`
	OrganizationName    string    `json:"organization_name"`
	OrganizationAddress *string   `json:"organization_address,omitempty"`
	OrganizationTown    *string   `json:"organization_town,omitempty"`
}

func FromModel(o m.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:      o.OrganizationID,
		OrganizationName:    o.OrganizationName,
		OrganizationAddress: o.OrganizationAddress,
		OrganizationTown:    o.OrganizationTown,
	}
}

func FromModels(list []m.OrganizationModel) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromModel(o))
	}
	return out
}
