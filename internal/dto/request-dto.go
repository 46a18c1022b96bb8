package dto

import "github.com/aarondl/null/v8"

type CreateRequestItemDTO struct {
	Type        string      `json:"type" validate:"required,request_item_type"`
	Description null.String `json:"description"`
	EquipmentID *uint64     `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
}

type CreateRequestDTO struct {
	Notes null.String            `json:"notes"`
	Items []CreateRequestItemDTO `json:"items" validate:"required,min=1,dive"`

	// Honored only when the caller is an admin.
	UserID *uint64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateRequestDTO mutates status and/or notes. The status set is flat:
// any value is accepted from any current status.
type UpdateRequestDTO struct {
	Status *string `json:"status,omitempty" validate:"omitempty,request_status"`
	Notes  *string `json:"notes,omitempty"`
}

type RequestItemDTO struct {
	ID          uint64             `json:"id"`
	Type        string             `json:"type"`
	Description null.String        `json:"description"`
	Equipment   *ShortEquipmentDTO `json:"equipment,omitempty"`
}

type RequestDTO struct {
	ID        uint64           `json:"id"`
	Status    string           `json:"status"`
	Notes     null.String      `json:"notes"`
	UserID    uint64           `json:"user_id"`
	Owner     ShortUserDTO     `json:"owner"`
	Items     []RequestItemDTO `json:"items"`
	CreatedAt string           `json:"created_at"`
}
