package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	RequestStatusPending       = "PENDING"
	RequestStatusAcknowledged  = "ACKNOWLEDGED"
	RequestStatusInPreparation = "IN_PREPARATION"
	RequestStatusCompleted     = "COMPLETED"
)

const (
	RequestItemDelivery = "DELIVERY"
	RequestItemPickup   = "PICKUP"
	RequestItemRepair   = "REPAIR"
)

// RequestStatuses is the full set an admin may pick from. Transitions are
// not ordered: any status can follow any other, including reopening a
// COMPLETED request.
var RequestStatuses = []string{
	RequestStatusPending,
	RequestStatusAcknowledged,
	RequestStatusInPreparation,
	RequestStatusCompleted,
}

type Request struct {
	ID        uint64      `json:"id"`
	Status    string      `json:"status"`
	Notes     null.String `json:"notes"`
	UserID    uint64      `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Owner *User         `db:"-" json:"owner,omitempty"`
	Items []RequestItem `db:"-" json:"items"`
}

type RequestItem struct {
	ID          uint64      `json:"id"`
	RequestID   uint64      `json:"request_id"`
	Type        string      `json:"type"`
	Description null.String `json:"description"`
	EquipmentID null.Uint64 `json:"equipment_id"`

	Equipment *Equipment `db:"-" json:"equipment,omitempty"`
}
