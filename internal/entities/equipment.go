package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID           uint64       `json:"id"`
	TypeID       uint64       `json:"type_id"`
	Reference    null.String  `json:"reference"`
	Sector       string       `json:"sector"`
	Room         string       `json:"room"`
	Resident     string       `json:"resident"`
	Weight       null.Float64 `json:"weight"`
	DeliveryDate null.Time    `json:"delivery_date"`
	ReturnDate   null.Time    `json:"return_date"`
	UserID       uint64       `json:"user_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Joined rows, not columns.
	Type  *EquipmentType `db:"-" json:"type,omitempty"`
	Owner *User          `db:"-" json:"owner,omitempty"`
}
