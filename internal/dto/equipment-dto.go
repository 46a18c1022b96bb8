package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	TypeID    uint64      `json:"type_id" validate:"required,gt=0"`
	Reference null.String `json:"reference"`
	Sector    string      `json:"sector" validate:"required"`
	Room      string      `json:"room" validate:"required"`
	Resident  string      `json:"resident" validate:"required"`
	Weight    *float64    `json:"weight,omitempty" validate:"omitempty,gte=0"`

	// ISO dates; parsed and stored as NULL when absent.
	DeliveryDate *string `json:"delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate   *string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// Honored only when the caller is an admin.
	UserID *uint64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	TypeID       uint64      `json:"type_id" validate:"required,gt=0"`
	Reference    null.String `json:"reference"`
	Sector       string      `json:"sector" validate:"required"`
	Room         string      `json:"room" validate:"required"`
	Resident     string      `json:"resident" validate:"required"`
	Weight       *float64    `json:"weight,omitempty" validate:"omitempty,gte=0"`
	DeliveryDate *string     `json:"delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate   *string     `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UserID       *uint64     `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID           uint64       `json:"id"`
	Reference    null.String  `json:"reference"`
	Sector       string       `json:"sector"`
	Room         string       `json:"room"`
	Resident     string       `json:"resident"`
	Weight       null.Float64 `json:"weight"`
	DeliveryDate null.String  `json:"delivery_date"`
	ReturnDate   null.String  `json:"return_date"`
	UserID       uint64       `json:"user_id"`

	Type  EquipmentTypeDTO `json:"type"`
	Owner ShortUserDTO     `json:"owner"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID        uint64      `json:"id"`
	Reference null.String `json:"reference"`
	Resident  string      `json:"resident"`
	TypeName  string      `json:"type_name"`
}
