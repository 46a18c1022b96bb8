package dto

type UpdateSettingDTO struct {
	Value string `json:"value" validate:"required"`
}

type SettingDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
