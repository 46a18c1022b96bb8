package entities

import "time"

// SettingEmailNotifications toggles the request-created email fan-out.
const SettingEmailNotifications = "emailNotifications"

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
