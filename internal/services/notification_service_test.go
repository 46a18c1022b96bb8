package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
)

func TestRequestRecipients(t *testing.T) {
	t.Run("union of admins and requester", func(t *testing.T) {
		got := RequestRecipients([]string{"a@x.com", "b@x.com"}, "c@x.com")
		assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, got)
	})

	t.Run("requester who is an admin appears once", func(t *testing.T) {
		got := RequestRecipients([]string{"a@x.com", "b@x.com"}, "a@x.com")
		assert.Equal(t, []string{"a@x.com", "b@x.com"}, got)
	})

	t.Run("empty addresses dropped", func(t *testing.T) {
		got := RequestRecipients([]string{"", "a@x.com"}, "")
		assert.Equal(t, []string{"a@x.com"}, got)
	})
}

func TestComposeRequestEmail(t *testing.T) {
	request := &dto.RequestDTO{
		ID:     17,
		Status: entities.RequestStatusPending,
		Notes:  null.StringFrom("urgent"),
		Owner:  dto.ShortUserDTO{Name: "Alice", Email: "alice@x.com"},
		Items: []dto.RequestItemDTO{
			{
				Type:        entities.RequestItemDelivery,
				Description: null.StringFrom("new bed"),
			},
			{
				Type: entities.RequestItemRepair,
				Equipment: &dto.ShortEquipmentDTO{
					ID:        3,
					TypeName:  "Wheelchair",
					Reference: null.StringFrom("REF-3"),
					Resident:  "Mr. Smith",
				},
			},
		},
	}

	subject, body := ComposeRequestEmail(request)

	assert.Equal(t, "New equipment request #17", subject)
	assert.Contains(t, body, "Alice (alice@x.com)")
	assert.Contains(t, body, "Status: PENDING")
	assert.Contains(t, body, "Notes: urgent")
	assert.Contains(t, body, "DELIVERY: new bed")
	assert.Contains(t, body, "REPAIR (equipment: Wheelchair REF-3, resident Mr. Smith)")
}
