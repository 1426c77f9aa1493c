package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hourslot/booking-api/internal/models"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		name     string
		claim    Claim
		required string
		want     bool
	}{
		{"exact match", Claim{UserID: 1, Role: models.RoleAdmin}, models.RoleAdmin, true},
		{"insufficient role", Claim{UserID: 1, Role: models.RoleClient}, models.RoleAdmin, false},
		{"no hierarchy, admin is not client", Claim{UserID: 1, Role: models.RoleAdmin}, models.RoleClient, false},
		{"zero claim", Claim{}, models.RoleAdmin, false},
		{"missing role", Claim{UserID: 1}, models.RoleAdmin, false},
		{"missing user id", Claim{Role: models.RoleAdmin}, models.RoleAdmin, false},
		{"case sensitive", Claim{UserID: 1, Role: "admin"}, models.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.claim, tt.required))
		})
	}
}
