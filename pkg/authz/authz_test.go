package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"polisure/internal/models/db_models"
)

func TestCanActOnClaim(t *testing.T) {
	owner := uuid.New()
	agent := uuid.New()
	otherAgent := uuid.New()

	assigned := ClaimRef{OwnerID: owner, OwnerAssignedAgentID: &agent}
	unassigned := ClaimRef{OwnerID: owner}

	cases := []struct {
		name   string
		actor  Actor
		action Action
		ref    ClaimRef
		want   bool
	}{
		{"admin views anything", Actor{ID: uuid.New(), Role: db_models.RoleAdmin}, ActionViewClaim, assigned, true},
		{"admin decides anything", Actor{ID: uuid.New(), Role: db_models.RoleAdmin}, ActionDecideClaim, unassigned, true},

		{"assigned agent views", Actor{ID: agent, Role: db_models.RoleAgent}, ActionViewClaim, assigned, true},
		{"assigned agent decides", Actor{ID: agent, Role: db_models.RoleAgent}, ActionDecideClaim, assigned, true},
		{"other agent denied", Actor{ID: otherAgent, Role: db_models.RoleAgent}, ActionDecideClaim, assigned, false},
		{"agent denied when owner unassigned", Actor{ID: agent, Role: db_models.RoleAgent}, ActionViewClaim, unassigned, false},

		{"owner views own claim", Actor{ID: owner, Role: db_models.RoleCustomer}, ActionViewClaim, assigned, true},
		{"owner cannot decide", Actor{ID: owner, Role: db_models.RoleCustomer}, ActionDecideClaim, assigned, false},
		{"other customer denied", Actor{ID: uuid.New(), Role: db_models.RoleCustomer}, ActionViewClaim, assigned, false},

		{"unknown role denied", Actor{ID: owner, Role: db_models.Role("ghost")}, ActionViewClaim, assigned, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanActOnClaim(tc.actor, tc.action, tc.ref))
		})
	}
}
