package authz

import (
	"github.com/google/uuid"

	"polisure/internal/models/db_models"
)

// Actor is the authenticated principal attached to a request.
type Actor struct {
	ID   uuid.UUID
	Role db_models.Role
}

type Action string

const (
	ActionViewClaim   Action = "claim:view"
	ActionDecideClaim Action = "claim:decide"
)

// ClaimRef carries just the ownership facts needed to authorize an action on
// a claim.
type ClaimRef struct {
	OwnerID              uuid.UUID
	OwnerAssignedAgentID *uuid.UUID
}

// CanActOnClaim is the single allow/deny decision for claim access. Admins
// are unrestricted; agents are scoped to customers assigned to them;
// customers may only view their own claims.
func CanActOnClaim(actor Actor, action Action, ref ClaimRef) bool {
	switch actor.Role {
	case db_models.RoleAdmin:
		return true
	case db_models.RoleAgent:
		return ref.OwnerAssignedAgentID != nil && *ref.OwnerAssignedAgentID == actor.ID
	case db_models.RoleCustomer:
		return action == ActionViewClaim && ref.OwnerID == actor.ID
	}
	return false
}
