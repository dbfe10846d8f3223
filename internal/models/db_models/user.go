package db_models

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"not null;default:'customer';index" json:"role"`
	Photo        string `json:"photo"`
	Address      string `json:"address"`

	// Only customers carry an assignment, and only agents may be targets.
	// Enforced in the service layer, not by the schema.
	AssignedAgentID *uuid.UUID `gorm:"index" json:"assignedAgentId"`
	AssignedAgent   *User      `gorm:"foreignKey:AssignedAgentID" json:"assignedAgent,omitempty"`
}
