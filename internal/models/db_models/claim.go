package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

type ClaimPriority string

const (
	PriorityLow    ClaimPriority = "LOW"
	PriorityMedium ClaimPriority = "MEDIUM"
	PriorityHigh   ClaimPriority = "HIGH"
)

// Claim is a customer's request for payout against an incident, optionally
// tied to a subscription. Once a claim leaves PENDING it is immutable.
type Claim struct {
	BaseModel
	UserID       uuid.UUID  `gorm:"index;not null" json:"userId"`
	UserPolicyID *uuid.UUID `gorm:"index" json:"userPolicyId"`

	IncidentDate     time.Time `gorm:"not null" json:"incidentDate"`
	IncidentLocation string    `gorm:"not null" json:"incidentLocation"`
	Description      string    `gorm:"not null" json:"description"`
	AmountClaimed    float64   `gorm:"not null" json:"amountClaimed"`
	ApprovedAmount   *float64  `json:"approvedAmount"`

	ProofImages pq.StringArray `gorm:"type:text[]" json:"proofImages"`

	Status           ClaimStatus `gorm:"not null;default:'PENDING';index" json:"status"`
	DecisionNotes    string      `json:"decisionNotes"`
	DecidedByAgentID *uuid.UUID  `gorm:"index" json:"decidedByAgentId"`
	DecidedAt        *time.Time  `json:"decidedAt"`

	// Reserved triage fields. Stored with their defaults; no code path sets
	// them yet.
	Priority ClaimPriority `gorm:"not null;default:'MEDIUM'" json:"priority"`
	Category string        `gorm:"not null;default:'OTHER'" json:"category"`

	// Set when the claim was filed with no subscription reference.
	IsWithoutPolicy bool   `gorm:"not null;default:false" json:"isWithoutPolicy"`
	PolicyType      string `gorm:"default:'GENERAL'" json:"policyType"`

	User       User        `gorm:"foreignKey:UserID" json:"-"`
	UserPolicy *UserPolicy `gorm:"foreignKey:UserPolicyID" json:"userPolicy,omitempty"`
}

func (c *Claim) Decided() bool {
	return c.Status != ClaimPending
}
