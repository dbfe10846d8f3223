package db_models

import (
	"time"

	"github.com/google/uuid"
)

type UserPolicyStatus string

const (
	UserPolicyActive    UserPolicyStatus = "ACTIVE"
	UserPolicyPending   UserPolicyStatus = "PENDING"
	UserPolicyExpired   UserPolicyStatus = "EXPIRED"
	UserPolicyCancelled UserPolicyStatus = "CANCELLED"
)

// UserPolicy binds a customer to a catalog product for a date-bounded term.
// At most one ACTIVE/PENDING subscription may exist per (user, product) pair;
// the purchase path pre-checks this before inserting.
type UserPolicy struct {
	BaseModel
	UserID          uuid.UUID        `gorm:"index;not null" json:"userId"`
	PolicyProductID uuid.UUID        `gorm:"index;not null" json:"policyProductId"`
	StartDate       time.Time        `gorm:"not null" json:"startDate"`
	EndDate         time.Time        `gorm:"not null" json:"endDate"`
	PremiumPaid     float64          `gorm:"not null" json:"premiumPaid"`
	Nominee         string           `gorm:"not null" json:"nominee"`
	Status          UserPolicyStatus `gorm:"not null;default:'ACTIVE';index" json:"status"`

	User          User          `gorm:"foreignKey:UserID" json:"-"`
	PolicyProduct PolicyProduct `gorm:"foreignKey:PolicyProductID" json:"policyProduct,omitempty"`
}

// Covers reports whether the incident date falls inside the policy term,
// bounds inclusive.
func (p *UserPolicy) Covers(incidentDate time.Time) bool {
	return !incidentDate.Before(p.StartDate) && !incidentDate.After(p.EndDate)
}
