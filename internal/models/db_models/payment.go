package db_models

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodPaypal       PaymentMethod = "PAYPAL"
	MethodCash         PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodPaypal, MethodCash:
		return true
	}
	return false
}

// Payment is an append-only record of a transaction tied to a subscription.
// Card numbers and UPI handles are never persisted.
type Payment struct {
	BaseModel
	UserID          uuid.UUID     `gorm:"index;not null" json:"userId"`
	PolicyProductID uuid.UUID     `gorm:"index;not null" json:"policyId"`
	UserPolicyID    uuid.UUID     `gorm:"index;not null" json:"userPolicyId"`
	Amount          float64       `gorm:"not null" json:"amount"`
	Method          PaymentMethod `gorm:"not null" json:"method"`
	Reference       string        `gorm:"uniqueIndex;not null" json:"reference"`
	Status          PaymentStatus `gorm:"not null;default:'PENDING'" json:"status"`
}
