package response_models

import (
	"polisure/internal/models/db_models"
)

type ClaimStats struct {
	TotalClaims         int64   `json:"totalClaims"`
	PendingClaims       int64   `json:"pendingClaims"`
	ApprovedClaims      int64   `json:"approvedClaims"`
	RejectedClaims      int64   `json:"rejectedClaims"`
	TotalClaimedAmount  float64 `json:"totalClaimedAmount"`
	TotalApprovedAmount float64 `json:"totalApprovedAmount"`
}

type MonthBucket struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type AgentStats struct {
	ClaimStats
	ClaimsByMonth     []MonthBucket `json:"claimsByMonth"`
	AssignedCustomers int64         `json:"assignedCustomers"`
}

type CustomerPolicies struct {
	Customer *UserSummary           `json:"customer"`
	Policies []db_models.UserPolicy `json:"policies"`
}

type CustomerClaims struct {
	Customer *UserSummary      `json:"customer"`
	Claims   []db_models.Claim `json:"claims"`
}
