package request_models

type SubmitClaimRequest struct {
	UserPolicyID     string   `json:"userPolicyId"`
	IncidentDate     string   `json:"incidentDate"`
	IncidentLocation string   `json:"incidentLocation"`
	Description      string   `json:"description"`
	Amount           float64  `json:"amount"`
	Images           []string `json:"images"`
	// Only honored on the without-policy path.
	PolicyType string `json:"policyType"`
}

type ReviewClaimRequest struct {
	Status         string   `json:"status" binding:"required"`
	Notes          string   `json:"notes"`
	ApprovedAmount *float64 `json:"approvedAmount"`
}
