package response_models

type AdminSummary struct {
	Users          int64         `json:"users"`
	Agents         int64         `json:"agents"`
	Policies       int64         `json:"policies"`
	ClaimsPending  int64         `json:"claimsPending"`
	ClaimsApproved int64         `json:"claimsApproved"`
	ClaimsRejected int64         `json:"claimsRejected"`
	ClaimsByMonth  []MonthBucket `json:"claimsByMonth"`
}
