package request_models

type CreatePolicyProductRequest struct {
	Code          string  `json:"code" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Premium       float64 `json:"premium" binding:"required,gt=0"`
	TermMonths    int     `json:"termMonths" binding:"required,gt=0"`
	MinSumInsured float64 `json:"minSumInsured"`
	Image         string  `json:"image" binding:"required"`
}

type UpdatePolicyProductRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Premium       *float64 `json:"premium"`
	TermMonths    *int     `json:"termMonths"`
	MinSumInsured *float64 `json:"minSumInsured"`
	Image         *string  `json:"image"`
}

type PurchasePolicyRequest struct {
	StartDate        string `json:"startDate" binding:"required"`
	TermMonths       int    `json:"termMonths" binding:"required"`
	Nominee          string `json:"nominee" binding:"required"`
	PaymentMethod    string `json:"paymentMethod" binding:"required"`
	PaymentReference string `json:"paymentReference" binding:"required"`
}

type RecordPaymentRequest struct {
	PolicyID  string  `json:"policyId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method" binding:"required"`
	Reference string  `json:"reference" binding:"required"`
}
