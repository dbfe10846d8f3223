package db_models

// PolicyProduct is a catalog entry managed by administrators. Cosmetic
// fields may change after customers subscribe; pricing fields are snapshotted
// onto the subscription at purchase time.
type PolicyProduct struct {
	BaseModel
	Code          string  `gorm:"uniqueIndex;not null" json:"code"`
	Title         string  `gorm:"not null" json:"title"`
	Description   string  `json:"description"`
	Premium       float64 `gorm:"not null" json:"premium"`
	TermMonths    int     `gorm:"not null" json:"termMonths"`
	MinSumInsured float64 `json:"minSumInsured"`
	ImageURL      string  `json:"imageUrl"`
}
