package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polisure/internal/models/db_models"
)

// ClaimStatsRow is the per-status breakdown over a set of claims.
type ClaimStatsRow struct {
	TotalClaims         int64   `gorm:"column:total_claims"`
	PendingClaims       int64   `gorm:"column:pending_claims"`
	ApprovedClaims      int64   `gorm:"column:approved_claims"`
	RejectedClaims      int64   `gorm:"column:rejected_claims"`
	TotalClaimedAmount  float64 `gorm:"column:total_claimed_amount"`
	TotalApprovedAmount float64 `gorm:"column:total_approved_amount"`
}

// MonthBucketRow is one calendar month of claim volume.
type MonthBucketRow struct {
	Year        int     `gorm:"column:year"`
	Month       int     `gorm:"column:month"`
	Count       int64   `gorm:"column:count"`
	TotalAmount float64 `gorm:"column:total_amount"`
}

type ClaimRepository interface {
	Insert(ctx context.Context, claim *db_models.Claim) error
	// FindByID loads the claim with its owner so authorization can inspect
	// the owner's agent assignment.
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Claim, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Claim, error)
	ListForAgent(ctx context.Context, agentID uuid.UUID, onlyPending bool) ([]db_models.Claim, error)
	ListAll(ctx context.Context) ([]db_models.Claim, error)
	UpdateDecision(ctx context.Context, claim *db_models.Claim) error
	StatsForUser(ctx context.Context, userID uuid.UUID) (*ClaimStatsRow, error)
	StatsForAgent(ctx context.Context, agentID uuid.UUID) (*ClaimStatsRow, error)
	StatsGlobal(ctx context.Context) (*ClaimStatsRow, error)
	MonthlyForAgent(ctx context.Context, agentID uuid.UUID, limit int) ([]MonthBucketRow, error)
	MonthlyGlobal(ctx context.Context, limit int) ([]MonthBucketRow, error)
}

type claimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Insert(ctx context.Context, claim *db_models.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Claim, error) {
	var claim db_models.Claim
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("UserPolicy").
		First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Claim, error) {
	var claims []db_models.Claim
	err := r.db.WithContext(ctx).
		Preload("UserPolicy").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

func (r *claimRepository) ListForAgent(ctx context.Context, agentID uuid.UUID, onlyPending bool) ([]db_models.Claim, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("UserPolicy").
		Where("user_id IN (?)", r.assignedCustomerIDs(agentID))
	if onlyPending {
		q = q.Where("status = ?", db_models.ClaimPending)
	}

	var claims []db_models.Claim
	err := q.Order("created_at DESC").Find(&claims).Error
	return claims, err
}

func (r *claimRepository) ListAll(ctx context.Context) ([]db_models.Claim, error) {
	var claims []db_models.Claim
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

func (r *claimRepository) UpdateDecision(ctx context.Context, claim *db_models.Claim) error {
	return r.db.WithContext(ctx).
		Model(claim).
		Select("status", "decision_notes", "decided_by_agent_id", "decided_at", "approved_amount", "updated_at").
		Updates(claim).Error
}

// assignedCustomerIDs is a subquery selecting the customers scoped to an
// agent. Composed into list and stats queries.
func (r *claimRepository) assignedCustomerIDs(agentID uuid.UUID) *gorm.DB {
	return r.db.
		Model(&db_models.User{}).
		Select("id").
		Where("role = ? AND assigned_agent_id = ?", db_models.RoleCustomer, agentID)
}

const claimStatsSelect = `
COUNT(*) AS total_claims,
COUNT(*) FILTER (WHERE status = 'PENDING') AS pending_claims,
COUNT(*) FILTER (WHERE status = 'APPROVED') AS approved_claims,
COUNT(*) FILTER (WHERE status = 'REJECTED') AS rejected_claims,
COALESCE(SUM(amount_claimed), 0) AS total_claimed_amount,
COALESCE(SUM(approved_amount) FILTER (WHERE status = 'APPROVED'), 0) AS total_approved_amount`

func (r *claimRepository) StatsForUser(ctx context.Context, userID uuid.UUID) (*ClaimStatsRow, error) {
	var row ClaimStatsRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Select(claimStatsSelect).
		Where("user_id = ?", userID).
		Scan(&row).Error
	return &row, err
}

func (r *claimRepository) StatsForAgent(ctx context.Context, agentID uuid.UUID) (*ClaimStatsRow, error) {
	var row ClaimStatsRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Select(claimStatsSelect).
		Where("user_id IN (?)", r.assignedCustomerIDs(agentID)).
		Scan(&row).Error
	return &row, err
}

func (r *claimRepository) StatsGlobal(ctx context.Context) (*ClaimStatsRow, error) {
	var row ClaimStatsRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Select(claimStatsSelect).
		Scan(&row).Error
	return &row, err
}

const monthBucketSelect = `
EXTRACT(YEAR FROM to_timestamp(created_at))::int AS year,
EXTRACT(MONTH FROM to_timestamp(created_at))::int AS month,
COUNT(*) AS count,
COALESCE(SUM(amount_claimed), 0) AS total_amount`

func (r *claimRepository) MonthlyForAgent(ctx context.Context, agentID uuid.UUID, limit int) ([]MonthBucketRow, error) {
	var rows []MonthBucketRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Select(monthBucketSelect).
		Where("user_id IN (?)", r.assignedCustomerIDs(agentID)).
		Group("1, 2").
		Order("year DESC, month DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *claimRepository) MonthlyGlobal(ctx context.Context, limit int) ([]MonthBucketRow, error) {
	var rows []MonthBucketRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Select(monthBucketSelect).
		Group("1, 2").
		Order("year DESC, month DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
