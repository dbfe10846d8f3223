package services

import (
	"context"

	"github.com/google/uuid"

	"polisure/internal/models/db_models"
	"polisure/internal/models/response_models"
	"polisure/internal/repositories"
	"polisure/pkg/utils"
)

const monthlyBucketLimit = 12

type StatsServiceInterface interface {
	CustomerStats(ctx context.Context, customerID uuid.UUID) (*response_models.ClaimStats, error)
	AgentStats(ctx context.Context, agentID uuid.UUID) (*response_models.AgentStats, error)
	AdminSummary(ctx context.Context) (*response_models.AdminSummary, error)
}

type statsService struct {
	users    repositories.UserRepository
	products repositories.PolicyProductRepository
	claims   repositories.ClaimRepository
}

func NewStatsService(
	users repositories.UserRepository,
	products repositories.PolicyProductRepository,
	claims repositories.ClaimRepository,
) StatsServiceInterface {
	return &statsService{users: users, products: products, claims: claims}
}

func (s *statsService) CustomerStats(ctx context.Context, customerID uuid.UUID) (*response_models.ClaimStats, error) {
	row, err := s.claims.StatsForUser(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to compute claim stats", err)
	}
	stats := toClaimStats(row)
	return &stats, nil
}

func (s *statsService) AgentStats(ctx context.Context, agentID uuid.UUID) (*response_models.AgentStats, error) {
	row, err := s.claims.StatsForAgent(ctx, agentID)
	if err != nil {
		return nil, utils.Infrastructure("failed to compute claim stats", err)
	}
	months, err := s.claims.MonthlyForAgent(ctx, agentID, monthlyBucketLimit)
	if err != nil {
		return nil, utils.Infrastructure("failed to compute monthly stats", err)
	}
	customers, err := s.users.CountCustomersByAgent(ctx, agentID)
	if err != nil {
		return nil, utils.Infrastructure("failed to count customers", err)
	}

	return &response_models.AgentStats{
		ClaimStats:        toClaimStats(row),
		ClaimsByMonth:     toMonthBuckets(months),
		AssignedCustomers: customers,
	}, nil
}

func (s *statsService) AdminSummary(ctx context.Context) (*response_models.AdminSummary, error) {
	users, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to count users", err)
	}
	agents, err := s.users.CountByRole(ctx, db_models.RoleAgent)
	if err != nil {
		return nil, utils.Infrastructure("failed to count agents", err)
	}
	products, err := s.products.CountAll(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to count policies", err)
	}
	row, err := s.claims.StatsGlobal(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to compute claim stats", err)
	}
	months, err := s.claims.MonthlyGlobal(ctx, monthlyBucketLimit)
	if err != nil {
		return nil, utils.Infrastructure("failed to compute monthly stats", err)
	}

	return &response_models.AdminSummary{
		Users:          users,
		Agents:         agents,
		Policies:       products,
		ClaimsPending:  row.PendingClaims,
		ClaimsApproved: row.ApprovedClaims,
		ClaimsRejected: row.RejectedClaims,
		ClaimsByMonth:  toMonthBuckets(months),
	}, nil
}

func toClaimStats(row *repositories.ClaimStatsRow) response_models.ClaimStats {
	return response_models.ClaimStats{
		TotalClaims:         row.TotalClaims,
		PendingClaims:       row.PendingClaims,
		ApprovedClaims:      row.ApprovedClaims,
		RejectedClaims:      row.RejectedClaims,
		TotalClaimedAmount:  row.TotalClaimedAmount,
		TotalApprovedAmount: row.TotalApprovedAmount,
	}
}

func toMonthBuckets(rows []repositories.MonthBucketRow) []response_models.MonthBucket {
	buckets := make([]response_models.MonthBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, response_models.MonthBucket{
			Year:        row.Year,
			Month:       row.Month,
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return buckets
}
