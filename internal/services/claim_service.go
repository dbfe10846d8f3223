package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"polisure/internal/infra"
	"polisure/internal/models/db_models"
	"polisure/internal/models/request_models"
	"polisure/internal/models/response_models"
	"polisure/internal/repositories"
	"polisure/pkg/authz"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

const minProofImages = 2

type ClaimServiceInterface interface {
	// Submit files a claim against an owned active subscription.
	Submit(ctx context.Context, customerID uuid.UUID, req request_models.SubmitClaimRequest) (*db_models.Claim, error)
	// SubmitWithoutPolicy files a claim with no subscription reference.
	SubmitWithoutPolicy(ctx context.Context, customerID uuid.UUID, req request_models.SubmitClaimRequest) (*db_models.Claim, error)
	ListMyClaims(ctx context.Context, customerID uuid.UUID) ([]db_models.Claim, error)
	GetClaim(ctx context.Context, actor authz.Actor, claimID uuid.UUID) (*db_models.Claim, error)
	ListForAgent(ctx context.Context, agentID uuid.UUID, onlyPending bool) ([]db_models.Claim, error)
	ListAll(ctx context.Context) ([]db_models.Claim, error)
	CustomerClaimsForAgent(ctx context.Context, agentID, customerID uuid.UUID) (*response_models.CustomerClaims, error)
	// Decide approves or rejects a pending claim. Agents and admins share
	// this path; authorization differs per role.
	Decide(ctx context.Context, actor authz.Actor, claimID uuid.UUID, req request_models.ReviewClaimRequest) (*db_models.Claim, error)
}

type claimService struct {
	users    repositories.UserRepository
	policies repositories.UserPolicyRepository
	claims   repositories.ClaimRepository
	store    infra.ObjectStore
	audit    AuditRecorder
	notifier Notifier
	log      *logger.Logger
}

func NewClaimService(
	users repositories.UserRepository,
	policies repositories.UserPolicyRepository,
	claims repositories.ClaimRepository,
	store infra.ObjectStore,
	audit AuditRecorder,
	notifier Notifier,
	log *logger.Logger,
) ClaimServiceInterface {
	return &claimService{
		users:    users,
		policies: policies,
		claims:   claims,
		store:    store,
		audit:    audit,
		notifier: notifier,
		log:      log.With("service", "ClaimService"),
	}
}

func (s *claimService) Submit(ctx context.Context, customerID uuid.UUID, req request_models.SubmitClaimRequest) (*db_models.Claim, error) {
	return s.submit(ctx, customerID, req, true)
}

func (s *claimService) SubmitWithoutPolicy(ctx context.Context, customerID uuid.UUID, req request_models.SubmitClaimRequest) (*db_models.Claim, error) {
	return s.submit(ctx, customerID, req, false)
}

// submit runs the eligibility checks in a fixed order: agent assignment,
// field validation, evidence floor, then (on the with-policy path) policy
// ownership and temporal containment.
func (s *claimService) submit(ctx context.Context, customerID uuid.UUID, req request_models.SubmitClaimRequest, withPolicy bool) (*db_models.Claim, error) {
	customer, err := s.users.FindByID(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load user", err)
	}
	if customer == nil {
		return nil, utils.NotFound("User not found")
	}
	if customer.AssignedAgentID == nil {
		return nil, utils.Authorization("You cannot submit a claim until an agent is assigned to your account")
	}

	incidentDate, err := utils.ParseDate(req.IncidentDate)
	if err != nil {
		return nil, utils.Validation("Invalid incident date")
	}
	if strings.TrimSpace(req.IncidentLocation) == "" {
		return nil, utils.Validation("Incident location is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, utils.Validation("Description is required")
	}
	if req.Amount <= 0 {
		return nil, utils.Validation("Claim amount must be greater than zero")
	}
	if len(req.Images) < minProofImages {
		return nil, utils.Validation(fmt.Sprintf("At least %d proof images are required", minProofImages))
	}

	claim := &db_models.Claim{
		UserID:           customerID,
		IncidentDate:     incidentDate,
		IncidentLocation: req.IncidentLocation,
		Description:      req.Description,
		AmountClaimed:    req.Amount,
		Status:           db_models.ClaimPending,
		IsWithoutPolicy:  !withPolicy,
	}

	auditAction := "SUBMIT_CLAIM_WITHOUT_POLICY"
	if withPolicy {
		policyID, err := uuid.Parse(req.UserPolicyID)
		if err != nil {
			return nil, utils.Validation("Invalid policy id")
		}
		policy, err := s.policies.FindOwnedActive(ctx, policyID, customerID)
		if err != nil {
			return nil, utils.Infrastructure("failed to load subscription", err)
		}
		if policy == nil {
			return nil, utils.NotFound("Active policy not found")
		}
		if !policy.Covers(incidentDate) {
			return nil, utils.Validation("Incident date is outside the policy period")
		}
		claim.UserPolicyID = &policy.ID
		auditAction = "SUBMIT_CLAIM"
	} else if req.PolicyType != "" {
		claim.PolicyType = req.PolicyType
	}

	claim.ProofImages = normalizeImageRefs(ctx, s.store, s.log, "claims", req.Images)

	if err := s.claims.Insert(ctx, claim); err != nil {
		return nil, utils.Infrastructure("failed to create claim", err)
	}

	if err := s.audit.Record(ctx, auditAction, customerID, map[string]any{
		"claimId": claim.ID.String(),
		"amount":  claim.AmountClaimed,
	}); err != nil {
		return nil, err
	}

	s.notifier.Notify(Notification{
		To:      customer.Email,
		Subject: "Claim received",
		Body: fmt.Sprintf("We received your claim for %.2f. Your assigned agent will review it shortly.",
			claim.AmountClaimed),
		CTAText: "Track Claim",
		CTAURL:  "https://polisure.app/my-claims",
	})
	return claim, nil
}

func (s *claimService) ListMyClaims(ctx context.Context, customerID uuid.UUID) ([]db_models.Claim, error) {
	claims, err := s.claims.ListByUser(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to list claims", err)
	}
	return claims, nil
}

func (s *claimService) GetClaim(ctx context.Context, actor authz.Actor, claimID uuid.UUID) (*db_models.Claim, error) {
	claim, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load claim", err)
	}
	if claim == nil {
		return nil, utils.NotFound("Claim not found")
	}

	ref := authz.ClaimRef{
		OwnerID:              claim.UserID,
		OwnerAssignedAgentID: claim.User.AssignedAgentID,
	}
	if !authz.CanActOnClaim(actor, authz.ActionViewClaim, ref) {
		return nil, utils.Authorization("You do not have access to this claim")
	}
	return claim, nil
}

func (s *claimService) ListForAgent(ctx context.Context, agentID uuid.UUID, onlyPending bool) ([]db_models.Claim, error) {
	claims, err := s.claims.ListForAgent(ctx, agentID, onlyPending)
	if err != nil {
		return nil, utils.Infrastructure("failed to list claims", err)
	}
	return claims, nil
}

func (s *claimService) ListAll(ctx context.Context) ([]db_models.Claim, error) {
	claims, err := s.claims.ListAll(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to list claims", err)
	}
	return claims, nil
}

func (s *claimService) CustomerClaimsForAgent(ctx context.Context, agentID, customerID uuid.UUID) (*response_models.CustomerClaims, error) {
	customer, err := findAssignedCustomer(ctx, s.users, agentID, customerID)
	if err != nil {
		return nil, err
	}

	claims, err := s.claims.ListByUser(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to list claims", err)
	}
	return &response_models.CustomerClaims{
		Customer: response_models.SummarizeUser(customer),
		Claims:   claims,
	}, nil
}

func (s *claimService) Decide(ctx context.Context, actor authz.Actor, claimID uuid.UUID, req request_models.ReviewClaimRequest) (*db_models.Claim, error) {
	status := db_models.ClaimStatus(req.Status)
	if status != db_models.ClaimApproved && status != db_models.ClaimRejected {
		return nil, utils.Validation("Status must be APPROVED or REJECTED")
	}

	claim, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load claim", err)
	}
	if claim == nil {
		return nil, utils.NotFound("Claim not found")
	}

	ref := authz.ClaimRef{
		OwnerID:              claim.UserID,
		OwnerAssignedAgentID: claim.User.AssignedAgentID,
	}
	if !authz.CanActOnClaim(actor, authz.ActionDecideClaim, ref) {
		return nil, utils.Authorization("You can only review claims of customers assigned to you")
	}
	if claim.Decided() {
		return nil, utils.Validation("Claim has already been decided")
	}

	if status == db_models.ClaimApproved {
		if err := s.checkApprovable(ctx, claim, req.ApprovedAmount); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	claim.Status = status
	claim.DecisionNotes = req.Notes
	claim.DecidedByAgentID = &actor.ID
	claim.DecidedAt = &now
	if status == db_models.ClaimApproved {
		amount := claim.AmountClaimed
		if req.ApprovedAmount != nil {
			amount = *req.ApprovedAmount
		}
		claim.ApprovedAmount = &amount
	}

	if err := s.claims.UpdateDecision(ctx, claim); err != nil {
		return nil, utils.Infrastructure("failed to update claim", err)
	}

	auditAction := "AGENT_REVIEW_CLAIM"
	if actor.Role == db_models.RoleAdmin {
		auditAction = "ADMIN_REVIEW_CLAIM"
	}
	details := map[string]any{
		"claimId":       claim.ID.String(),
		"status":        string(status),
		"customerName":  claim.User.Name,
		"customerEmail": claim.User.Email,
		"amountClaimed": claim.AmountClaimed,
		"notes":         req.Notes,
	}
	if claim.ApprovedAmount != nil {
		details["approvedAmount"] = *claim.ApprovedAmount
	}
	if err := s.audit.Record(ctx, auditAction, actor.ID, details); err != nil {
		return nil, err
	}

	s.notifier.Notify(Notification{
		To:      claim.User.Email,
		Subject: fmt.Sprintf("Your claim was %s", strings.ToLower(string(status))),
		Body:    decisionMailBody(claim),
		CTAText: "View Claim",
		CTAURL:  "https://polisure.app/my-claims",
	})
	return claim, nil
}

// checkApprovable re-validates eligibility at decision time. The policy may
// have been cancelled or the term data corrected since submission.
func (s *claimService) checkApprovable(ctx context.Context, claim *db_models.Claim, approvedAmount *float64) error {
	if approvedAmount != nil {
		if *approvedAmount <= 0 {
			return utils.Validation("Approved amount must be greater than zero")
		}
		if *approvedAmount > claim.AmountClaimed {
			return utils.Validation("Approved amount cannot exceed the claimed amount")
		}
	}

	if claim.UserPolicyID == nil {
		return nil
	}
	policy, err := s.policies.FindByID(ctx, *claim.UserPolicyID)
	if err != nil {
		return utils.Infrastructure("failed to load subscription", err)
	}
	if policy == nil || policy.Status != db_models.UserPolicyActive {
		return utils.Validation("Cannot approve a claim against an inactive policy")
	}
	if !policy.Covers(claim.IncidentDate) {
		return utils.Validation("Incident date is outside the policy period")
	}
	return nil
}

func decisionMailBody(claim *db_models.Claim) string {
	if claim.Status == db_models.ClaimApproved && claim.ApprovedAmount != nil {
		return fmt.Sprintf("Your claim has been approved for %.2f.", *claim.ApprovedAmount)
	}
	if claim.DecisionNotes != "" {
		return fmt.Sprintf("Your claim has been rejected. Reviewer notes: %s", claim.DecisionNotes)
	}
	return "Your claim has been rejected."
}

// findAssignedCustomer loads a customer and verifies the agent scoping.
// Shared by the agent-facing policy and claim views.
func findAssignedCustomer(ctx context.Context, users repositories.UserRepository, agentID, customerID uuid.UUID) (*db_models.User, error) {
	customer, err := users.FindByID(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load customer", err)
	}
	if customer == nil || customer.Role != db_models.RoleCustomer {
		return nil, utils.NotFound("Customer not found")
	}
	if customer.AssignedAgentID == nil || *customer.AssignedAgentID != agentID {
		return nil, utils.Authorization("Customer is not assigned to you")
	}
	return customer, nil
}
