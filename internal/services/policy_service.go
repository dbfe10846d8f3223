package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"polisure/internal/models/db_models"
	"polisure/internal/models/request_models"
	"polisure/internal/models/response_models"
	"polisure/internal/repositories"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

type PolicyServiceInterface interface {
	Purchase(ctx context.Context, customerID, productID uuid.UUID, req request_models.PurchasePolicyRequest) (*db_models.UserPolicy, error)
	ListMyPolicies(ctx context.Context, customerID uuid.UUID) ([]db_models.UserPolicy, error)
	CancelPolicy(ctx context.Context, customerID, policyID uuid.UUID) (*db_models.UserPolicy, error)
	RecordPayment(ctx context.Context, customerID uuid.UUID, req request_models.RecordPaymentRequest) (*db_models.Payment, error)
	ListMyPayments(ctx context.Context, customerID uuid.UUID) ([]db_models.Payment, error)
	CustomerPoliciesForAgent(ctx context.Context, agentID, customerID uuid.UUID) (*response_models.CustomerPolicies, error)
}

type policyService struct {
	users    repositories.UserRepository
	products repositories.PolicyProductRepository
	policies repositories.UserPolicyRepository
	payments repositories.PaymentRepository
	audit    AuditRecorder
	notifier Notifier
	log      *logger.Logger
}

func NewPolicyService(
	users repositories.UserRepository,
	products repositories.PolicyProductRepository,
	policies repositories.UserPolicyRepository,
	payments repositories.PaymentRepository,
	audit AuditRecorder,
	notifier Notifier,
	log *logger.Logger,
) PolicyServiceInterface {
	return &policyService{
		users:    users,
		products: products,
		policies: policies,
		payments: payments,
		audit:    audit,
		notifier: notifier,
		log:      log.With("service", "PolicyService"),
	}
}

// Purchase subscribes a customer to a catalog product and records the
// premium payment in the same transaction. The subscription becomes ACTIVE
// immediately.
func (s *policyService) Purchase(ctx context.Context, customerID, productID uuid.UUID, req request_models.PurchasePolicyRequest) (*db_models.UserPolicy, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.Validation("Invalid start date")
	}
	if req.TermMonths <= 0 {
		return nil, utils.Validation("Term must be at least one month")
	}
	method := db_models.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, utils.Validation("Unsupported payment method")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load policy", err)
	}
	if product == nil {
		return nil, utils.NotFound("Policy not found")
	}

	open, err := s.policies.HasOpenSubscription(ctx, customerID, productID)
	if err != nil {
		return nil, utils.Infrastructure("failed to check subscriptions", err)
	}
	if open {
		return nil, utils.Validation("You already hold an active or pending subscription for this policy")
	}

	taken, err := s.payments.ExistsByReference(ctx, req.PaymentReference)
	if err != nil {
		return nil, utils.Infrastructure("failed to check payment reference", err)
	}
	if taken {
		return nil, utils.Validation("Payment reference already used")
	}

	policy := &db_models.UserPolicy{
		UserID:          customerID,
		PolicyProductID: productID,
		StartDate:       startDate,
		EndDate:         startDate.AddDate(0, req.TermMonths, 0),
		PremiumPaid:     product.Premium,
		Nominee:         req.Nominee,
		Status:          db_models.UserPolicyActive,
	}
	payment := &db_models.Payment{
		UserID:          customerID,
		PolicyProductID: productID,
		Amount:          product.Premium,
		Method:          method,
		Reference:       req.PaymentReference,
		Status:          db_models.PaymentCompleted,
	}

	if err := s.policies.CreateWithPayment(ctx, policy, payment); err != nil {
		return nil, utils.Infrastructure("failed to create subscription", err)
	}
	policy.PolicyProduct = *product

	if err := s.audit.Record(ctx, "BUY_POLICY", customerID, map[string]any{
		"userPolicyId": policy.ID.String(),
		"policyId":     productID.String(),
		"policyCode":   product.Code,
		"premium":      product.Premium,
		"reference":    req.PaymentReference,
	}); err != nil {
		return nil, err
	}

	if customer, err := s.users.FindByID(ctx, customerID); err == nil && customer != nil {
		s.notifier.Notify(Notification{
			To:      customer.Email,
			Subject: "Your policy is active",
			Body: fmt.Sprintf("Your subscription to %s is active from %s to %s.",
				product.Title,
				policy.StartDate.Format("2 Jan 2006"),
				policy.EndDate.Format("2 Jan 2006")),
			CTAText: "View My Policies",
			CTAURL:  "https://polisure.app/my-policies",
		})
	}
	return policy, nil
}

func (s *policyService) ListMyPolicies(ctx context.Context, customerID uuid.UUID) ([]db_models.UserPolicy, error) {
	policies, err := s.policies.ListByUser(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to list subscriptions", err)
	}
	return policies, nil
}

func (s *policyService) CancelPolicy(ctx context.Context, customerID, policyID uuid.UUID) (*db_models.UserPolicy, error) {
	policy, err := s.policies.Cancel(ctx, policyID, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to cancel subscription", err)
	}
	if policy == nil {
		return nil, utils.NotFound("Active policy not found")
	}

	if err := s.audit.Record(ctx, "CANCEL_POLICY", customerID, map[string]any{
		"userPolicyId": policy.ID.String(),
	}); err != nil {
		return nil, err
	}
	return policy, nil
}

// RecordPayment stores a standalone payment against an owned subscription,
// e.g. a renewal premium collected out of band.
func (s *policyService) RecordPayment(ctx context.Context, customerID uuid.UUID, req request_models.RecordPaymentRequest) (*db_models.Payment, error) {
	policyID, err := uuid.Parse(req.PolicyID)
	if err != nil {
		return nil, utils.Validation("Invalid policy id")
	}
	if req.Amount <= 0 {
		return nil, utils.Validation("Amount must be greater than zero")
	}
	method := db_models.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, utils.Validation("Unsupported payment method")
	}

	policy, err := s.policies.FindOwnedActive(ctx, policyID, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load subscription", err)
	}
	if policy == nil {
		return nil, utils.NotFound("Active policy not found")
	}

	taken, err := s.payments.ExistsByReference(ctx, req.Reference)
	if err != nil {
		return nil, utils.Infrastructure("failed to check payment reference", err)
	}
	if taken {
		return nil, utils.Validation("Payment reference already used")
	}

	payment := &db_models.Payment{
		UserID:          customerID,
		PolicyProductID: policy.PolicyProductID,
		UserPolicyID:    policy.ID,
		Amount:          req.Amount,
		Method:          method,
		Reference:       req.Reference,
		Status:          db_models.PaymentCompleted,
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return nil, utils.Infrastructure("failed to record payment", err)
	}

	if err := s.audit.Record(ctx, "RECORD_PAYMENT", customerID, map[string]any{
		"paymentId":    payment.ID.String(),
		"userPolicyId": policy.ID.String(),
		"amount":       req.Amount,
		"reference":    req.Reference,
	}); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *policyService) ListMyPayments(ctx context.Context, customerID uuid.UUID) ([]db_models.Payment, error) {
	payments, err := s.payments.ListByUser(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to list payments", err)
	}
	return payments, nil
}

// CustomerPoliciesForAgent returns a customer's subscriptions, visible only
// to the agent the customer is assigned to.
func (s *policyService) CustomerPoliciesForAgent(ctx context.Context, agentID, customerID uuid.UUID) (*response_models.CustomerPolicies, error) {
	customer, err := findAssignedCustomer(ctx, s.users, agentID, customerID)
	if err != nil {
		return nil, err
	}

	policies, err := s.policies.ListByUser(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to list subscriptions", err)
	}
	return &response_models.CustomerPolicies{
		Customer: response_models.SummarizeUser(customer),
		Policies: policies,
	}, nil
}
