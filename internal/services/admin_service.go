package services

import (
	"context"

	"github.com/google/uuid"

	"polisure/internal/models/db_models"
	"polisure/internal/models/request_models"
	"polisure/internal/repositories"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

// The audit view shows only the most recent activity.
const auditListLimit = 20

type AdminServiceInterface interface {
	CreateAgent(ctx context.Context, actorID uuid.UUID, req request_models.CreateAgentRequest) (*db_models.User, error)
	AssignAgent(ctx context.Context, actorID, customerID uuid.UUID, req request_models.AssignAgentRequest) (*db_models.User, error)
	ListAgents(ctx context.Context) ([]db_models.User, error)
	ListAuditLogs(ctx context.Context) ([]db_models.AuditLog, error)
}

type adminService struct {
	users    repositories.UserRepository
	auditLog repositories.AuditRepository
	audit    AuditRecorder
	notifier Notifier
	log      *logger.Logger
}

func NewAdminService(
	users repositories.UserRepository,
	auditLog repositories.AuditRepository,
	audit AuditRecorder,
	notifier Notifier,
	log *logger.Logger,
) AdminServiceInterface {
	return &adminService{
		users:    users,
		auditLog: auditLog,
		audit:    audit,
		notifier: notifier,
		log:      log.With("service", "AdminService"),
	}
}

func (s *adminService) CreateAgent(ctx context.Context, actorID uuid.UUID, req request_models.CreateAgentRequest) (*db_models.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.Infrastructure("failed to look up user", err)
	}
	if existing != nil {
		return nil, utils.Validation("User with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.Infrastructure("failed to hash password", err)
	}

	agent := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         db_models.RoleAgent,
	}
	if err := s.users.Insert(ctx, agent); err != nil {
		return nil, utils.Infrastructure("failed to create agent", err)
	}

	if err := s.audit.Record(ctx, "CREATE_AGENT", actorID, map[string]any{
		"agentId": agent.ID.String(),
		"email":   agent.Email,
	}); err != nil {
		return nil, err
	}

	s.notifier.Notify(Notification{
		To:      agent.Email,
		Subject: "Your agent account is ready",
		Body:    "An administrator has created an agent account for you. Log in to start reviewing claims.",
		CTAText: "Log In",
		CTAURL:  "https://polisure.app/login",
	})
	return agent, nil
}

// AssignAgent binds a customer to an agent, or clears the binding when the
// request carries a null agent id.
func (s *adminService) AssignAgent(ctx context.Context, actorID, customerID uuid.UUID, req request_models.AssignAgentRequest) (*db_models.User, error) {
	customer, err := s.users.FindByID(ctx, customerID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load customer", err)
	}
	if customer == nil {
		return nil, utils.NotFound("Customer not found")
	}
	if customer.Role != db_models.RoleCustomer {
		return nil, utils.Validation("Only customers can be assigned an agent")
	}

	details := map[string]any{"customerId": customer.ID.String()}
	if req.AgentID == nil {
		customer.AssignedAgentID = nil
		customer.AssignedAgent = nil
		details["cleared"] = true
	} else {
		agentID, err := uuid.Parse(*req.AgentID)
		if err != nil {
			return nil, utils.Validation("Invalid agent id")
		}
		agent, err := s.users.FindByID(ctx, agentID)
		if err != nil {
			return nil, utils.Infrastructure("failed to load agent", err)
		}
		if agent == nil {
			return nil, utils.NotFound("Agent not found")
		}
		if agent.Role != db_models.RoleAgent {
			return nil, utils.Validation("Assignee must be an agent")
		}
		customer.AssignedAgentID = &agent.ID
		customer.AssignedAgent = agent
		details["agentId"] = agent.ID.String()
	}

	if err := s.users.Update(ctx, customer); err != nil {
		return nil, utils.Infrastructure("failed to update customer", err)
	}

	if err := s.audit.Record(ctx, "ASSIGN_AGENT", actorID, details); err != nil {
		return nil, err
	}

	if customer.AssignedAgent != nil {
		s.notifier.Notify(Notification{
			To:      customer.Email,
			Subject: "An agent has been assigned to you",
			Body:    "You can now submit claims. Your agent " + customer.AssignedAgent.Name + " will handle your reviews.",
			CTAText: "Submit a Claim",
			CTAURL:  "https://polisure.app/my-claims",
		})
	}
	return customer, nil
}

func (s *adminService) ListAgents(ctx context.Context) ([]db_models.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to list users", err)
	}
	agents := make([]db_models.User, 0, len(users))
	for _, u := range users {
		if u.Role == db_models.RoleAgent {
			agents = append(agents, u)
		}
	}
	return agents, nil
}

func (s *adminService) ListAuditLogs(ctx context.Context) ([]db_models.AuditLog, error) {
	entries, err := s.auditLog.ListRecent(ctx, auditListLimit)
	if err != nil {
		return nil, utils.Infrastructure("failed to list audit entries", err)
	}
	return entries, nil
}
