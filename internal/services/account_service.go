package services

import (
	"context"

	"github.com/google/uuid"

	"polisure/internal/infra"
	"polisure/internal/models/db_models"
	"polisure/internal/models/request_models"
	"polisure/internal/models/response_models"
	"polisure/internal/repositories"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

type AccountServiceInterface interface {
	Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*db_models.User, error)
	MyAgent(ctx context.Context, userID uuid.UUID) (*response_models.AgentAssignmentResponse, error)
	ListUsers(ctx context.Context) ([]db_models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	ListCustomersForAgent(ctx context.Context, agentID uuid.UUID) ([]db_models.User, error)
}

type accountService struct {
	users    repositories.UserRepository
	tokens   *utils.TokenManager
	store    infra.ObjectStore
	audit    AuditRecorder
	notifier Notifier
	log      *logger.Logger
}

func NewAccountService(
	users repositories.UserRepository,
	tokens *utils.TokenManager,
	store infra.ObjectStore,
	audit AuditRecorder,
	notifier Notifier,
	log *logger.Logger,
) AccountServiceInterface {
	return &accountService{
		users:    users,
		tokens:   tokens,
		store:    store,
		audit:    audit,
		notifier: notifier,
		log:      log.With("service", "AccountService"),
	}
}

func (s *accountService) Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
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

	// Self-registration always produces a customer; agents and admins are
	// provisioned through the admin surface.
	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         db_models.RoleCustomer,
		Address:      req.Address,
	}
	if req.Photo != "" {
		user.Photo = normalizeImageRef(ctx, s.store, s.log, "users", req.Photo)
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, utils.Infrastructure("failed to create user", err)
	}

	if err := s.audit.Record(ctx, "SIGNUP", user.ID, map[string]any{
		"email": user.Email,
		"name":  user.Name,
	}); err != nil {
		return nil, err
	}

	s.notifier.Notify(Notification{
		To:      user.Email,
		Subject: "Welcome to Polisure",
		Body:    "Your account has been created. Browse our policy catalog and get covered today.",
		CTAText: "View Policies",
		CTAURL:  "https://polisure.app/policies",
	})

	token, err := s.tokens.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.Infrastructure("failed to issue token", err)
	}
	return &response_models.AuthResponse{Token: token, User: user}, nil
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.Infrastructure("failed to look up user", err)
	}
	if user == nil || utils.ComparePasswords(user.PasswordHash, req.Password) != nil {
		return nil, utils.Unauthenticated("Invalid email or password")
	}

	token, err := s.tokens.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.Infrastructure("failed to issue token", err)
	}
	return &response_models.AuthResponse{Token: token, User: user}, nil
}

func (s *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load user", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	return user, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load user", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Photo != nil && *req.Photo != "" {
		user.Photo = normalizeImageRef(ctx, s.store, s.log, "users", *req.Photo)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, utils.Infrastructure("failed to update user", err)
	}

	if err := s.audit.Record(ctx, "UPDATE_PROFILE", user.ID, map[string]any{
		"email": user.Email,
	}); err != nil {
		return nil, err
	}
	return user, nil
}

// MyAgent reports whether the customer has an assigned agent, exposing only
// the agent's public fields.
func (s *accountService) MyAgent(ctx context.Context, userID uuid.UUID) (*response_models.AgentAssignmentResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.Infrastructure("failed to load user", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}

	return &response_models.AgentAssignmentResponse{
		HasAssignedAgent: user.AssignedAgentID != nil,
		AssignedAgent:    response_models.SummarizeUser(user.AssignedAgent),
	}, nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to list users", err)
	}
	return users, nil
}

func (s *accountService) GetUser(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, utils.Infrastructure("failed to load user", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	return user, nil
}

func (s *accountService) ListCustomersForAgent(ctx context.Context, agentID uuid.UUID) ([]db_models.User, error) {
	customers, err := s.users.ListCustomersByAgent(ctx, agentID)
	if err != nil {
		return nil, utils.Infrastructure("failed to list customers", err)
	}
	return customers, nil
}
