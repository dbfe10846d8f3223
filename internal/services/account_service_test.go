package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisure/internal/models/db_models"
	"polisure/internal/models/request_models"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

type accountFixture struct {
	users    *fakeUserRepo
	store    *fakeObjectStore
	audit    *fakeAuditRepo
	notifier *fakeNotifier
	svc      AccountServiceInterface
	tokens   *utils.TokenManager
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	users := newFakeUserRepo()
	store := &fakeObjectStore{}
	audit := newFakeAuditRepo()
	notifier := &fakeNotifier{}
	tokens := utils.NewTokenManager("test-secret", time.Hour)

	svc := NewAccountService(users, tokens, store, NewAuditService(audit), notifier, logger.NewNop())
	return &accountFixture{users: users, store: store, audit: audit, notifier: notifier, svc: svc, tokens: tokens}
}

func signupReq() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Name:     "New Customer",
		Email:    "new@test.io",
		Password: "s3cret-pw",
		Address:  "42 Baker Street",
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer and returns a valid token", func(t *testing.T) {
		f := newAccountFixture(t)

		resp, err := f.svc.Signup(ctx, signupReq())
		require.NoError(t, err)
		assert.Equal(t, db_models.RoleCustomer, resp.User.Role)
		assert.NotEqual(t, "s3cret-pw", resp.User.PasswordHash)

		claims, err := f.tokens.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID.String(), claims.UserID)
		assert.Equal(t, "customer", claims.Role)

		assert.Contains(t, f.audit.actions(), "SIGNUP")
		require.Len(t, f.notifier.sent, 1)
	})

	t.Run("uploads a data URL photo", func(t *testing.T) {
		f := newAccountFixture(t)
		req := signupReq()
		req.Photo = "data:image/png;base64,aGk="

		resp, err := f.svc.Signup(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, resp.User.Photo, "https://cdn.test/users/")
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		f := newAccountFixture(t)
		_, err := f.svc.Signup(ctx, signupReq())
		require.NoError(t, err)

		_, err = f.svc.Signup(ctx, signupReq())
		require.Error(t, err)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	f := newAccountFixture(t)
	_, err := f.svc.Signup(ctx, signupReq())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := f.svc.Login(ctx, request_models.LoginRequest{Email: "new@test.io", Password: "s3cret-pw"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Login(ctx, request_models.LoginRequest{Email: "new@test.io", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, utils.KindUnauthenticated, utils.KindOf(err))
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := f.svc.Login(ctx, request_models.LoginRequest{Email: "ghost@test.io", Password: "s3cret-pw"})
		require.Error(t, err)
		assert.Equal(t, utils.KindUnauthenticated, utils.KindOf(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	f := newAccountFixture(t)
	resp, err := f.svc.Signup(ctx, signupReq())
	require.NoError(t, err)

	newAddr := "1 New Road"
	updated, err := f.svc.UpdateProfile(ctx, resp.User.ID, request_models.UpdateProfileRequest{
		Name:    "Renamed",
		Address: &newAddr,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "1 New Road", updated.Address)
	// Untouched fields survive.
	assert.Equal(t, "new@test.io", updated.Email)
	assert.Contains(t, f.audit.actions(), "UPDATE_PROFILE")
}

func TestMyAgent(t *testing.T) {
	ctx := context.Background()

	f := newAccountFixture(t)
	agent := &db_models.User{Name: "Agent", Email: "agent@test.io", Role: db_models.RoleAgent}
	require.NoError(t, f.users.Insert(ctx, agent))

	resp, err := f.svc.Signup(ctx, signupReq())
	require.NoError(t, err)

	t.Run("no assignment yet", func(t *testing.T) {
		got, err := f.svc.MyAgent(ctx, resp.User.ID)
		require.NoError(t, err)
		assert.False(t, got.HasAssignedAgent)
		assert.Nil(t, got.AssignedAgent)
	})

	t.Run("after assignment", func(t *testing.T) {
		customer, err := f.users.FindByID(ctx, resp.User.ID)
		require.NoError(t, err)
		customer.AssignedAgentID = &agent.ID
		require.NoError(t, f.users.Update(ctx, customer))

		got, err := f.svc.MyAgent(ctx, resp.User.ID)
		require.NoError(t, err)
		assert.True(t, got.HasAssignedAgent)
		require.NotNil(t, got.AssignedAgent)
		assert.Equal(t, agent.ID.String(), got.AssignedAgent.ID)
		assert.Equal(t, "agent@test.io", got.AssignedAgent.Email)
	})
}
