package response_models

import (
	"polisure/internal/models/db_models"
)

type AuthResponse struct {
	Token string          `json:"token"`
	User  *db_models.User `json:"user"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func SummarizeUser(u *db_models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

type AgentAssignmentResponse struct {
	HasAssignedAgent bool         `json:"hasAssignedAgent"`
	AssignedAgent    *UserSummary `json:"assignedAgent"`
}
