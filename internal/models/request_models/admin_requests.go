package request_models

type CreateAgentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AssignAgentRequest struct {
	// Null clears the assignment.
	AgentID *string `json:"agentId"`
}
