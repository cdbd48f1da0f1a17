package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/usecase"
)

// GetAgentTypes handles GET /api/v1/agent-types.
func (s *Server) GetAgentTypes(c *gin.Context) {
	caps, err := s.agentTypeSvc.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent_types": caps})
}

type createAgentTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	GroupID     string `json:"group_id"`
}

// PostAgentType handles POST /api/v1/agent-types.
func (s *Server) PostAgentType(c *gin.Context) {
	var req createAgentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}
	capability, err := s.agentTypeSvc.Create(c.Request.Context(),
		req.Name, req.Description, req.GroupID, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, capability)
}

type changeGroupRequest struct {
	GroupID string `json:"group_id"`
}

// PutAgentTypeGroup handles PUT /api/v1/agent-types/:agentTypeId/group.
// Accepted, not applied: propagation across holders runs asynchronously.
func (s *Server) PutAgentTypeGroup(c *gin.Context) {
	var req changeGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}
	out, err := s.changeMapUC.Execute(c.Request.Context(), usecase.ChangeAgentTypeGroupInput{
		AgentTypeID: c.Param("agentTypeId"),
		NewGroupID:  req.GroupID,
		Actor:       actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

type stateRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// PutAgentTypeState handles PUT /api/v1/agent-types/:agentTypeId/state.
// Disabling cascades a global revoke as an async job.
func (s *Server) PutAgentTypeState(c *gin.Context) {
	var req stateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		_ = c.Error(apperrors.Validation(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}
	out, err := s.stateUC.Execute(c.Request.Context(), usecase.SetAgentTypeStateInput{
		AgentTypeID: c.Param("agentTypeId"),
		Active:      *req.Active,
		Actor:       actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// PostGrantToOrganization handles
// POST /api/v1/organizations/:orgId/agent-types/:agentTypeId/grant-all.
func (s *Server) PostGrantToOrganization(c *gin.Context) {
	out, err := s.orgCapUC.GrantToAll(c.Request.Context(), usecase.OrgCapabilityInput{
		OrganizationID: c.Param("orgId"),
		AgentTypeID:    c.Param("agentTypeId"),
		Actor:          actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// PostRevokeFromOrganization handles
// POST /api/v1/organizations/:orgId/agent-types/:agentTypeId/revoke-all.
func (s *Server) PostRevokeFromOrganization(c *gin.Context) {
	out, err := s.orgCapUC.RevokeFromAll(c.Request.Context(), usecase.OrgCapabilityInput{
		OrganizationID: c.Param("orgId"),
		AgentTypeID:    c.Param("agentTypeId"),
		Actor:          actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}
