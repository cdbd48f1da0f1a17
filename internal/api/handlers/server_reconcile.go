package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/assignment"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
)

// reconcileRequest is the body of POST .../reconcile. DesiredCapabilityIDs
// is the full desired set: capabilities missing from it are revoked.
type reconcileRequest struct {
	DesiredCapabilityIDs []string `json:"desired_capability_ids"`
}

// PostReconcileUser handles
// POST /api/v1/organizations/:orgId/users/:userId/reconcile.
// The pass runs synchronously; the response carries the per-capability
// outcome.
func (s *Server) PostReconcileUser(c *gin.Context) {
	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	result, err := s.engine.ReconcileUser(c.Request.Context(),
		c.Param("orgId"), c.Param("userId"), actorFromCtx(c), req.DesiredCapabilityIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": result.Succeeded(),
		"result":  result,
	})
}

// PostRepairUser handles
// POST /api/v1/organizations/:orgId/users/:userId/repair.
func (s *Server) PostRepairUser(c *gin.Context) {
	result, err := s.engine.RepairUser(c.Request.Context(),
		c.Param("orgId"), c.Param("userId"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": result.Succeeded(),
		"result":  result,
	})
}

// GetUserAssignments handles
// GET /api/v1/organizations/:orgId/users/:userId/assignments.
// The active rows are the user's desired capability set.
func (s *Server) GetUserAssignments(c *gin.Context) {
	rows, err := s.client.Assignment.Query().
		Where(
			assignment.OrganizationIDEQ(c.Param("orgId")),
			assignment.UserIDEQ(c.Param("userId")),
			assignment.ActiveEQ(true),
		).
		Order(ent.Asc(assignment.FieldAgentTypeID)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	type assignmentView struct {
		AgentTypeID string `json:"agent_type_id"`
		GroupID     string `json:"group_id"`
		AssignedBy  string `json:"assigned_by"`
		AssignedAt  string `json:"assigned_at"`
	}
	out := make([]assignmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignmentView{
			AgentTypeID: row.AgentTypeID,
			GroupID:     row.GroupID,
			AssignedBy:  row.AssignedBy,
			AssignedAt:  row.AssignedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"assignments": out})
}
