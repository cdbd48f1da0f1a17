package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type operationStatusView struct {
	Phase     string `json:"phase"`
	Detail    string `json:"detail,omitempty"`
	Terminal  bool   `json:"terminal"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

// GetOperation handles GET /api/v1/operations/:operationId. It returns the
// status feed of a bulk operation, oldest entry first.
func (s *Server) GetOperation(c *gin.Context) {
	entries, err := s.statusSvc.History(c.Request.Context(), c.Param("operationId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	views := make([]operationStatusView, 0, len(entries))
	done := false
	success := false
	for _, e := range entries {
		views = append(views, operationStatusView{
			Phase:     e.Phase,
			Detail:    e.Detail,
			Terminal:  e.Terminal,
			Success:   e.Success,
			Timestamp: e.CreatedAt.UTC().Format(time.RFC3339),
		})
		if e.Terminal {
			done = true
			success = e.Success
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"operation_id": c.Param("operationId"),
		"done":         done,
		"success":      success,
		"history":      views,
	})
}
