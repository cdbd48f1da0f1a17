package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestActorFromCtx(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := actorFromCtx(c); got != "anonymous" {
		t.Fatalf("actor = %q, want anonymous when unauthenticated", got)
	}

	c.Set("actor_id", "user-42")
	if got := actorFromCtx(c); got != "user-42" {
		t.Fatalf("actor = %q, want user-42", got)
	}
}
