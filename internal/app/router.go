package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dir-steward.io/steward/internal/api/handlers"
	"dir-steward.io/steward/internal/api/middleware"
	"dir-steward.io/steward/internal/config"
	"dir-steward.io/steward/internal/pkg/metrics"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/health/",
	"/metrics",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic(signingKey))

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/agent-types", server.GetAgentTypes)
		v1.POST("/agent-types", server.PostAgentType)
		v1.PUT("/agent-types/:agentTypeId/group", server.PutAgentTypeGroup)
		v1.PUT("/agent-types/:agentTypeId/state", server.PutAgentTypeState)

		orgs := v1.Group("/organizations/:orgId")
		orgs.POST("/agent-types/:agentTypeId/grant-all", server.PostGrantToOrganization)
		orgs.POST("/agent-types/:agentTypeId/revoke-all", server.PostRevokeFromOrganization)
		orgs.POST("/users/:userId/reconcile", server.PostReconcileUser)
		orgs.POST("/users/:userId/repair", server.PostRepairUser)
		orgs.GET("/users/:userId/assignments", server.GetUserAssignments)

		v1.GET("/operations/:operationId", server.GetOperation)
	}
	return router
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}

// defaultAllowedOrigins covers the local admin UI during development.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// buildCORSConfig derives the CORS policy from server config. A wildcard
// origin is honored only when the unsafe flag is set explicitly, and then
// credentials are forced off since browsers reject the combination.
func buildCORSConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID"}
	c.AllowCredentials = cfg.Server.AllowCredentials

	if cfg.Server.UnsafeAllowAllOrigins {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		c.AllowOrigins = nil
		return c
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	// cors.New rejects an empty allowlist, fall back to the dev defaults.
	if len(origins) == 0 {
		origins = append(origins, defaultAllowedOrigins...)
	}
	c.AllowOrigins = origins
	return c
}
