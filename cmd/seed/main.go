// Package main provides data seeding for Directory Steward.
//
// The server never seeds on its own; this command performs an idempotent
// data bootstrap for development and demo environments.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/internal/config"
	"dir-steward.io/steward/internal/infrastructure"
	"dir-steward.io/steward/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.

	if err := seedOrganizations(ctx, client); err != nil {
		return fmt.Errorf("seed organizations: %w", err)
	}
	if err := seedAgentTypes(ctx, client); err != nil {
		return fmt.Errorf("seed agent types: %w", err)
	}
	if err := seedUsers(ctx, client); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func seedOrganizations(ctx context.Context, client *ent.Client) error {
	orgs := []struct {
		ID   string
		Name string
	}{
		{ID: "org-acme", Name: "Acme Corp"},
		{ID: "org-globex", Name: "Globex"},
	}
	for _, o := range orgs {
		err := client.Organization.Create().
			SetID(o.ID).
			SetName(o.Name).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Organization already exists, skipping", zap.String("org", o.Name))
				continue
			}
			return fmt.Errorf("create organization %s: %w", o.Name, err)
		}
		logger.Info("Seeded organization", zap.String("org", o.Name))
	}
	return nil
}

// seedAgentTypes registers the demo capability catalog. Group ids must
// exist in the directory service before any grant succeeds.
func seedAgentTypes(ctx context.Context, client *ent.Client) error {
	agentTypes := []struct {
		ID          string
		Name        string
		Description string
		GroupID     string
	}{
		{
			ID: "agent-coder", Name: "coder",
			Description: "Writes and edits code on the user's behalf",
			GroupID:     "grp-agent-coder",
		},
		{
			ID: "agent-reviewer", Name: "reviewer",
			Description: "Reviews changes and leaves comments",
			GroupID:     "grp-agent-reviewer",
		},
		{
			ID: "agent-researcher", Name: "researcher",
			Description: "Searches internal knowledge bases",
			GroupID:     "grp-agent-researcher",
		},
	}
	for _, at := range agentTypes {
		err := client.AgentType.Create().
			SetID(at.ID).
			SetName(at.Name).
			SetDescription(at.Description).
			SetGroupID(at.GroupID).
			SetCreatedBy("system-seed").
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Agent type already exists, skipping", zap.String("agent_type", at.Name))
				continue
			}
			return fmt.Errorf("create agent type %s: %w", at.Name, err)
		}
		logger.Info("Seeded agent type", zap.String("agent_type", at.Name))
	}
	return nil
}

func seedUsers(ctx context.Context, client *ent.Client) error {
	users := []struct {
		ID          string
		Email       string
		DisplayName string
		OrgID       string
	}{
		{ID: "user-alice", Email: "alice@acme.test", DisplayName: "Alice", OrgID: "org-acme"},
		{ID: "user-bob", Email: "bob@acme.test", DisplayName: "Bob", OrgID: "org-acme"},
		{ID: "user-carol", Email: "carol@globex.test", DisplayName: "Carol", OrgID: "org-globex"},
	}
	for _, u := range users {
		err := client.User.Create().
			SetID(u.ID).
			SetEmail(u.Email).
			SetDisplayName(u.DisplayName).
			SetOrganizationID(u.OrgID).
			SetDirectoryObjectID(u.ID).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("user", u.Email))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
		logger.Info("Seeded user", zap.String("user", u.Email))
	}
	return nil
}
