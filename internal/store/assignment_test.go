package store

import (
	"testing"
	"time"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/assignment"
	"dir-steward.io/steward/internal/testutil"
)

func seedRow(t *testing.T, client *ent.Client, orgID, userID, agentTypeID, groupID string, active bool) {
	t.Helper()
	if err := client.Assignment.Create().
		SetID("asg-" + orgID + "-" + userID + "-" + agentTypeID).
		SetOrganizationID(orgID).
		SetUserID(userID).
		SetAgentTypeID(agentTypeID).
		SetGroupID(groupID).
		SetActive(active).
		SetAssignedBy("seed").
		SetAssignedAt(time.Now()).
		Exec(t.Context()); err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
}

func TestApplyUserChanges_UpsertCreatesRow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "store_upsert")
	s := NewEntAssignmentStore(client)

	err := s.ApplyUserChanges(t.Context(), "org-1", "user-1", []RowChange{
		{Kind: ChangeUpsert, AgentTypeID: "cap-1", GroupID: "grp-1", AssignedBy: "tester"},
	})
	if err != nil {
		t.Fatalf("ApplyUserChanges: %v", err)
	}

	rows, err := s.ActiveByUser(t.Context(), "org-1", "user-1")
	if err != nil {
		t.Fatalf("ActiveByUser: %v", err)
	}
	if len(rows) != 1 || rows[0].GroupID != "grp-1" || !rows[0].Active {
		t.Fatalf("rows = %+v, want one active row for grp-1", rows)
	}
}

func TestApplyUserChanges_UpsertReactivatesAndRetargets(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "store_reactivate")
	s := NewEntAssignmentStore(client)
	seedRow(t, client, "org-1", "user-1", "cap-1", "grp-old", false)

	err := s.ApplyUserChanges(t.Context(), "org-1", "user-1", []RowChange{
		{Kind: ChangeUpsert, AgentTypeID: "cap-1", GroupID: "grp-new", AssignedBy: "tester"},
	})
	if err != nil {
		t.Fatalf("ApplyUserChanges: %v", err)
	}

	total, err := client.Assignment.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("row count = %d, want the original row reused", total)
	}
	rows, _ := s.ActiveByUser(t.Context(), "org-1", "user-1")
	if len(rows) != 1 || rows[0].GroupID != "grp-new" {
		t.Fatalf("rows = %+v, want reactivated row pointing at grp-new", rows)
	}
}

func TestApplyUserChanges_DeactivateIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "store_deactivate")
	s := NewEntAssignmentStore(client)
	seedRow(t, client, "org-1", "user-1", "cap-1", "grp-1", true)

	change := []RowChange{{Kind: ChangeDeactivate, AgentTypeID: "cap-1"}}
	for i := 0; i < 2; i++ {
		if err := s.ApplyUserChanges(t.Context(), "org-1", "user-1", change); err != nil {
			t.Fatalf("ApplyUserChanges pass %d: %v", i+1, err)
		}
	}
	// Deactivating a row that never existed is also a no-op.
	if err := s.ApplyUserChanges(t.Context(), "org-1", "user-1",
		[]RowChange{{Kind: ChangeDeactivate, AgentTypeID: "cap-ghost"}}); err != nil {
		t.Fatalf("deactivate missing row: %v", err)
	}

	rows, _ := s.ActiveByUser(t.Context(), "org-1", "user-1")
	if len(rows) != 0 {
		t.Fatalf("active rows = %+v, want none", rows)
	}
}

func TestApplyUserChanges_SetGroupRequiresRow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "store_setgroup")
	s := NewEntAssignmentStore(client)

	err := s.ApplyUserChanges(t.Context(), "org-1", "user-1", []RowChange{
		{Kind: ChangeSetGroup, AgentTypeID: "cap-1", GroupID: "grp-new"},
	})
	if err == nil {
		t.Fatal("expected error setting group on missing row")
	}
}

func TestApplyUserChanges_RollsBackOnFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "store_rollback")
	s := NewEntAssignmentStore(client)

	err := s.ApplyUserChanges(t.Context(), "org-1", "user-1", []RowChange{
		{Kind: ChangeUpsert, AgentTypeID: "cap-1", GroupID: "grp-1", AssignedBy: "tester"},
		{Kind: ChangeSetGroup, AgentTypeID: "cap-ghost", GroupID: "grp-x"},
	})
	if err == nil {
		t.Fatal("expected error from second change")
	}

	count, cerr := client.Assignment.Query().
		Where(assignment.UserIDEQ("user-1")).
		Count(t.Context())
	if cerr != nil {
		t.Fatalf("count: %v", cerr)
	}
	if count != 0 {
		t.Fatalf("row count = %d, want 0 after rollback", count)
	}
}

func TestOrganizationsWithCapability_Distinct(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "store_orgs")
	s := NewEntAssignmentStore(client)
	seedRow(t, client, "org-1", "user-1", "cap-1", "grp-1", true)
	seedRow(t, client, "org-1", "user-2", "cap-1", "grp-1", true)
	seedRow(t, client, "org-2", "user-3", "cap-1", "grp-1", true)
	seedRow(t, client, "org-3", "user-4", "cap-1", "grp-1", false)
	seedRow(t, client, "org-4", "user-5", "cap-other", "grp-2", true)

	orgs, err := s.OrganizationsWithCapability(t.Context(), "cap-1")
	if err != nil {
		t.Fatalf("OrganizationsWithCapability: %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("orgs = %v, want exactly org-1 and org-2", orgs)
	}
}
