package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dir-steward.io/steward/ent"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/testutil"
)

func newOrgCapabilityUC(t *testing.T, schema string) (*OrgCapabilityUseCase, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, schema)
	// River stays nil: these tests exercise validation, which runs before
	// any event is written or enqueued.
	return NewOrgCapabilityUseCase(client, nil, service.NewAgentTypeService(client)), client
}

func mustSeedOrg(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	require.NoError(t, client.Organization.Create().SetID(id).SetName(id).Exec(t.Context()))
}

func mustSeedAgentType(t *testing.T, client *ent.Client, id, groupID string, active bool) {
	t.Helper()
	require.NoError(t, client.AgentType.Create().
		SetID(id).
		SetName(id).
		SetGroupID(groupID).
		SetActive(active).
		SetCreatedBy("seed").
		Exec(t.Context()))
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "error %v is not an AppError", err)
	require.Equal(t, code, appErr.Code)
}

func TestGrantToAll_RejectsMissingFields(t *testing.T) {
	uc, _ := newOrgCapabilityUC(t, "uc_grant_fields")

	_, err := uc.GrantToAll(t.Context(), OrgCapabilityInput{
		OrganizationID: "org-1", AgentTypeID: "", Actor: "admin",
	})
	assertCode(t, err, apperrors.CodeValidationFailed)
}

func TestGrantToAll_RejectsUnknownOrganization(t *testing.T) {
	uc, client := newOrgCapabilityUC(t, "uc_grant_org")
	mustSeedAgentType(t, client, "cap-1", "grp-1", true)

	_, err := uc.GrantToAll(t.Context(), OrgCapabilityInput{
		OrganizationID: "org-missing", AgentTypeID: "cap-1", Actor: "admin",
	})
	assertCode(t, err, apperrors.CodeOrganizationNotFound)
}

func TestGrantToAll_RejectsDisabledCapability(t *testing.T) {
	uc, client := newOrgCapabilityUC(t, "uc_grant_disabled")
	mustSeedOrg(t, client, "org-1")
	mustSeedAgentType(t, client, "cap-1", "grp-1", false)

	_, err := uc.GrantToAll(t.Context(), OrgCapabilityInput{
		OrganizationID: "org-1", AgentTypeID: "cap-1", Actor: "admin",
	})
	assertCode(t, err, apperrors.CodeCapabilityInUse)
}

func TestGrantToAll_RejectsUnmappedCapability(t *testing.T) {
	uc, client := newOrgCapabilityUC(t, "uc_grant_unmapped")
	mustSeedOrg(t, client, "org-1")
	mustSeedAgentType(t, client, "cap-1", "", true)

	_, err := uc.GrantToAll(t.Context(), OrgCapabilityInput{
		OrganizationID: "org-1", AgentTypeID: "cap-1", Actor: "admin",
	})
	assertCode(t, err, apperrors.CodeCapabilityUnmapped)
}

func TestRevokeFromAll_RejectsUnknownCapability(t *testing.T) {
	uc, client := newOrgCapabilityUC(t, "uc_revoke_cap")
	mustSeedOrg(t, client, "org-1")

	_, err := uc.RevokeFromAll(t.Context(), OrgCapabilityInput{
		OrganizationID: "org-1", AgentTypeID: "cap-missing", Actor: "admin",
	})
	assertCode(t, err, apperrors.CodeCapabilityNotFound)
}
