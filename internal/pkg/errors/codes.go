package errors

// Machine-readable error codes returned by the API and recorded on
// per-item reconciliation failures.
const (
	// Lookups
	CodeCapabilityNotFound   = "CAPABILITY_NOT_FOUND"
	CodeCapabilityUnmapped   = "CAPABILITY_GROUP_UNMAPPED"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeOrganizationNotFound = "ORGANIZATION_NOT_FOUND"
	CodeOperationNotFound    = "OPERATION_NOT_FOUND"

	// Directory
	CodeDirectoryUnavailable = "DIRECTORY_UNAVAILABLE"
	CodeMembershipAddFailed  = "MEMBERSHIP_ADD_FAILED"
	CodeMembershipRmFailed   = "MEMBERSHIP_REMOVE_FAILED"

	// Requests
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDuplicateRequest = "DUPLICATE_PENDING_REQUEST"
	CodeCapabilityInUse  = "CAPABILITY_STILL_ASSIGNED"
)
