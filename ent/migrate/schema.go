// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentTypesColumns holds the columns for the "agent_types" table.
	AgentTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// AgentTypesTable holds the schema information for the "agent_types" table.
	AgentTypesTable = &schema.Table{
		Name:       "agent_types",
		Columns:    AgentTypesColumns,
		PrimaryKey: []*schema.Column{AgentTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agenttype_name",
				Unique:  true,
				Columns: []*schema.Column{AgentTypesColumns[3]},
			},
			{
				Name:    "agenttype_group_id",
				Unique:  false,
				Columns: []*schema.Column{AgentTypesColumns[5]},
			},
		},
	}
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "agent_type_id", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "assigned_by", Type: field.TypeString},
		{Name: "assigned_at", Type: field.TypeTime},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_user_id_agent_type_id_organization_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[3], AssignmentsColumns[4], AssignmentsColumns[5]},
			},
			{
				Name:    "assignment_organization_id_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[5], AssignmentsColumns[3], AssignmentsColumns[7]},
			},
			{
				Name:    "assignment_organization_id_agent_type_id_active",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[5], AssignmentsColumns[4], AssignmentsColumns[7]},
			},
			{
				Name:    "assignment_agent_type_id_active",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[4], AssignmentsColumns[7]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
		},
	}
	// DomainEventsColumns holds the columns for the "domain_events" table.
	DomainEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "aggregate_type", Type: field.TypeString},
		{Name: "aggregate_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED", "CANCELLED"}, Default: "PENDING"},
		{Name: "created_by", Type: field.TypeString},
	}
	// DomainEventsTable holds the schema information for the "domain_events" table.
	DomainEventsTable = &schema.Table{
		Name:       "domain_events",
		Columns:    DomainEventsColumns,
		PrimaryKey: []*schema.Column{DomainEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainevent_aggregate_type_aggregate_id",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[4], DomainEventsColumns[5]},
			},
			{
				Name:    "domainevent_event_type_status",
				Unique:  false,
				Columns: []*schema.Column{DomainEventsColumns[3], DomainEventsColumns[7]},
			},
		},
	}
	// OperationStatusColumns holds the columns for the "operation_status" table.
	OperationStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "operation_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "terminal", Type: field.TypeBool, Default: false},
		{Name: "success", Type: field.TypeBool, Nullable: true},
	}
	// OperationStatusTable holds the schema information for the "operation_status" table.
	OperationStatusTable = &schema.Table{
		Name:       "operation_status",
		Columns:    OperationStatusColumns,
		PrimaryKey: []*schema.Column{OperationStatusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "operationstatus_operation_id",
				Unique:  false,
				Columns: []*schema.Column{OperationStatusColumns[2]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_name",
				Unique:  true,
				Columns: []*schema.Column{OrganizationsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "directory_object_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_organization_id_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[5], UsersColumns[3]},
			},
			{
				Name:    "user_organization_id_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5], UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentTypesTable,
		AssignmentsTable,
		AuditLogsTable,
		DomainEventsTable,
		OperationStatusTable,
		OrganizationsTable,
		UsersTable,
	}
)

func init() {
}
