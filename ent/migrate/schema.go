// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "working"}, Default: "idle"},
		{Name: "current_task_id", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "swarm_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_swarms_agents",
				Columns:    []*schema.Column{AgentsColumns[6]},
				RefColumns: []*schema.Column{SwarmsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_swarm_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[6]},
			},
			{
				Name:    "agent_swarm_id_role",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[6], AgentsColumns[1]},
			},
		},
	}
	// EscalationsColumns holds the columns for the "escalations" table.
	EscalationsColumns = []*schema.Column{
		{Name: "escalation_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"configuration", "design_decision", "external_service", "unclear_requirement"}},
		{Name: "severity", Type: field.TypeString, Default: "high"},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "suggested_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "can_continue_without", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "resolved", "cancelled"}, Default: "pending"},
		{Name: "resolution", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "swarm_id", Type: field.TypeString},
	}
	// EscalationsTable holds the schema information for the "escalations" table.
	EscalationsTable = &schema.Table{
		Name:       "escalations",
		Columns:    EscalationsColumns,
		PrimaryKey: []*schema.Column{EscalationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "escalations_swarms_escalations",
				Columns:    []*schema.Column{EscalationsColumns[12]},
				RefColumns: []*schema.Column{SwarmsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "escalation_swarm_id_status",
				Unique:  false,
				Columns: []*schema.Column{EscalationsColumns[12], EscalationsColumns[8]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "swarm_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_swarm_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_swarm_id_kind",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[2]},
			},
			{
				Name:    "event_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// StackTemplatesColumns holds the columns for the "stack_templates" table.
	StackTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Unique: true},
		{Name: "backend", Type: field.TypeString},
		{Name: "frontend", Type: field.TypeString},
		{Name: "database", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON},
	}
	// StackTemplatesTable holds the schema information for the "stack_templates" table.
	StackTemplatesTable = &schema.Table{
		Name:       "stack_templates",
		Columns:    StackTemplatesColumns,
		PrimaryKey: []*schema.Column{StackTemplatesColumns[0]},
	}
	// SwarmsColumns holds the columns for the "swarms" table.
	SwarmsColumns = []*schema.Column{
		{Name: "swarm_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "running", "paused", "awaiting_approval", "completed", "failed", "cancelled"}, Default: "idle"},
		{Name: "num_agents", Type: field.TypeInt, Default: 0},
		{Name: "complexity", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// SwarmsTable holds the schema information for the "swarms" table.
	SwarmsTable = &schema.Table{
		Name:       "swarms",
		Columns:    SwarmsColumns,
		PrimaryKey: []*schema.Column{SwarmsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "swarm_status",
				Unique:  false,
				Columns: []*schema.Column{SwarmsColumns[2]},
			},
			{
				Name:    "swarm_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SwarmsColumns[2], SwarmsColumns[6]},
			},
			{
				Name:    "swarm_pod_id",
				Unique:  false,
				Columns: []*schema.Column{SwarmsColumns[10]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "task_key", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "blocked", "skipped"}, Default: "pending"},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "phase", Type: field.TypeString, Nullable: true},
		{Name: "milestone", Type: field.TypeBool, Default: false},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "last_failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "swarm_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_swarms_tasks",
				Columns:    []*schema.Column{TasksColumns[17]},
				RefColumns: []*schema.Column{SwarmsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_swarm_id_task_key",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[17], TasksColumns[1]},
			},
			{
				Name:    "task_swarm_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[17], TasksColumns[6]},
			},
			{
				Name:    "task_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[16]},
			},
			{
				Name:    "task_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		EscalationsTable,
		EventsTable,
		StackTemplatesTable,
		SwarmsTable,
		TasksTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = SwarmsTable
	EscalationsTable.ForeignKeys[0].RefTable = SwarmsTable
	TasksTable.ForeignKeys[0].RefTable = SwarmsTable
}
