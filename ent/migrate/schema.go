// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ModuleEventsColumns holds the columns for the "module_events" table.
	ModuleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
	}
	// ModuleEventsTable holds the schema information for the "module_events" table.
	ModuleEventsTable = &schema.Table{
		Name:       "module_events",
		Columns:    ModuleEventsColumns,
		PrimaryKey: []*schema.Column{ModuleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moduleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[1]},
			},
			{
				Name:    "moduleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[2]},
			},
			{
				Name:    "moduleevent_learner_id_course_id",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[3], ModuleEventsColumns[4]},
			},
			{
				Name:    "moduleevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[5]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_kind", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_learner_id_course_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[5]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[7]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_action",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "items_reviewed", Type: field.TypeInt, Default: 0},
		{Name: "items_skipped", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3], SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ModuleEventsTable,
		ReviewEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
