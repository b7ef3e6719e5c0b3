// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sender", Type: field.TypeEnum, Enums: []string{"user", "agent"}},
		{Name: "agent_type", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_sessions_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5], ChatMessagesColumns[4]},
			},
		},
	}
	// EmailDraftsColumns holds the columns for the "email_drafts" table.
	EmailDraftsColumns = []*schema.Column{
		{Name: "draft_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "to", Type: field.TypeString},
		{Name: "cc", Type: field.TypeJSON, Nullable: true},
		{Name: "bcc", Type: field.TypeJSON, Nullable: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "tone", Type: field.TypeString, Default: "professional"},
		{Name: "priority", Type: field.TypeString, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"drafted", "pending_approval", "approved", "rejected", "scheduled", "sent", "failed"}, Default: "drafted"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ai_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "safety_checks", Type: field.TypeJSON, Nullable: true},
		{Name: "approval_feedback", Type: field.TypeString, Nullable: true},
		{Name: "provider_message_id", Type: field.TypeString, Nullable: true},
		{Name: "provider_thread_id", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString},
	}
	// EmailDraftsTable holds the schema information for the "email_drafts" table.
	EmailDraftsTable = &schema.Table{
		Name:       "email_drafts",
		Columns:    EmailDraftsColumns,
		PrimaryKey: []*schema.Column{EmailDraftsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_drafts_sessions_drafts",
				Columns:    []*schema.Column{EmailDraftsColumns[22]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "emaildraft_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{EmailDraftsColumns[22], EmailDraftsColumns[9]},
			},
			{
				Name:    "emaildraft_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{EmailDraftsColumns[9], EmailDraftsColumns[14]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_active_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// SessionNotesColumns holds the columns for the "session_notes" table.
	SessionNotesColumns = []*schema.Column{
		{Name: "note_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "provider_doc_id", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionNotesTable holds the schema information for the "session_notes" table.
	SessionNotesTable = &schema.Table{
		Name:       "session_notes",
		Columns:    SessionNotesColumns,
		PrimaryKey: []*schema.Column{SessionNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_notes_sessions_notes",
				Columns:    []*schema.Column{SessionNotesColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionnote_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionNotesColumns[7], SessionNotesColumns[5]},
			},
		},
	}
	// UploadedFilesColumns holds the columns for the "uploaded_files" table.
	UploadedFilesColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "extension", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt64},
		{Name: "content", Type: field.TypeBytes},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// UploadedFilesTable holds the schema information for the "uploaded_files" table.
	UploadedFilesTable = &schema.Table{
		Name:       "uploaded_files",
		Columns:    UploadedFilesColumns,
		PrimaryKey: []*schema.Column{UploadedFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "uploaded_files_sessions_files",
				Columns:    []*schema.Column{UploadedFilesColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadedfile_session_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{UploadedFilesColumns[6], UploadedFilesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		EmailDraftsTable,
		SessionsTable,
		SessionNotesTable,
		UploadedFilesTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = SessionsTable
	EmailDraftsTable.ForeignKeys[0].RefTable = SessionsTable
	SessionNotesTable.ForeignKeys[0].RefTable = SessionsTable
	UploadedFilesTable.ForeignKeys[0].RefTable = SessionsTable
}
