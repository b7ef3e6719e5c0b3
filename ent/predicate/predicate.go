// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// EmailDraft is the predicate function for emaildraft builders.
type EmailDraft func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionNote is the predicate function for sessionnote builders.
type SessionNote func(*sql.Selector)

// UploadedFile is the predicate function for uploadedfile builders.
type UploadedFile func(*sql.Selector)
