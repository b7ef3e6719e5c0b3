// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/ent/session"
)

// EmailDraft is the model entity for the EmailDraft schema.
type EmailDraft struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// To holds the value of the "to" field.
	To string `json:"to,omitempty"`
	// Cc holds the value of the "cc" field.
	Cc []string `json:"cc,omitempty"`
	// Bcc holds the value of the "bcc" field.
	Bcc []string `json:"bcc,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Tone holds the value of the "tone" field.
	Tone string `json:"tone,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority string `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status emaildraft.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// Approval deadline; past-due pending drafts are rejected by the janitor
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// ConversationContext holds the value of the "conversation_context" field.
	ConversationContext string `json:"conversation_context,omitempty"`
	// AiReasoning holds the value of the "ai_reasoning" field.
	AiReasoning string `json:"ai_reasoning,omitempty"`
	// SafetyChecks holds the value of the "safety_checks" field.
	SafetyChecks map[string]interface{} `json:"safety_checks,omitempty"`
	// ApprovalFeedback holds the value of the "approval_feedback" field.
	ApprovalFeedback *string `json:"approval_feedback,omitempty"`
	// Set exactly once, on the sent transition
	ProviderMessageID *string `json:"provider_message_id,omitempty"`
	// ProviderThreadID holds the value of the "provider_thread_id" field.
	ProviderThreadID *string `json:"provider_thread_id,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailDraftQuery when eager-loading is set.
	Edges        EmailDraftEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailDraftEdges holds the relations/edges for other nodes in the graph.
type EmailDraftEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailDraftEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailDraft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emaildraft.FieldCc, emaildraft.FieldBcc, emaildraft.FieldSafetyChecks:
			values[i] = new([]byte)
		case emaildraft.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case emaildraft.FieldID, emaildraft.FieldSessionID, emaildraft.FieldUserID, emaildraft.FieldTo, emaildraft.FieldSubject, emaildraft.FieldBody, emaildraft.FieldTone, emaildraft.FieldPriority, emaildraft.FieldStatus, emaildraft.FieldConversationContext, emaildraft.FieldAiReasoning, emaildraft.FieldApprovalFeedback, emaildraft.FieldProviderMessageID, emaildraft.FieldProviderThreadID:
			values[i] = new(sql.NullString)
		case emaildraft.FieldCreatedAt, emaildraft.FieldUpdatedAt, emaildraft.FieldApprovedAt, emaildraft.FieldSentAt, emaildraft.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailDraft fields.
func (_m *EmailDraft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emaildraft.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case emaildraft.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case emaildraft.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case emaildraft.FieldTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to", values[i])
			} else if value.Valid {
				_m.To = value.String
			}
		case emaildraft.FieldCc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cc); err != nil {
					return fmt.Errorf("unmarshal field cc: %w", err)
				}
			}
		case emaildraft.FieldBcc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bcc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Bcc); err != nil {
					return fmt.Errorf("unmarshal field bcc: %w", err)
				}
			}
		case emaildraft.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case emaildraft.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case emaildraft.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = value.String
			}
		case emaildraft.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case emaildraft.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = emaildraft.Status(value.String)
			}
		case emaildraft.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case emaildraft.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case emaildraft.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case emaildraft.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case emaildraft.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case emaildraft.FieldConversationContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_context", values[i])
			} else if value.Valid {
				_m.ConversationContext = value.String
			}
		case emaildraft.FieldAiReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_reasoning", values[i])
			} else if value.Valid {
				_m.AiReasoning = value.String
			}
		case emaildraft.FieldSafetyChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field safety_checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SafetyChecks); err != nil {
					return fmt.Errorf("unmarshal field safety_checks: %w", err)
				}
			}
		case emaildraft.FieldApprovalFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_feedback", values[i])
			} else if value.Valid {
				_m.ApprovalFeedback = new(string)
				*_m.ApprovalFeedback = value.String
			}
		case emaildraft.FieldProviderMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_message_id", values[i])
			} else if value.Valid {
				_m.ProviderMessageID = new(string)
				*_m.ProviderMessageID = value.String
			}
		case emaildraft.FieldProviderThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_thread_id", values[i])
			} else if value.Valid {
				_m.ProviderThreadID = new(string)
				*_m.ProviderThreadID = value.String
			}
		case emaildraft.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailDraft.
// This includes values selected through modifiers, order, etc.
func (_m *EmailDraft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the EmailDraft entity.
func (_m *EmailDraft) QuerySession() *SessionQuery {
	return NewEmailDraftClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this EmailDraft.
// Note that you need to call EmailDraft.Unwrap() before calling this method if this EmailDraft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailDraft) Update() *EmailDraftUpdateOne {
	return NewEmailDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailDraft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailDraft) Unwrap() *EmailDraft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailDraft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailDraft) String() string {
	var builder strings.Builder
	builder.WriteString("EmailDraft(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("to=")
	builder.WriteString(_m.To)
	builder.WriteString(", ")
	builder.WriteString("cc=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cc))
	builder.WriteString(", ")
	builder.WriteString("bcc=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bcc))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(_m.Tone)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("conversation_context=")
	builder.WriteString(_m.ConversationContext)
	builder.WriteString(", ")
	builder.WriteString("ai_reasoning=")
	builder.WriteString(_m.AiReasoning)
	builder.WriteString(", ")
	builder.WriteString("safety_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.SafetyChecks))
	builder.WriteString(", ")
	if v := _m.ApprovalFeedback; v != nil {
		builder.WriteString("approval_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProviderMessageID; v != nil {
		builder.WriteString("provider_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProviderThreadID; v != nil {
		builder.WriteString("provider_thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteByte(')')
	return builder.String()
}

// EmailDrafts is a parsable slice of EmailDraft.
type EmailDrafts []*EmailDraft
