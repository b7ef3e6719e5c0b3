// Code generated by ent, DO NOT EDIT.

package emaildraft

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sundialhq/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldUserID, v))
}

// To applies equality check predicate on the "to" field. It's identical to ToEQ.
func To(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldTo, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldBody, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldTone, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldApprovedAt, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldSentAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldExpiresAt, v))
}

// ConversationContext applies equality check predicate on the "conversation_context" field. It's identical to ConversationContextEQ.
func ConversationContext(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldConversationContext, v))
}

// AiReasoning applies equality check predicate on the "ai_reasoning" field. It's identical to AiReasoningEQ.
func AiReasoning(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldAiReasoning, v))
}

// ApprovalFeedback applies equality check predicate on the "approval_feedback" field. It's identical to ApprovalFeedbackEQ.
func ApprovalFeedback(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldApprovalFeedback, v))
}

// ProviderMessageID applies equality check predicate on the "provider_message_id" field. It's identical to ProviderMessageIDEQ.
func ProviderMessageID(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldProviderMessageID, v))
}

// ProviderThreadID applies equality check predicate on the "provider_thread_id" field. It's identical to ProviderThreadIDEQ.
func ProviderThreadID(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldProviderThreadID, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldRetryCount, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldUserID, v))
}

// ToEQ applies the EQ predicate on the "to" field.
func ToEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldTo, v))
}

// ToNEQ applies the NEQ predicate on the "to" field.
func ToNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldTo, v))
}

// ToIn applies the In predicate on the "to" field.
func ToIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldTo, vs...))
}

// ToNotIn applies the NotIn predicate on the "to" field.
func ToNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldTo, vs...))
}

// ToGT applies the GT predicate on the "to" field.
func ToGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldTo, v))
}

// ToGTE applies the GTE predicate on the "to" field.
func ToGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldTo, v))
}

// ToLT applies the LT predicate on the "to" field.
func ToLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldTo, v))
}

// ToLTE applies the LTE predicate on the "to" field.
func ToLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldTo, v))
}

// ToContains applies the Contains predicate on the "to" field.
func ToContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldTo, v))
}

// ToHasPrefix applies the HasPrefix predicate on the "to" field.
func ToHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldTo, v))
}

// ToHasSuffix applies the HasSuffix predicate on the "to" field.
func ToHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldTo, v))
}

// ToEqualFold applies the EqualFold predicate on the "to" field.
func ToEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldTo, v))
}

// ToContainsFold applies the ContainsFold predicate on the "to" field.
func ToContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldTo, v))
}

// CcIsNil applies the IsNil predicate on the "cc" field.
func CcIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldCc))
}

// CcNotNil applies the NotNil predicate on the "cc" field.
func CcNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldCc))
}

// BccIsNil applies the IsNil predicate on the "bcc" field.
func BccIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldBcc))
}

// BccNotNil applies the NotNil predicate on the "bcc" field.
func BccNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldBcc))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldBody, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldTone, v))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldTone, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldUpdatedAt, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldApprovedAt))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldSentAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldExpiresAt))
}

// ConversationContextEQ applies the EQ predicate on the "conversation_context" field.
func ConversationContextEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldConversationContext, v))
}

// ConversationContextNEQ applies the NEQ predicate on the "conversation_context" field.
func ConversationContextNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldConversationContext, v))
}

// ConversationContextIn applies the In predicate on the "conversation_context" field.
func ConversationContextIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldConversationContext, vs...))
}

// ConversationContextNotIn applies the NotIn predicate on the "conversation_context" field.
func ConversationContextNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldConversationContext, vs...))
}

// ConversationContextGT applies the GT predicate on the "conversation_context" field.
func ConversationContextGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldConversationContext, v))
}

// ConversationContextGTE applies the GTE predicate on the "conversation_context" field.
func ConversationContextGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldConversationContext, v))
}

// ConversationContextLT applies the LT predicate on the "conversation_context" field.
func ConversationContextLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldConversationContext, v))
}

// ConversationContextLTE applies the LTE predicate on the "conversation_context" field.
func ConversationContextLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldConversationContext, v))
}

// ConversationContextContains applies the Contains predicate on the "conversation_context" field.
func ConversationContextContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldConversationContext, v))
}

// ConversationContextHasPrefix applies the HasPrefix predicate on the "conversation_context" field.
func ConversationContextHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldConversationContext, v))
}

// ConversationContextHasSuffix applies the HasSuffix predicate on the "conversation_context" field.
func ConversationContextHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldConversationContext, v))
}

// ConversationContextIsNil applies the IsNil predicate on the "conversation_context" field.
func ConversationContextIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldConversationContext))
}

// ConversationContextNotNil applies the NotNil predicate on the "conversation_context" field.
func ConversationContextNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldConversationContext))
}

// ConversationContextEqualFold applies the EqualFold predicate on the "conversation_context" field.
func ConversationContextEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldConversationContext, v))
}

// ConversationContextContainsFold applies the ContainsFold predicate on the "conversation_context" field.
func ConversationContextContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldConversationContext, v))
}

// AiReasoningEQ applies the EQ predicate on the "ai_reasoning" field.
func AiReasoningEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldAiReasoning, v))
}

// AiReasoningNEQ applies the NEQ predicate on the "ai_reasoning" field.
func AiReasoningNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldAiReasoning, v))
}

// AiReasoningIn applies the In predicate on the "ai_reasoning" field.
func AiReasoningIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldAiReasoning, vs...))
}

// AiReasoningNotIn applies the NotIn predicate on the "ai_reasoning" field.
func AiReasoningNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldAiReasoning, vs...))
}

// AiReasoningGT applies the GT predicate on the "ai_reasoning" field.
func AiReasoningGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldAiReasoning, v))
}

// AiReasoningGTE applies the GTE predicate on the "ai_reasoning" field.
func AiReasoningGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldAiReasoning, v))
}

// AiReasoningLT applies the LT predicate on the "ai_reasoning" field.
func AiReasoningLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldAiReasoning, v))
}

// AiReasoningLTE applies the LTE predicate on the "ai_reasoning" field.
func AiReasoningLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldAiReasoning, v))
}

// AiReasoningContains applies the Contains predicate on the "ai_reasoning" field.
func AiReasoningContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldAiReasoning, v))
}

// AiReasoningHasPrefix applies the HasPrefix predicate on the "ai_reasoning" field.
func AiReasoningHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldAiReasoning, v))
}

// AiReasoningHasSuffix applies the HasSuffix predicate on the "ai_reasoning" field.
func AiReasoningHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldAiReasoning, v))
}

// AiReasoningIsNil applies the IsNil predicate on the "ai_reasoning" field.
func AiReasoningIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldAiReasoning))
}

// AiReasoningNotNil applies the NotNil predicate on the "ai_reasoning" field.
func AiReasoningNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldAiReasoning))
}

// AiReasoningEqualFold applies the EqualFold predicate on the "ai_reasoning" field.
func AiReasoningEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldAiReasoning, v))
}

// AiReasoningContainsFold applies the ContainsFold predicate on the "ai_reasoning" field.
func AiReasoningContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldAiReasoning, v))
}

// SafetyChecksIsNil applies the IsNil predicate on the "safety_checks" field.
func SafetyChecksIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldSafetyChecks))
}

// SafetyChecksNotNil applies the NotNil predicate on the "safety_checks" field.
func SafetyChecksNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldSafetyChecks))
}

// ApprovalFeedbackEQ applies the EQ predicate on the "approval_feedback" field.
func ApprovalFeedbackEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldApprovalFeedback, v))
}

// ApprovalFeedbackNEQ applies the NEQ predicate on the "approval_feedback" field.
func ApprovalFeedbackNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldApprovalFeedback, v))
}

// ApprovalFeedbackIn applies the In predicate on the "approval_feedback" field.
func ApprovalFeedbackIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldApprovalFeedback, vs...))
}

// ApprovalFeedbackNotIn applies the NotIn predicate on the "approval_feedback" field.
func ApprovalFeedbackNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldApprovalFeedback, vs...))
}

// ApprovalFeedbackGT applies the GT predicate on the "approval_feedback" field.
func ApprovalFeedbackGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldApprovalFeedback, v))
}

// ApprovalFeedbackGTE applies the GTE predicate on the "approval_feedback" field.
func ApprovalFeedbackGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldApprovalFeedback, v))
}

// ApprovalFeedbackLT applies the LT predicate on the "approval_feedback" field.
func ApprovalFeedbackLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldApprovalFeedback, v))
}

// ApprovalFeedbackLTE applies the LTE predicate on the "approval_feedback" field.
func ApprovalFeedbackLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldApprovalFeedback, v))
}

// ApprovalFeedbackContains applies the Contains predicate on the "approval_feedback" field.
func ApprovalFeedbackContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldApprovalFeedback, v))
}

// ApprovalFeedbackHasPrefix applies the HasPrefix predicate on the "approval_feedback" field.
func ApprovalFeedbackHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldApprovalFeedback, v))
}

// ApprovalFeedbackHasSuffix applies the HasSuffix predicate on the "approval_feedback" field.
func ApprovalFeedbackHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldApprovalFeedback, v))
}

// ApprovalFeedbackIsNil applies the IsNil predicate on the "approval_feedback" field.
func ApprovalFeedbackIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldApprovalFeedback))
}

// ApprovalFeedbackNotNil applies the NotNil predicate on the "approval_feedback" field.
func ApprovalFeedbackNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldApprovalFeedback))
}

// ApprovalFeedbackEqualFold applies the EqualFold predicate on the "approval_feedback" field.
func ApprovalFeedbackEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldApprovalFeedback, v))
}

// ApprovalFeedbackContainsFold applies the ContainsFold predicate on the "approval_feedback" field.
func ApprovalFeedbackContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldApprovalFeedback, v))
}

// ProviderMessageIDEQ applies the EQ predicate on the "provider_message_id" field.
func ProviderMessageIDEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldProviderMessageID, v))
}

// ProviderMessageIDNEQ applies the NEQ predicate on the "provider_message_id" field.
func ProviderMessageIDNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldProviderMessageID, v))
}

// ProviderMessageIDIn applies the In predicate on the "provider_message_id" field.
func ProviderMessageIDIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldProviderMessageID, vs...))
}

// ProviderMessageIDNotIn applies the NotIn predicate on the "provider_message_id" field.
func ProviderMessageIDNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldProviderMessageID, vs...))
}

// ProviderMessageIDGT applies the GT predicate on the "provider_message_id" field.
func ProviderMessageIDGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldProviderMessageID, v))
}

// ProviderMessageIDGTE applies the GTE predicate on the "provider_message_id" field.
func ProviderMessageIDGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldProviderMessageID, v))
}

// ProviderMessageIDLT applies the LT predicate on the "provider_message_id" field.
func ProviderMessageIDLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldProviderMessageID, v))
}

// ProviderMessageIDLTE applies the LTE predicate on the "provider_message_id" field.
func ProviderMessageIDLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldProviderMessageID, v))
}

// ProviderMessageIDContains applies the Contains predicate on the "provider_message_id" field.
func ProviderMessageIDContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldProviderMessageID, v))
}

// ProviderMessageIDHasPrefix applies the HasPrefix predicate on the "provider_message_id" field.
func ProviderMessageIDHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldProviderMessageID, v))
}

// ProviderMessageIDHasSuffix applies the HasSuffix predicate on the "provider_message_id" field.
func ProviderMessageIDHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldProviderMessageID, v))
}

// ProviderMessageIDIsNil applies the IsNil predicate on the "provider_message_id" field.
func ProviderMessageIDIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldProviderMessageID))
}

// ProviderMessageIDNotNil applies the NotNil predicate on the "provider_message_id" field.
func ProviderMessageIDNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldProviderMessageID))
}

// ProviderMessageIDEqualFold applies the EqualFold predicate on the "provider_message_id" field.
func ProviderMessageIDEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldProviderMessageID, v))
}

// ProviderMessageIDContainsFold applies the ContainsFold predicate on the "provider_message_id" field.
func ProviderMessageIDContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldProviderMessageID, v))
}

// ProviderThreadIDEQ applies the EQ predicate on the "provider_thread_id" field.
func ProviderThreadIDEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldProviderThreadID, v))
}

// ProviderThreadIDNEQ applies the NEQ predicate on the "provider_thread_id" field.
func ProviderThreadIDNEQ(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldProviderThreadID, v))
}

// ProviderThreadIDIn applies the In predicate on the "provider_thread_id" field.
func ProviderThreadIDIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldProviderThreadID, vs...))
}

// ProviderThreadIDNotIn applies the NotIn predicate on the "provider_thread_id" field.
func ProviderThreadIDNotIn(vs ...string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldProviderThreadID, vs...))
}

// ProviderThreadIDGT applies the GT predicate on the "provider_thread_id" field.
func ProviderThreadIDGT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldProviderThreadID, v))
}

// ProviderThreadIDGTE applies the GTE predicate on the "provider_thread_id" field.
func ProviderThreadIDGTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldProviderThreadID, v))
}

// ProviderThreadIDLT applies the LT predicate on the "provider_thread_id" field.
func ProviderThreadIDLT(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldProviderThreadID, v))
}

// ProviderThreadIDLTE applies the LTE predicate on the "provider_thread_id" field.
func ProviderThreadIDLTE(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldProviderThreadID, v))
}

// ProviderThreadIDContains applies the Contains predicate on the "provider_thread_id" field.
func ProviderThreadIDContains(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContains(FieldProviderThreadID, v))
}

// ProviderThreadIDHasPrefix applies the HasPrefix predicate on the "provider_thread_id" field.
func ProviderThreadIDHasPrefix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasPrefix(FieldProviderThreadID, v))
}

// ProviderThreadIDHasSuffix applies the HasSuffix predicate on the "provider_thread_id" field.
func ProviderThreadIDHasSuffix(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldHasSuffix(FieldProviderThreadID, v))
}

// ProviderThreadIDIsNil applies the IsNil predicate on the "provider_thread_id" field.
func ProviderThreadIDIsNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIsNull(FieldProviderThreadID))
}

// ProviderThreadIDNotNil applies the NotNil predicate on the "provider_thread_id" field.
func ProviderThreadIDNotNil() predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotNull(FieldProviderThreadID))
}

// ProviderThreadIDEqualFold applies the EqualFold predicate on the "provider_thread_id" field.
func ProviderThreadIDEqualFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEqualFold(FieldProviderThreadID, v))
}

// ProviderThreadIDContainsFold applies the ContainsFold predicate on the "provider_thread_id" field.
func ProviderThreadIDContainsFold(v string) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldContainsFold(FieldProviderThreadID, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.EmailDraft {
	return predicate.EmailDraft(sql.FieldLTE(FieldRetryCount, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.EmailDraft {
	return predicate.EmailDraft(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.EmailDraft {
	return predicate.EmailDraft(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailDraft) predicate.EmailDraft {
	return predicate.EmailDraft(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailDraft) predicate.EmailDraft {
	return predicate.EmailDraft(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailDraft) predicate.EmailDraft {
	return predicate.EmailDraft(sql.NotPredicates(p))
}
