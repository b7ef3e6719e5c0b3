// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/ent/predicate"
)

// EmailDraftUpdate is the builder for updating EmailDraft entities.
type EmailDraftUpdate struct {
	config
	hooks    []Hook
	mutation *EmailDraftMutation
}

// Where appends a list predicates to the EmailDraftUpdate builder.
func (_u *EmailDraftUpdate) Where(ps ...predicate.EmailDraft) *EmailDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmailDraftUpdate) SetUserID(v string) *EmailDraftUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableUserID(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EmailDraftUpdate) ClearUserID() *EmailDraftUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetTo sets the "to" field.
func (_u *EmailDraftUpdate) SetTo(v string) *EmailDraftUpdate {
	_u.mutation.SetTo(v)
	return _u
}

// SetNillableTo sets the "to" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableTo(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetTo(*v)
	}
	return _u
}

// SetCc sets the "cc" field.
func (_u *EmailDraftUpdate) SetCc(v []string) *EmailDraftUpdate {
	_u.mutation.SetCc(v)
	return _u
}

// AppendCc appends value to the "cc" field.
func (_u *EmailDraftUpdate) AppendCc(v []string) *EmailDraftUpdate {
	_u.mutation.AppendCc(v)
	return _u
}

// ClearCc clears the value of the "cc" field.
func (_u *EmailDraftUpdate) ClearCc() *EmailDraftUpdate {
	_u.mutation.ClearCc()
	return _u
}

// SetBcc sets the "bcc" field.
func (_u *EmailDraftUpdate) SetBcc(v []string) *EmailDraftUpdate {
	_u.mutation.SetBcc(v)
	return _u
}

// AppendBcc appends value to the "bcc" field.
func (_u *EmailDraftUpdate) AppendBcc(v []string) *EmailDraftUpdate {
	_u.mutation.AppendBcc(v)
	return _u
}

// ClearBcc clears the value of the "bcc" field.
func (_u *EmailDraftUpdate) ClearBcc() *EmailDraftUpdate {
	_u.mutation.ClearBcc()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailDraftUpdate) SetSubject(v string) *EmailDraftUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableSubject(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EmailDraftUpdate) SetBody(v string) *EmailDraftUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableBody(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *EmailDraftUpdate) SetTone(v string) *EmailDraftUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableTone(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EmailDraftUpdate) SetPriority(v string) *EmailDraftUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillablePriority(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailDraftUpdate) SetStatus(v emaildraft.Status) *EmailDraftUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableStatus(v *emaildraft.Status) *EmailDraftUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailDraftUpdate) SetUpdatedAt(v time.Time) *EmailDraftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *EmailDraftUpdate) SetApprovedAt(v time.Time) *EmailDraftUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableApprovedAt(v *time.Time) *EmailDraftUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *EmailDraftUpdate) ClearApprovedAt() *EmailDraftUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailDraftUpdate) SetSentAt(v time.Time) *EmailDraftUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableSentAt(v *time.Time) *EmailDraftUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *EmailDraftUpdate) ClearSentAt() *EmailDraftUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EmailDraftUpdate) SetExpiresAt(v time.Time) *EmailDraftUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableExpiresAt(v *time.Time) *EmailDraftUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EmailDraftUpdate) ClearExpiresAt() *EmailDraftUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetConversationContext sets the "conversation_context" field.
func (_u *EmailDraftUpdate) SetConversationContext(v string) *EmailDraftUpdate {
	_u.mutation.SetConversationContext(v)
	return _u
}

// SetNillableConversationContext sets the "conversation_context" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableConversationContext(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetConversationContext(*v)
	}
	return _u
}

// ClearConversationContext clears the value of the "conversation_context" field.
func (_u *EmailDraftUpdate) ClearConversationContext() *EmailDraftUpdate {
	_u.mutation.ClearConversationContext()
	return _u
}

// SetAiReasoning sets the "ai_reasoning" field.
func (_u *EmailDraftUpdate) SetAiReasoning(v string) *EmailDraftUpdate {
	_u.mutation.SetAiReasoning(v)
	return _u
}

// SetNillableAiReasoning sets the "ai_reasoning" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableAiReasoning(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetAiReasoning(*v)
	}
	return _u
}

// ClearAiReasoning clears the value of the "ai_reasoning" field.
func (_u *EmailDraftUpdate) ClearAiReasoning() *EmailDraftUpdate {
	_u.mutation.ClearAiReasoning()
	return _u
}

// SetSafetyChecks sets the "safety_checks" field.
func (_u *EmailDraftUpdate) SetSafetyChecks(v map[string]interface{}) *EmailDraftUpdate {
	_u.mutation.SetSafetyChecks(v)
	return _u
}

// ClearSafetyChecks clears the value of the "safety_checks" field.
func (_u *EmailDraftUpdate) ClearSafetyChecks() *EmailDraftUpdate {
	_u.mutation.ClearSafetyChecks()
	return _u
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (_u *EmailDraftUpdate) SetApprovalFeedback(v string) *EmailDraftUpdate {
	_u.mutation.SetApprovalFeedback(v)
	return _u
}

// SetNillableApprovalFeedback sets the "approval_feedback" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableApprovalFeedback(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetApprovalFeedback(*v)
	}
	return _u
}

// ClearApprovalFeedback clears the value of the "approval_feedback" field.
func (_u *EmailDraftUpdate) ClearApprovalFeedback() *EmailDraftUpdate {
	_u.mutation.ClearApprovalFeedback()
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *EmailDraftUpdate) SetProviderMessageID(v string) *EmailDraftUpdate {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableProviderMessageID(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (_u *EmailDraftUpdate) ClearProviderMessageID() *EmailDraftUpdate {
	_u.mutation.ClearProviderMessageID()
	return _u
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (_u *EmailDraftUpdate) SetProviderThreadID(v string) *EmailDraftUpdate {
	_u.mutation.SetProviderThreadID(v)
	return _u
}

// SetNillableProviderThreadID sets the "provider_thread_id" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableProviderThreadID(v *string) *EmailDraftUpdate {
	if v != nil {
		_u.SetProviderThreadID(*v)
	}
	return _u
}

// ClearProviderThreadID clears the value of the "provider_thread_id" field.
func (_u *EmailDraftUpdate) ClearProviderThreadID() *EmailDraftUpdate {
	_u.mutation.ClearProviderThreadID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *EmailDraftUpdate) SetRetryCount(v int) *EmailDraftUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *EmailDraftUpdate) SetNillableRetryCount(v *int) *EmailDraftUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *EmailDraftUpdate) AddRetryCount(v int) *EmailDraftUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the EmailDraftMutation object of the builder.
func (_u *EmailDraftUpdate) Mutation() *EmailDraftMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailDraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailDraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emaildraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailDraftUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := emaildraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailDraft.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailDraft.session"`)
	}
	return nil
}

func (_u *EmailDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaildraft.Table, emaildraft.Columns, sqlgraph.NewFieldSpec(emaildraft.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emaildraft.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(emaildraft.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.To(); ok {
		_spec.SetField(emaildraft.FieldTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cc(); ok {
		_spec.SetField(emaildraft.FieldCc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emaildraft.FieldCc, value)
		})
	}
	if _u.mutation.CcCleared() {
		_spec.ClearField(emaildraft.FieldCc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bcc(); ok {
		_spec.SetField(emaildraft.FieldBcc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBcc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emaildraft.FieldBcc, value)
		})
	}
	if _u.mutation.BccCleared() {
		_spec.ClearField(emaildraft.FieldBcc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaildraft.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(emaildraft.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(emaildraft.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(emaildraft.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emaildraft.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emaildraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(emaildraft.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(emaildraft.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(emaildraft.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(emaildraft.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(emaildraft.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(emaildraft.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConversationContext(); ok {
		_spec.SetField(emaildraft.FieldConversationContext, field.TypeString, value)
	}
	if _u.mutation.ConversationContextCleared() {
		_spec.ClearField(emaildraft.FieldConversationContext, field.TypeString)
	}
	if value, ok := _u.mutation.AiReasoning(); ok {
		_spec.SetField(emaildraft.FieldAiReasoning, field.TypeString, value)
	}
	if _u.mutation.AiReasoningCleared() {
		_spec.ClearField(emaildraft.FieldAiReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.SafetyChecks(); ok {
		_spec.SetField(emaildraft.FieldSafetyChecks, field.TypeJSON, value)
	}
	if _u.mutation.SafetyChecksCleared() {
		_spec.ClearField(emaildraft.FieldSafetyChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovalFeedback(); ok {
		_spec.SetField(emaildraft.FieldApprovalFeedback, field.TypeString, value)
	}
	if _u.mutation.ApprovalFeedbackCleared() {
		_spec.ClearField(emaildraft.FieldApprovalFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(emaildraft.FieldProviderMessageID, field.TypeString, value)
	}
	if _u.mutation.ProviderMessageIDCleared() {
		_spec.ClearField(emaildraft.FieldProviderMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderThreadID(); ok {
		_spec.SetField(emaildraft.FieldProviderThreadID, field.TypeString, value)
	}
	if _u.mutation.ProviderThreadIDCleared() {
		_spec.ClearField(emaildraft.FieldProviderThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(emaildraft.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(emaildraft.FieldRetryCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaildraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailDraftUpdateOne is the builder for updating a single EmailDraft entity.
type EmailDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailDraftMutation
}

// SetUserID sets the "user_id" field.
func (_u *EmailDraftUpdateOne) SetUserID(v string) *EmailDraftUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableUserID(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EmailDraftUpdateOne) ClearUserID() *EmailDraftUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetTo sets the "to" field.
func (_u *EmailDraftUpdateOne) SetTo(v string) *EmailDraftUpdateOne {
	_u.mutation.SetTo(v)
	return _u
}

// SetNillableTo sets the "to" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableTo(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetTo(*v)
	}
	return _u
}

// SetCc sets the "cc" field.
func (_u *EmailDraftUpdateOne) SetCc(v []string) *EmailDraftUpdateOne {
	_u.mutation.SetCc(v)
	return _u
}

// AppendCc appends value to the "cc" field.
func (_u *EmailDraftUpdateOne) AppendCc(v []string) *EmailDraftUpdateOne {
	_u.mutation.AppendCc(v)
	return _u
}

// ClearCc clears the value of the "cc" field.
func (_u *EmailDraftUpdateOne) ClearCc() *EmailDraftUpdateOne {
	_u.mutation.ClearCc()
	return _u
}

// SetBcc sets the "bcc" field.
func (_u *EmailDraftUpdateOne) SetBcc(v []string) *EmailDraftUpdateOne {
	_u.mutation.SetBcc(v)
	return _u
}

// AppendBcc appends value to the "bcc" field.
func (_u *EmailDraftUpdateOne) AppendBcc(v []string) *EmailDraftUpdateOne {
	_u.mutation.AppendBcc(v)
	return _u
}

// ClearBcc clears the value of the "bcc" field.
func (_u *EmailDraftUpdateOne) ClearBcc() *EmailDraftUpdateOne {
	_u.mutation.ClearBcc()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailDraftUpdateOne) SetSubject(v string) *EmailDraftUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableSubject(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EmailDraftUpdateOne) SetBody(v string) *EmailDraftUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableBody(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *EmailDraftUpdateOne) SetTone(v string) *EmailDraftUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableTone(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EmailDraftUpdateOne) SetPriority(v string) *EmailDraftUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillablePriority(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailDraftUpdateOne) SetStatus(v emaildraft.Status) *EmailDraftUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableStatus(v *emaildraft.Status) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailDraftUpdateOne) SetUpdatedAt(v time.Time) *EmailDraftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *EmailDraftUpdateOne) SetApprovedAt(v time.Time) *EmailDraftUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableApprovedAt(v *time.Time) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *EmailDraftUpdateOne) ClearApprovedAt() *EmailDraftUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailDraftUpdateOne) SetSentAt(v time.Time) *EmailDraftUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableSentAt(v *time.Time) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *EmailDraftUpdateOne) ClearSentAt() *EmailDraftUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EmailDraftUpdateOne) SetExpiresAt(v time.Time) *EmailDraftUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableExpiresAt(v *time.Time) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EmailDraftUpdateOne) ClearExpiresAt() *EmailDraftUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetConversationContext sets the "conversation_context" field.
func (_u *EmailDraftUpdateOne) SetConversationContext(v string) *EmailDraftUpdateOne {
	_u.mutation.SetConversationContext(v)
	return _u
}

// SetNillableConversationContext sets the "conversation_context" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableConversationContext(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetConversationContext(*v)
	}
	return _u
}

// ClearConversationContext clears the value of the "conversation_context" field.
func (_u *EmailDraftUpdateOne) ClearConversationContext() *EmailDraftUpdateOne {
	_u.mutation.ClearConversationContext()
	return _u
}

// SetAiReasoning sets the "ai_reasoning" field.
func (_u *EmailDraftUpdateOne) SetAiReasoning(v string) *EmailDraftUpdateOne {
	_u.mutation.SetAiReasoning(v)
	return _u
}

// SetNillableAiReasoning sets the "ai_reasoning" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableAiReasoning(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetAiReasoning(*v)
	}
	return _u
}

// ClearAiReasoning clears the value of the "ai_reasoning" field.
func (_u *EmailDraftUpdateOne) ClearAiReasoning() *EmailDraftUpdateOne {
	_u.mutation.ClearAiReasoning()
	return _u
}

// SetSafetyChecks sets the "safety_checks" field.
func (_u *EmailDraftUpdateOne) SetSafetyChecks(v map[string]interface{}) *EmailDraftUpdateOne {
	_u.mutation.SetSafetyChecks(v)
	return _u
}

// ClearSafetyChecks clears the value of the "safety_checks" field.
func (_u *EmailDraftUpdateOne) ClearSafetyChecks() *EmailDraftUpdateOne {
	_u.mutation.ClearSafetyChecks()
	return _u
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (_u *EmailDraftUpdateOne) SetApprovalFeedback(v string) *EmailDraftUpdateOne {
	_u.mutation.SetApprovalFeedback(v)
	return _u
}

// SetNillableApprovalFeedback sets the "approval_feedback" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableApprovalFeedback(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetApprovalFeedback(*v)
	}
	return _u
}

// ClearApprovalFeedback clears the value of the "approval_feedback" field.
func (_u *EmailDraftUpdateOne) ClearApprovalFeedback() *EmailDraftUpdateOne {
	_u.mutation.ClearApprovalFeedback()
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *EmailDraftUpdateOne) SetProviderMessageID(v string) *EmailDraftUpdateOne {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableProviderMessageID(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (_u *EmailDraftUpdateOne) ClearProviderMessageID() *EmailDraftUpdateOne {
	_u.mutation.ClearProviderMessageID()
	return _u
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (_u *EmailDraftUpdateOne) SetProviderThreadID(v string) *EmailDraftUpdateOne {
	_u.mutation.SetProviderThreadID(v)
	return _u
}

// SetNillableProviderThreadID sets the "provider_thread_id" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableProviderThreadID(v *string) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetProviderThreadID(*v)
	}
	return _u
}

// ClearProviderThreadID clears the value of the "provider_thread_id" field.
func (_u *EmailDraftUpdateOne) ClearProviderThreadID() *EmailDraftUpdateOne {
	_u.mutation.ClearProviderThreadID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *EmailDraftUpdateOne) SetRetryCount(v int) *EmailDraftUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *EmailDraftUpdateOne) SetNillableRetryCount(v *int) *EmailDraftUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *EmailDraftUpdateOne) AddRetryCount(v int) *EmailDraftUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the EmailDraftMutation object of the builder.
func (_u *EmailDraftUpdateOne) Mutation() *EmailDraftMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailDraftUpdate builder.
func (_u *EmailDraftUpdateOne) Where(ps ...predicate.EmailDraft) *EmailDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailDraftUpdateOne) Select(field string, fields ...string) *EmailDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailDraft entity.
func (_u *EmailDraftUpdateOne) Save(ctx context.Context) (*EmailDraft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailDraftUpdateOne) SaveX(ctx context.Context) *EmailDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailDraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emaildraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailDraftUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := emaildraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailDraft.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailDraft.session"`)
	}
	return nil
}

func (_u *EmailDraftUpdateOne) sqlSave(ctx context.Context) (_node *EmailDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaildraft.Table, emaildraft.Columns, sqlgraph.NewFieldSpec(emaildraft.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emaildraft.FieldID)
		for _, f := range fields {
			if !emaildraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emaildraft.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emaildraft.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(emaildraft.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.To(); ok {
		_spec.SetField(emaildraft.FieldTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cc(); ok {
		_spec.SetField(emaildraft.FieldCc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emaildraft.FieldCc, value)
		})
	}
	if _u.mutation.CcCleared() {
		_spec.ClearField(emaildraft.FieldCc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bcc(); ok {
		_spec.SetField(emaildraft.FieldBcc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBcc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emaildraft.FieldBcc, value)
		})
	}
	if _u.mutation.BccCleared() {
		_spec.ClearField(emaildraft.FieldBcc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaildraft.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(emaildraft.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(emaildraft.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(emaildraft.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emaildraft.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emaildraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(emaildraft.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(emaildraft.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(emaildraft.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(emaildraft.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(emaildraft.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(emaildraft.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConversationContext(); ok {
		_spec.SetField(emaildraft.FieldConversationContext, field.TypeString, value)
	}
	if _u.mutation.ConversationContextCleared() {
		_spec.ClearField(emaildraft.FieldConversationContext, field.TypeString)
	}
	if value, ok := _u.mutation.AiReasoning(); ok {
		_spec.SetField(emaildraft.FieldAiReasoning, field.TypeString, value)
	}
	if _u.mutation.AiReasoningCleared() {
		_spec.ClearField(emaildraft.FieldAiReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.SafetyChecks(); ok {
		_spec.SetField(emaildraft.FieldSafetyChecks, field.TypeJSON, value)
	}
	if _u.mutation.SafetyChecksCleared() {
		_spec.ClearField(emaildraft.FieldSafetyChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovalFeedback(); ok {
		_spec.SetField(emaildraft.FieldApprovalFeedback, field.TypeString, value)
	}
	if _u.mutation.ApprovalFeedbackCleared() {
		_spec.ClearField(emaildraft.FieldApprovalFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(emaildraft.FieldProviderMessageID, field.TypeString, value)
	}
	if _u.mutation.ProviderMessageIDCleared() {
		_spec.ClearField(emaildraft.FieldProviderMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderThreadID(); ok {
		_spec.SetField(emaildraft.FieldProviderThreadID, field.TypeString, value)
	}
	if _u.mutation.ProviderThreadIDCleared() {
		_spec.ClearField(emaildraft.FieldProviderThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(emaildraft.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(emaildraft.FieldRetryCount, field.TypeInt, value)
	}
	_node = &EmailDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaildraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
