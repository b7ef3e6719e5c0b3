// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/ent/session"
)

// EmailDraftCreate is the builder for creating a EmailDraft entity.
type EmailDraftCreate struct {
	config
	mutation *EmailDraftMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *EmailDraftCreate) SetSessionID(v string) *EmailDraftCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EmailDraftCreate) SetUserID(v string) *EmailDraftCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableUserID(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetTo sets the "to" field.
func (_c *EmailDraftCreate) SetTo(v string) *EmailDraftCreate {
	_c.mutation.SetTo(v)
	return _c
}

// SetCc sets the "cc" field.
func (_c *EmailDraftCreate) SetCc(v []string) *EmailDraftCreate {
	_c.mutation.SetCc(v)
	return _c
}

// SetBcc sets the "bcc" field.
func (_c *EmailDraftCreate) SetBcc(v []string) *EmailDraftCreate {
	_c.mutation.SetBcc(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailDraftCreate) SetSubject(v string) *EmailDraftCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *EmailDraftCreate) SetBody(v string) *EmailDraftCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetTone sets the "tone" field.
func (_c *EmailDraftCreate) SetTone(v string) *EmailDraftCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableTone(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetTone(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *EmailDraftCreate) SetPriority(v string) *EmailDraftCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillablePriority(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EmailDraftCreate) SetStatus(v emaildraft.Status) *EmailDraftCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableStatus(v *emaildraft.Status) *EmailDraftCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailDraftCreate) SetCreatedAt(v time.Time) *EmailDraftCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableCreatedAt(v *time.Time) *EmailDraftCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmailDraftCreate) SetUpdatedAt(v time.Time) *EmailDraftCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableUpdatedAt(v *time.Time) *EmailDraftCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *EmailDraftCreate) SetApprovedAt(v time.Time) *EmailDraftCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableApprovedAt(v *time.Time) *EmailDraftCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *EmailDraftCreate) SetSentAt(v time.Time) *EmailDraftCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableSentAt(v *time.Time) *EmailDraftCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EmailDraftCreate) SetExpiresAt(v time.Time) *EmailDraftCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableExpiresAt(v *time.Time) *EmailDraftCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetConversationContext sets the "conversation_context" field.
func (_c *EmailDraftCreate) SetConversationContext(v string) *EmailDraftCreate {
	_c.mutation.SetConversationContext(v)
	return _c
}

// SetNillableConversationContext sets the "conversation_context" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableConversationContext(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetConversationContext(*v)
	}
	return _c
}

// SetAiReasoning sets the "ai_reasoning" field.
func (_c *EmailDraftCreate) SetAiReasoning(v string) *EmailDraftCreate {
	_c.mutation.SetAiReasoning(v)
	return _c
}

// SetNillableAiReasoning sets the "ai_reasoning" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableAiReasoning(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetAiReasoning(*v)
	}
	return _c
}

// SetSafetyChecks sets the "safety_checks" field.
func (_c *EmailDraftCreate) SetSafetyChecks(v map[string]interface{}) *EmailDraftCreate {
	_c.mutation.SetSafetyChecks(v)
	return _c
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (_c *EmailDraftCreate) SetApprovalFeedback(v string) *EmailDraftCreate {
	_c.mutation.SetApprovalFeedback(v)
	return _c
}

// SetNillableApprovalFeedback sets the "approval_feedback" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableApprovalFeedback(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetApprovalFeedback(*v)
	}
	return _c
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_c *EmailDraftCreate) SetProviderMessageID(v string) *EmailDraftCreate {
	_c.mutation.SetProviderMessageID(v)
	return _c
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableProviderMessageID(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetProviderMessageID(*v)
	}
	return _c
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (_c *EmailDraftCreate) SetProviderThreadID(v string) *EmailDraftCreate {
	_c.mutation.SetProviderThreadID(v)
	return _c
}

// SetNillableProviderThreadID sets the "provider_thread_id" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableProviderThreadID(v *string) *EmailDraftCreate {
	if v != nil {
		_c.SetProviderThreadID(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *EmailDraftCreate) SetRetryCount(v int) *EmailDraftCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *EmailDraftCreate) SetNillableRetryCount(v *int) *EmailDraftCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailDraftCreate) SetID(v string) *EmailDraftCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *EmailDraftCreate) SetSession(v *Session) *EmailDraftCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the EmailDraftMutation object of the builder.
func (_c *EmailDraftCreate) Mutation() *EmailDraftMutation {
	return _c.mutation
}

// Save creates the EmailDraft in the database.
func (_c *EmailDraftCreate) Save(ctx context.Context) (*EmailDraft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailDraftCreate) SaveX(ctx context.Context) *EmailDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailDraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailDraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailDraftCreate) defaults() {
	if _, ok := _c.mutation.Tone(); !ok {
		v := emaildraft.DefaultTone
		_c.mutation.SetTone(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := emaildraft.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := emaildraft.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emaildraft.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emaildraft.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := emaildraft.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailDraftCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EmailDraft.session_id"`)}
	}
	if _, ok := _c.mutation.To(); !ok {
		return &ValidationError{Name: "to", err: errors.New(`ent: missing required field "EmailDraft.to"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "EmailDraft.subject"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "EmailDraft.body"`)}
	}
	if _, ok := _c.mutation.Tone(); !ok {
		return &ValidationError{Name: "tone", err: errors.New(`ent: missing required field "EmailDraft.tone"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "EmailDraft.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EmailDraft.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := emaildraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailDraft.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailDraft.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmailDraft.updated_at"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "EmailDraft.retry_count"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "EmailDraft.session"`)}
	}
	return nil
}

func (_c *EmailDraftCreate) sqlSave(ctx context.Context) (*EmailDraft, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EmailDraft.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailDraftCreate) createSpec() (*EmailDraft, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailDraft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emaildraft.Table, sqlgraph.NewFieldSpec(emaildraft.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(emaildraft.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.To(); ok {
		_spec.SetField(emaildraft.FieldTo, field.TypeString, value)
		_node.To = value
	}
	if value, ok := _c.mutation.Cc(); ok {
		_spec.SetField(emaildraft.FieldCc, field.TypeJSON, value)
		_node.Cc = value
	}
	if value, ok := _c.mutation.Bcc(); ok {
		_spec.SetField(emaildraft.FieldBcc, field.TypeJSON, value)
		_node.Bcc = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emaildraft.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(emaildraft.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(emaildraft.FieldTone, field.TypeString, value)
		_node.Tone = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(emaildraft.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(emaildraft.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emaildraft.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emaildraft.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(emaildraft.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(emaildraft.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(emaildraft.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.ConversationContext(); ok {
		_spec.SetField(emaildraft.FieldConversationContext, field.TypeString, value)
		_node.ConversationContext = value
	}
	if value, ok := _c.mutation.AiReasoning(); ok {
		_spec.SetField(emaildraft.FieldAiReasoning, field.TypeString, value)
		_node.AiReasoning = value
	}
	if value, ok := _c.mutation.SafetyChecks(); ok {
		_spec.SetField(emaildraft.FieldSafetyChecks, field.TypeJSON, value)
		_node.SafetyChecks = value
	}
	if value, ok := _c.mutation.ApprovalFeedback(); ok {
		_spec.SetField(emaildraft.FieldApprovalFeedback, field.TypeString, value)
		_node.ApprovalFeedback = &value
	}
	if value, ok := _c.mutation.ProviderMessageID(); ok {
		_spec.SetField(emaildraft.FieldProviderMessageID, field.TypeString, value)
		_node.ProviderMessageID = &value
	}
	if value, ok := _c.mutation.ProviderThreadID(); ok {
		_spec.SetField(emaildraft.FieldProviderThreadID, field.TypeString, value)
		_node.ProviderThreadID = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(emaildraft.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emaildraft.SessionTable,
			Columns: []string{emaildraft.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmailDraftCreateBulk is the builder for creating many EmailDraft entities in bulk.
type EmailDraftCreateBulk struct {
	config
	err      error
	builders []*EmailDraftCreate
}

// Save creates the EmailDraft entities in the database.
func (_c *EmailDraftCreateBulk) Save(ctx context.Context) ([]*EmailDraft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailDraft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailDraftMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EmailDraftCreateBulk) SaveX(ctx context.Context) []*EmailDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailDraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailDraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
