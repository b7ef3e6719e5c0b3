// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sundialhq/maestro/ent/session"
	"github.com/sundialhq/maestro/ent/sessionnote"
)

// SessionNoteCreate is the builder for creating a SessionNote entity.
type SessionNoteCreate struct {
	config
	mutation *SessionNoteMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionNoteCreate) SetSessionID(v string) *SessionNoteCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SessionNoteCreate) SetTitle(v string) *SessionNoteCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetProviderDocID sets the "provider_doc_id" field.
func (_c *SessionNoteCreate) SetProviderDocID(v string) *SessionNoteCreate {
	_c.mutation.SetProviderDocID(v)
	return _c
}

// SetNillableProviderDocID sets the "provider_doc_id" field if the given value is not nil.
func (_c *SessionNoteCreate) SetNillableProviderDocID(v *string) *SessionNoteCreate {
	if v != nil {
		_c.SetProviderDocID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *SessionNoteCreate) SetURL(v string) *SessionNoteCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *SessionNoteCreate) SetNillableURL(v *string) *SessionNoteCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *SessionNoteCreate) SetContent(v string) *SessionNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *SessionNoteCreate) SetNillableContent(v *string) *SessionNoteCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionNoteCreate) SetCreatedAt(v time.Time) *SessionNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionNoteCreate) SetNillableCreatedAt(v *time.Time) *SessionNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionNoteCreate) SetUpdatedAt(v time.Time) *SessionNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionNoteCreate) SetNillableUpdatedAt(v *time.Time) *SessionNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionNoteCreate) SetID(v string) *SessionNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *SessionNoteCreate) SetSession(v *Session) *SessionNoteCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionNoteMutation object of the builder.
func (_c *SessionNoteCreate) Mutation() *SessionNoteMutation {
	return _c.mutation
}

// Save creates the SessionNote in the database.
func (_c *SessionNoteCreate) Save(ctx context.Context) (*SessionNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionNoteCreate) SaveX(ctx context.Context) *SessionNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionnote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionnote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionNoteCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionNote.session_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SessionNote.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionNote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionNote.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionNote.session"`)}
	}
	return nil
}

func (_c *SessionNoteCreate) sqlSave(ctx context.Context) (*SessionNote, error) {
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
			return nil, fmt.Errorf("unexpected SessionNote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionNoteCreate) createSpec() (*SessionNote, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionnote.Table, sqlgraph.NewFieldSpec(sessionnote.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(sessionnote.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ProviderDocID(); ok {
		_spec.SetField(sessionnote.FieldProviderDocID, field.TypeString, value)
		_node.ProviderDocID = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(sessionnote.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(sessionnote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionnote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionnote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionnote.SessionTable,
			Columns: []string{sessionnote.SessionColumn},
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

// SessionNoteCreateBulk is the builder for creating many SessionNote entities in bulk.
type SessionNoteCreateBulk struct {
	config
	err      error
	builders []*SessionNoteCreate
}

// Save creates the SessionNote entities in the database.
func (_c *SessionNoteCreateBulk) Save(ctx context.Context) ([]*SessionNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionNoteMutation)
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
func (_c *SessionNoteCreateBulk) SaveX(ctx context.Context) []*SessionNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
