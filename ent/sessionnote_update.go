// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sundialhq/maestro/ent/predicate"
	"github.com/sundialhq/maestro/ent/sessionnote"
)

// SessionNoteUpdate is the builder for updating SessionNote entities.
type SessionNoteUpdate struct {
	config
	hooks    []Hook
	mutation *SessionNoteMutation
}

// Where appends a list predicates to the SessionNoteUpdate builder.
func (_u *SessionNoteUpdate) Where(ps ...predicate.SessionNote) *SessionNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionNoteUpdate) SetTitle(v string) *SessionNoteUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionNoteUpdate) SetNillableTitle(v *string) *SessionNoteUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetProviderDocID sets the "provider_doc_id" field.
func (_u *SessionNoteUpdate) SetProviderDocID(v string) *SessionNoteUpdate {
	_u.mutation.SetProviderDocID(v)
	return _u
}

// SetNillableProviderDocID sets the "provider_doc_id" field if the given value is not nil.
func (_u *SessionNoteUpdate) SetNillableProviderDocID(v *string) *SessionNoteUpdate {
	if v != nil {
		_u.SetProviderDocID(*v)
	}
	return _u
}

// ClearProviderDocID clears the value of the "provider_doc_id" field.
func (_u *SessionNoteUpdate) ClearProviderDocID() *SessionNoteUpdate {
	_u.mutation.ClearProviderDocID()
	return _u
}

// SetURL sets the "url" field.
func (_u *SessionNoteUpdate) SetURL(v string) *SessionNoteUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SessionNoteUpdate) SetNillableURL(v *string) *SessionNoteUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *SessionNoteUpdate) ClearURL() *SessionNoteUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetContent sets the "content" field.
func (_u *SessionNoteUpdate) SetContent(v string) *SessionNoteUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SessionNoteUpdate) SetNillableContent(v *string) *SessionNoteUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SessionNoteUpdate) ClearContent() *SessionNoteUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionNoteUpdate) SetUpdatedAt(v time.Time) *SessionNoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionNoteMutation object of the builder.
func (_u *SessionNoteUpdate) Mutation() *SessionNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionNoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionNoteUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionNote.session"`)
	}
	return nil
}

func (_u *SessionNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionnote.Table, sessionnote.Columns, sqlgraph.NewFieldSpec(sessionnote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sessionnote.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderDocID(); ok {
		_spec.SetField(sessionnote.FieldProviderDocID, field.TypeString, value)
	}
	if _u.mutation.ProviderDocIDCleared() {
		_spec.ClearField(sessionnote.FieldProviderDocID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(sessionnote.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(sessionnote.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sessionnote.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(sessionnote.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionNoteUpdateOne is the builder for updating a single SessionNote entity.
type SessionNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionNoteMutation
}

// SetTitle sets the "title" field.
func (_u *SessionNoteUpdateOne) SetTitle(v string) *SessionNoteUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionNoteUpdateOne) SetNillableTitle(v *string) *SessionNoteUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetProviderDocID sets the "provider_doc_id" field.
func (_u *SessionNoteUpdateOne) SetProviderDocID(v string) *SessionNoteUpdateOne {
	_u.mutation.SetProviderDocID(v)
	return _u
}

// SetNillableProviderDocID sets the "provider_doc_id" field if the given value is not nil.
func (_u *SessionNoteUpdateOne) SetNillableProviderDocID(v *string) *SessionNoteUpdateOne {
	if v != nil {
		_u.SetProviderDocID(*v)
	}
	return _u
}

// ClearProviderDocID clears the value of the "provider_doc_id" field.
func (_u *SessionNoteUpdateOne) ClearProviderDocID() *SessionNoteUpdateOne {
	_u.mutation.ClearProviderDocID()
	return _u
}

// SetURL sets the "url" field.
func (_u *SessionNoteUpdateOne) SetURL(v string) *SessionNoteUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SessionNoteUpdateOne) SetNillableURL(v *string) *SessionNoteUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *SessionNoteUpdateOne) ClearURL() *SessionNoteUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetContent sets the "content" field.
func (_u *SessionNoteUpdateOne) SetContent(v string) *SessionNoteUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SessionNoteUpdateOne) SetNillableContent(v *string) *SessionNoteUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SessionNoteUpdateOne) ClearContent() *SessionNoteUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionNoteUpdateOne) SetUpdatedAt(v time.Time) *SessionNoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionNoteMutation object of the builder.
func (_u *SessionNoteUpdateOne) Mutation() *SessionNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionNoteUpdate builder.
func (_u *SessionNoteUpdateOne) Where(ps ...predicate.SessionNote) *SessionNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionNoteUpdateOne) Select(field string, fields ...string) *SessionNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionNote entity.
func (_u *SessionNoteUpdateOne) Save(ctx context.Context) (*SessionNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionNoteUpdateOne) SaveX(ctx context.Context) *SessionNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionNoteUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionNote.session"`)
	}
	return nil
}

func (_u *SessionNoteUpdateOne) sqlSave(ctx context.Context) (_node *SessionNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionnote.Table, sessionnote.Columns, sqlgraph.NewFieldSpec(sessionnote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionnote.FieldID)
		for _, f := range fields {
			if !sessionnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionnote.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sessionnote.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderDocID(); ok {
		_spec.SetField(sessionnote.FieldProviderDocID, field.TypeString, value)
	}
	if _u.mutation.ProviderDocIDCleared() {
		_spec.ClearField(sessionnote.FieldProviderDocID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(sessionnote.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(sessionnote.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sessionnote.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(sessionnote.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionnote.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
