// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sundialhq/maestro/ent/predicate"
	"github.com/sundialhq/maestro/ent/uploadedfile"
)

// UploadedFileUpdate is the builder for updating UploadedFile entities.
type UploadedFileUpdate struct {
	config
	hooks    []Hook
	mutation *UploadedFileMutation
}

// Where appends a list predicates to the UploadedFileUpdate builder.
func (_u *UploadedFileUpdate) Where(ps ...predicate.UploadedFile) *UploadedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UploadedFileUpdate) SetName(v string) *UploadedFileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableName(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetExtension sets the "extension" field.
func (_u *UploadedFileUpdate) SetExtension(v string) *UploadedFileUpdate {
	_u.mutation.SetExtension(v)
	return _u
}

// SetNillableExtension sets the "extension" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableExtension(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetExtension(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *UploadedFileUpdate) SetSize(v int64) *UploadedFileUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableSize(v *int64) *UploadedFileUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *UploadedFileUpdate) AddSize(v int64) *UploadedFileUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *UploadedFileUpdate) SetContent(v []byte) *UploadedFileUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_u *UploadedFileUpdate) Mutation() *UploadedFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadedFileUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadedFile.session"`)
	}
	return nil
}

func (_u *UploadedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(uploadedfile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extension(); ok {
		_spec.SetField(uploadedfile.FieldExtension, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(uploadedfile.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(uploadedfile.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(uploadedfile.FieldContent, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadedFileUpdateOne is the builder for updating a single UploadedFile entity.
type UploadedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadedFileMutation
}

// SetName sets the "name" field.
func (_u *UploadedFileUpdateOne) SetName(v string) *UploadedFileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableName(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetExtension sets the "extension" field.
func (_u *UploadedFileUpdateOne) SetExtension(v string) *UploadedFileUpdateOne {
	_u.mutation.SetExtension(v)
	return _u
}

// SetNillableExtension sets the "extension" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableExtension(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetExtension(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *UploadedFileUpdateOne) SetSize(v int64) *UploadedFileUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableSize(v *int64) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *UploadedFileUpdateOne) AddSize(v int64) *UploadedFileUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *UploadedFileUpdateOne) SetContent(v []byte) *UploadedFileUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_u *UploadedFileUpdateOne) Mutation() *UploadedFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UploadedFileUpdate builder.
func (_u *UploadedFileUpdateOne) Where(ps ...predicate.UploadedFile) *UploadedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadedFileUpdateOne) Select(field string, fields ...string) *UploadedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadedFile entity.
func (_u *UploadedFileUpdateOne) Save(ctx context.Context) (*UploadedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadedFileUpdateOne) SaveX(ctx context.Context) *UploadedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadedFileUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadedFile.session"`)
	}
	return nil
}

func (_u *UploadedFileUpdateOne) sqlSave(ctx context.Context) (_node *UploadedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadedfile.FieldID)
		for _, f := range fields {
			if !uploadedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadedfile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(uploadedfile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extension(); ok {
		_spec.SetField(uploadedfile.FieldExtension, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(uploadedfile.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(uploadedfile.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(uploadedfile.FieldContent, field.TypeBytes, value)
	}
	_node = &UploadedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
