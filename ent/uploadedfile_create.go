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
	"github.com/sundialhq/maestro/ent/uploadedfile"
)

// UploadedFileCreate is the builder for creating a UploadedFile entity.
type UploadedFileCreate struct {
	config
	mutation *UploadedFileMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *UploadedFileCreate) SetSessionID(v string) *UploadedFileCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UploadedFileCreate) SetName(v string) *UploadedFileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetExtension sets the "extension" field.
func (_c *UploadedFileCreate) SetExtension(v string) *UploadedFileCreate {
	_c.mutation.SetExtension(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *UploadedFileCreate) SetSize(v int64) *UploadedFileCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *UploadedFileCreate) SetContent(v []byte) *UploadedFileCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *UploadedFileCreate) SetUploadedAt(v time.Time) *UploadedFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableUploadedAt(v *time.Time) *UploadedFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadedFileCreate) SetID(v string) *UploadedFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *UploadedFileCreate) SetSession(v *Session) *UploadedFileCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_c *UploadedFileCreate) Mutation() *UploadedFileMutation {
	return _c.mutation
}

// Save creates the UploadedFile in the database.
func (_c *UploadedFileCreate) Save(ctx context.Context) (*UploadedFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadedFileCreate) SaveX(ctx context.Context) *UploadedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadedFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := uploadedfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadedFileCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "UploadedFile.session_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "UploadedFile.name"`)}
	}
	if _, ok := _c.mutation.Extension(); !ok {
		return &ValidationError{Name: "extension", err: errors.New(`ent: missing required field "UploadedFile.extension"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "UploadedFile.size"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "UploadedFile.content"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "UploadedFile.uploaded_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "UploadedFile.session"`)}
	}
	return nil
}

func (_c *UploadedFileCreate) sqlSave(ctx context.Context) (*UploadedFile, error) {
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
			return nil, fmt.Errorf("unexpected UploadedFile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UploadedFileCreate) createSpec() (*UploadedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadedfile.Table, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(uploadedfile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Extension(); ok {
		_spec.SetField(uploadedfile.FieldExtension, field.TypeString, value)
		_node.Extension = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(uploadedfile.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(uploadedfile.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(uploadedfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadedfile.SessionTable,
			Columns: []string{uploadedfile.SessionColumn},
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

// UploadedFileCreateBulk is the builder for creating many UploadedFile entities in bulk.
type UploadedFileCreateBulk struct {
	config
	err      error
	builders []*UploadedFileCreate
}

// Save creates the UploadedFile entities in the database.
func (_c *UploadedFileCreateBulk) Save(ctx context.Context) ([]*UploadedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadedFileMutation)
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
func (_c *UploadedFileCreateBulk) SaveX(ctx context.Context) []*UploadedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
