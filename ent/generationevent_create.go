// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vocasheet/ent/generationevent"
)

// GenerationEventCreate is the builder for creating a GenerationEvent entity.
type GenerationEventCreate struct {
	config
	mutation *GenerationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GenerationEventCreate) SetSequence(v int64) *GenerationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenerationEventCreate) SetTimestamp(v time.Time) *GenerationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableTimestamp(v *time.Time) *GenerationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *GenerationEventCreate) SetRequestID(v string) *GenerationEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetWord sets the "word" field.
func (_c *GenerationEventCreate) SetWord(v string) *GenerationEventCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *GenerationEventCreate) SetLevel(v int) *GenerationEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *GenerationEventCreate) SetCacheHit(v bool) *GenerationEventCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableCacheHit(v *bool) *GenerationEventCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetImageStatus sets the "image_status" field.
func (_c *GenerationEventCreate) SetImageStatus(v string) *GenerationEventCreate {
	_c.mutation.SetImageStatus(v)
	return _c
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableImageStatus(v *string) *GenerationEventCreate {
	if v != nil {
		_c.SetImageStatus(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *GenerationEventCreate) SetSuccess(v bool) *GenerationEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenerationEventCreate) SetErrorMessage(v string) *GenerationEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableErrorMessage(v *string) *GenerationEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GenerationEventCreate) SetLatencyMs(v int64) *GenerationEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *GenerationEventCreate) SetNillableLatencyMs(v *int64) *GenerationEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_c *GenerationEventCreate) Mutation() *GenerationEventMutation {
	return _c.mutation
}

// Save creates the GenerationEvent in the database.
func (_c *GenerationEventCreate) Save(ctx context.Context) (*GenerationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationEventCreate) SaveX(ctx context.Context) *GenerationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := generationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := generationevent.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
	if _, ok := _c.mutation.ImageStatus(); !ok {
		v := generationevent.DefaultImageStatus
		_c.mutation.SetImageStatus(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := generationevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := generationevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GenerationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenerationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "GenerationEvent.request_id"`)}
	}
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "GenerationEvent.word"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "GenerationEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := generationevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "GenerationEvent.cache_hit"`)}
	}
	if _, ok := _c.mutation.ImageStatus(); !ok {
		return &ValidationError{Name: "image_status", err: errors.New(`ent: missing required field "GenerationEvent.image_status"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "GenerationEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "GenerationEvent.error_message"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GenerationEvent.latency_ms"`)}
	}
	return nil
}

func (_c *GenerationEventCreate) sqlSave(ctx context.Context) (*GenerationEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationEventCreate) createSpec() (*GenerationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationevent.Table, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(generationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(generationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(generationevent.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(generationevent.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(generationevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(generationevent.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	if value, ok := _c.mutation.ImageStatus(); ok {
		_spec.SetField(generationevent.FieldImageStatus, field.TypeString, value)
		_node.ImageStatus = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generationevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// GenerationEventCreateBulk is the builder for creating many GenerationEvent entities in bulk.
type GenerationEventCreateBulk struct {
	config
	err      error
	builders []*GenerationEventCreate
}

// Save creates the GenerationEvent entities in the database.
func (_c *GenerationEventCreateBulk) Save(ctx context.Context) ([]*GenerationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *GenerationEventCreateBulk) SaveX(ctx context.Context) []*GenerationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
