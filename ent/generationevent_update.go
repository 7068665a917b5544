// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vocasheet/ent/generationevent"
	"github.com/abhisek/vocasheet/ent/predicate"
)

// GenerationEventUpdate is the builder for updating GenerationEvent entities.
type GenerationEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationEventMutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdate) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *GenerationEventUpdate) SetRequestID(v string) *GenerationEventUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableRequestID(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *GenerationEventUpdate) SetWord(v string) *GenerationEventUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableWord(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *GenerationEventUpdate) SetLevel(v int) *GenerationEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableLevel(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *GenerationEventUpdate) AddLevel(v int) *GenerationEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *GenerationEventUpdate) SetCacheHit(v bool) *GenerationEventUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableCacheHit(v *bool) *GenerationEventUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetImageStatus sets the "image_status" field.
func (_u *GenerationEventUpdate) SetImageStatus(v string) *GenerationEventUpdate {
	_u.mutation.SetImageStatus(v)
	return _u
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableImageStatus(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetImageStatus(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdate) SetSuccess(v bool) *GenerationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableSuccess(v *bool) *GenerationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationEventUpdate) SetErrorMessage(v string) *GenerationEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableErrorMessage(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenerationEventUpdate) SetLatencyMs(v int64) *GenerationEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableLatencyMs(v *int64) *GenerationEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenerationEventUpdate) AddLatencyMs(v int64) *GenerationEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdate) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationEventUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := generationevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(generationevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(generationevent.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(generationevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(generationevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(generationevent.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageStatus(); ok {
		_spec.SetField(generationevent.FieldImageStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationEventUpdateOne is the builder for updating a single GenerationEvent entity.
type GenerationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *GenerationEventUpdateOne) SetRequestID(v string) *GenerationEventUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableRequestID(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *GenerationEventUpdateOne) SetWord(v string) *GenerationEventUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableWord(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *GenerationEventUpdateOne) SetLevel(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableLevel(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *GenerationEventUpdateOne) AddLevel(v int) *GenerationEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *GenerationEventUpdateOne) SetCacheHit(v bool) *GenerationEventUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableCacheHit(v *bool) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetImageStatus sets the "image_status" field.
func (_u *GenerationEventUpdateOne) SetImageStatus(v string) *GenerationEventUpdateOne {
	_u.mutation.SetImageStatus(v)
	return _u
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableImageStatus(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetImageStatus(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdateOne) SetSuccess(v bool) *GenerationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableSuccess(v *bool) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenerationEventUpdateOne) SetErrorMessage(v string) *GenerationEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableErrorMessage(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenerationEventUpdateOne) SetLatencyMs(v int64) *GenerationEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableLatencyMs(v *int64) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenerationEventUpdateOne) AddLatencyMs(v int64) *GenerationEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdateOne) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdateOne) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationEventUpdateOne) Select(field string, fields ...string) *GenerationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationEvent entity.
func (_u *GenerationEventUpdateOne) Save(ctx context.Context) (*GenerationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) SaveX(ctx context.Context) *GenerationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationEventUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := generationevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "GenerationEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationEventUpdateOne) sqlSave(ctx context.Context) (_node *GenerationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationevent.FieldID)
		for _, f := range fields {
			if !generationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationevent.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(generationevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(generationevent.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(generationevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(generationevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(generationevent.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageStatus(); ok {
		_spec.SetField(generationevent.FieldImageStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generationevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(generationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &GenerationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
