// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sdey/revu/ent/predicate"
	"github.com/sdey/revu/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewEventUpdate) SetLearnerID(v string) *ReviewEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableLearnerID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ReviewEventUpdate) SetCourseID(v string) *ReviewEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCourseID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ReviewEventUpdate) SetModuleID(v string) *ReviewEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableModuleID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdate) SetItemID(v string) *ReviewEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemKind sets the "item_kind" field.
func (_u *ReviewEventUpdate) SetItemKind(v string) *ReviewEventUpdate {
	_u.mutation.SetItemKind(v)
	return _u
}

// SetNillableItemKind sets the "item_kind" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemKind(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemKind(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewEventUpdate) SetAction(v string) *ReviewEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableAction(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewEventUpdate) SetDifficulty(v string) *ReviewEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDifficulty(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ReviewEventUpdate) SetTimeMs(v int) *ReviewEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTimeMs(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ReviewEventUpdate) AddTimeMs(v int) *ReviewEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := reviewevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := reviewevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemKind(); ok {
		if err := reviewevent.ItemKindValidator(v); err != nil {
			return &ValidationError{Name: "item_kind", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(reviewevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(reviewevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemKind(); ok {
		_spec.SetField(reviewevent.FieldItemKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewEventUpdateOne) SetLearnerID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableLearnerID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ReviewEventUpdateOne) SetCourseID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCourseID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ReviewEventUpdateOne) SetModuleID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableModuleID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdateOne) SetItemID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemKind sets the "item_kind" field.
func (_u *ReviewEventUpdateOne) SetItemKind(v string) *ReviewEventUpdateOne {
	_u.mutation.SetItemKind(v)
	return _u
}

// SetNillableItemKind sets the "item_kind" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemKind(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemKind(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewEventUpdateOne) SetAction(v string) *ReviewEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableAction(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewEventUpdateOne) SetDifficulty(v string) *ReviewEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDifficulty(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ReviewEventUpdateOne) SetTimeMs(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTimeMs(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ReviewEventUpdateOne) AddTimeMs(v int) *ReviewEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := reviewevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := reviewevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemKind(); ok {
		if err := reviewevent.ItemKindValidator(v); err != nil {
			return &ValidationError{Name: "item_kind", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(reviewevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(reviewevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemKind(); ok {
		_spec.SetField(reviewevent.FieldItemKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(reviewevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
