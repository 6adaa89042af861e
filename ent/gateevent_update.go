// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quantatutor/quanta/ent/gateevent"
	"github.com/quantatutor/quanta/ent/predicate"
)

// GateEventUpdate is the builder for updating GateEvent entities.
type GateEventUpdate struct {
	config
	hooks    []Hook
	mutation *GateEventMutation
}

// Where appends a list predicates to the GateEventUpdate builder.
func (_u *GateEventUpdate) Where(ps ...predicate.GateEvent) *GateEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *GateEventUpdate) SetTopicID(v string) *GateEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *GateEventUpdate) SetNillableTopicID(v *string) *GateEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GateEventUpdate) SetOutcome(v string) *GateEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GateEventUpdate) SetNillableOutcome(v *string) *GateEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *GateEventUpdate) SetQuestionsAsked(v int) *GateEventUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *GateEventUpdate) SetNillableQuestionsAsked(v *int) *GateEventUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *GateEventUpdate) AddQuestionsAsked(v int) *GateEventUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *GateEventUpdate) SetCorrectAnswers(v int) *GateEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *GateEventUpdate) SetNillableCorrectAnswers(v *int) *GateEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *GateEventUpdate) AddCorrectAnswers(v int) *GateEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetWeakPrerequisites sets the "weak_prerequisites" field.
func (_u *GateEventUpdate) SetWeakPrerequisites(v []string) *GateEventUpdate {
	_u.mutation.SetWeakPrerequisites(v)
	return _u
}

// AppendWeakPrerequisites appends value to the "weak_prerequisites" field.
func (_u *GateEventUpdate) AppendWeakPrerequisites(v []string) *GateEventUpdate {
	_u.mutation.AppendWeakPrerequisites(v)
	return _u
}

// ClearWeakPrerequisites clears the value of the "weak_prerequisites" field.
func (_u *GateEventUpdate) ClearWeakPrerequisites() *GateEventUpdate {
	_u.mutation.ClearWeakPrerequisites()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GateEventUpdate) SetErrorMessage(v string) *GateEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GateEventUpdate) SetNillableErrorMessage(v *string) *GateEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the GateEventMutation object of the builder.
func (_u *GateEventUpdate) Mutation() *GateEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GateEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GateEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateEventUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := gateevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GateEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := gateevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GateEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *GateEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gateevent.Table, gateevent.Columns, sqlgraph.NewFieldSpec(gateevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(gateevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(gateevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(gateevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(gateevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(gateevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(gateevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakPrerequisites(); ok {
		_spec.SetField(gateevent.FieldWeakPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gateevent.FieldWeakPrerequisites, value)
		})
	}
	if _u.mutation.WeakPrerequisitesCleared() {
		_spec.ClearField(gateevent.FieldWeakPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(gateevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gateevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GateEventUpdateOne is the builder for updating a single GateEvent entity.
type GateEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GateEventMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *GateEventUpdateOne) SetTopicID(v string) *GateEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *GateEventUpdateOne) SetNillableTopicID(v *string) *GateEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GateEventUpdateOne) SetOutcome(v string) *GateEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GateEventUpdateOne) SetNillableOutcome(v *string) *GateEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *GateEventUpdateOne) SetQuestionsAsked(v int) *GateEventUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *GateEventUpdateOne) SetNillableQuestionsAsked(v *int) *GateEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *GateEventUpdateOne) AddQuestionsAsked(v int) *GateEventUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *GateEventUpdateOne) SetCorrectAnswers(v int) *GateEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *GateEventUpdateOne) SetNillableCorrectAnswers(v *int) *GateEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *GateEventUpdateOne) AddCorrectAnswers(v int) *GateEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetWeakPrerequisites sets the "weak_prerequisites" field.
func (_u *GateEventUpdateOne) SetWeakPrerequisites(v []string) *GateEventUpdateOne {
	_u.mutation.SetWeakPrerequisites(v)
	return _u
}

// AppendWeakPrerequisites appends value to the "weak_prerequisites" field.
func (_u *GateEventUpdateOne) AppendWeakPrerequisites(v []string) *GateEventUpdateOne {
	_u.mutation.AppendWeakPrerequisites(v)
	return _u
}

// ClearWeakPrerequisites clears the value of the "weak_prerequisites" field.
func (_u *GateEventUpdateOne) ClearWeakPrerequisites() *GateEventUpdateOne {
	_u.mutation.ClearWeakPrerequisites()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GateEventUpdateOne) SetErrorMessage(v string) *GateEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GateEventUpdateOne) SetNillableErrorMessage(v *string) *GateEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the GateEventMutation object of the builder.
func (_u *GateEventUpdateOne) Mutation() *GateEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GateEventUpdate builder.
func (_u *GateEventUpdateOne) Where(ps ...predicate.GateEvent) *GateEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GateEventUpdateOne) Select(field string, fields ...string) *GateEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GateEvent entity.
func (_u *GateEventUpdateOne) Save(ctx context.Context) (*GateEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateEventUpdateOne) SaveX(ctx context.Context) *GateEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GateEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateEventUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := gateevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GateEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := gateevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GateEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *GateEventUpdateOne) sqlSave(ctx context.Context) (_node *GateEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gateevent.Table, gateevent.Columns, sqlgraph.NewFieldSpec(gateevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GateEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gateevent.FieldID)
		for _, f := range fields {
			if !gateevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gateevent.FieldID {
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
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(gateevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(gateevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(gateevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(gateevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(gateevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(gateevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakPrerequisites(); ok {
		_spec.SetField(gateevent.FieldWeakPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gateevent.FieldWeakPrerequisites, value)
		})
	}
	if _u.mutation.WeakPrerequisitesCleared() {
		_spec.ClearField(gateevent.FieldWeakPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(gateevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &GateEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gateevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
