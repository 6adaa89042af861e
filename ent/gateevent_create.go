// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantatutor/quanta/ent/gateevent"
)

// GateEventCreate is the builder for creating a GateEvent entity.
type GateEventCreate struct {
	config
	mutation *GateEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GateEventCreate) SetSequence(v int64) *GateEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GateEventCreate) SetTimestamp(v time.Time) *GateEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GateEventCreate) SetNillableTimestamp(v *time.Time) *GateEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *GateEventCreate) SetTopicID(v string) *GateEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *GateEventCreate) SetOutcome(v string) *GateEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_c *GateEventCreate) SetQuestionsAsked(v int) *GateEventCreate {
	_c.mutation.SetQuestionsAsked(v)
	return _c
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_c *GateEventCreate) SetNillableQuestionsAsked(v *int) *GateEventCreate {
	if v != nil {
		_c.SetQuestionsAsked(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *GateEventCreate) SetCorrectAnswers(v int) *GateEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *GateEventCreate) SetNillableCorrectAnswers(v *int) *GateEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetWeakPrerequisites sets the "weak_prerequisites" field.
func (_c *GateEventCreate) SetWeakPrerequisites(v []string) *GateEventCreate {
	_c.mutation.SetWeakPrerequisites(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GateEventCreate) SetErrorMessage(v string) *GateEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GateEventCreate) SetNillableErrorMessage(v *string) *GateEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the GateEventMutation object of the builder.
func (_c *GateEventCreate) Mutation() *GateEventMutation {
	return _c.mutation
}

// Save creates the GateEvent in the database.
func (_c *GateEventCreate) Save(ctx context.Context) (*GateEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GateEventCreate) SaveX(ctx context.Context) *GateEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GateEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gateevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		v := gateevent.DefaultQuestionsAsked
		_c.mutation.SetQuestionsAsked(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := gateevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := gateevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GateEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GateEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GateEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "GateEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := gateevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GateEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "GateEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := gateevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GateEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		return &ValidationError{Name: "questions_asked", err: errors.New(`ent: missing required field "GateEvent.questions_asked"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "GateEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "GateEvent.error_message"`)}
	}
	return nil
}

func (_c *GateEventCreate) sqlSave(ctx context.Context) (*GateEvent, error) {
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

func (_c *GateEventCreate) createSpec() (*GateEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GateEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gateevent.Table, sqlgraph.NewFieldSpec(gateevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gateevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gateevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(gateevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(gateevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.QuestionsAsked(); ok {
		_spec.SetField(gateevent.FieldQuestionsAsked, field.TypeInt, value)
		_node.QuestionsAsked = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(gateevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.WeakPrerequisites(); ok {
		_spec.SetField(gateevent.FieldWeakPrerequisites, field.TypeJSON, value)
		_node.WeakPrerequisites = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(gateevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// GateEventCreateBulk is the builder for creating many GateEvent entities in bulk.
type GateEventCreateBulk struct {
	config
	err      error
	builders []*GateEventCreate
}

// Save creates the GateEvent entities in the database.
func (_c *GateEventCreateBulk) Save(ctx context.Context) ([]*GateEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GateEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GateEventMutation)
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
func (_c *GateEventCreateBulk) SaveX(ctx context.Context) []*GateEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
