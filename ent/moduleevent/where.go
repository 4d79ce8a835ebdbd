// Code generated by ent, DO NOT EDIT.

package moduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sdey/revu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldLearnerID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldCourseID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldAction, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldCourseID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldAction, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.NotPredicates(p))
}
