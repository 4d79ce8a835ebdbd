// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sdey/revu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldLearnerID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldCourseID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldModuleID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemKind applies equality check predicate on the "item_kind" field. It's identical to ItemKindEQ.
func ItemKind(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldItemKind, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldAction, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldDifficulty, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldCourseID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldItemID, v))
}

// ItemKindEQ applies the EQ predicate on the "item_kind" field.
func ItemKindEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldItemKind, v))
}

// ItemKindNEQ applies the NEQ predicate on the "item_kind" field.
func ItemKindNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldItemKind, v))
}

// ItemKindIn applies the In predicate on the "item_kind" field.
func ItemKindIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldItemKind, vs...))
}

// ItemKindNotIn applies the NotIn predicate on the "item_kind" field.
func ItemKindNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldItemKind, vs...))
}

// ItemKindGT applies the GT predicate on the "item_kind" field.
func ItemKindGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldItemKind, v))
}

// ItemKindGTE applies the GTE predicate on the "item_kind" field.
func ItemKindGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldItemKind, v))
}

// ItemKindLT applies the LT predicate on the "item_kind" field.
func ItemKindLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldItemKind, v))
}

// ItemKindLTE applies the LTE predicate on the "item_kind" field.
func ItemKindLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldItemKind, v))
}

// ItemKindContains applies the Contains predicate on the "item_kind" field.
func ItemKindContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldItemKind, v))
}

// ItemKindHasPrefix applies the HasPrefix predicate on the "item_kind" field.
func ItemKindHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldItemKind, v))
}

// ItemKindHasSuffix applies the HasSuffix predicate on the "item_kind" field.
func ItemKindHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldItemKind, v))
}

// ItemKindEqualFold applies the EqualFold predicate on the "item_kind" field.
func ItemKindEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldItemKind, v))
}

// ItemKindContainsFold applies the ContainsFold predicate on the "item_kind" field.
func ItemKindContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldItemKind, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldAction, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.NotPredicates(p))
}
