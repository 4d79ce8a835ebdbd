// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sdey/revu/ent/llmrequestevent"
	"github.com/sdey/revu/ent/moduleevent"
	"github.com/sdey/revu/ent/reviewevent"
	"github.com/sdey/revu/ent/schema"
	"github.com/sdey/revu/ent/sessionevent"
	"github.com/sdey/revu/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	moduleeventMixin := schema.ModuleEvent{}.Mixin()
	moduleeventMixinFields0 := moduleeventMixin[0].Fields()
	_ = moduleeventMixinFields0
	moduleeventFields := schema.ModuleEvent{}.Fields()
	_ = moduleeventFields
	// moduleeventDescTimestamp is the schema descriptor for timestamp field.
	moduleeventDescTimestamp := moduleeventMixinFields0[1].Descriptor()
	// moduleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	moduleevent.DefaultTimestamp = moduleeventDescTimestamp.Default.(func() time.Time)
	// moduleeventDescLearnerID is the schema descriptor for learner_id field.
	moduleeventDescLearnerID := moduleeventFields[0].Descriptor()
	// moduleevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	moduleevent.LearnerIDValidator = moduleeventDescLearnerID.Validators[0].(func(string) error)
	// moduleeventDescCourseID is the schema descriptor for course_id field.
	moduleeventDescCourseID := moduleeventFields[1].Descriptor()
	// moduleevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	moduleevent.CourseIDValidator = moduleeventDescCourseID.Validators[0].(func(string) error)
	// moduleeventDescModuleID is the schema descriptor for module_id field.
	moduleeventDescModuleID := moduleeventFields[2].Descriptor()
	// moduleevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	moduleevent.ModuleIDValidator = moduleeventDescModuleID.Validators[0].(func(string) error)
	// moduleeventDescAction is the schema descriptor for action field.
	moduleeventDescAction := moduleeventFields[3].Descriptor()
	// moduleevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	moduleevent.ActionValidator = moduleeventDescAction.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescLearnerID is the schema descriptor for learner_id field.
	revieweventDescLearnerID := revieweventFields[0].Descriptor()
	// reviewevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewevent.LearnerIDValidator = revieweventDescLearnerID.Validators[0].(func(string) error)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[1].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescCourseID is the schema descriptor for course_id field.
	revieweventDescCourseID := revieweventFields[2].Descriptor()
	// reviewevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	reviewevent.CourseIDValidator = revieweventDescCourseID.Validators[0].(func(string) error)
	// revieweventDescModuleID is the schema descriptor for module_id field.
	revieweventDescModuleID := revieweventFields[3].Descriptor()
	// reviewevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	reviewevent.ModuleIDValidator = revieweventDescModuleID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[4].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescItemKind is the schema descriptor for item_kind field.
	revieweventDescItemKind := revieweventFields[5].Descriptor()
	// reviewevent.ItemKindValidator is a validator for the "item_kind" field. It is called by the builders before save.
	reviewevent.ItemKindValidator = revieweventDescItemKind.Validators[0].(func(string) error)
	// revieweventDescAction is the schema descriptor for action field.
	revieweventDescAction := revieweventFields[6].Descriptor()
	// reviewevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	reviewevent.ActionValidator = revieweventDescAction.Validators[0].(func(string) error)
	// revieweventDescDifficulty is the schema descriptor for difficulty field.
	revieweventDescDifficulty := revieweventFields[7].Descriptor()
	// reviewevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	reviewevent.DefaultDifficulty = revieweventDescDifficulty.Default.(string)
	// revieweventDescTimeMs is the schema descriptor for time_ms field.
	revieweventDescTimeMs := revieweventFields[8].Descriptor()
	// reviewevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	reviewevent.DefaultTimeMs = revieweventDescTimeMs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescCourseID is the schema descriptor for course_id field.
	sessioneventDescCourseID := sessioneventFields[2].Descriptor()
	// sessionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	sessionevent.CourseIDValidator = sessioneventDescCourseID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescItemsReviewed is the schema descriptor for items_reviewed field.
	sessioneventDescItemsReviewed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemsReviewed holds the default value on creation for the items_reviewed field.
	sessionevent.DefaultItemsReviewed = sessioneventDescItemsReviewed.Default.(int)
	// sessioneventDescItemsSkipped is the schema descriptor for items_skipped field.
	sessioneventDescItemsSkipped := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultItemsSkipped holds the default value on creation for the items_skipped field.
	sessionevent.DefaultItemsSkipped = sessioneventDescItemsSkipped.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshotDescLearnerID is the schema descriptor for learner_id field.
	snapshotDescLearnerID := snapshotFields[2].Descriptor()
	// snapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	snapshot.LearnerIDValidator = snapshotDescLearnerID.Validators[0].(func(string) error)
}
