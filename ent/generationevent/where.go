// Code generated by ent, DO NOT EDIT.

package generationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/vocasheet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldRequestID, v))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldWord, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldLevel, v))
}

// CacheHit applies equality check predicate on the "cache_hit" field. It's identical to CacheHitEQ.
func CacheHit(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldCacheHit, v))
}

// ImageStatus applies equality check predicate on the "image_status" field. It's identical to ImageStatusEQ.
func ImageStatus(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldImageStatus, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldRequestID, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldWord, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldLevel, v))
}

// CacheHitEQ applies the EQ predicate on the "cache_hit" field.
func CacheHitEQ(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldCacheHit, v))
}

// CacheHitNEQ applies the NEQ predicate on the "cache_hit" field.
func CacheHitNEQ(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldCacheHit, v))
}

// ImageStatusEQ applies the EQ predicate on the "image_status" field.
func ImageStatusEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldImageStatus, v))
}

// ImageStatusNEQ applies the NEQ predicate on the "image_status" field.
func ImageStatusNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldImageStatus, v))
}

// ImageStatusIn applies the In predicate on the "image_status" field.
func ImageStatusIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldImageStatus, vs...))
}

// ImageStatusNotIn applies the NotIn predicate on the "image_status" field.
func ImageStatusNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldImageStatus, vs...))
}

// ImageStatusGT applies the GT predicate on the "image_status" field.
func ImageStatusGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldImageStatus, v))
}

// ImageStatusGTE applies the GTE predicate on the "image_status" field.
func ImageStatusGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldImageStatus, v))
}

// ImageStatusLT applies the LT predicate on the "image_status" field.
func ImageStatusLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldImageStatus, v))
}

// ImageStatusLTE applies the LTE predicate on the "image_status" field.
func ImageStatusLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldImageStatus, v))
}

// ImageStatusContains applies the Contains predicate on the "image_status" field.
func ImageStatusContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldImageStatus, v))
}

// ImageStatusHasPrefix applies the HasPrefix predicate on the "image_status" field.
func ImageStatusHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldImageStatus, v))
}

// ImageStatusHasSuffix applies the HasSuffix predicate on the "image_status" field.
func ImageStatusHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldImageStatus, v))
}

// ImageStatusEqualFold applies the EqualFold predicate on the "image_status" field.
func ImageStatusEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldImageStatus, v))
}

// ImageStatusContainsFold applies the ContainsFold predicate on the "image_status" field.
func ImageStatusContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldImageStatus, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationEvent) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationEvent) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationEvent) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.NotPredicates(p))
}
