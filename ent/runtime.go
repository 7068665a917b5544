// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/vocasheet/ent/generationevent"
	"github.com/abhisek/vocasheet/ent/llmrequestevent"
	"github.com/abhisek/vocasheet/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescLevel is the schema descriptor for level field.
	generationeventDescLevel := generationeventFields[2].Descriptor()
	// generationevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	generationevent.LevelValidator = generationeventDescLevel.Validators[0].(func(int) error)
	// generationeventDescCacheHit is the schema descriptor for cache_hit field.
	generationeventDescCacheHit := generationeventFields[3].Descriptor()
	// generationevent.DefaultCacheHit holds the default value on creation for the cache_hit field.
	generationevent.DefaultCacheHit = generationeventDescCacheHit.Default.(bool)
	// generationeventDescImageStatus is the schema descriptor for image_status field.
	generationeventDescImageStatus := generationeventFields[4].Descriptor()
	// generationevent.DefaultImageStatus holds the default value on creation for the image_status field.
	generationevent.DefaultImageStatus = generationeventDescImageStatus.Default.(string)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[6].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[7].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
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
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
