package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records one worksheet generation attempt.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Comment("Per-request UUID shared with log lines"),
		field.String("word").
			Comment("Word as entered, trimmed"),
		field.Int("level").
			Range(1, 4).
			Comment("Proficiency level 1-4"),
		field.Bool("cache_hit").
			Default(false).
			Comment("Whether the image came from the cache"),
		field.String("image_status").
			Default("").
			Comment("cached, generated, quota, failed, empty, disabled"),
		field.Bool("success").
			Comment("Whether a worksheet was produced"),
		field.String("error_message").
			Default("").
			Comment("Text generation error if failed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the whole generation"),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word"),
		index.Fields("success"),
	}
}
