// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/vocasheet/ent/generationevent"
)

// GenerationEvent is the model entity for the GenerationEvent schema.
type GenerationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Per-request UUID shared with log lines
	RequestID string `json:"request_id,omitempty"`
	// Word as entered, trimmed
	Word string `json:"word,omitempty"`
	// Proficiency level 1-4
	Level int `json:"level,omitempty"`
	// Whether the image came from the cache
	CacheHit bool `json:"cache_hit,omitempty"`
	// cached, generated, quota, failed, empty, disabled
	ImageStatus string `json:"image_status,omitempty"`
	// Whether a worksheet was produced
	Success bool `json:"success,omitempty"`
	// Text generation error if failed
	ErrorMessage string `json:"error_message,omitempty"`
	// Wall-clock time for the whole generation
	LatencyMs    int64 `json:"latency_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationevent.FieldCacheHit, generationevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case generationevent.FieldID, generationevent.FieldSequence, generationevent.FieldLevel, generationevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case generationevent.FieldRequestID, generationevent.FieldWord, generationevent.FieldImageStatus, generationevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case generationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationEvent fields.
func (_m *GenerationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case generationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case generationevent.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case generationevent.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case generationevent.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case generationevent.FieldCacheHit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cache_hit", values[i])
			} else if value.Valid {
				_m.CacheHit = value.Bool
			}
		case generationevent.FieldImageStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_status", values[i])
			} else if value.Valid {
				_m.ImageStatus = value.String
			}
		case generationevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case generationevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case generationevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationEvent.
// Note that you need to call GenerationEvent.Unwrap() before calling this method if this GenerationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationEvent) Update() *GenerationEventUpdateOne {
	return NewGenerationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationEvent) Unwrap() *GenerationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("cache_hit=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheHit))
	builder.WriteString(", ")
	builder.WriteString("image_status=")
	builder.WriteString(_m.ImageStatus)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationEvents is a parsable slice of GenerationEvent.
type GenerationEvents []*GenerationEvent
