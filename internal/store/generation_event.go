package store

import (
	"context"
	"fmt"

	"github.com/abhisek/vocasheet/ent"
	"github.com/abhisek/vocasheet/ent/generationevent"
)

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenerationEvent.Create().
		SetSequence(seqNum).
		SetRequestID(data.RequestID).
		SetWord(data.Word).
		SetLevel(data.Level).
		SetCacheHit(data.CacheHit).
		SetImageStatus(data.ImageStatus).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEventRecord, error) {
	q := r.client.GenerationEvent.Query().
		Order(ent.Desc(generationevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(generationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(generationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(generationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(generationevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}

	out := make([]GenerationEventRecord, len(rows))
	for i, e := range rows {
		out[i] = GenerationEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			GenerationEventData: GenerationEventData{
				RequestID:    e.RequestID,
				Word:         e.Word,
				Level:        e.Level,
				CacheHit:     e.CacheHit,
				ImageStatus:  e.ImageStatus,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
				LatencyMs:    e.LatencyMs,
			},
		}
	}
	return out, nil
}
