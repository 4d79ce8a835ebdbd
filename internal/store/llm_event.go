package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sdey/revu/ent"
	"github.com/sdey/revu/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMEventQueries provides read access to the LLM request log for the
// inspection CLI.
type LLMEventQueries interface {
	Recent(ctx context.Context, limit int) ([]LLMRequestEventRecord, error)
	Get(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	UsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	UsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]LLMRequestEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	records := make([]LLMRequestEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entLLMEventToRecord(row))
	}
	return records, nil
}

func (r *eventRepo) Get(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	rec := entLLMEventToRecord(row)
	return &rec, nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	var rows []struct {
		Purpose string  `json:"purpose"`
		Calls   int     `json:"calls"`
		Input   int     `json:"input"`
		Output  int     `json:"output"`
		AvgMs   float64 `json:"avg_ms"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by purpose: %w", err)
	}

	stats := make([]LLMPurposeUsage, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, LLMPurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
			AvgLatencyMs: int(row.AvgMs),
		})
	}
	return stats, nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model  string `json:"model"`
		Calls  int    `json:"calls"`
		Input  int    `json:"input"`
		Output int    `json:"output"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by model: %w", err)
	}

	usage := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
		})
	}
	return usage, nil
}

func entLLMEventToRecord(row *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		},
	}
}
