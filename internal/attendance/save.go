package attendance

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
)

// Upserter is the slice of the attendance service that Save depends on.
type Upserter interface {
	Upsert(ctx context.Context, record models.AttendanceRecord) error
}

// ItemResult is the outcome of submitting one athlete's record.
type ItemResult struct {
	Athlete models.Athlete
	Record  models.AttendanceRecord
	Err     error
}

// SaveResult collects per-athlete outcomes of a save.
//
// The backend exposes no bulk endpoint, so records are submitted one by one
// and a partial failure leaves earlier writes committed. Tracking each outcome
// lets callers report exactly which athletes failed and retry only those.
type SaveResult struct {
	Items     []ItemResult
	Succeeded int
	Failed    int
}

// FailedItems returns the outcomes that errored.
func (r *SaveResult) FailedItems() []ItemResult {
	var failed []ItemResult
	for _, item := range r.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}

// Save submits one record per roster athlete, sequentially and in roster
// order. It keeps going past individual failures so every athlete gets an
// outcome, but stops early if the context is cancelled. The returned error is
// non-nil when any record failed; the result is always populated.
func (s *Sheet) Save(ctx context.Context, svc Upserter, progress chan<- ProgressUpdate) (*SaveResult, error) {
	records := s.Records()
	total := len(records)
	result := &SaveResult{Items: make([]ItemResult, 0, total)}

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("save interrupted after %d of %d records: %w", i, total, err)
		}

		athlete := s.roster[i]
		sendProgress(progress, submitUpdate(i+1, total, athlete, record.Status))

		err := svc.Upsert(ctx, record)
		result.Items = append(result.Items, ItemResult{Athlete: athlete, Record: record, Err: err})
		if err != nil {
			result.Failed++
			sendProgress(progress, submitFailedUpdate(i+1, total, athlete, err))
		} else {
			result.Succeeded++
		}
	}

	sendProgress(progress, doneUpdate(total, result.Failed))

	if result.Failed > 0 {
		return result, fmt.Errorf("%d of %d attendance records failed to save", result.Failed, total)
	}
	return result, nil
}
