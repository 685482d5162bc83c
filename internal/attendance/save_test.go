package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ameziane/coachctl/internal/models"
)

// fakeUpserter records submitted records and fails the athlete IDs in failFor.
type fakeUpserter struct {
	submitted []models.AttendanceRecord
	failFor   map[int]error
}

func (f *fakeUpserter) Upsert(ctx context.Context, record models.AttendanceRecord) error {
	f.submitted = append(f.submitted, record)
	if err, ok := f.failFor[record.AthleteID]; ok {
		return err
	}
	return nil
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Submits Every Record In Roster Order", func(t *testing.T) {
		sheet := NewSheet(testEvent(), testRoster(), nil)
		sheet.MarkAllPresent()
		svc := &fakeUpserter{}

		result, err := sheet.Save(ctx, svc, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(svc.submitted) != 3 {
			t.Fatalf("expected 3 submissions, got %d", len(svc.submitted))
		}
		for i, athlete := range testRoster() {
			if svc.submitted[i].AthleteID != athlete.ID {
				t.Errorf("expected roster order, got athlete %d at %d", svc.submitted[i].AthleteID, i)
			}
		}
		if result.Succeeded != 3 || result.Failed != 0 {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("Continues Past Individual Failures", func(t *testing.T) {
		sheet := NewSheet(testEvent(), testRoster(), nil)
		sheet.MarkAllPresent()
		svc := &fakeUpserter{failFor: map[int]error{2: errors.New("backend rejected")}}

		result, err := sheet.Save(ctx, svc, nil)
		if err == nil {
			t.Fatal("expected error for partial failure")
		}
		if err.Error() != "1 of 3 attendance records failed to save" {
			t.Errorf("unexpected error message %q", err.Error())
		}

		// All three were attempted despite the middle one failing.
		if len(svc.submitted) != 3 {
			t.Errorf("expected 3 submissions, got %d", len(svc.submitted))
		}
		if result.Succeeded != 2 || result.Failed != 1 {
			t.Errorf("unexpected result %+v", result)
		}

		failed := result.FailedItems()
		if len(failed) != 1 || failed[0].Athlete.ID != 2 {
			t.Fatalf("expected athlete 2 in failed items, got %+v", failed)
		}
		if failed[0].Err == nil || failed[0].Record.AthleteID != 2 {
			t.Errorf("expected failed item to carry record and error, got %+v", failed[0])
		}
	})

	t.Run("Stops On Cancelled Context", func(t *testing.T) {
		sheet := NewSheet(testEvent(), testRoster(), nil)
		svc := &fakeUpserter{}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		result, err := sheet.Save(cancelled, svc, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(svc.submitted) != 0 {
			t.Errorf("expected no submissions, got %d", len(svc.submitted))
		}
		if len(result.Items) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("Reports Progress", func(t *testing.T) {
		sheet := NewSheet(testEvent(), testRoster(), nil)
		sheet.MarkAllPresent()
		svc := &fakeUpserter{failFor: map[int]error{3: errors.New("timeout")}}

		// Buffered wide enough to hold every update, so none are dropped.
		progress := make(chan ProgressUpdate, 10)
		if _, err := sheet.Save(ctx, svc, progress); err == nil {
			t.Fatal("expected error for partial failure")
		}
		close(progress)

		var phases []Phase
		var last ProgressUpdate
		for update := range progress {
			phases = append(phases, update.Phase)
			last = update
		}

		// One submit per athlete, one failure echo, one terminal done.
		want := []Phase{Submit, Submit, Submit, SubmitFailed, Done}
		if fmt.Sprint(phases) != fmt.Sprint(want) {
			t.Errorf("expected phases %v, got %v", want, phases)
		}
		if last.Phase != Done || last.Step != 3 || last.Total != 3 {
			t.Errorf("unexpected terminal update %+v", last)
		}
	})

	t.Run("Nil And Full Channels Never Block", func(t *testing.T) {
		sheet := NewSheet(testEvent(), testRoster(), nil)
		sheet.MarkAllPresent()

		// Unbuffered with no reader: every send would block without the
		// drop-on-full policy.
		progress := make(chan ProgressUpdate)
		if _, err := sheet.Save(ctx, &fakeUpserter{}, progress); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
