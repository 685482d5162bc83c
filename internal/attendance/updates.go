package attendance

import (
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
)

// ProgressUpdate represents a progress event during a save.
//
// Used to send real-time updates to the CLI or TUI layer for display.
type ProgressUpdate struct {
	Phase   Phase
	Step    int
	Total   int
	Message string
}

// Operation phase enumeration
type Phase int

const (
	Submit Phase = iota
	SubmitFailed
	Done
)

func (p Phase) String() string {
	switch p {
	case Submit:
		return "submit"
	case SubmitFailed:
		return "submit_failed"
	case Done:
		return "done"
	default:
		return ""
	}
}

// sendProgress sends an update without blocking. A full or nil channel drops
// the update rather than stalling the save.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func submitUpdate(step, total int, athlete models.Athlete, status models.AttendanceStatus) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Submit,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s", step, total, athlete.FullName(), status),
	}
}

func submitFailedUpdate(step, total int, athlete models.Athlete, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SubmitFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, athlete.FullName(), err),
	}
}

func doneUpdate(total, failed int) ProgressUpdate {
	if failed > 0 {
		return ProgressUpdate{
			Phase:   Done,
			Step:    total,
			Total:   total,
			Message: fmt.Sprintf("Saved with %d failure(s)", failed),
		}
	}
	return ProgressUpdate{
		Phase:   Done,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Saved %d records", total),
	}
}
