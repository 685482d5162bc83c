// Package attendance implements the per-event attendance sheet: an in-memory
// status map seeded from the roster, mutated locally, and persisted record by
// record on save.
package attendance

import (
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
)

// Mark is one athlete's local attendance state on a sheet.
type Mark struct {
	Status models.AttendanceStatus
	Notes  string
}

// Sheet holds the unsaved attendance state for a single planning event.
//
// Nothing touches the network until Save: mutations are synchronous map writes
// and the summary is derived on demand, so counts are always consistent with
// the current local state.
type Sheet struct {
	event  *models.PlanningEvent
	roster []models.Athlete
	marks  map[int]Mark
}

// NewSheet seeds a sheet from the event's roster and its existing records.
//
// Every roster athlete defaults to absent, then known records overlay their
// actual status and notes. Unmarked athletes are never silently counted
// present. Records for athletes no longer on the roster are ignored.
func NewSheet(event *models.PlanningEvent, roster []models.Athlete, existing []models.AttendanceRecord) *Sheet {
	marks := make(map[int]Mark, len(roster))
	for _, athlete := range roster {
		marks[athlete.ID] = Mark{Status: models.StatusAbsent}
	}

	for _, record := range existing {
		if _, onRoster := marks[record.AthleteID]; onRoster {
			marks[record.AthleteID] = Mark{Status: record.Status, Notes: record.Notes}
		}
	}

	return &Sheet{event: event, roster: roster, marks: marks}
}

// Event returns the planning event this sheet belongs to.
func (s *Sheet) Event() *models.PlanningEvent {
	return s.event
}

// Roster returns the athletes on this sheet, in fetch order.
func (s *Sheet) Roster() []models.Athlete {
	return s.roster
}

// Mark returns an athlete's current mark, and whether the athlete is on the sheet.
func (s *Sheet) Mark(athleteID int) (Mark, bool) {
	mark, ok := s.marks[athleteID]
	return mark, ok
}

// SetStatus overwrites one athlete's status.
func (s *Sheet) SetStatus(athleteID int, status models.AttendanceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown attendance status %q", shared.ErrInvalidInput, status)
	}
	mark, ok := s.marks[athleteID]
	if !ok {
		return fmt.Errorf("%w: athlete %d is not on this sheet", shared.ErrInvalidInput, athleteID)
	}
	mark.Status = status
	s.marks[athleteID] = mark
	return nil
}

// SetNotes overwrites one athlete's notes.
func (s *Sheet) SetNotes(athleteID int, notes string) error {
	mark, ok := s.marks[athleteID]
	if !ok {
		return fmt.Errorf("%w: athlete %d is not on this sheet", shared.ErrInvalidInput, athleteID)
	}
	mark.Notes = notes
	s.marks[athleteID] = mark
	return nil
}

// CycleStatus advances an athlete through present -> retard -> excuse ->
// absent -> present. Used by the interactive sheet.
func (s *Sheet) CycleStatus(athleteID int) {
	mark, ok := s.marks[athleteID]
	if !ok {
		return
	}
	switch mark.Status {
	case models.StatusPresent:
		mark.Status = models.StatusRetard
	case models.StatusRetard:
		mark.Status = models.StatusExcuse
	case models.StatusExcuse:
		mark.Status = models.StatusAbsent
	default:
		mark.Status = models.StatusPresent
	}
	s.marks[athleteID] = mark
}

// MarkAllPresent sets every roster athlete to present in one pass. Idempotent.
func (s *Sheet) MarkAllPresent() {
	for id, mark := range s.marks {
		mark.Status = models.StatusPresent
		s.marks[id] = mark
	}
}

// Summary holds the derived attendance counts for a sheet.
type Summary struct {
	Present int
	Retard  int
	Absent  int
	Excuse  int
	Total   int
}

// Summary derives counts from the current marks. Every athlete holds exactly
// one status, so the four counts always total the roster size.
func (s *Sheet) Summary() Summary {
	var sum Summary
	sum.Total = len(s.roster)
	for _, athlete := range s.roster {
		switch s.marks[athlete.ID].Status {
		case models.StatusPresent:
			sum.Present++
		case models.StatusRetard:
			sum.Retard++
		case models.StatusExcuse:
			sum.Excuse++
		default:
			sum.Absent++
		}
	}
	return sum
}

// Records builds one attendance record per roster athlete from the current marks.
func (s *Sheet) Records() []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, len(s.roster))
	for _, athlete := range s.roster {
		mark := s.marks[athlete.ID]
		records = append(records, models.AttendanceRecord{
			PlanningID: s.event.ID,
			AthleteID:  athlete.ID,
			Status:     mark.Status,
			Notes:      mark.Notes,
		})
	}
	return records
}
