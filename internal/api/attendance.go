package api

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
)

// AttendanceService maps attendance operations onto gateway calls.
//
// The backend enforces the one-record-per-(planning, athlete) invariant through
// upsert semantics; this client never checks uniqueness locally.
type AttendanceService struct {
	client *Client
}

// NewAttendanceService creates an AttendanceService over the given gateway client.
func NewAttendanceService(client *Client) *AttendanceService {
	return &AttendanceService{client: client}
}

// Upsert creates or replaces the attendance record for the record's
// (planning, athlete) pair.
func (s *AttendanceService) Upsert(ctx context.Context, record models.AttendanceRecord) error {
	if !record.Status.Valid() {
		return fmt.Errorf("%w: unknown attendance status %q", shared.ErrInvalidInput, record.Status)
	}
	return s.client.Post(ctx, "/attendance", record, nil)
}

// ListByPlanning retrieves the existing attendance records for one planning event.
func (s *AttendanceService) ListByPlanning(ctx context.Context, planningID int) ([]models.AttendanceRecord, error) {
	endpoint := "/attendance" + newQuery().num("planning_id", planningID).encode()

	var records []models.AttendanceRecord
	if err := s.client.Get(ctx, endpoint, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// StatsFilter narrows Stats results. Zero-valued fields are omitted.
type StatsFilter struct {
	AthleteID int
	Groupe    string
	From      string
	To        string
}

// Stats retrieves server-computed attendance summaries.
func (s *AttendanceService) Stats(ctx context.Context, filter StatsFilter) ([]models.AttendanceStats, error) {
	endpoint := "/attendance/stats" + newQuery().
		num("athlete_id", filter.AthleteID).
		str("groupe", filter.Groupe).
		str("from", filter.From).
		str("to", filter.To).
		encode()

	var stats []models.AttendanceStats
	if err := s.client.Get(ctx, endpoint, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
