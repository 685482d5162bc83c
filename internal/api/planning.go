package api

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
)

// PlanningService maps planning-event operations onto gateway calls.
type PlanningService struct {
	client *Client
}

// NewPlanningService creates a PlanningService over the given gateway client.
func NewPlanningService(client *Client) *PlanningService {
	return &PlanningService{client: client}
}

// PlanningFilter narrows List results. Zero-valued fields are omitted.
type PlanningFilter struct {
	Groupe string
	Type   models.EventType
	From   string
	To     string
}

// List retrieves planning events matching the filter.
func (s *PlanningService) List(ctx context.Context, filter PlanningFilter) ([]models.PlanningEvent, error) {
	endpoint := "/api/planning" + newQuery().
		str("groupe", filter.Groupe).
		str("type", string(filter.Type)).
		str("from", filter.From).
		str("to", filter.To).
		encode()

	var events []models.PlanningEvent
	if err := s.client.Get(ctx, endpoint, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get retrieves a single planning event by id.
func (s *PlanningService) Get(ctx context.Context, id int) (*models.PlanningEvent, error) {
	var event models.PlanningEvent
	if err := s.client.Get(ctx, fmt.Sprintf("/api/planning/%d", id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create schedules a new planning event.
func (s *PlanningService) Create(ctx context.Context, event *models.PlanningEvent) (*models.PlanningEvent, error) {
	var created models.PlanningEvent
	if err := s.client.Post(ctx, "/api/planning", event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing planning event.
func (s *PlanningService) Update(ctx context.Context, id int, event *models.PlanningEvent) (*models.PlanningEvent, error) {
	var updated models.PlanningEvent
	if err := s.client.Put(ctx, fmt.Sprintf("/api/planning/%d", id), event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a planning event.
func (s *PlanningService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/planning/%d", id), nil)
}

// AddParticipant assigns an athlete to a planning event.
func (s *PlanningService) AddParticipant(ctx context.Context, planningID, athleteID int) error {
	endpoint := fmt.Sprintf("/api/planning/%d/participants", planningID)
	body := map[string]int{"athlete_id": athleteID}
	return s.client.Post(ctx, endpoint, body, nil)
}

// RemoveParticipant unassigns an athlete from a planning event.
func (s *PlanningService) RemoveParticipant(ctx context.Context, planningID, athleteID int) error {
	endpoint := fmt.Sprintf("/api/planning/%d/participants/%d", planningID, athleteID)
	return s.client.Delete(ctx, endpoint, nil)
}
