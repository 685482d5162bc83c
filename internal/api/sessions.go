package api

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
)

// SessionService maps session-template operations onto gateway calls.
type SessionService struct {
	client *Client
}

// NewSessionService creates a SessionService over the given gateway client.
func NewSessionService(client *Client) *SessionService {
	return &SessionService{client: client}
}

// List retrieves all session templates.
func (s *SessionService) List(ctx context.Context) ([]models.SessionTemplate, error) {
	var sessions []models.SessionTemplate
	if err := s.client.Get(ctx, "/api/sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Get retrieves a single session template by id.
func (s *SessionService) Get(ctx context.Context, id int) (*models.SessionTemplate, error) {
	var session models.SessionTemplate
	if err := s.client.Get(ctx, fmt.Sprintf("/api/sessions/%d", id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Create stores a new session template.
func (s *SessionService) Create(ctx context.Context, session *models.SessionTemplate) (*models.SessionTemplate, error) {
	var created models.SessionTemplate
	if err := s.client.Post(ctx, "/api/sessions", session, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing session template.
func (s *SessionService) Update(ctx context.Context, id int, session *models.SessionTemplate) (*models.SessionTemplate, error) {
	var updated models.SessionTemplate
	if err := s.client.Put(ctx, fmt.Sprintf("/api/sessions/%d", id), session, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a session template.
func (s *SessionService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/sessions/%d", id), nil)
}

// ExportPDFURL returns the backend URL that renders a session template as PDF.
// Export is delegated entirely to the backend; the client only constructs the URL.
func (s *SessionService) ExportPDFURL(id int) string {
	return fmt.Sprintf("%s/api/sessions/%d/export-pdf", s.client.BaseURL(), id)
}
