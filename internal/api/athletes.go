package api

import (
	"context"
	"fmt"
	"io"

	"github.com/ameziane/coachctl/internal/models"
)

// AthleteService maps athlete CRUD operations onto gateway calls.
type AthleteService struct {
	client *Client
}

// NewAthleteService creates an AthleteService over the given gateway client.
func NewAthleteService(client *Client) *AthleteService {
	return &AthleteService{client: client}
}

// AthleteFilter narrows List results. Zero-valued fields are omitted from the
// query string entirely.
type AthleteFilter struct {
	Groupe string
	Blesse *bool
	Search string
}

// List retrieves athletes matching the filter.
func (s *AthleteService) List(ctx context.Context, filter AthleteFilter) ([]models.Athlete, error) {
	endpoint := "/api/athletes" + newQuery().
		str("groupe", filter.Groupe).
		boolean("blesse", filter.Blesse).
		str("search", filter.Search).
		encode()

	var athletes []models.Athlete
	if err := s.client.Get(ctx, endpoint, &athletes); err != nil {
		return nil, err
	}
	return athletes, nil
}

// Get retrieves a single athlete by id.
func (s *AthleteService) Get(ctx context.Context, id int) (*models.Athlete, error) {
	var athlete models.Athlete
	if err := s.client.Get(ctx, fmt.Sprintf("/api/athletes/%d", id), &athlete); err != nil {
		return nil, err
	}
	return &athlete, nil
}

// Create registers a new athlete and returns the stored copy.
func (s *AthleteService) Create(ctx context.Context, athlete *models.Athlete) (*models.Athlete, error) {
	var created models.Athlete
	if err := s.client.Post(ctx, "/api/athletes", athlete, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing athlete and returns the stored copy.
func (s *AthleteService) Update(ctx context.Context, id int, athlete *models.Athlete) (*models.Athlete, error) {
	var updated models.Athlete
	if err := s.client.Put(ctx, fmt.Sprintf("/api/athletes/%d", id), athlete, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an athlete.
func (s *AthleteService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/athletes/%d", id), nil)
}

// UploadPhoto attaches a profile photo via multipart form-data and returns the
// updated athlete (photo_url populated by the backend).
func (s *AthleteService) UploadPhoto(ctx context.Context, id int, filename string, photo io.Reader) (*models.Athlete, error) {
	var updated models.Athlete
	endpoint := fmt.Sprintf("/api/athletes/%d/photo", id)
	if err := s.client.PostForm(ctx, endpoint, nil, "photo", filename, photo, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
