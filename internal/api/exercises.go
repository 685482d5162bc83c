package api

import (
	"context"
	"fmt"
	"io"

	"github.com/ameziane/coachctl/internal/models"
)

// ExerciseService maps exercise-library operations onto gateway calls.
type ExerciseService struct {
	client *Client
}

// NewExerciseService creates an ExerciseService over the given gateway client.
func NewExerciseService(client *Client) *ExerciseService {
	return &ExerciseService{client: client}
}

// ExerciseFilter narrows List results. Zero-valued fields are omitted.
type ExerciseFilter struct {
	Categorie     string
	SousCategorie string
	Search        string
}

// List retrieves exercises matching the filter.
func (s *ExerciseService) List(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error) {
	endpoint := "/api/exercises" + newQuery().
		str("categorie", filter.Categorie).
		str("sous_categorie", filter.SousCategorie).
		str("search", filter.Search).
		encode()

	var exercises []models.Exercise
	if err := s.client.Get(ctx, endpoint, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Get retrieves a single exercise by id.
func (s *ExerciseService) Get(ctx context.Context, id int) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.client.Get(ctx, fmt.Sprintf("/api/exercises/%d", id), &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// Create adds an exercise to the library.
func (s *ExerciseService) Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error) {
	var created models.Exercise
	if err := s.client.Post(ctx, "/api/exercises", exercise, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing exercise.
func (s *ExerciseService) Update(ctx context.Context, id int, exercise *models.Exercise) (*models.Exercise, error) {
	var updated models.Exercise
	if err := s.client.Put(ctx, fmt.Sprintf("/api/exercises/%d", id), exercise, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an exercise from the library.
func (s *ExerciseService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/exercises/%d", id), nil)
}

// UploadVideo attaches a demonstration video via multipart form-data.
func (s *ExerciseService) UploadVideo(ctx context.Context, id int, filename string, video io.Reader) (*models.Exercise, error) {
	var updated models.Exercise
	endpoint := fmt.Sprintf("/api/exercises/%d/video", id)
	if err := s.client.PostForm(ctx, endpoint, nil, "video", filename, video, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
