package api

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
)

// VideoService maps video-library operations onto gateway calls.
type VideoService struct {
	client *Client
}

// NewVideoService creates a VideoService over the given gateway client.
func NewVideoService(client *Client) *VideoService {
	return &VideoService{client: client}
}

// List retrieves all uploaded videos.
func (s *VideoService) List(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := s.client.Get(ctx, "/api/videos", &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Get retrieves a single video by id.
func (s *VideoService) Get(ctx context.Context, id int) (*models.Video, error) {
	var video models.Video
	if err := s.client.Get(ctx, fmt.Sprintf("/api/videos/%d", id), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Delete removes a video.
func (s *VideoService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/videos/%d", id), nil)
}
