package api

import (
	"context"

	"github.com/ameziane/coachctl/internal/models"
)

// DashboardService fetches the server-computed home aggregate.
type DashboardService struct {
	client *Client
}

// NewDashboardService creates a DashboardService over the given gateway client.
func NewDashboardService(client *Client) *DashboardService {
	return &DashboardService{client: client}
}

// Summary retrieves the dashboard aggregate for the current user's club.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := s.client.Get(ctx, "/dashboard", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
