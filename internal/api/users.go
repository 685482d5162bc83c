package api

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
)

// UserService maps admin user-management operations onto gateway calls.
// The backend rejects these for non-admin tokens; the CLI also gates them by role.
type UserService struct {
	client *Client
}

// NewUserService creates a UserService over the given gateway client.
func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// UserFilter narrows List results. Zero-valued fields are omitted.
type UserFilter struct {
	Role   models.Role
	Search string
}

// List retrieves user accounts matching the filter.
func (s *UserService) List(ctx context.Context, filter UserFilter) ([]models.User, error) {
	endpoint := "/api/users" + newQuery().
		str("role", string(filter.Role)).
		str("search", filter.Search).
		encode()

	var users []models.User
	if err := s.client.Get(ctx, endpoint, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get retrieves a single user account by id.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, fmt.Sprintf("/api/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update modifies a user account.
func (s *UserService) Update(ctx context.Context, id int, user *models.User) (*models.User, error) {
	var updated models.User
	if err := s.client.Put(ctx, fmt.Sprintf("/api/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/users/%d", id), nil)
}
