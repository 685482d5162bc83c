package main

import (
	"context"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/urfave/cli/v3"
)

// requireAdmin is requireAuth plus an admin role check.
func (r *Runner) requireAdmin(ctx context.Context) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}
	return r.session.RequireRole(models.RoleAdmin)
}

// AdminUserList lists registered users.
func (r *Runner) AdminUserList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	filter := api.UserFilter{
		Role:   models.Role(cmd.String("role")),
		Search: cmd.String("search"),
	}

	users, err := r.users.List(ctx, filter)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	for _, user := range users {
		r.writePlainln("%4d %-25s %-30s %s", user.ID, user.Name, user.Email, user.Role)
	}
	return r.writePlainln("%d utilisateur(s)", len(users))
}

// AdminUserShow prints one user.
func (r *Runner) AdminUserShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	user, err := r.users.Get(ctx, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeJSON(user, true)
}

// AdminUserUpdate changes a user's name or role.
func (r *Runner) AdminUserUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	current, err := r.users.Get(ctx, id)
	if err != nil {
		return err
	}

	patched := *current
	if cmd.IsSet("name") {
		patched.Name = cmd.String("name")
	}
	if cmd.IsSet("role") {
		patched.Role = models.Role(cmd.String("role"))
	}

	updated, err := r.users.Update(ctx, id, &patched)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Utilisateur mis à jour: %s (%s)", updated.Name, updated.Role)
}

// AdminUserDelete removes a user account.
func (r *Runner) AdminUserDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	if err := r.users.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlainln("✓ Utilisateur %d supprimé", id)
}
