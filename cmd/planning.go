package main

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlanningList lists calendar events, optionally filtered.
func (r *Runner) PlanningList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	filter := api.PlanningFilter{
		Groupe: shared.NormalizeGroup(cmd.String("groupe")),
		Type:   models.EventType(cmd.String("type")),
		From:   cmd.String("from"),
		To:     cmd.String("to"),
	}

	events, err := r.planning.List(ctx, filter)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(events, cmd.Bool("pretty"))
	}

	for _, event := range events {
		r.writePlainln("%4d %s %s %-14s %-8s %s", event.ID, event.Date, event.Heure, event.Type, event.Groupe, event.Titre)
	}
	return r.writePlainln("%d événement(s)", len(events))
}

// PlanningShow prints one event.
func (r *Runner) PlanningShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	event, err := r.planning.Get(ctx, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeJSON(event, true)
}

// eventFromFlags builds a planning event from the command's flags, overlaying base.
func eventFromFlags(cmd *cli.Command, base models.PlanningEvent) models.PlanningEvent {
	event := base
	if cmd.IsSet("titre") {
		event.Titre = cmd.String("titre")
	}
	if cmd.IsSet("theme") {
		event.Theme = cmd.String("theme")
	}
	if cmd.IsSet("date") {
		event.Date = cmd.String("date")
	}
	if cmd.IsSet("heure") {
		event.Heure = cmd.String("heure")
	}
	if cmd.IsSet("duree") {
		event.Duree = int(cmd.Int("duree"))
	}
	if cmd.IsSet("lieu") {
		event.Lieu = cmd.String("lieu")
	}
	if cmd.IsSet("type") {
		event.Type = models.EventType(cmd.String("type"))
	}
	if cmd.IsSet("groupe") {
		event.Groupe = shared.NormalizeGroup(cmd.String("groupe"))
	}
	if cmd.IsSet("session") {
		sessionID := int(cmd.Int("session"))
		event.SessionID = &sessionID
	}
	return event
}

// PlanningCreate creates a calendar event.
func (r *Runner) PlanningCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	event := eventFromFlags(cmd, models.PlanningEvent{Type: models.EventEntrainement})
	if event.Titre == "" || event.Date == "" || event.Groupe == "" {
		return fmt.Errorf("%w: titre, date and groupe are required", shared.ErrMissingArgument)
	}

	created, err := r.planning.Create(ctx, &event)
	if err != nil {
		return err
	}

	r.logger.Info("planning event created", "id", created.ID, "date", created.Date)
	return r.writePlainln("✓ Événement créé: %d %s %s", created.ID, created.Date, created.Titre)
}

// PlanningUpdate fetches an event, overlays the provided flags and submits it.
func (r *Runner) PlanningUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	current, err := r.planning.Get(ctx, id)
	if err != nil {
		return err
	}

	patched := eventFromFlags(cmd, *current)
	updated, err := r.planning.Update(ctx, id, &patched)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Événement mis à jour: %d %s", updated.ID, updated.Titre)
}

// PlanningDelete removes a calendar event.
func (r *Runner) PlanningDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	if err := r.planning.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlainln("✓ Événement %d supprimé", id)
}

// PlanningAssign adds an athlete to an event's participant list.
func (r *Runner) PlanningAssign(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	planningID := int(cmd.Int("id"))
	athleteID := int(cmd.Int("athlete"))
	if err := r.planning.AddParticipant(ctx, planningID, athleteID); err != nil {
		return err
	}
	return r.writePlainln("✓ Athlète %d assigné à l'événement %d", athleteID, planningID)
}

// PlanningUnassign removes an athlete from an event's participant list.
func (r *Runner) PlanningUnassign(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	planningID := int(cmd.Int("id"))
	athleteID := int(cmd.Int("athlete"))
	if err := r.planning.RemoveParticipant(ctx, planningID, athleteID); err != nil {
		return err
	}
	return r.writePlainln("✓ Athlète %d retiré de l'événement %d", athleteID, planningID)
}
