package main

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// SessionList lists reusable session templates.
func (r *Runner) SessionList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	sessions, err := r.sessions.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(sessions, cmd.Bool("pretty"))
	}

	for _, session := range sessions {
		r.writePlainln("%4d %-30s %3d min  %s", session.ID, session.Titre, session.DureeTotale, session.Objectif)
	}
	return r.writePlainln("%d séance(s)", len(sessions))
}

// SessionShow prints one session template.
func (r *Runner) SessionShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	session, err := r.sessions.Get(ctx, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeJSON(session, true)
}

func sessionFromFlags(cmd *cli.Command, base models.SessionTemplate) models.SessionTemplate {
	session := base
	if cmd.IsSet("titre") {
		session.Titre = cmd.String("titre")
	}
	if cmd.IsSet("objectif") {
		session.Objectif = cmd.String("objectif")
	}
	if cmd.IsSet("duree") {
		session.DureeTotale = int(cmd.Int("duree"))
	}
	if cmd.IsSet("echauffement") {
		session.Echauffement = cmd.String("echauffement")
	}
	if cmd.IsSet("corps") {
		session.CorpsSeance = cmd.String("corps")
	}
	if cmd.IsSet("retour") {
		session.RetourAuCalme = cmd.String("retour")
	}
	if cmd.IsSet("exercise") {
		session.Exercises = nil
		for _, id := range cmd.IntSlice("exercise") {
			session.Exercises = append(session.Exercises, int(id))
		}
	}
	return session
}

// SessionCreate creates a session template.
func (r *Runner) SessionCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	session := sessionFromFlags(cmd, models.SessionTemplate{})
	if session.Titre == "" {
		return fmt.Errorf("%w: titre is required", shared.ErrMissingArgument)
	}

	created, err := r.sessions.Create(ctx, &session)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Séance créée: %d %s", created.ID, created.Titre)
}

// SessionUpdate fetches a template, overlays the provided flags and submits it.
func (r *Runner) SessionUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	current, err := r.sessions.Get(ctx, id)
	if err != nil {
		return err
	}

	patched := sessionFromFlags(cmd, *current)
	updated, err := r.sessions.Update(ctx, id, &patched)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Séance mise à jour: %d %s", updated.ID, updated.Titre)
}

// SessionDelete removes a session template.
func (r *Runner) SessionDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	if err := r.sessions.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlainln("✓ Séance %d supprimée", id)
}

// SessionExport prints the PDF export URL for a session. The download itself
// goes through the browser or curl so the token can be passed explicitly.
func (r *Runner) SessionExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}
	return r.writePlainln("%s", r.sessions.ExportPDFURL(int(cmd.Int("id"))))
}
