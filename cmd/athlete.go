package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/formatter"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// AthleteList lists athletes, from the backend or the local cache.
func (r *Runner) AthleteList(ctx context.Context, cmd *cli.Command) error {
	groupe := shared.NormalizeGroup(cmd.String("groupe"))

	var athletes []models.Athlete
	var err error

	if cmd.Bool("cached") {
		if err := r.connect(ctx); err != nil {
			return err
		}
		athletes, err = r.cache.List(groupe)
		if err != nil {
			return fmt.Errorf("%w: run without --cached to fetch from the backend", err)
		}
	} else {
		if err := r.requireAuth(ctx); err != nil {
			return err
		}

		filter := api.AthleteFilter{Groupe: groupe, Search: cmd.String("search")}
		if cmd.IsSet("blesse") {
			blesse := cmd.Bool("blesse")
			filter.Blesse = &blesse
		}

		athletes, err = r.athletes.List(ctx, filter)
		if err != nil {
			return err
		}

		if err := r.cache.Replace(groupe, athletes); err != nil {
			r.logger.Warn("failed to refresh roster cache", "error", err)
		}
	}

	if cmd.Bool("json") {
		return r.writeJSON(athletes, cmd.Bool("pretty"))
	}
	if cmd.Bool("csv") {
		data, err := formatter.AthletesToCSV(athletes)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	for _, athlete := range athletes {
		marker := " "
		if athlete.Blesse {
			marker = "✗"
		}
		r.writePlainln("%4d %s %-25s %-8s %s", athlete.ID, marker, athlete.FullName(), athlete.Groupe, athlete.Poste)
	}
	return r.writePlainln("%d athlète(s)", len(athletes))
}

// AthleteShow prints one athlete.
func (r *Runner) AthleteShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	athlete, err := r.athletes.Get(ctx, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeJSON(athlete, true)
}

// athleteFromFlags builds an athlete from the command's flags, overlaying base.
func athleteFromFlags(cmd *cli.Command, base models.Athlete) models.Athlete {
	athlete := base
	if cmd.IsSet("nom") {
		athlete.Nom = cmd.String("nom")
	}
	if cmd.IsSet("prenom") {
		athlete.Prenom = cmd.String("prenom")
	}
	if cmd.IsSet("groupe") {
		athlete.Groupe = shared.NormalizeGroup(cmd.String("groupe"))
	}
	if cmd.IsSet("date-naissance") {
		athlete.DateNaissance = cmd.String("date-naissance")
	}
	if cmd.IsSet("sexe") {
		athlete.Sexe = cmd.String("sexe")
	}
	if cmd.IsSet("poste") {
		athlete.Poste = cmd.String("poste")
	}
	if cmd.IsSet("taille") {
		athlete.Taille = int(cmd.Int("taille"))
	}
	if cmd.IsSet("poids") {
		athlete.Poids = int(cmd.Int("poids"))
	}
	if cmd.IsSet("licence") {
		athlete.NumeroLicence = cmd.String("licence")
	}
	if cmd.IsSet("telephone") {
		athlete.Telephone = cmd.String("telephone")
	}
	if cmd.IsSet("email") {
		athlete.Email = cmd.String("email")
	}
	if cmd.IsSet("adresse") {
		athlete.Adresse = cmd.String("adresse")
	}
	if cmd.IsSet("blesse") {
		athlete.Blesse = cmd.Bool("blesse")
	}
	return athlete
}

// AthleteCreate registers a new athlete.
func (r *Runner) AthleteCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	athlete := athleteFromFlags(cmd, models.Athlete{})
	if athlete.Nom == "" || athlete.Prenom == "" || athlete.Groupe == "" {
		return fmt.Errorf("%w: nom, prenom and groupe are required", shared.ErrMissingArgument)
	}

	created, err := r.athletes.Create(ctx, &athlete)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Athlète créé: %s (id %d)", created.FullName(), created.ID)
}

// AthleteUpdate fetches an athlete and applies the changed flags.
func (r *Runner) AthleteUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	current, err := r.athletes.Get(ctx, id)
	if err != nil {
		return err
	}

	patched := athleteFromFlags(cmd, *current)
	updated, err := r.athletes.Update(ctx, id, &patched)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Athlète mis à jour: %s", updated.FullName())
}

// AthleteDelete removes an athlete.
func (r *Runner) AthleteDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	if err := r.athletes.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlainln("✓ Athlète %d supprimé", id)
}

// AthletePhoto uploads a profile photo.
func (r *Runner) AthletePhoto(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	path := cmd.String("file")
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open photo: %w", err)
	}
	defer file.Close()

	updated, err := r.athletes.UploadPhoto(ctx, int(cmd.Int("id")), filepath.Base(path), file)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Photo envoyée: %s", updated.PhotoURL)
}
