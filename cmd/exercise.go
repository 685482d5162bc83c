package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// ExerciseList lists drills from the exercise library.
func (r *Runner) ExerciseList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	filter := api.ExerciseFilter{
		Categorie:     cmd.String("categorie"),
		SousCategorie: cmd.String("sous-categorie"),
		Search:        cmd.String("search"),
	}

	exercises, err := r.exercises.List(ctx, filter)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(exercises, cmd.Bool("pretty"))
	}

	for _, exercise := range exercises {
		marker := " "
		if exercise.VideoURL != "" {
			marker = "▶"
		}
		r.writePlainln("%4d %s %-30s %-15s %3d min", exercise.ID, marker, exercise.Nom, exercise.Categorie, exercise.Duree)
	}
	return r.writePlainln("%d exercice(s)", len(exercises))
}

// ExerciseShow prints one exercise.
func (r *Runner) ExerciseShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	exercise, err := r.exercises.Get(ctx, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeJSON(exercise, true)
}

func exerciseFromFlags(cmd *cli.Command, base models.Exercise) models.Exercise {
	exercise := base
	if cmd.IsSet("nom") {
		exercise.Nom = cmd.String("nom")
	}
	if cmd.IsSet("description") {
		exercise.Description = cmd.String("description")
	}
	if cmd.IsSet("categorie") {
		exercise.Categorie = cmd.String("categorie")
	}
	if cmd.IsSet("sous-categorie") {
		exercise.SousCategorie = cmd.String("sous-categorie")
	}
	if cmd.IsSet("duree") {
		exercise.Duree = int(cmd.Int("duree"))
	}
	if cmd.IsSet("joueurs-min") {
		exercise.JoueursMin = int(cmd.Int("joueurs-min"))
	}
	if cmd.IsSet("joueurs-max") {
		exercise.JoueursMax = int(cmd.Int("joueurs-max"))
	}
	if cmd.IsSet("materiel") {
		exercise.Materiel = cmd.String("materiel")
	}
	return exercise
}

// ExerciseCreate adds a drill to the library.
func (r *Runner) ExerciseCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	exercise := exerciseFromFlags(cmd, models.Exercise{})
	if exercise.Nom == "" {
		return fmt.Errorf("%w: nom is required", shared.ErrMissingArgument)
	}

	created, err := r.exercises.Create(ctx, &exercise)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Exercice créé: %d %s", created.ID, created.Nom)
}

// ExerciseUpdate fetches a drill, overlays the provided flags and submits it.
func (r *Runner) ExerciseUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	current, err := r.exercises.Get(ctx, id)
	if err != nil {
		return err
	}

	patched := exerciseFromFlags(cmd, *current)
	updated, err := r.exercises.Update(ctx, id, &patched)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Exercice mis à jour: %d %s", updated.ID, updated.Nom)
}

// ExerciseDelete removes a drill from the library.
func (r *Runner) ExerciseDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	if err := r.exercises.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlainln("✓ Exercice %d supprimé", id)
}

// ExerciseVideo attaches a demonstration video to a drill.
func (r *Runner) ExerciseVideo(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	path := cmd.String("file")
	if path == "" {
		return fmt.Errorf("%w: --file is required", shared.ErrMissingArgument)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open video: %w", err)
	}
	defer file.Close()

	exercise, err := r.exercises.UploadVideo(ctx, int(cmd.Int("id")), filepath.Base(path), file)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Vidéo attachée: %s", exercise.VideoURL)
}
