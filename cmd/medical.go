package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// MedicalShow prints an athlete's medical file.
func (r *Runner) MedicalShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	record, err := r.medical.Get(ctx, int(cmd.Int("athlete")))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return r.writePlainln("Aucun dossier médical pour l'athlète %d", int(cmd.Int("athlete")))
		}
		return err
	}
	return r.writeJSON(record, true)
}

func medicalFromFlags(cmd *cli.Command, base models.MedicalRecord) models.MedicalRecord {
	record := base
	if cmd.IsSet("groupe-sanguin") {
		record.GroupeSanguin = cmd.String("groupe-sanguin")
	}
	if cmd.IsSet("allergies") {
		record.Allergies = cmd.String("allergies")
	}
	if cmd.IsSet("traitements") {
		record.TraitementsEnCours = cmd.String("traitements")
	}
	if cmd.IsSet("antecedents") {
		record.Antecedents = cmd.String("antecedents")
	}
	if cmd.IsSet("apte") {
		record.AptitudeSportive = cmd.Bool("apte")
	}
	if cmd.IsSet("notes") {
		record.NotesCoach = cmd.String("notes")
	}
	if cmd.IsSet("blessures") {
		record.BlessuresCours = cmd.String("blessures")
	}
	return record
}

// MedicalUpdate upserts an athlete's medical file, overlaying the provided
// flags on the existing record when one exists.
func (r *Runner) MedicalUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	athleteID := int(cmd.Int("athlete"))
	base := models.MedicalRecord{AthleteID: athleteID, AptitudeSportive: true}
	if current, err := r.medical.Get(ctx, athleteID); err == nil {
		base = *current
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	patched := medicalFromFlags(cmd, base)
	updated, err := r.medical.Upsert(ctx, athleteID, &patched)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Dossier médical de l'athlète %d mis à jour", updated.AthleteID)
}

// MedicalCertificate uploads a medical certificate for an athlete.
func (r *Runner) MedicalCertificate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	path := cmd.String("file")
	if path == "" {
		return fmt.Errorf("%w: --file is required", shared.ErrMissingArgument)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open certificate: %w", err)
	}
	defer file.Close()

	record, err := r.medical.UploadCertificate(ctx, int(cmd.Int("athlete")), filepath.Base(path), file)
	if err != nil {
		return err
	}
	return r.writePlainln("✓ Certificat enregistré: %s", record.CertificatURL)
}
