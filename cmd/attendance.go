package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/attendance"
	"github.com/ameziane/coachctl/internal/formatter"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/ameziane/coachctl/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// buildSheet fetches the event, its group roster and any existing records,
// then seeds a sheet. Every roster athlete starts absent unless the backend
// already has a record for them.
func (r *Runner) buildSheet(ctx context.Context, planningID int) (*attendance.Sheet, error) {
	event, err := r.planning.Get(ctx, planningID)
	if err != nil {
		return nil, fmt.Errorf("failed to load planning event %d: %w", planningID, err)
	}

	roster, err := r.athletes.List(ctx, api.AthleteFilter{Groupe: event.Groupe})
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for %s: %w", event.Groupe, err)
	}

	existing, err := r.attendance.ListByPlanning(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	return attendance.NewSheet(event, roster, existing), nil
}

// AttendanceSheet prints the attendance sheet for a planning event.
func (r *Runner) AttendanceSheet(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	sheet, err := r.buildSheet(ctx, int(cmd.Int("planning")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(sheet.Records(), cmd.Bool("pretty"))
	}
	if cmd.Bool("csv") {
		data, err := formatter.SheetToCSV(sheet)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}
	return r.writePlain("%s", formatter.SheetToMarkdown(sheet))
}

// applyMarkFlags mutates the sheet from --all-present, --set and --note flags.
func applyMarkFlags(sheet *attendance.Sheet, cmd *cli.Command) error {
	if cmd.Bool("all-present") {
		sheet.MarkAllPresent()
	}

	for _, pair := range cmd.StringSlice("set") {
		id, status, ok := splitPair(pair)
		if !ok {
			return fmt.Errorf("%w: --set expects ID=STATUS, got %q", shared.ErrInvalidFlag, pair)
		}
		if err := sheet.SetStatus(id, models.AttendanceStatus(status)); err != nil {
			return err
		}
	}

	for _, pair := range cmd.StringSlice("note") {
		id, note, ok := splitPair(pair)
		if !ok {
			return fmt.Errorf("%w: --note expects ID=TEXT, got %q", shared.ErrInvalidFlag, pair)
		}
		if err := sheet.SetNotes(id, note); err != nil {
			return err
		}
	}
	return nil
}

func splitPair(pair string) (int, string, bool) {
	key, value, found := strings.Cut(pair, "=")
	if !found {
		return 0, "", false
	}
	id, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, "", false
	}
	return id, strings.TrimSpace(value), true
}

// AttendanceSave builds the sheet, applies the mark flags and submits every
// record, reporting each outcome as it happens.
func (r *Runner) AttendanceSave(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	sheet, err := r.buildSheet(ctx, int(cmd.Int("planning")))
	if err != nil {
		return err
	}
	if err := applyMarkFlags(sheet, cmd); err != nil {
		return err
	}

	progress := make(chan attendance.ProgressUpdate, len(sheet.Roster())*2+1)
	drained := make(chan struct{})
	go func() {
		for update := range progress {
			r.writePlainln("%s", update.Message)
		}
		close(drained)
	}()

	result, saveErr := sheet.Save(ctx, r.attendance, progress)
	close(progress)
	<-drained

	summary := sheet.Summary()
	r.writePlainln("Présents: %d  Retards: %d  Excusés: %d  Absents: %d",
		summary.Present, summary.Retard, summary.Excuse, summary.Absent)

	if saveErr != nil {
		for _, item := range result.FailedItems() {
			r.writePlainln("  ✗ %s: %v", item.Athlete.FullName(), item.Err)
		}
		return saveErr
	}
	return r.writePlainln("✓ %d enregistrement(s) sauvegardé(s)", result.Succeeded)
}

// AttendanceStats prints server-computed attendance statistics.
func (r *Runner) AttendanceStats(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	filter := api.StatsFilter{
		AthleteID: int(cmd.Int("athlete")),
		Groupe:    shared.NormalizeGroup(cmd.String("groupe")),
		From:      cmd.String("from"),
		To:        cmd.String("to"),
	}

	stats, err := r.attendance.Stats(ctx, filter)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}
	if cmd.Bool("csv") {
		data, err := formatter.StatsToCSV(stats)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	for _, row := range stats {
		label := row.Groupe
		if row.AthleteID != 0 {
			label = fmt.Sprintf("athlète %d", row.AthleteID)
		}
		r.writePlainln("%-12s présent %3d  retard %3d  excusé %3d  absent %3d  (%.1f%%)",
			label, row.Present, row.Retard, row.Excuse, row.Absent, row.Rate)
	}
	return nil
}

// AttendanceUI opens the interactive attendance sheet.
func (r *Runner) AttendanceUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	sheet, err := r.buildSheet(ctx, int(cmd.Int("planning")))
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, sheet, r.attendance)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run attendance UI: %w", err)
	}
	return nil
}
