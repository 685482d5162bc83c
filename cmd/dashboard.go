package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// DashboardShow prints the home-screen summary.
func (r *Runner) DashboardShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	summary, err := r.dashboard.Summary(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(summary, cmd.Bool("pretty"))
	}

	r.writePlainln("Athlètes: %d (%d blessé(s))", summary.TotalAthletes, summary.AthletesBlesses)
	r.writePlainln("Séances cette semaine: %d", summary.SeancesSemaine)

	if len(summary.ProchainsEvents) > 0 {
		r.writePlainln("")
		r.writePlainln("Prochains événements:")
		for _, event := range summary.ProchainsEvents {
			r.writePlainln("  %s %s %-14s %-8s %s", event.Date, event.Heure, event.Type, event.Groupe, event.Titre)
		}
	}

	if len(summary.StatsParGroupe) > 0 {
		r.writePlainln("")
		r.writePlainln("Présence par groupe:")
		for _, stats := range summary.StatsParGroupe {
			r.writePlainln("  %-8s %.1f%%", stats.Groupe, stats.Rate)
		}
	}
	return nil
}
