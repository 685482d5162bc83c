package formatter

import (
	"strings"
	"testing"

	"github.com/ameziane/coachctl/internal/attendance"
	"github.com/ameziane/coachctl/internal/models"
)

func sampleSheet(t *testing.T) *attendance.Sheet {
	t.Helper()
	event := &models.PlanningEvent{
		ID: 12, Titre: "Entraînement technique", Date: "2026-03-14",
		Heure: "18:00", Type: models.EventEntrainement, Groupe: "U15",
	}
	roster := []models.Athlete{
		{ID: 1, Nom: "Benali", Prenom: "Yacine", Groupe: "U15"},
		{ID: 2, Nom: "Cherif", Prenom: "Amine", Groupe: "U15"},
	}
	existing := []models.AttendanceRecord{
		{PlanningID: 12, AthleteID: 1, Status: models.StatusPresent},
		{PlanningID: 12, AthleteID: 2, Status: models.StatusRetard, Notes: "bus en retard"},
	}
	return attendance.NewSheet(event, roster, existing)
}

func TestExporters(t *testing.T) {
	t.Run("AthletesToCSV", func(t *testing.T) {
		athletes := []models.Athlete{
			{ID: 1, Nom: "Benali", Prenom: "Yacine", Groupe: "U15", Poste: "Ailier", NumeroLicence: "DZ-1001"},
			{ID: 2, Nom: "Cherif", Prenom: "Amine", Groupe: "U15", Blesse: true},
		}

		data, err := AthletesToCSV(athletes)
		if err != nil {
			t.Fatalf("AthletesToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Nom,Prenom,Groupe,Poste,Licence,Blesse") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Benali,Yacine,U15,Ailier,DZ-1001,false") {
			t.Errorf("CSV missing first athlete, got: %s", output)
		}
		if !strings.Contains(output, "2,Cherif,Amine,U15,,,true") {
			t.Errorf("CSV missing injured athlete, got: %s", output)
		}
	})

	t.Run("AthletesToCSV Empty", func(t *testing.T) {
		data, err := AthletesToCSV(nil)
		if err != nil {
			t.Fatalf("AthletesToCSV failed: %v", err)
		}
		if lines := strings.Count(strings.TrimSpace(string(data)), "\n"); lines != 0 {
			t.Errorf("expected headers only, got: %s", data)
		}
	})

	t.Run("SheetToCSV", func(t *testing.T) {
		data, err := SheetToCSV(sampleSheet(t))
		if err != nil {
			t.Fatalf("SheetToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "AthleteID,Nom,Prenom,Status,Notes") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Benali,Yacine,present,") {
			t.Errorf("CSV missing present row, got: %s", output)
		}
		if !strings.Contains(output, "2,Cherif,Amine,retard,bus en retard") {
			t.Errorf("CSV missing retard row, got: %s", output)
		}
	})

	t.Run("SheetToMarkdown", func(t *testing.T) {
		output := string(SheetToMarkdown(sampleSheet(t)))

		if !strings.Contains(output, "# Entraînement technique") {
			t.Errorf("markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "| Yacine Benali | present |") {
			t.Errorf("markdown missing athlete row, got: %s", output)
		}
		if !strings.Contains(output, "**1 present, 1 retard, 0 excuse, 0 absent** (2 total)") {
			t.Errorf("markdown missing summary, got: %s", output)
		}
	})

	t.Run("StatsToCSV", func(t *testing.T) {
		stats := []models.AttendanceStats{
			{Groupe: "U15", Present: 8, Absent: 2, Retard: 1, Excuse: 1, Total: 12, Rate: 66.7},
		}

		data, err := StatsToCSV(stats)
		if err != nil {
			t.Fatalf("StatsToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "AthleteID,Groupe,Present,Absent,Retard,Excuse,Total,Taux") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "0,U15,8,2,1,1,12,66.7") {
			t.Errorf("CSV missing stats row, got: %s", output)
		}
	})
}
