// package formatter exports rosters and attendance sheets to CSV and Markdown
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ameziane/coachctl/internal/attendance"
	"github.com/ameziane/coachctl/internal/models"
)

// AthletesToCSV converts a roster to CSV with columns: ID, Nom, Prenom, Groupe, Poste, Licence, Blesse
func AthletesToCSV(athletes []models.Athlete) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Nom", "Prenom", "Groupe", "Poste", "Licence", "Blesse"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, athlete := range athletes {
		record := []string{
			strconv.Itoa(athlete.ID),
			athlete.Nom,
			athlete.Prenom,
			athlete.Groupe,
			athlete.Poste,
			athlete.NumeroLicence,
			strconv.FormatBool(athlete.Blesse),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SheetToCSV converts an attendance sheet to CSV with columns: AthleteID, Nom, Prenom, Status, Notes
func SheetToCSV(sheet *attendance.Sheet) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"AthleteID", "Nom", "Prenom", "Status", "Notes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, athlete := range sheet.Roster() {
		mark, _ := sheet.Mark(athlete.ID)
		record := []string{
			strconv.Itoa(athlete.ID),
			athlete.Nom,
			athlete.Prenom,
			string(mark.Status),
			mark.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SheetToMarkdown renders an attendance sheet as a Markdown table with a
// summary line, suitable for pasting into club reports.
func SheetToMarkdown(sheet *attendance.Sheet) []byte {
	var buf bytes.Buffer
	event := sheet.Event()

	buf.WriteString(fmt.Sprintf("# %s\n\n", event.Titre))
	buf.WriteString(fmt.Sprintf("%s %s (%s, %s)\n\n", event.Date, event.Heure, event.Type, event.Groupe))

	buf.WriteString("| Athlete | Status | Notes |\n")
	buf.WriteString("|---------|--------|-------|\n")
	for _, athlete := range sheet.Roster() {
		mark, _ := sheet.Mark(athlete.ID)
		buf.WriteString(fmt.Sprintf("| %s | %s | %s |\n", athlete.FullName(), mark.Status, mark.Notes))
	}

	sum := sheet.Summary()
	buf.WriteString(fmt.Sprintf("\n**%d present, %d retard, %d excuse, %d absent** (%d total)\n",
		sum.Present, sum.Retard, sum.Excuse, sum.Absent, sum.Total))

	return buf.Bytes()
}

// StatsToCSV converts attendance statistics to CSV.
func StatsToCSV(stats []models.AttendanceStats) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"AthleteID", "Groupe", "Present", "Absent", "Retard", "Excuse", "Total", "Taux"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, st := range stats {
		record := []string{
			strconv.Itoa(st.AthleteID),
			st.Groupe,
			strconv.Itoa(st.Present),
			strconv.Itoa(st.Absent),
			strconv.Itoa(st.Retard),
			strconv.Itoa(st.Excuse),
			strconv.Itoa(st.Total),
			strconv.FormatFloat(st.Rate, 'f', 1, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
