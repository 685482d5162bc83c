package ui

import (
	"context"
	"fmt"

	"github.com/ameziane/coachctl/internal/attendance"
	"github.com/ameziane/coachctl/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SheetView ViewState = iota
	ConfirmView
	SaveView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	sheet        *attendance.Sheet
	svc          attendance.Upserter
	width        int
	height       int
	rosterList   list.Model
	progressChan chan attendance.ProgressUpdate
	progress     attendance.ProgressUpdate
	result       *attendance.SaveResult
	err          error
	help         help.Model
	keys         keyMap
}

type progressUpdateMsg attendance.ProgressUpdate

type saveCompleteMsg struct {
	result *attendance.SaveResult
	err    error
}

// athleteItem wraps one roster athlete plus their current mark to implement [list.Item].
type athleteItem struct {
	athlete models.Athlete
	mark    attendance.Mark
}

func (i athleteItem) FilterValue() string { return i.athlete.FullName() }
func (i athleteItem) Title() string       { return i.athlete.FullName() }
func (i athleteItem) Description() string {
	desc := string(i.mark.Status)
	if i.mark.Notes != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.mark.Notes)
	}
	if i.athlete.Blesse {
		desc += " • blessé"
	}
	return desc
}

// NewModel creates a new TUI model over a seeded attendance sheet.
func NewModel(ctx context.Context, sheet *attendance.Sheet, svc attendance.Upserter) *Model {
	m := &Model{
		ctx:   ctx,
		view:  SheetView,
		sheet: sheet,
		svc:   svc,
		help:  help.New(),
		keys:  newKeyMap(),
	}

	m.rosterList = list.New(m.buildItems(), list.NewDefaultDelegate(), 0, 0)
	m.rosterList.Title = fmt.Sprintf("Présences — %s (%s)", sheet.Event().Titre, sheet.Event().Date)
	return m
}

// buildItems snapshots the sheet into list items. Called after every mutation
// so descriptions track the current statuses.
func (m *Model) buildItems() []list.Item {
	roster := m.sheet.Roster()
	items := make([]list.Item, len(roster))
	for i, athlete := range roster {
		mark, _ := m.sheet.Mark(athlete.ID)
		items[i] = athleteItem{athlete: athlete, mark: mark}
	}
	return items
}

func (m *Model) refreshItems() {
	index := m.rosterList.Index()
	m.rosterList.SetItems(m.buildItems())
	m.rosterList.Select(index)
}

// Init implements tea.Model. The sheet is seeded before the TUI starts, so
// there is nothing to fetch.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rosterList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SheetView:
			return m.handleSheetKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case progressUpdateMsg:
		m.progress = attendance.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case saveCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		m.progressChan = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.rosterList, cmd = m.rosterList.Update(msg)
	return m, cmd
}

func (m *Model) selectedAthlete() (models.Athlete, bool) {
	selected := m.rosterList.SelectedItem()
	if selected == nil {
		return models.Athlete{}, false
	}
	item, ok := selected.(athleteItem)
	return item.athlete, ok
}

func (m *Model) setSelected(status models.AttendanceStatus) {
	if athlete, ok := m.selectedAthlete(); ok {
		m.sheet.SetStatus(athlete.ID, status)
		m.refreshItems()
	}
}

func (m *Model) handleSheetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.setSelected(models.StatusPresent)
		return m, nil
	case "a":
		m.setSelected(models.StatusAbsent)
		return m, nil
	case "r":
		m.setSelected(models.StatusRetard)
		return m, nil
	case "e":
		m.setSelected(models.StatusExcuse)
		return m, nil
	case " ":
		if athlete, ok := m.selectedAthlete(); ok {
			m.sheet.CycleStatus(athlete.ID)
			m.refreshItems()
		}
		return m, nil
	case "P":
		m.sheet.MarkAllPresent()
		m.refreshItems()
		return m, nil
	case "s":
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.rosterList, cmd = m.rosterList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = SheetView
		return m, nil
	case "y":
		m.view = SaveView
		return m, m.startSave()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter":
		return m, tea.Quit
	case "r":
		// Back to the sheet to fix failed records and save again.
		m.view = SheetView
		m.result = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) startSave() tea.Cmd {
	m.progressChan = make(chan attendance.ProgressUpdate, 50)
	progressChan := m.progressChan

	go func() {
		result, err := m.sheet.Save(m.ctx, m.svc, progressChan)
		m.result = result
		m.err = err
		close(progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return saveCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return saveCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SheetView:
		return m.renderSheet()
	case ConfirmView:
		return m.renderConfirm()
	case SaveView:
		return m.renderSave()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) renderSheet() string {
	sum := m.sheet.Summary()
	footer := styles.help.Render(fmt.Sprintf(
		"%d présents · %d retards · %d excusés · %d absents / %d",
		sum.Present, sum.Retard, sum.Excuse, sum.Absent, sum.Total))

	helpKeys := []key.Binding{m.keys.present, m.keys.absent, m.keys.retard, m.keys.excuse, m.keys.allPresent, m.keys.save, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.rosterList.View(), footer, helpView)
}

func (m *Model) renderConfirm() string {
	sum := m.sheet.Summary()
	title := styles.title.Render(fmt.Sprintf("Enregistrer la feuille de présence de '%s' ?", m.sheet.Event().Titre))
	body := fmt.Sprintf("%d présents, %d retards, %d excusés, %d absents (%d athlètes)",
		sum.Present, sum.Retard, sum.Excuse, sum.Absent, sum.Total)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
}

func (m *Model) renderSave() string {
	title := styles.title.Render("Enregistrement...")
	bar := ""
	if m.progress.Total > 0 {
		bar = fmt.Sprintf("[%d/%d] ", m.progress.Step, m.progress.Total)
	}
	return fmt.Sprintf("%s\n%s%s\n", title, bar, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.result == nil {
		if m.err != nil {
			return styles.err.Render(fmt.Sprintf("Erreur: %v\n\nPress q to quit", m.err))
		}
		return ""
	}

	var body string
	if m.result.Failed == 0 {
		body = styles.ok.Render(fmt.Sprintf("✓ %d fiches enregistrées", m.result.Succeeded))
	} else {
		body = styles.warn.Render(fmt.Sprintf("%d enregistrées, %d en échec:", m.result.Succeeded, m.result.Failed))
		for _, item := range m.result.FailedItems() {
			body += "\n" + styles.err.Render(fmt.Sprintf("  ✗ %s: %v", item.Athlete.FullName(), item.Err))
		}
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.restart, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", styles.title.Render("Résultat"), body, helpView)
}
