package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

type dailyState int

const (
	dailyStateList dailyState = iota
	dailyStatePick
	dailyStateDetails
)

// DailyModel is the day-to-day logging screen: one date, its entries, and
// a form to log new jobs against a horse.
type DailyModel struct {
	CommonModel
	logService  *joblog.Service
	yardService *stable.Service

	date    time.Time
	entries []*joblog.Entry
	horses  []stable.Horse
	owners  map[uuid.UUID]string
	catalog []joblog.JobType

	state dailyState
	form  *huh.Form

	pickedHorse string
	pickedJob   string
	staged      *joblog.Staged

	description string
	priceText   string
	until       string

	status string
}

func NewDailyModel(logSvc *joblog.Service, yardSvc *stable.Service) DailyModel {
	return DailyModel{
		logService:  logSvc,
		yardService: yardSvc,
		date:        joblog.DateOnly(time.Now()),
	}
}

func (m DailyModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DailyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dailyLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.entries = msg.entries
		m.horses = msg.horses
		m.owners = msg.owners
		m.catalog = msg.catalog
		m.status = ""

		return m, nil

	case dailyActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}

		m.state = dailyStateList

		return m, m.loadCmd()

	case stagedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = dailyStateList

			return m, nil
		}

		m.staged = msg.staged
		if m.staged.NeedsDetails || m.staged.NeedsUntil {
			m.form = m.buildDetailsForm()
			m.state = dailyStateDetails

			return m, m.form.Init()
		}

		return m, m.commitCmd(joblog.Details{})
	}

	switch m.state {
	case dailyStateList:
		return m.updateList(msg)
	case dailyStatePick, dailyStateDetails:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m DailyModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, Back
	case "left":
		m.date = m.date.AddDate(0, 0, -1)
		return m, m.loadCmd()
	case "right":
		m.date = m.date.AddDate(0, 0, 1)
		return m, m.loadCmd()
	case "n":
		if len(m.horses) == 0 {
			m.status = "No horses yet. Add owners and horses first."
			return m, nil
		}

		m.form = m.buildPickForm()
		m.state = dailyStatePick

		return m, m.form.Init()
	case "u":
		return m, m.undoCmd()
	case "x":
		return m, m.clearDayCmd()
	}

	return m, nil
}

func (m DailyModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		// Declining the form is a cancellation, not an error.
		m.state = dailyStateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == dailyStatePick {
		return m, m.stageCmd()
	}

	det := joblog.Details{
		Description: m.description,
		Until:       m.until,
	}

	if p, err := strconv.ParseFloat(strings.TrimSpace(m.priceText), 64); err == nil {
		pence := int64(p * 100)
		det.Price = &pence
	}

	return m, m.commitCmd(det)
}

func (m DailyModel) View() string {
	if m.state == dailyStatePick || m.state == dailyStateDetails {
		return lipgloss.NewStyle().Padding(2).Render(m.form.View())
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Jobs — %s\n\n", m.date.Format("Monday 2 January 2006")))

	if len(m.entries) == 0 {
		sb.WriteString("No jobs logged on this day.\n")
	}

	var total int64

	for _, e := range m.entries {
		paid := ""
		if e.Paid {
			paid = " ✅"
		}

		horse := "Horse"
		if h, ok := m.horseByID(e.HorseID); ok {
			horse = h.Name
		}

		sb.WriteString(fmt.Sprintf("%s — %s  %s%s\n", e.JobLabel, horse, FormatAmount(e.Price), paid))
		total += e.Price
	}

	if len(m.entries) > 0 {
		sb.WriteString(fmt.Sprintf("\nTotal %s\n", FormatAmount(total)))
	}

	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}

	sb.WriteString("\n(n: log job, u: undo last, x: clear day, ←/→: change day, Esc: back)")

	return lipgloss.NewStyle().Padding(2).Render(sb.String())
}

func (m DailyModel) horseByID(id uuid.UUID) (stable.Horse, bool) {
	for _, h := range m.horses {
		if h.ID == id {
			return h, true
		}
	}

	return stable.Horse{}, false
}

func (m *DailyModel) buildPickForm() *huh.Form {
	horseOpts := make([]huh.Option[string], 0, len(m.horses))
	for _, h := range m.horses {
		label := h.Name
		if owner, ok := m.owners[h.OwnerID]; ok {
			label = fmt.Sprintf("%s — %s", h.Name, owner)
		}

		horseOpts = append(horseOpts, huh.NewOption(label, h.ID.String()))
	}

	jobOpts := make([]huh.Option[string], 0, len(m.catalog))
	for _, jt := range m.catalog {
		label := jt.Label
		if jt.Price > 0 {
			label = fmt.Sprintf("%s • %s", jt.Label, FormatAmount(jt.Price))
		}

		jobOpts = append(jobOpts, huh.NewOption(label, jt.Key))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Horse").
				Options(horseOpts...).
				Value(&m.pickedHorse),
			huh.NewSelect[string]().
				Title("Job").
				Options(jobOpts...).
				Value(&m.pickedJob),
		),
	)
}

func (m *DailyModel) buildDetailsForm() *huh.Form {
	m.description = ""
	m.priceText = ""
	m.until = ""

	if m.staged.NeedsDetails {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Description").
					Value(&m.description),
				huh.NewInput().
					Title("Price (£)").
					Value(&m.priceText),
			),
		)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shoot until (e.g. 15:00)").
				Value(&m.until),
		),
	)
}

type dailyLoadedMsg struct {
	entries []*joblog.Entry
	horses  []stable.Horse
	owners  map[uuid.UUID]string
	catalog []joblog.JobType
	err     error
}

func (m DailyModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.logService.EntriesOnDay(ctx, m.date)
		if err != nil {
			return dailyLoadedMsg{err: err}
		}

		horses, err := m.yardService.ListHorses(ctx)
		if err != nil {
			return dailyLoadedMsg{err: err}
		}

		owners, err := m.yardService.ListOwners(ctx)
		if err != nil {
			return dailyLoadedMsg{err: err}
		}

		ownerNames := make(map[uuid.UUID]string, len(owners))
		for _, o := range owners {
			ownerNames[o.ID] = o.Name
		}

		catalog, err := m.logService.Catalog(ctx)
		if err != nil {
			return dailyLoadedMsg{err: err}
		}

		return dailyLoadedMsg{entries: entries, horses: horses, owners: ownerNames, catalog: catalog}
	}
}

type stagedMsg struct {
	staged *joblog.Staged
	err    error
}

func (m DailyModel) stageCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		horseID, err := uuid.Parse(m.pickedHorse)
		if err != nil {
			return stagedMsg{err: err}
		}

		staged, err := m.logService.Stage(ctx, horseID, m.pickedJob, m.date)

		return stagedMsg{staged: staged, err: err}
	}
}

type dailyActionMsg struct {
	note string
	err  error
}

func (m DailyModel) commitCmd(det joblog.Details) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.logService.Commit(ctx, m.staged, det)
		if err == joblog.ErrCanceled {
			return dailyActionMsg{note: "Canceled."}
		}

		if err != nil {
			return dailyActionMsg{err: err}
		}

		return dailyActionMsg{note: "Job logged."}
	}
}

func (m DailyModel) undoCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.logService.UndoLast(ctx); err != nil {
			return dailyActionMsg{err: err}
		}

		return dailyActionMsg{note: "Last job removed."}
	}
}

func (m DailyModel) clearDayCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.logService.ClearDay(ctx, m.date); err != nil {
			return dailyActionMsg{err: err}
		}

		return dailyActionMsg{note: "Day cleared."}
	}
}
