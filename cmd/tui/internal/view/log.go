package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

// LogModel is the browse-everything screen: the whole job log in a table,
// with filter cycling and entry deletion.
type LogModel struct {
	CommonModel
	logService  *joblog.Service
	yardService *stable.Service

	table   table.Model
	entries []*joblog.Entry
	horses  map[uuid.UUID]stable.Horse
	owners  map[uuid.UUID]string

	// Filter cycling
	unpaidOnly    bool
	dateFilterIdx int

	loading bool
	err     error
	status  string
}

func NewLogModel(logSvc *joblog.Service, yardSvc *stable.Service) LogModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Owner", Width: 16},
		{Title: "Horse", Width: 16},
		{Title: "Job", Width: 28},
		{Title: "Price", Width: 10},
		{Title: "Paid", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return LogModel{
		logService:  logSvc,
		yardService: yardSvc,
		table:       t,
	}
}

func (m LogModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.entries = msg.entries
		m.horses = msg.horses
		m.owners = msg.owners
		m.status = ""
		m.refreshTable()

		return m, nil

	case logActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "u":
			m.unpaidOnly = !m.unpaidOnly
			return m, m.loadCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			return m, m.loadCmd()
		case "x":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.entries) {
				break
			}

			return m, m.deleteCmd(m.entries[idx].ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LogModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading job log...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	paidLabels := map[bool]string{false: "All", true: "Unpaid"}
	dateLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf(
		"Filter: [u] Paid: %s | [d] Date: %s | [x] delete | [r] refresh | Esc: back",
		activeStyle(paidLabels[m.unpaidOnly]),
		activeStyle(dateLabels[m.dateFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m LogModel) filter() joblog.ListFilter {
	filter := joblog.ListFilter{UnpaidOnly: m.unpaidOnly}

	now := time.Now()

	switch m.dateFilterIdx {
	case 1:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		filter.From = &from
		filter.To = &to
	case 2:
		from := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		filter.From = &from
		filter.To = &to
	}

	return filter
}

func (m *LogModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))

	for _, e := range m.entries {
		horseName := "Unknown"
		ownerName := "Unknown"

		if h, ok := m.horses[e.HorseID]; ok {
			horseName = h.Name
			if o, ok := m.owners[h.OwnerID]; ok {
				ownerName = o
			}
		}

		paid := ""
		if e.Paid {
			paid = "✅"
		}

		rows = append(rows, table.Row{
			FormatDate(e.TS),
			ownerName,
			horseName,
			e.JobLabel,
			FormatAmount(e.Price),
			paid,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type logLoadedMsg struct {
	entries []*joblog.Entry
	horses  map[uuid.UUID]stable.Horse
	owners  map[uuid.UUID]string
	err     error
}

func (m LogModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.logService.List(ctx, filter)
		if err != nil {
			return logLoadedMsg{err: err}
		}

		horses, err := m.yardService.ListHorses(ctx)
		if err != nil {
			return logLoadedMsg{err: err}
		}

		owners, err := m.yardService.ListOwners(ctx)
		if err != nil {
			return logLoadedMsg{err: err}
		}

		horseByID := make(map[uuid.UUID]stable.Horse, len(horses))
		for _, h := range horses {
			horseByID[h.ID] = h
		}

		ownerNames := make(map[uuid.UUID]string, len(owners))
		for _, o := range owners {
			ownerNames[o.ID] = o.Name
		}

		return logLoadedMsg{entries: entries, horses: horseByID, owners: ownerNames}
	}
}

type logActionMsg struct {
	note string
	err  error
}

func (m LogModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.logService.Remove(ctx, id); err != nil {
			return logActionMsg{err: err}
		}

		return logActionMsg{note: "Entry removed."}
	}
}
