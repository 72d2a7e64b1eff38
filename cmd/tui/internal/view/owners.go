package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"stablemate/internal/billing"
	"stablemate/internal/stable"
)

type ownersState int

const (
	ownersStateList ownersState = iota
	ownersStateAddOwner
	ownersStateAddHorse
)

// OwnersModel lists per-owner balances and handles owner-level settlement.
type OwnersModel struct {
	CommonModel
	yardService    *stable.Service
	billingService *billing.Service

	totals []billing.OwnerTotal
	cursor int

	state ownersState
	form  *huh.Form
	name  string

	status string
}

func NewOwnersModel(yardSvc *stable.Service, billingSvc *billing.Service) OwnersModel {
	return OwnersModel{
		yardService:    yardSvc,
		billingService: billingSvc,
	}
}

func (m OwnersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m OwnersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ownersLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.totals = msg.totals
		if m.cursor >= len(m.totals) {
			m.cursor = 0
		}

		return m, nil

	case ownersActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}

		m.state = ownersStateList

		return m, m.loadCmd()
	}

	if m.state != ownersStateList {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.totals)-1 {
			m.cursor++
		}
	case "a":
		m.name = ""
		m.form = textForm("Owner name", &m.name)
		m.state = ownersStateAddOwner

		return m, m.form.Init()
	case "h":
		if len(m.totals) == 0 {
			break
		}

		m.name = ""
		m.form = textForm("Horse name", &m.name)
		m.state = ownersStateAddHorse

		return m, m.form.Init()
	case "p":
		if len(m.totals) == 0 {
			break
		}

		return m, m.markPaidCmd(m.totals[m.cursor])
	}

	return m, nil
}

func (m OwnersModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = ownersStateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == ownersStateAddOwner {
		return m, m.addOwnerCmd(m.name)
	}

	return m, m.addHorseCmd(m.totals[m.cursor], m.name)
}

func (m OwnersModel) View() string {
	if m.state != ownersStateList {
		return lipgloss.NewStyle().Padding(2).Render(m.form.View())
	}

	var sb strings.Builder

	sb.WriteString("Owners\n\n")

	if len(m.totals) == 0 {
		sb.WriteString("No owners yet.\n")
	}

	for i, ot := range m.totals {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		sb.WriteString(fmt.Sprintf("%s%s — %s\n", marker, ot.Owner.Name, FormatAmount(ot.Total)))

		for _, ht := range ot.Horses {
			sb.WriteString(fmt.Sprintf("    %s: %d jobs, %s\n", ht.Horse.Name, ht.Count, FormatAmount(ht.Total)))
		}
	}

	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}

	sb.WriteString("\n(a: add owner, h: add horse, p: mark owner paid, Esc: back)")

	return lipgloss.NewStyle().Padding(2).Render(sb.String())
}

func textForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(title).Value(value),
		),
	)
}

type ownersLoadedMsg struct {
	totals []billing.OwnerTotal
	err    error
}

func (m OwnersModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		totals, err := m.billingService.Totals(ctx)
		if err != nil {
			return ownersLoadedMsg{err: err}
		}

		// Owners without any logged work still deserve a row.
		owners, err := m.yardService.ListOwners(ctx)
		if err != nil {
			return ownersLoadedMsg{err: err}
		}

		seen := make(map[string]bool, len(totals))
		for _, ot := range totals {
			seen[ot.Owner.ID.String()] = true
		}

		for _, o := range owners {
			if !seen[o.ID.String()] {
				totals = append(totals, billing.OwnerTotal{Owner: o})
			}
		}

		return ownersLoadedMsg{totals: totals, err: nil}
	}
}

type ownersActionMsg struct {
	note string
	err  error
}

func (m OwnersModel) addOwnerCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.yardService.AddOwner(ctx, name); err != nil {
			return ownersActionMsg{err: err}
		}

		return ownersActionMsg{note: "Owner added."}
	}
}

func (m OwnersModel) addHorseCmd(ot billing.OwnerTotal, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.yardService.AddHorse(ctx, ot.Owner.ID, name); err != nil {
			return ownersActionMsg{err: err}
		}

		return ownersActionMsg{note: "Horse added."}
	}
}

func (m OwnersModel) markPaidCmd(ot billing.OwnerTotal) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rec, err := m.billingService.MarkOwnerPaid(ctx, ot.Owner.ID)
		if err == billing.ErrNothingToPay {
			return ownersActionMsg{note: fmt.Sprintf("%s has nothing outstanding.", ot.Owner.Name)}
		}

		if err != nil {
			return ownersActionMsg{err: err}
		}

		return ownersActionMsg{note: fmt.Sprintf("Settled %s for %s.", ot.Owner.Name, FormatAmount(rec.Total))}
	}
}
