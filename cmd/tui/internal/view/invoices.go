package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"stablemate/internal/billing"
)

type invoicesState int

const (
	invoicesStateList invoicesState = iota
	invoicesStateRange
)

// InvoicesModel lists invoices, creates them for a period, and settles them.
type InvoicesModel struct {
	CommonModel
	billingService *billing.Service

	invoices []*billing.Invoice
	cursor   int

	state    invoicesState
	form     *huh.Form
	fromText string
	toText   string

	status string
}

func NewInvoicesModel(billingSvc *billing.Service) InvoicesModel {
	return InvoicesModel{billingService: billingSvc}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.invoices = msg.invoices
		if m.cursor >= len(m.invoices) {
			m.cursor = 0
		}

		return m, nil

	case invoicesActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}

		m.state = invoicesStateList

		return m, m.loadCmd()
	}

	if m.state == invoicesStateRange {
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
		if m.cursor < len(m.invoices)-1 {
			m.cursor++
		}
	case "n":
		today := FormatDate(time.Now())
		m.fromText = today
		m.toText = today
		m.form = m.buildRangeForm()
		m.state = invoicesStateRange

		return m, m.form.Init()
	case "p":
		if len(m.invoices) == 0 {
			break
		}

		return m, m.markPaidCmd(m.invoices[m.cursor])
	}

	return m, nil
}

func (m InvoicesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = invoicesStateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createCmd(m.fromText, m.toText)
}

func (m InvoicesModel) View() string {
	if m.state == invoicesStateRange {
		return lipgloss.NewStyle().Padding(2).Render(m.form.View())
	}

	var sb strings.Builder

	sb.WriteString("Invoices\n\n")

	if len(m.invoices) == 0 {
		sb.WriteString("No invoices yet.\n")
	}

	for i, inv := range m.invoices {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		status := "Unpaid"
		if inv.Paid {
			status = "Paid"
		}

		period := FormatDate(inv.Date)
		if inv.DateRange != "" {
			period = inv.DateRange
		}

		sb.WriteString(fmt.Sprintf("%s%s — %s — %s — %s\n",
			marker, inv.Owner, period, FormatAmount(inv.Total), status))

		if i == m.cursor {
			for _, it := range inv.Items {
				sb.WriteString(fmt.Sprintf("    %s — %s  %s\n", it.Horse, it.JobLabel, FormatAmount(it.Price)))
			}
		}
	}

	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}

	sb.WriteString("\n(n: new invoices for period, p: mark paid, Esc: back)")

	return lipgloss.NewStyle().Padding(2).Render(sb.String())
}

func (m *InvoicesModel) buildRangeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("From (YYYY-MM-DD)").Value(&m.fromText),
			huh.NewInput().Title("To (YYYY-MM-DD)").Value(&m.toText),
		),
	)
}

type invoicesLoadedMsg struct {
	invoices []*billing.Invoice
	err      error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.billingService.ListInvoices(ctx)

		return invoicesLoadedMsg{invoices: invoices, err: err}
	}
}

type invoicesActionMsg struct {
	note string
	err  error
}

func (m InvoicesModel) createCmd(fromText, toText string) tea.Cmd {
	return func() tea.Msg {
		from, err := time.Parse(time.DateOnly, strings.TrimSpace(fromText))
		if err != nil {
			return invoicesActionMsg{err: fmt.Errorf("invalid from date: %w", err)}
		}

		to, err := time.Parse(time.DateOnly, strings.TrimSpace(toText))
		if err != nil {
			return invoicesActionMsg{err: fmt.Errorf("invalid to date: %w", err)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.billingService.MakeInvoices(ctx, from, to)
		if err == billing.ErrNoJobs {
			return invoicesActionMsg{note: "No unbilled jobs found in this range."}
		}

		if err != nil {
			return invoicesActionMsg{err: err}
		}

		return invoicesActionMsg{note: fmt.Sprintf("Created %d invoice(s).", len(invoices))}
	}
}

func (m InvoicesModel) markPaidCmd(inv *billing.Invoice) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.billingService.MarkInvoicePaid(ctx, inv.ID); err != nil {
			return invoicesActionMsg{err: err}
		}

		return invoicesActionMsg{note: fmt.Sprintf("Marked %s's invoice paid.", inv.Owner)}
	}
}
