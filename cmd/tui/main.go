package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"stablemate/cmd/tui/internal/view"
	"stablemate/internal/billing"
	billingStore "stablemate/internal/billing/store"
	"stablemate/internal/config"
	"stablemate/internal/database"
	"stablemate/internal/joblog"
	joblogStore "stablemate/internal/joblog/store"
	"stablemate/internal/stable"
	stableStore "stablemate/internal/stable/store"
)

type model struct {
	logService     *joblog.Service
	yardService    *stable.Service
	billingService *billing.Service

	currentView View

	dailyView    view.DailyModel
	ownersView   view.OwnersModel
	invoicesView view.InvoicesModel
	logView      view.LogModel
}

type View int

const (
	ViewMenu     View = 0
	ViewDaily    View = 1
	ViewOwners   View = 2
	ViewInvoices View = 3
	ViewLog      View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	yardSvc := stable.NewService(stableStore.New(db))
	logSvc := joblog.NewService(joblogStore.New(db))
	billingSvc := billing.NewService(billingStore.New(db), logSvc, yardSvc)

	return model{
		logService:     logSvc,
		yardService:    yardSvc,
		billingService: billingSvc,
		currentView:    ViewMenu,
		dailyView:      view.NewDailyModel(logSvc, yardSvc),
		ownersView:     view.NewOwnersModel(yardSvc, billingSvc),
		invoicesView:   view.NewInvoicesModel(billingSvc),
		logView:        view.NewLogModel(logSvc, yardSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDaily
				m.dailyView = view.NewDailyModel(m.logService, m.yardService)

				return m, m.dailyView.Init()
			case "2":
				m.currentView = ViewOwners
				m.ownersView = view.NewOwnersModel(m.yardService, m.billingService)

				return m, m.ownersView.Init()
			case "3":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.billingService)

				return m, m.invoicesView.Init()
			case "4":
				m.currentView = ViewLog
				m.logView = view.NewLogModel(m.logService, m.yardService)

				return m, m.logView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDaily:
		var newModel tea.Model
		newModel, cmd = m.dailyView.Update(msg)
		m.dailyView = newModel.(view.DailyModel)
	case ViewOwners:
		var newModel tea.Model
		newModel, cmd = m.ownersView.Update(msg)
		m.ownersView = newModel.(view.OwnersModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewLog:
		var newModel tea.Model
		newModel, cmd = m.logView.Update(msg)
		m.logView = newModel.(view.LogModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Stablemate\n\n" +
				"1. Daily Job Log\n" +
				"2. Owners & Balances\n" +
				"3. Invoices\n" +
				"4. Full Job Log\n\n" +
				"q. Quit",
		)
	case ViewDaily:
		return m.dailyView.View()
	case ViewOwners:
		return m.ownersView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewLog:
		return m.logView.View()
	}

	return "Unknown View"
}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))

	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
