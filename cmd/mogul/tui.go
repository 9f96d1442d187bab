package main

import (
	"context"
	"fmt"
	"time"

	cl "mogul/internal/cli"
	"mogul/internal/game"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const tuiPollEvery = 2 * time.Second

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	tuiHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	tuiGoodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	tuiBadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiEventStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

func newTUICmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newTUIModel(newClient(apiBase))
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type tuiTab int

const (
	tabBusinesses tuiTab = iota
	tabProperties
	tabStocks
)

type stateMsg game.StateView

type stocksMsg []game.StockView

type tuiErrMsg struct{ err error }

type pollMsg time.Time

type tuiModel struct {
	client *cl.Client

	state  game.StateView
	stocks []game.StockView
	loaded bool
	err    error

	tab        tuiTab
	businesses table.Model
	properties table.Model
	market     table.Model
}

func newTUIModel(client *cl.Client) tuiModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("45"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	businesses := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "NAME", Width: 22},
			{Title: "LVL", Width: 4},
			{Title: "NET/HR", Width: 14},
			{Title: "NEXT LVL", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	businesses.SetStyles(styles)

	properties := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "NAME", Width: 22},
			{Title: "LVL", Width: 4},
			{Title: "TENANT", Width: 7},
			{Title: "NET/HR", Width: 14},
			{Title: "VALUE", Width: 14},
		}),
		table.WithHeight(12),
	)
	properties.SetStyles(styles)

	market := table.New(
		table.WithColumns([]table.Column{
			{Title: "SYM", Width: 5},
			{Title: "NAME", Width: 22},
			{Title: "PRICE", Width: 12},
			{Title: "CHANGE", Width: 9},
			{Title: "SHARES", Width: 8},
			{Title: "VALUE", Width: 14},
		}),
		table.WithHeight(12),
	)
	market.SetStyles(styles)

	return tuiModel{
		client:     client,
		businesses: businesses,
		properties: properties,
		market:     market,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(m.fetchState, m.fetchStocks, pollTick())
}

func pollTick() tea.Cmd {
	return tea.Tick(tuiPollEvery, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m tuiModel) fetchState() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	state, err := m.client.State(ctx)
	if err != nil {
		return tuiErrMsg{err}
	}
	return stateMsg(state)
}

func (m tuiModel) fetchStocks() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	stocks, err := m.client.Stocks(ctx)
	if err != nil {
		return tuiErrMsg{err}
	}
	return stocksMsg(stocks)
}

func (m tuiModel) selectedID() string {
	var row table.Row
	switch m.tab {
	case tabBusinesses:
		row = m.businesses.SelectedRow()
	case tabProperties:
		row = m.properties.SelectedRow()
	case tabStocks:
		row = m.market.SelectedRow()
	}
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.tab = (m.tab + 1) % 3
			m.businesses.Blur()
			m.properties.Blur()
			m.market.Blur()
			switch m.tab {
			case tabBusinesses:
				m.businesses.Focus()
			case tabProperties:
				m.properties.Focus()
			case tabStocks:
				m.market.Focus()
			}
			return m, nil
		case "t":
			return m, m.doTap
		case "b":
			return m, m.doBuy(m.selectedID())
		case "u":
			return m, m.doUpgrade(m.selectedID())
		case "s":
			return m, m.doSell(m.selectedID())
		}
	case pollMsg:
		return m, tea.Batch(m.fetchState, m.fetchStocks, pollTick())
	case stateMsg:
		m.state = game.StateView(msg)
		m.loaded = true
		m.err = nil
		m.refreshTables()
		return m, nil
	case stocksMsg:
		m.stocks = msg
		m.refreshTables()
		return m, nil
	case tuiErrMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.tab {
	case tabBusinesses:
		m.businesses, cmd = m.businesses.Update(msg)
	case tabProperties:
		m.properties, cmd = m.properties.Update(msg)
	case tabStocks:
		m.market, cmd = m.market.Update(msg)
	}
	return m, cmd
}

func (m tuiModel) doTap() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := m.client.Tap(ctx); err != nil {
		return tuiErrMsg{err}
	}
	return m.fetchState()
}

func (m tuiModel) doBuy(id string) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var err error
		switch m.tab {
		case tabProperties:
			_, err = m.client.BuyProperty(ctx, id)
		case tabStocks:
			_, err = m.client.BuyStock(ctx, id, 1)
		default:
			_, err = m.client.BuyBusiness(ctx, id)
		}
		if err != nil {
			return tuiErrMsg{err}
		}
		return m.fetchState()
	}
}

func (m tuiModel) doUpgrade(id string) tea.Cmd {
	return func() tea.Msg {
		if id == "" || m.tab == tabStocks {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var err error
		if m.tab == tabProperties {
			_, err = m.client.UpgradeProperty(ctx, id)
		} else {
			_, err = m.client.UpgradeBusiness(ctx, id)
		}
		if err != nil {
			return tuiErrMsg{err}
		}
		return m.fetchState()
	}
}

func (m tuiModel) doSell(id string) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var err error
		switch m.tab {
		case tabProperties:
			_, err = m.client.SellProperty(ctx, id)
		case tabStocks:
			_, err = m.client.SellStock(ctx, id, 1)
		default:
			_, err = m.client.SellBusiness(ctx, id)
		}
		if err != nil {
			return tuiErrMsg{err}
		}
		return m.fetchState()
	}
}

func (m *tuiModel) refreshTables() {
	rows := make([]table.Row, 0, len(m.state.Businesses))
	for _, b := range m.state.Businesses {
		rows = append(rows, table.Row{
			b.ID,
			truncate(b.Name, 22),
			fmt.Sprintf("%d", b.Level),
			formatMoney(b.Metrics.NetIncomePerHour),
			formatMoney(b.NextLevelCost),
		})
	}
	m.businesses.SetRows(rows)

	rows = rows[:0]
	for _, p := range m.state.Properties {
		tenant := string(p.Tenant)
		if !p.Rented {
			tenant = "self"
		}
		rows = append(rows, table.Row{
			p.ID,
			truncate(p.Name, 22),
			fmt.Sprintf("%d", p.Level),
			tenant,
			formatMoney(p.Metrics.NetIncomePerHour),
			formatMoney(p.MarketValue),
		})
	}
	m.properties.SetRows(rows)

	rows = rows[:0]
	for _, s := range m.stocks {
		rows = append(rows, table.Row{
			s.Symbol,
			truncate(s.Name, 22),
			formatMoney(s.CurrentPrice),
			fmt.Sprintf("%+.2f%%", s.ChangePct),
			fmt.Sprintf("%d", s.SharesOwned),
			formatMoney(s.HoldingValue),
		})
	}
	m.market.SetRows(rows)
}

func (m tuiModel) View() string {
	if !m.loaded {
		if m.err != nil {
			return tuiBadStyle.Render(fmt.Sprintf("cannot reach API: %v", m.err)) + "\n" +
				tuiHelpStyle.Render("q quit")
		}
		return "loading..."
	}

	d := m.state
	income := formatMoney(d.IncomePerSecond) + "/s"
	incomeStyled := tuiGoodStyle.Render(income)
	if d.IncomePerSecond < 0 {
		incomeStyled = tuiBadStyle.Render(income)
	}
	header := tuiTitleStyle.Render("MOGUL") + "  " + tuiHeaderStyle.Render(fmt.Sprintf(
		"cash %s | net worth %s | income %s | x%.3f | prestige %d | %s",
		formatMoney(d.Cash),
		formatMoney(d.NetWorth),
		incomeStyled,
		d.GlobalMultiplier,
		d.PrestigeLevel,
		d.Macro.Phase,
	))
	if d.Macro.ActiveEvent != "" {
		header += "\n" + tuiEventStyle.Render("EVENT: "+d.Macro.ActiveEvent)
	}
	if m.err != nil {
		header += "\n" + tuiBadStyle.Render(m.err.Error())
	}

	var body string
	switch m.tab {
	case tabBusinesses:
		body = tuiTitleStyle.Render("Businesses") + "\n" + m.businesses.View()
	case tabProperties:
		body = tuiTitleStyle.Render("Properties") + "\n" + m.properties.View()
	case tabStocks:
		body = tuiTitleStyle.Render("Stocks") + "\n" + m.market.View()
	}

	help := tuiHelpStyle.Render("tab switch | t tap | b buy | u upgrade | s sell | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}
