package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mogul/internal/game"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	normalized := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized[strings.ToLower(strings.TrimSpace(opt))] = struct{}{}
	}
	for {
		fmt.Printf("%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			text = strings.ToLower(strings.TrimSpace(defaultValue))
		}
		if _, ok := normalized[text]; ok {
			return text, nil
		}
		printWarn("Invalid option. Please pick one of the listed values.")
	}
}

func renderDashboard(d game.StateView) {
	accent.Println("\n== EMPIRE DASHBOARD ==")
	fmt.Printf("Cash:            %s\n", formatMoney(d.Cash))
	fmt.Printf("Net Worth:       %s\n", formatMoney(d.NetWorth))
	fmt.Printf("Total Earnings:  %s\n", formatMoney(d.TotalEarnings))
	fmt.Printf("Income:          %s/s\n", colorizeMoney(d.IncomePerSecond))
	fmt.Printf("Global Mult:     x%.3f\n", d.GlobalMultiplier)
	fmt.Printf("Prestige:        level %d (x%.2f)\n", d.PrestigeLevel, d.PrestigeMultiplier)
	fmt.Printf("Economy:         %s (x%.2f) sentiment %.0f efficiency %.2f\n",
		d.Macro.Phase, d.Macro.PhaseMult, d.Macro.Sentiment, d.Macro.Efficiency)
	if d.Macro.ActiveEvent != "" {
		warn.Printf("Event:           %s\n", d.Macro.ActiveEvent)
	}
	if d.PrestigeReady {
		success.Println("Prestige available.")
	}

	fmt.Println()
	accent.Println("Businesses")
	fmt.Printf("%-5s %-22s %-6s %5s %12s %12s %12s\n", "ID", "NAME", "OWNED", "LVL", "NET/HR", "NEXT LVL", "SALE")
	for _, b := range d.Businesses {
		owned := "no"
		if b.Owned {
			owned = "yes"
		}
		fmt.Printf("%-5s %-22s %-6s %5d %12s %12s %12s\n",
			b.ID,
			truncate(b.Name, 22),
			owned,
			b.Level,
			colorizeMoney(b.Metrics.NetIncomePerHour),
			formatMoney(b.NextLevelCost),
			formatMoney(b.SaleValue),
		)
	}

	fmt.Println()
	accent.Println("Properties")
	fmt.Printf("%-5s %-22s %-6s %5s %-7s %12s %14s\n", "ID", "NAME", "OWNED", "LVL", "TENANT", "NET/HR", "VALUE")
	for _, p := range d.Properties {
		owned := "no"
		if p.Owned {
			owned = "yes"
		}
		tenant := string(p.Tenant)
		if !p.Rented {
			tenant = "self"
		}
		fmt.Printf("%-5s %-22s %-6s %5d %-7s %12s %14s\n",
			p.ID,
			truncate(p.Name, 22),
			owned,
			p.Level,
			tenant,
			colorizeMoney(p.Metrics.NetIncomePerHour),
			formatMoney(p.MarketValue),
		)
	}

	fmt.Println()
	accent.Println("Luxury")
	fmt.Printf("%-5s %-22s %-6s %12s %8s\n", "ID", "NAME", "OWNED", "COST", "BOOST")
	for _, l := range d.LuxuryItems {
		owned := "no"
		if l.Owned {
			owned = "yes"
		}
		fmt.Printf("%-5s %-22s %-6s %12s %7.1f%%\n",
			l.ID,
			truncate(l.Name, 22),
			owned,
			formatMoney(l.Cost),
			l.Multiplier*100,
		)
	}

	if len(d.Loans) > 0 {
		fmt.Println()
		renderLoans(d)
	}
	fmt.Println()
}

func renderLoans(d game.StateView) {
	accent.Println("Loans")
	fmt.Printf("Credit limit: %s, owed: %s\n", formatMoney(d.LoanLimit), formatMoney(d.LoanOwed))
	if len(d.Loans) == 0 {
		printInfo("No outstanding loans.")
		return
	}
	fmt.Printf("%-38s %12s %12s %8s %12s\n", "ID", "PRINCIPAL", "OUTSTAND", "RATE", "MONTHLY")
	for _, l := range d.Loans {
		fmt.Printf("%-38s %12s %12s %7.2f%% %12s\n",
			l.ID,
			formatMoney(l.Principal),
			formatMoney(l.Outstanding),
			l.InterestRate*100,
			formatMoney(l.MonthlyPayment),
		)
	}
}

func renderStocks(stocks []game.StockView) {
	accent.Println("\n== STOCK MARKET ==")
	if len(stocks) == 0 {
		printInfo("Market locked. Keep earning to unlock trading.")
		return
	}
	fmt.Printf("%-6s %-22s %-10s %12s %9s %10s %12s\n", "SYM", "NAME", "SECTOR", "PRICE", "CHANGE", "SHARES", "VALUE")
	for _, s := range stocks {
		fmt.Printf("%-6s %-22s %-10s %12s %9s %10d %12s\n",
			s.Symbol,
			truncate(s.Name, 22),
			string(s.Sector),
			formatMoney(s.CurrentPrice),
			colorizePercent(s.ChangePct),
			s.SharesOwned,
			formatMoney(s.HoldingValue),
		)
	}
	fmt.Println()
}

func renderAchievements(achievements []game.AchievementView) {
	accent.Println("\n== ACHIEVEMENTS ==")
	unlocked := 0
	for _, a := range achievements {
		mark := neutral.Sprint("[ ]")
		if a.Unlocked {
			mark = success.Sprint("[x]")
			unlocked++
		}
		fmt.Printf("%s %s\n", mark, a.Name)
	}
	fmt.Printf("\n%d/%d unlocked\n\n", unlocked, len(achievements))
}

func colorizeMoney(v float64) string {
	text := formatMoney(v)
	if v > 0 {
		text = "+" + text
	}
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func colorizePercent(v float64) string {
	text := fmt.Sprintf("%+.2f%%", v)
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v)
	frac := int64((v - float64(whole)) * 100)
	return fmt.Sprintf("%s$%s.%02d", sign, comma(whole), frac)
}

func comma(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
