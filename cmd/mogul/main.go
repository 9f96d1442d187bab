package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	cl "mogul/internal/cli"
	"mogul/internal/config"
	"mogul/internal/game"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL

	root := &cobra.Command{
		Use:          "mogul",
		Short:        "Mogul CLI game client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newDashCmd(&apiBase),
		newBuyCmd(&apiBase),
		newUpgradeCmd(&apiBase),
		newSellCmd(&apiBase),
		newPropertyCmd(&apiBase),
		newStocksCmd(&apiBase),
		newTradeCmd(&apiBase),
		newTapCmd(&apiBase),
		newPrestigeCmd(&apiBase),
		newLoansCmd(&apiBase),
		newAchievementsCmd(&apiBase),
		newBonusCmd(&apiBase),
		newResetCmd(&apiBase),
		newTUICmd(&apiBase),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"))
}

func cmdContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func newDashCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Show the empire dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).State(ctx)
			if err != nil {
				return err
			}
			renderDashboard(state)
			return nil
		},
	}
}

func newBuyCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Buy a business (b*), property (p*), luxury item (l*), or multiplier (m*, tap*)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.ToLower(strings.TrimSpace(args[0]))
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			client := newClient(apiBase)

			var (
				state game.StateView
				err   error
			)
			switch {
			case strings.HasPrefix(id, "p"):
				state, err = client.BuyProperty(ctx, id)
			case strings.HasPrefix(id, "l"):
				state, err = client.BuyLuxury(ctx, id)
			case strings.HasPrefix(id, "m"), strings.HasPrefix(id, "tap"):
				state, err = client.BuyMultiplier(ctx, id)
			default:
				state, err = client.BuyBusiness(ctx, id)
			}
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Bought %s. Cash: %s", id, formatMoney(state.Cash)))
			return nil
		},
	}
}

func newUpgradeCmd(apiBase *string) *cobra.Command {
	var (
		track string
		free  bool
	)
	cmd := &cobra.Command{
		Use:   "upgrade <id>",
		Short: "Level up an asset, or buy one of its upgrade tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.ToLower(strings.TrimSpace(args[0]))
			track = strings.ToLower(strings.TrimSpace(track))
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			client := newClient(apiBase)

			var (
				state game.StateView
				err   error
			)
			switch {
			case strings.HasPrefix(id, "p"):
				if track != "" {
					state, err = client.UpgradePropertyTrack(ctx, id, track)
				} else {
					state, err = client.UpgradeProperty(ctx, id)
				}
			case strings.HasPrefix(id, "l"):
				if track == "" {
					return fmt.Errorf("luxury items upgrade by track: --track polish|refit")
				}
				state, err = client.UpgradeLuxuryTrack(ctx, id, track)
			default:
				switch {
				case free:
					state, err = client.FreeUpgradeBusiness(ctx, id)
				case track != "":
					state, err = client.UpgradeBusinessTrack(ctx, id, track)
				default:
					state, err = client.UpgradeBusiness(ctx, id)
				}
			}
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Upgraded %s. Cash: %s", id, formatMoney(state.Cash)))
			return nil
		},
	}
	cmd.Flags().StringVar(&track, "track", "", "upgrade track (efficiency, quality, marketing, automation, sustainability, smart_management, renovation, screening, polish, refit)")
	cmd.Flags().BoolVar(&free, "free", false, "claim the ad-reward free level (businesses only)")
	return cmd
}

func newSellCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <id>",
		Short: "Sell a business or property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.ToLower(strings.TrimSpace(args[0]))
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			client := newClient(apiBase)

			var (
				state game.StateView
				err   error
			)
			if strings.HasPrefix(id, "p") {
				state, err = client.SellProperty(ctx, id)
			} else {
				state, err = client.SellBusiness(ctx, id)
			}
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Sold %s. Cash: %s", id, formatMoney(state.Cash)))
			return nil
		},
	}
}

func newPropertyCmd(apiBase *string) *cobra.Command {
	property := &cobra.Command{
		Use:     "property",
		Short:   "Property management commands",
		Aliases: []string{"prop"},
	}

	property.AddCommand(&cobra.Command{
		Use:   "rent <id> <on|off>",
		Short: "Toggle between rent income and personal use",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			rented := strings.EqualFold(args[1], "on")
			if _, err := newClient(apiBase).SetRented(ctx, args[0], rented); err != nil {
				return err
			}
			printSuccess("Rental mode updated.")
			return nil
		},
	})

	property.AddCommand(&cobra.Command{
		Use:   "tenant <id> <A|B|C>",
		Short: "Set the tenant quality tier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			if _, err := newClient(apiBase).SetTenant(ctx, args[0], args[1]); err != nil {
				return err
			}
			printSuccess("Tenant tier updated.")
			return nil
		},
	})

	property.AddCommand(&cobra.Command{
		Use:   "amenity <id> <pool|gym|parking|security>",
		Short: "Install an amenity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).AddAmenity(ctx, args[0], strings.ToLower(args[1]))
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Amenity installed. Cash: %s", formatMoney(state.Cash)))
			return nil
		},
	})

	return property
}

func newStocksCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:     "stocks",
		Short:   "Show the stock market",
		Aliases: []string{"stock"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			stocks, err := newClient(apiBase).Stocks(ctx)
			if err != nil {
				return err
			}
			renderStocks(stocks)
			return nil
		},
	}
}

func newTradeCmd(apiBase *string) *cobra.Command {
	trade := &cobra.Command{
		Use:   "trade",
		Short: "Buy and sell shares",
	}

	trade.AddCommand(&cobra.Command{
		Use:   "buy <symbol> <shares>",
		Short: "Buy shares at market price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("shares must be a whole number")
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			stocks, err := newClient(apiBase).BuyStock(ctx, strings.ToUpper(args[0]), shares)
			if err != nil {
				return err
			}
			renderStocks(stocks)
			return nil
		},
	})

	trade.AddCommand(&cobra.Command{
		Use:   "sell <symbol> <shares>",
		Short: "Sell shares at market price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("shares must be a whole number")
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			stocks, err := newClient(apiBase).SellStock(ctx, strings.ToUpper(args[0]), shares)
			if err != nil {
				return err
			}
			renderStocks(stocks)
			return nil
		},
	})

	trade.AddCommand(&cobra.Command{
		Use:   "triggers <symbol> <stop-loss> <take-profit>",
		Short: "Arm stop-loss / take-profit prices (0 disarms)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stopLoss, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("stop-loss must be a number")
			}
			takeProfit, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("take-profit must be a number")
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			if _, err := newClient(apiBase).SetStockTriggers(ctx, strings.ToUpper(args[0]), stopLoss, takeProfit); err != nil {
				return err
			}
			printSuccess("Triggers armed.")
			return nil
		},
	})

	return trade
}

func newTapCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tap [count]",
		Short: "Tap for active income",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("count must be a positive whole number")
				}
				count = v
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			client := newClient(apiBase)
			total := 0.0
			for i := 0; i < count; i++ {
				value, err := client.Tap(ctx)
				if err != nil {
					return err
				}
				total += value
			}
			printSuccess(fmt.Sprintf("Tapped %d times for %s", count, formatMoney(total)))
			return nil
		},
	}
}

func newPrestigeCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "prestige",
		Short: "Prestige: reset progress for a permanent multiplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := promptChoice("Prestige resets cash and assets. Continue?", []string{"yes", "no"}, "no")
			if err != nil {
				return err
			}
			if confirm != "yes" {
				printInfo("Prestige cancelled.")
				return nil
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).Prestige(ctx)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Prestige level %d. Permanent multiplier x%.2f", state.PrestigeLevel, state.PrestigeMultiplier))
			return nil
		},
	}
}

func newLoansCmd(apiBase *string) *cobra.Command {
	loans := &cobra.Command{
		Use:   "loans",
		Short: "Borrow against your net worth",
	}

	loans.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List outstanding loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).State(ctx)
			if err != nil {
				return err
			}
			renderLoans(state)
			return nil
		},
	})

	loans.AddCommand(&cobra.Command{
		Use:   "take <amount>",
		Short: "Take a new loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive number")
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).TakeLoan(ctx, amount)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Loan approved. Cash: %s Owed: %s", formatMoney(state.Cash), formatMoney(state.LoanOwed)))
			return nil
		},
	})

	loans.AddCommand(&cobra.Command{
		Use:   "pay <loan_id> <amount>",
		Short: "Pay down a loan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive number")
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).PayLoan(ctx, args[0], amount)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Payment applied. Owed: %s", formatMoney(state.LoanOwed)))
			return nil
		},
	})

	return loans
}

func newAchievementsCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			achievements, err := newClient(apiBase).Achievements(ctx)
			if err != nil {
				return err
			}
			renderAchievements(achievements)
			return nil
		},
	}
}

func newBonusCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bonus",
		Short: "Claim the timed bonus cash reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			state, err := newClient(apiBase).BonusCash(ctx)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Bonus claimed. Cash: %s", formatMoney(state.Cash)))
			return nil
		},
	}
}

func newResetCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe the save and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := promptChoice("Reset wipes everything including prestige. Continue?", []string{"yes", "no"}, "no")
			if err != nil {
				return err
			}
			if confirm != "yes" {
				printInfo("Reset cancelled.")
				return nil
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			if _, err := newClient(apiBase).Reset(ctx); err != nil {
				return err
			}
			printSuccess("Fresh game started.")
			return nil
		},
	}
}
