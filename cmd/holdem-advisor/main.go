package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-brain/internal/bot"
	"github.com/lox/holdem-brain/internal/deck"
	"github.com/lox/holdem-brain/internal/randutil"
)

type CLI struct {
	Hole     string   `arg:"" help:"Hero hole cards (e.g., 'AsKd')" required:""`
	Board    string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Pot      float64  `short:"p" help:"Current pot size" default:"100"`
	Call     float64  `short:"c" help:"Amount required to call" default:"0"`
	Raise    float64  `short:"r" help:"Candidate raise-to amount (0 = default sizing)"`
	Stack    float64  `short:"s" help:"Effective stack / commitment ceiling (0 = unlimited)"`
	Pressure *float64 `help:"Observed betting pressure in [0,1] (default: derived from pot and call)"`
	Trials   int      `short:"i" help:"Number of Monte Carlo trials" default:"2000"`
	Seed     *int64   `help:"Random seed for reproducible results"`
	Config   string   `help:"Path to HCL config file" default:"holdem-brain.hcl"`
	Debug    bool     `short:"d" help:"Enable debug logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := bot.LoadConfig(cli.Config)
	if err != nil {
		logger.Error("Failed to load config", "path", cli.Config, "error", err)
		ctx.Exit(1)
	}
	if cli.Trials > 0 {
		cfg.Trials = cli.Trials
	}

	hole, err := deck.ParseCards(cli.Hole)
	if err != nil {
		logger.Error("Failed to parse hole cards", "error", err)
		ctx.Exit(1)
	}

	var board []deck.Card
	if cli.Board != "" {
		board, err = deck.ParseCards(cli.Board)
		if err != nil {
			logger.Error("Failed to parse board", "error", err)
			ctx.Exit(1)
		}
	}

	street, err := bot.StreetForBoard(len(board))
	if err != nil {
		logger.Error("Invalid board", "error", err)
		ctx.Exit(1)
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	advisor := bot.NewAdvisor(cfg, logger, bot.WithRand(randutil.New(seed)))

	start := time.Now()
	decision, err := advisor.Decide(context.Background(), bot.Situation{
		Hole:       hole,
		Board:      board,
		Street:     street,
		Pot:        cli.Pot,
		CallAmount: cli.Call,
		StackLimit: cli.Stack,
		Pressure:   cli.Pressure,
		RaiseTo:    cli.Raise,
	})
	if err != nil {
		logger.Error("Decision failed", "error", err)
		ctx.Exit(1)
	}
	duration := time.Since(start)

	printDecision(cli, hole, board, street, decision, advisor.LastDiagnostics(), duration)
	ctx.Exit(0)
}

func printDecision(cli CLI, hole, board []deck.Card, street bot.Street, decision bot.Decision, diag bot.Diagnostics, duration time.Duration) {
	fmt.Printf("%s %s", headerStyle.Render("hand"), cardStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("   %s %s", headerStyle.Render("board"), cardStyle.Render(formatCards(board)))
	}
	fmt.Printf("   %s %s\n\n", headerStyle.Render("street"), street.String())

	action := decision.Action.String()
	if decision.Action == bot.Raise {
		action = fmt.Sprintf("raise to %.0f", decision.RaiseTo)
	}
	fmt.Printf("%s %s\n\n", headerStyle.Render("action:"), actionStyle.Render(action))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	lower, upper := diag.Equity.ConfidenceInterval()
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("equity"),
		numberStyle.Render(fmt.Sprintf("%.1f%% (95%% CI %.1f-%.1f%%)", diag.Equity.Equity()*100, lower*100, upper*100)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("fold equity"),
		numberStyle.Render(fmt.Sprintf("%.1f%%", diag.FoldProbability*100)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("opponent range"),
		numberStyle.Render(fmt.Sprintf("top %.0f%% (%d classes)", diag.TopFraction*100, diag.RangeSize)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("EV"),
		numberStyle.Render(fmt.Sprintf("%+.2f", decision.EV)))
	w.Flush()

	fmt.Printf("\n%d trials in %v\n", diag.Equity.Trials, duration.Truncate(time.Millisecond))
}

func formatCards(cards []deck.Card) string {
	s := ""
	for i, card := range cards {
		if i > 0 {
			s += " "
		}
		s += card.String()
	}
	return s
}
