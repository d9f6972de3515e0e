package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/boristopalov/bandits/pkg/experiment"
	"github.com/boristopalov/bandits/pkg/messaging"
	"github.com/boristopalov/bandits/pkg/registry"
	"github.com/boristopalov/bandits/pkg/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bandits",
		Short:        "Bandits evaluates multi-armed bandit strategies on a stochastic testbed and compares their reward and regret curves.",
		SilenceUsage: true,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered strategy kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range registry.Default().Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
			return nil
		},
	}

	// API keys for the llm strategy
	for _, envFile := range []string{
		".env",
		"../../.env",
		"../../../.env",
	} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	rootCmd.AddCommand(newRunCommand(), listCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCommand() *cobra.Command {
	return runCommand(&runFlags{})
}

func runCommand(flags *runFlags) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the configured strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd, flags)
		},
	}
	flags.register(runCmd)
	return runCmd
}

func runExperiment(cmd *cobra.Command, flags *runFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	if cfg.Logging.Path != "" {
		f, err := os.OpenFile(cfg.Logging.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			log.Println("interrupted, stopping after the current episode")
			cancel()
		case <-ctx.Done():
		}
	}()

	subs, err := registry.Default().BuildAll(ctx, cfg.Agents)
	if err != nil {
		return err
	}
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.Name
	}
	log.Printf("Found %d agent(s): %s", len(subs), strings.Join(names, ", "))

	broker := messaging.NewBroker()
	defer broker.Reset()
	events := make(chan messaging.Event, len(subs))
	if err := broker.Subscribe("report", events, messaging.EvaluationFinished, messaging.EvaluationFailed); err != nil {
		return err
	}

	eval, err := experiment.New(experiment.Config{
		Name:     cfg.Name,
		Episodes: cfg.Episodes,
		Steps:    cfg.Steps,
		Arms:     cfg.Arms,
		BaseSeed: cfg.Seed,
	},
		experiment.WithPublisher(broker),
		experiment.WithVerbose(cfg.Logging.Verbose),
	)
	if err != nil {
		return err
	}
	log.Printf("Starting %s (%s): episodes=%d steps=%d arms=%d seed=%d",
		cfg.Name, eval.RunID(), cfg.Episodes, cfg.Steps, cfg.Arms, cfg.Seed)

	eval.Compare(ctx, subs)
	results := report.Collect(events)

	if err := report.WriteLeaderboard(cmd.OutOrStdout(), report.Leaderboard(results)); err != nil {
		return err
	}

	if cfg.Chart != "" {
		f, err := os.Create(cfg.Chart)
		if err != nil {
			return fmt.Errorf("failed to create chart file: %w", err)
		}
		defer f.Close()
		err = report.RenderCharts(f, results, report.ChartOptions{
			Episodes: cfg.Episodes,
			Steps:    cfg.Steps,
			Window:   cfg.SmoothWindow,
		})
		if err != nil {
			log.Printf("Warning: failed to render charts: %v", err)
		} else {
			log.Printf("Wrote charts to %s", cfg.Chart)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if status := eval.Status(); len(status.Errors) == len(subs) {
		return fmt.Errorf("all %d agents failed", len(subs))
	}
	return nil
}
