package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trainingrun",
		Short: "Score AI model leaderboards from daily benchmark readings",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: env TRAININGRUN_CONFIG)")

	root.AddCommand(runCmd())
	root.AddCommand(ingestCmd())
	root.AddCommand(rankCmd())
	root.AddCommand(verifyCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(eventCmd())

	return root
}

func runCmd() *cobra.Command {
	var (
		day    string
		boards []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scoring pipeline and publish snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(day, boards)
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "ISO date to score (default: today UTC)")
	cmd.Flags().StringSliceVar(&boards, "board", nil, "specific boards to run (e.g., trs,trscode)")
	return cmd
}

func ingestCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a JSON batch of raw readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "readings file (default: stdin)")
	return cmd
}

func rankCmd() *cobra.Command {
	var (
		day        string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rank <board>",
		Short: "Show a board's standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(args[0], day, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "standings as of this ISO date (default: today UTC)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [board...]",
		Short: "Verify snapshot checksums",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last run outcome per board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func eventCmd() *cobra.Command {
	var (
		day     string
		company string
	)

	cmd := &cobra.Command{
		Use:   "event <board> <label>",
		Short: "Record a timeline annotation for a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvent(args[0], args[1], day, company)
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "event ISO date (default: today UTC)")
	cmd.Flags().StringVar(&company, "company", "", "company the event relates to")
	return cmd
}
