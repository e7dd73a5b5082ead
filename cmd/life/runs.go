package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunsLimit   int
	flagRunsLongest bool
	flagRunsBrowse  bool
	flagRunsClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display recorded runs, newest first or longest first.

A run is recorded when you quit a board that advanced at least one
generation.

Examples:
  life runs
  life runs --longest --limit 5
  life runs --browse
  life runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsLongest, "longest", false, "Order by generations instead of date")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive history browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	view := tui.RunsRecent
	if flagRunsLongest {
		view = tui.RunsLongest
	}

	if flagRunsBrowse {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: --browse needs a terminal")
			store.Close()
			os.Exit(1)
		}
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunRunsBrowser(store, view, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagRunsLongest {
		runs, err = store.LongestRuns(flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Run history - %s\n", view)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'life play' and let a few generations run!")
		return
	}

	fmt.Printf("  %-4s  %-11s  %-5s  %-5s  %-9s  %-12s  %s\n",
		"#", "Generations", "Peak", "Final", "Board", "Pattern", "Date")
	fmt.Printf("  %-4s  %-11s  %-5s  %-5s  %-9s  %-12s  %s\n",
		"-", "-----------", "----", "-----", "-----", "-------", "----")

	for i, r := range runs {
		pattern := r.Pattern
		if pattern == "" {
			pattern = "-"
		}
		fmt.Printf("  %-4d  %-11d  %-5d  %-5d  %-9s  %-12s  %s\n",
			i+1, r.Generations, r.PeakPopulation, r.FinalPopulation,
			fmt.Sprintf("%dx%d", r.Width, r.Height), pattern,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if sum, err := store.Summary(); err == nil && sum.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Total generations: %d  Longest: %d  Best peak: %d\n",
			sum.Runs, sum.TotalGenerations, sum.MaxGenerations, sum.MaxPeak)
	}
}
