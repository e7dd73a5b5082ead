package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in patterns",
	Long: `Shows every pattern bundled with life. Any ID can be passed to
'life play --pattern', as can a path to your own pattern YAML file.`,
	Args: cobra.NoArgs,
	Run:  runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	lib, err := patterns.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading patterns: %v\n", err)
		os.Exit(1)
	}

	all := lib.All()
	if len(all) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Built-in patterns:")
	fmt.Println()

	idW, nameW, kindW := 2, 4, 4 // header widths
	for _, p := range all {
		idW = max(idW, len(p.ID))
		nameW = max(nameW, len(p.Name))
		kindW = max(kindW, len(p.Kind))
	}

	fmt.Printf("  %-*s  %-*s  %-*s  %-6s  %s\n", idW, "ID", nameW, "Name", kindW, "Kind", "Period", "Size")
	fmt.Printf("  %-*s  %-*s  %-*s  %-6s  %s\n", idW, "--", nameW, "----", kindW, "----", "------", "----")

	for _, p := range all {
		period := "-"
		if p.Period > 0 {
			period = fmt.Sprint(p.Period)
		}
		fmt.Printf("  %-*s  %-*s  %-*s  %-6s  %dx%d\n",
			idW, p.ID, nameW, p.Name, kindW, p.Kind, period, p.Width, p.Height)
	}

	fmt.Println()
	fmt.Println("Run 'life play --pattern <id>' to start from a pattern.")
}
