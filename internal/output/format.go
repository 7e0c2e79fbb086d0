// Package output provides terminal output formatting for semrel
// commands. It is kept dependency-light to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/raveheart1/semrel/internal/notes"
	"github.com/raveheart1/semrel/internal/release"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if
// unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintPlanSummary prints the evaluated release plan: the version
// transition, the decision, and how many commits were considered.
func PrintPlanSummary(w io.Writer, plan release.Plan) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", cyan("Current version:"), white(plan.CurrentVersion.String()))
	fmt.Fprintf(w, "%s    %s\n", cyan("Next version:"), white(plan.NextVersion.String()))
	fmt.Fprintf(w, "%s %s\n", cyan("Commits scanned:"), white(fmt.Sprintf("%d", len(plan.Commits))))

	breaking := 0
	for _, c := range plan.Commits {
		if c.Breaking {
			breaking++
		}
	}
	if breaking > 0 {
		fmt.Fprintf(w, "%s\n", dim(fmt.Sprintf("  %d breaking change(s) detected", breaking)))
	}
}

// PrintNoRelease prints the fixed no-release outcome. This is a
// successful result, not a failure.
func PrintNoRelease(w io.Writer) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", yellow("→"), notes.FallbackLine+" No release needed.")
}

// PrintPublished prints the URL of a freshly created release.
func PrintPublished(w io.Writer, url string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(w, "%s Release published: %s\n", green("✓"), cyan(url))
}
