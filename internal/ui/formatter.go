package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"synthtest/internal/discovery"
	"synthtest/internal/domain"
)

// Formatter prints run reports and corpus listings
type Formatter struct {
	out    io.Writer
	parser *discovery.HeaderParser
}

// NewFormatter creates a Formatter writing to stdout
func NewFormatter(parser *discovery.HeaderParser) *Formatter {
	return NewFormatterTo(os.Stdout, parser)
}

// NewFormatterTo creates a Formatter writing to w
func NewFormatterTo(w io.Writer, parser *discovery.HeaderParser) *Formatter {
	return &Formatter{out: w, parser: parser}
}

const (
	tableTop = "┌─────────────────────────────────┬─────────────────────────────┐"
	tableMid = "├─────────────────────────────────┼─────────────────────────────┤"
	tableBot = "└─────────────────────────────────┴─────────────────────────────┘"
)

// PrintSummary prints the statistics of a finished run
func (f *Formatter) PrintSummary(report *domain.Report) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	white := color.New(color.FgWhite)

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                  Functional Test Statistics                   ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	row := func(label string, c *color.Color, value interface{}) {
		fmt.Fprintf(f.out, "│ %-31s │ ", label)
		c.Fprintf(f.out, "%-27v", value)
		fmt.Fprintln(f.out, " │")
	}

	fmt.Fprintln(f.out, tableTop)
	row("Total Tests", white, report.Total)
	fmt.Fprintln(f.out, tableMid)
	row("Executed Tests", white, report.Ran)
	fmt.Fprintln(f.out, tableMid)
	row("Passed Tests", green, report.Passed())
	fmt.Fprintln(f.out, tableMid)
	row("Failed Tests", red, len(report.Failed))
	fmt.Fprintln(f.out, tableMid)
	row("Duration", white, fmt.Sprintf("%.2fs", report.Duration.Seconds()))
	fmt.Fprintln(f.out, tableBot)

	fmt.Fprintln(f.out)
	if report.Success() {
		green.Fprintln(f.out, "✓ All tests passed!")
		if report.Kept {
			fmt.Fprintf(f.out, "  Results kept in %s\n", report.Workspace)
		}
		return
	}

	red.Fprintf(f.out, "✗ %d test(s) failed\n", len(report.Failed))
	for _, test := range report.Failed {
		fmt.Fprintf(f.out, "    %s\n", test)
	}
	fmt.Fprintf(f.out, "\nSee logs in %s\n", report.Workspace)
	if skipped := report.Total - report.Ran; skipped > 0 {
		color.New(color.FgYellow).Fprintf(f.out, "%d test(s) not run after the first failure\n", skipped)
	}
}

// PrintTestList prints the discovered tests grouped by their directory.
// With details the HOA header of every file is shown as well.
func (f *Formatter) PrintTestList(tests []string, details bool) error {
	groups := make(map[string][]string)
	var order []string
	for _, test := range tests {
		dir := filepath.Base(filepath.Dir(test))
		if _, ok := groups[dir]; !ok {
			order = append(order, dir)
		}
		groups[dir] = append(groups[dir], test)
	}

	bold := color.New(color.FgCyan, color.Bold)
	for _, dir := range order {
		var label string
		if c, ok := domain.CategoryFromDir(dir); ok {
			label = fmt.Sprintf("%s (expected %s)", dir, c)
		} else {
			label = fmt.Sprintf("%s (unknown category)", dir)
		}
		bold.Fprintf(f.out, "%s: %d test(s)\n", label, len(groups[dir]))

		for _, test := range groups[dir] {
			fmt.Fprintf(f.out, "  %s\n", test)
			if !details || f.parser == nil {
				continue
			}
			header, err := f.parser.ReadHeader(test)
			if err != nil {
				return err
			}
			var parts []string
			if header.Name != "" {
				parts = append(parts, fmt.Sprintf("name=%q", header.Name))
			}
			parts = append(parts, fmt.Sprintf("states=%d", header.States))
			parts = append(parts, "aps="+strings.Join(header.APs, ","))
			color.New(color.FgHiBlack).Fprintf(f.out, "      %s\n", strings.Join(parts, " "))
		}
	}

	fmt.Fprintf(f.out, "\nTotal: %d test(s)\n", len(tests))
	return nil
}
