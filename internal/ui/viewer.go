package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"synthtest/internal/domain"
)

// LogEntry is one per-test log file of a kept workspace
type LogEntry struct {
	Test    string // Test file name, without the .log suffix
	Path    string
	Content string
	Failed  bool // Whether the verdict recorded in the log is a failure
}

// LogViewer browses the per-test logs of a workspace in an interactive TUI
type LogViewer struct{}

// NewLogViewer creates a new LogViewer
func NewLogViewer() *LogViewer {
	return &LogViewer{}
}

// LoadLogs reads every .log file in dir, failed tests first
func LoadLogs(dir string) ([]LogEntry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return nil, err
	}

	entries := make([]LogEntry, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		content := string(data)
		entries = append(entries, LogEntry{
			Test:    strings.TrimSuffix(filepath.Base(path), ".log"),
			Path:    path,
			Content: content,
			Failed:  verdictFailed(content),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Failed != entries[j].Failed {
			return entries[i].Failed
		}
		return entries[i].Test < entries[j].Test
	})
	return entries, nil
}

// verdictFailed reads the verdict of a log. The verdict triple is written
// last, so its rc line is the last one; earlier rc lines may come from the
// tool output. A log with an abort line belongs to a test that stopped the
// run.
func verdictFailed(content string) bool {
	verdict := ""
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, domain.RunFailedPrefix) || strings.HasPrefix(line, domain.CheckFailedPrefix) {
			return true
		}
		if strings.HasPrefix(line, "rc:") {
			verdict = strings.TrimPrefix(line, "rc:")
		}
	}
	return verdict != "0"
}

// View opens the viewer on the logs in dir
func (lv *LogViewer) View(dir string) error {
	entries, err := LoadLogs(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		color.Yellow("No logs found in %s", dir)
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	failed := 0
	for i, entry := range entries {
		mark := "[green]✓"
		if entry.Failed {
			mark = "[red]✗"
			failed++
		}
		list.AddItem(fmt.Sprintf("%s [yellow]%d.[white] %s", mark, i+1, entry.Test), "", 0, nil)
	}

	detailsView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s: %d logs, [red]%d failed[white] | ↑↓ to navigate, → to scroll the log, ← to go back, q to exit ", dir, len(entries), failed))

	showEntry := func(index int) {
		if index < 0 || index >= len(entries) {
			return
		}
		detailsView.SetTitle(" " + entries[index].Path + " ")
		detailsView.SetText(entries[index].Content)
		detailsView.ScrollToBeginning()
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showEntry(index)
	})
	showEntry(0)

	// q quits from anywhere; the arrows move focus between the two panes
	keys := func(next tview.Primitive, forward ...tcell.Key) func(*tcell.EventKey) *tcell.EventKey {
		return func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
				app.Stop()
				return nil
			}
			for _, k := range forward {
				if event.Key() == k {
					app.SetFocus(next)
					return nil
				}
			}
			return event
		}
	}
	list.SetInputCapture(keys(detailsView, tcell.KeyEnter, tcell.KeyRight))
	detailsView.SetInputCapture(keys(list, tcell.KeyLeft, tcell.KeyEscape))

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	return app.SetRoot(layout, true).SetFocus(list).Run()
}
