// internal/tui/app.go
//
// Interactive results browser for fieldlint. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/fieldlint/internal/logging"
	"github.com/kingrea/fieldlint/internal/rules"
)

// appState represents which "screen" we're on
type appState int

const (
	stateRuleList appState = iota // Rule picker
	stateReport                   // Report for the rule that just ran
)

// ruleItem implements list.Item for registered rules
type ruleItem struct {
	rule rules.Rule
}

func (i ruleItem) Title() string { return i.rule.ID }
func (i ruleItem) Description() string {
	return fmt.Sprintf("field %s under %s/", i.rule.Field, i.rule.Root)
}
func (i ruleItem) FilterValue() string { return i.rule.ID }

// reportMsg carries the outcome of running a rule back into Update.
type reportMsg struct {
	report rules.Report
	err    error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state    appState
	registry *rules.Registry
	logger   *logging.Logger

	ruleMenu list.Model
	report   rules.Report
	runErr   error

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp builds the browser over the given rule registry. logger may be nil.
func NewApp(reg *rules.Registry, logger *logging.Logger) *App {
	items := make([]list.Item, 0)
	for _, rule := range reg.All() {
		items = append(items, ruleItem{rule: rule})
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "fieldlint rules"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)

	return &App{
		state:    stateRuleList,
		registry: reg,
		logger:   logger,
		ruleMenu: menu,
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the new model plus any command to run.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ruleMenu.SetSize(msg.Width-2, msg.Height-2)
		return a, nil

	case reportMsg:
		a.report = msg.report
		a.runErr = msg.err
		a.state = stateReport
		if msg.err != nil {
			a.logger.Printf("rule run failed: %v", msg.err)
		} else {
			a.logger.Printf("rule %s: %d sites, %d distinct", msg.report.Rule.ID, len(msg.report.Sites), len(msg.report.Distinct))
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if a.state == stateReport {
				a.state = stateRuleList
				return a, nil
			}
			return a, tea.Quit
		case "esc":
			if a.state == stateReport {
				a.state = stateRuleList
				return a, nil
			}
		case "enter":
			if a.state == stateRuleList {
				if item, ok := a.ruleMenu.SelectedItem().(ruleItem); ok {
					return a, runRuleCmd(item.rule)
				}
			}
		}
	}

	if a.state == stateRuleList {
		var cmd tea.Cmd
		a.ruleMenu, cmd = a.ruleMenu.Update(msg)
		return a, cmd
	}
	return a, nil
}

// runRuleCmd runs the rule off the update loop and delivers a reportMsg.
func runRuleCmd(rule rules.Rule) tea.Cmd {
	return func() tea.Msg {
		report, err := rules.Check(rule)
		return reportMsg{report: report, err: err}
	}
}

// View renders the current screen.
func (a *App) View() string {
	if a.state == stateRuleList {
		return a.ruleMenu.View()
	}
	return a.reportView()
}

func (a *App) reportView() string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF"))
	pass := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4CAF50"))
	fail := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B"))
	dim := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	if a.runErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			fail.Render("ERROR"),
			a.runErr.Error(),
			dim.Render("esc: back · q: rules"),
		)
	}

	badge := pass.Render("PASS")
	if !a.report.Consistent() {
		badge = fail.Render("FAIL")
	}

	var lines []string
	lines = append(lines, head.Render(fmt.Sprintf("%s · field %s", a.report.Rule.ID, a.report.Rule.Field))+"  "+badge)
	lines = append(lines, dim.Render(fmt.Sprintf("%d sites, %d distinct values", len(a.report.Sites), len(a.report.Distinct))))
	lines = append(lines, "")
	for _, value := range a.report.Distinct {
		lines = append(lines, "  "+value)
		for _, site := range a.report.Sites {
			if site.Value != value {
				continue
			}
			lines = append(lines, dim.Render(fmt.Sprintf("    %s:%d", site.Path, site.Line)))
		}
	}
	if len(a.report.Sites) == 0 {
		lines = append(lines, dim.Render("  no assignment sites found"))
	}
	lines = append(lines, "")
	lines = append(lines, dim.Render("esc: back · q: rules"))
	return strings.Join(lines, "\n")
}
