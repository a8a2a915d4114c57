package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suderio/coup/internal/engine"
	"github.com/suderio/coup/internal/parser"
	"github.com/suderio/coup/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	eliminatedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))
)

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type replModel struct {
	app         *session.Session
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
	ruleset     string
}

const welcome = "Welcome to the table!\nType 'help' for commands, 'exit' to quit."

func newREPLModel(app *session.Session, ruleset string, seated []string) replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., arrest to: bob)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	logContent := welcome
	if len(seated) > 0 {
		logContent += "\n\n" + strings.Join(seated, "\n")
	}
	vp := viewport.New(0, 0)
	vp.SetContent(logContent)

	// Configure a minimalist list for autocomplete
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7) // Show up to 7 items
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false) // We filter manually
	sugList.SetShowHelp(false)

	return replModel{
		app:         app,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  logContent,
		ruleset:     ruleset,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) updateSuggestions() {
	val := m.textInput.Value()
	var items []list.Item

	defer func() {
		m.suggestions.SetItems(items)
		m.showList = len(items) > 0
		if m.showList {
			h := len(items)
			if h > 10 {
				h = 10
			}
			listHeight := h
			if listHeight > 0 && listHeight < 4 {
				listHeight = 4
			}
			m.suggestions.SetHeight(listHeight)
			m.suggestions.ResetSelected()
		}
	}()

	if val == "" {
		return
	}

	game := m.app.Game()

	baseCmds := []string{"exit", "quit"}
	for verb := range parser.Usage {
		baseCmds = append(baseCmds, verb+" ")
	}
	sort.Strings(baseCmds)

	for _, c := range baseCmds {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(val)) && len(val) < len(c) {
			items = append(items, suggestion(c))
		}
	}

	names := make([]string, 0, len(game.Players()))
	for _, p := range game.Players() {
		names = append(names, p.Name)
	}

	// Entity completion when typing "to: " or "by: "
	if strings.Contains(strings.ToLower(val), " to: ") {
		parts := strings.SplitN(strings.ToLower(val), " to: ", 2)
		if len(parts) == 2 {
			targetPrefix := parts[1]
			baseStr := val[:len(val)-len(targetPrefix)]
			for _, name := range names {
				if strings.HasPrefix(strings.ToLower(name), strings.ToLower(targetPrefix)) {
					items = append(items, suggestion(baseStr+name))
				}
			}
		}
	} else if strings.Contains(strings.ToLower(val), " by: ") {
		parts := strings.SplitN(strings.ToLower(val), " by: ", 2)
		if len(parts) == 2 {
			actorPrefix := parts[1]
			baseStr := val[:len(val)-len(actorPrefix)]
			for _, name := range names {
				if strings.HasPrefix(strings.ToLower(name), strings.ToLower(actorPrefix)) {
					items = append(items, suggestion(baseStr+name+" "))
				}
			}
		}
	}
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else {
				if len(m.history) > 0 {
					if m.historyIdx == -1 {
						m.historyIdx = len(m.history) - 1
					} else if m.historyIdx > 0 {
						m.historyIdx--
					}
					m.textInput.SetValue(m.history[m.historyIdx])
					m.updateSuggestions()
				}
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else {
				if len(m.history) > 0 && m.historyIdx != -1 {
					if m.historyIdx < len(m.history)-1 {
						m.historyIdx++
						m.textInput.SetValue(m.history[m.historyIdx])
					} else {
						m.historyIdx = -1
						m.textInput.SetValue("")
					}
					m.updateSuggestions()
				}
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}

			if val != "" {
				// Prevent duplicate history entries
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				events, err := m.app.Execute(val)
				if err != nil {
					if kind := engine.Kind(err); kind != "" {
						m.logContent += errorStyle.Render(kind) + " "
					}
					m.logContent += fmt.Sprintf("Error: %v", err)
				} else {
					for _, evt := range events {
						msg := evt.Message()
						if msg != "" {
							m.logContent += msg + "\n"
						}
					}
				}

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			// Normal typing
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 30 // Initial conservative estimate
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	// Calculate accurate heights for dynamic components
	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	inputH := 1

	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2 // +2 for autocompleteStyle borders
	}

	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	paddingH := 7

	// Total fixed overhead: title + state + input + listArea + info + padding + spacing
	overhead := titleH + stateH + inputH + listAreaHeight + infoH + paddingH + 4

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *replModel) renderState() string {
	stateView := "=== Table ==="
	game := m.app.Game()

	stateView += "\n\n"
	stateView += fmt.Sprintf("Treasury: %d coins\n", game.Treasury())
	switch {
	case game.IsOver():
		if winner, err := game.Winner(); err == nil {
			stateView += fmt.Sprintf("Game over, %s wins.\n", winner)
		}
	case game.Started():
		stateView += fmt.Sprintf("Round %d, %s to act.\n", game.Round(), game.CurrentTurn())
	default:
		stateView += "Waiting for players; type 'start' when everyone has joined.\n"
	}

	stateView += "\n"

	players := game.Players()
	if len(players) == 0 {
		stateView += "No players seated."
	} else {
		for _, p := range players {
			line := fmt.Sprintf(" - %s (%s): %d coins%s", p.Name, p.Role, p.Coins, playerTags(p))
			if p.Name == game.CurrentTurn() && !game.IsOver() {
				line = turnStyle.Render(line)
			}
			if !p.Active {
				line = eliminatedStyle.Render(line)
			}
			stateView += line + "\n"
		}
	}

	return stateBoxStyle.Width(m.width - 4).Render(stateView)
}

// playerTags lists a player's conditions for display.
func playerTags(p engine.PlayerView) string {
	var tags []string
	if !p.Active {
		tags = append(tags, "eliminated")
	}
	if p.UnderSanction {
		tags = append(tags, "sanctioned")
	}
	if p.BonusActions > 0 {
		tags = append(tags, "extra action")
	}
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf(" [%s]", strings.Join(tags, ", "))
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" Coup | %s | %s ", m.ruleset, shortID(m.app.Game().ID())))
	stateBox := m.renderState()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", m.textInput.View(), autocompleteStyle.Render(m.suggestions.View()))
	} else {
		inputArea = m.textInput.View()
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		title,
		stateBox,
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)

	return mainView + strings.Repeat("\n", 7)
}

// shortID trims a game id for the title bar.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func RunTUI(app *session.Session, ruleset string, seated []string) error {
	m := newREPLModel(app, ruleset, seated)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
