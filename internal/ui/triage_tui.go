package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystacklabs/daystack/models"
)

// RunTriage opens an interactive view of the day's actionable tasks where
// the user can toggle pins before the stack is rebuilt. It returns the ids
// whose pin state should flip, or nil when the user cancels.
func RunTriage(tasks []models.Task, kinds map[string]models.CategoryKind) ([]string, error) {
	if len(tasks) == 0 {
		return nil, nil
	}
	m := triageModel{
		tasks:   tasks,
		kinds:   kinds,
		toggled: make(map[string]bool),
		keys:    defaultTriageKeys(),
		help:    help.New(),
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running triage view: %w", err)
	}

	result := finalModel.(triageModel)
	if result.quit {
		return nil, nil
	}
	var ids []string
	for _, t := range result.tasks {
		if result.toggled[t.ID] {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

type triageKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Apply  key.Binding
	Quit   key.Binding
}

func (k triageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Apply, k.Quit}
}

func (k triageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Apply, k.Quit}}
}

func defaultTriageKeys() triageKeyMap {
	return triageKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle pin")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

type triageModel struct {
	tasks   []models.Task
	kinds   map[string]models.CategoryKind
	toggled map[string]bool
	cursor  int
	quit    bool
	keys    triageKeyMap
	help    help.Model
}

func (m triageModel) Init() tea.Cmd {
	return nil
}

func (m triageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			id := m.tasks[m.cursor].ID
			m.toggled[id] = !m.toggled[id]
		case key.Matches(msg, m.keys.Apply):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m triageModel) View() string {
	s := "\n" + StyleSectionTitle.Render("Triage: toggle pins for today") + "\n\n"

	for i, t := range m.tasks {
		cursor := "  "
		if m.cursor == i {
			cursor = "▶ "
		}

		pinned := t.Status == models.StatusToday
		if m.toggled[t.ID] {
			pinned = !pinned
		}
		marker := "[ ]"
		if pinned {
			marker = StylePin.Render("[*]")
		}

		kind := string(m.kinds[t.CategoryID])
		if kind == "" {
			kind = "-"
		}
		line := fmt.Sprintf("%s%s %s", cursor, marker, t.Title)
		line += StyleSubtle.Render(fmt.Sprintf("  (%s)", kind))
		s += line + "\n"
	}

	s += "\n" + m.help.View(m.keys) + "\n"
	return s
}
