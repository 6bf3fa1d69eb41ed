package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/motorwave/internal/config"
	"github.com/san-kum/motorwave/internal/waveform"
)

var demoInfo = map[string]string{
	waveform.DemoBank: "12 phased motors",
	waveform.DemoECG:  "scrolling cardiac trace",
	waveform.DemoSine: "sine with amplitude knob",
}

type menuEntry struct {
	demo, variant string
}

// menu picks a demo variant and then hands every message to the live view.
type menu struct {
	entries  []menuEntry
	cursor   int
	registry *waveform.Registry
	live     *Model
	err      error
}

func newMenu(registry *waveform.Registry) *menu {
	m := &menu{registry: registry}
	for _, demo := range registry.List() {
		for _, variant := range config.ListPresets(demo) {
			m.entries = append(m.entries, menuEntry{demo: demo, variant: variant})
		}
	}
	return m
}

func (m *menu) Init() tea.Cmd { return nil }

func (m *menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.live != nil {
		next, cmd := m.live.Update(msg)
		live := next.(Model)
		m.live = &live
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m, m.start()
	}
	return m, nil
}

func (m *menu) start() tea.Cmd {
	if len(m.entries) == 0 {
		return nil
	}
	e := m.entries[m.cursor]
	cfg := config.GetPreset(e.demo, e.variant)
	sampler, err := m.registry.Get(cfg.Demo, cfg.Channels)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	live, err := NewModel(cfg, sampler)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.live = &live
	return live.Init()
}

func (m *menu) View() string {
	if m.live != nil {
		return m.live.View()
	}
	st := currentStyles()
	var b strings.Builder
	b.WriteString("\n\n    " + st.header.Render("MOTORWAVE") + "\n    " + st.label.Render("waveform demos") + "\n\n")
	for i, e := range m.entries {
		name := fmt.Sprintf("%-14s", e.demo+"/"+e.variant)
		if i == m.cursor {
			b.WriteString("    " + st.active.Render("▸ "+name) + "  " + st.value.Render(demoInfo[e.demo]) + "\n")
		} else {
			b.WriteString("      " + lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(name) + "\n")
		}
	}
	b.WriteString(st.help.Render("\n    j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

// RunMenu shows the demo picker and runs the chosen demo in place.
func RunMenu(registry *waveform.Registry) error {
	m := newMenu(registry)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*menu); ok && fm.err != nil {
		return fm.err
	}
	return finish(final)
}
