package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"studentlife/internal/sim"
	"studentlife/internal/ui"
)

const (
	paneActivities = iota
	paneShop
)

type playModel struct {
	ctx       context.Context
	session   *sim.Session
	collector *Collector
	save      func() error

	width  int
	height int

	pane     int
	selected int

	log []string
	err error
}

type actedMsg struct {
	lines []string
	err   error
}

func newPlayModel(ctx context.Context, session *sim.Session, collector *Collector, save func() error) playModel {
	return playModel{
		ctx:       ctx,
		session:   session,
		collector: collector,
		save:      save,
		log:       []string{"Loaded. Pick an activity and press enter."},
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) doCmd(id sim.ActivityID) tea.Cmd {
	return func() tea.Msg {
		_, err := m.session.Do(id)
		if err != nil {
			return actedMsg{err: err}
		}
		if err := m.save(); err != nil {
			return actedMsg{err: err}
		}
		return actedMsg{lines: m.collector.Drain()}
	}
}

func (m playModel) buyCmd(r sim.RewardKind) tea.Cmd {
	return func() tea.Msg {
		_, err := m.session.Purchase(r)
		if err != nil {
			return actedMsg{err: err}
		}
		if err := m.save(); err != nil {
			return actedMsg{err: err}
		}
		return actedMsg{lines: m.collector.Drain()}
	}
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case actedMsg:
		if msg.err != nil {
			m.appendLog(ui.Bad.Render(msg.err.Error()))
			return m, nil
		}
		for _, line := range msg.lines {
			m.appendLog(line)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			if m.pane == paneActivities {
				m.pane = paneShop
			} else {
				m.pane = paneActivities
			}
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.paneLen()-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.session.Over() {
				m.appendLog("The term is over. Press q to leave.")
				return m, nil
			}
			if m.pane == paneActivities {
				act := sim.Catalog[m.selected]
				m.appendLog(fmt.Sprintf("Doing %s…", act.Name))
				return m, m.doCmd(act.ID)
			}
			r := sim.RewardKinds[m.selected]
			m.appendLog(fmt.Sprintf("Buying %s…", r))
			return m, m.buyCmd(r)
		}
	}
	return m, nil
}

func (m *playModel) appendLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > 6 {
		m.log = m.log[len(m.log)-6:]
	}
}

func (m playModel) paneLen() int {
	if m.pane == paneActivities {
		return len(sim.Catalog)
	}
	return len(sim.RewardKinds)
}

func (m playModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	snap := m.session.Snapshot()

	if snap.Over {
		return m.endingView(snap)
	}

	header := m.renderHeader(snap)
	sidebar := m.renderSidebar(snap)
	main := m.renderMain(snap)
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 34
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 22 {
			leftW = 22
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m playModel) renderHeader(snap sim.Snapshot) string {
	return fmt.Sprintf("Studentlife | %s (%s) | %s | %s %d aura",
		snap.Profile.Name, snap.Profile.Major, snap.Clock.String(), ui.IconSparkle, snap.Aura)
}

func (m playModel) renderSidebar(snap sim.Snapshot) string {
	lines := []string{"Attributes"}
	for _, f := range sim.Fields {
		v := snap.Stats.Get(f)
		lines = append(lines, fmt.Sprintf("- %s %-13s %s %4.1f", ui.FieldIcon(f), f.Label(), ui.StatBar(v, 12), v))
	}
	lines = append(lines, "")
	lines = append(lines, "Boosts")
	for _, kind := range sim.BoostKinds {
		if snap.Boosts.IsActive(kind) {
			lines = append(lines, fmt.Sprintf("- %s (%dd)", kind.Label(), snap.Boosts.DaysLeft(kind)))
		} else {
			lines = append(lines, fmt.Sprintf("- %s (off)", kind.Label()))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- tab: activities/shop")
	lines = append(lines, "- enter: do/buy")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m playModel) renderMain(snap sim.Snapshot) string {
	var out []string
	if m.pane == paneActivities {
		out = append(out, "Activities")
		for i, act := range sim.Catalog {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%-12s %4dmin +%d aura", cursor, act.ID, act.Minutes, act.Aura)
			if act.Requires != nil {
				line += fmt.Sprintf("  (needs %s ≥ %.0f)", act.Requires.Field.Label(), act.Requires.Min)
			}
			out = append(out, line)
		}
	} else {
		out = append(out, "Shop")
		for i, r := range sim.RewardKinds {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			cost := m.session.RewardCost(r)
			mark := ""
			if snap.Aura < cost {
				mark = "  (too pricey)"
			}
			out = append(out, fmt.Sprintf("%s%-15s %3d aura%s", cursor, r, cost, mark))
		}
	}
	return strings.Join(out, "\n")
}

func (m playModel) renderFooter() string {
	return "\n" + strings.Join(m.log, "\n") + "\n"
}

func (m playModel) endingView(snap sim.Snapshot) string {
	ending := m.session.Ending()
	info := ending.Info()

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTrophy, "Term complete") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", info.Icon, ui.Gold.Render(string(ending))))
	b.WriteString(info.Blurb + "\n\n")
	for _, f := range sim.Fields {
		v := snap.Stats.Get(f)
		b.WriteString(fmt.Sprintf("- %s %-13s %s %4.1f\n", ui.FieldIcon(f), f.Label(), ui.StatBar(v, 16), v))
	}
	b.WriteString("\nPress q to leave.\n")
	return b.String()
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
