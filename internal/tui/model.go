package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shinobi/internal/game"
	"shinobi/internal/store"
	"shinobi/internal/ui"
)

type boardModel struct {
	ctx     context.Context
	engine  *game.Engine
	tracker *game.Tracker
	store   *store.Store

	width  int
	height int

	selected int
	lastLog  string
	err      error
}

type toggledMsg struct {
	res   game.ToggleResult
	newly []game.Achievement
	err   error
}

func newBoardModel(ctx context.Context, eng *game.Engine, tracker *game.Tracker, st *store.Store) boardModel {
	return boardModel{
		ctx:     ctx,
		engine:  eng,
		tracker: tracker,
		store:   st,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res := m.engine.ToggleMission(id)
		var newly []game.Achievement
		var err error
		if res.Found {
			newly = m.tracker.Evaluate(m.engine.Stats(), m.engine.Missions(), m.engine.Jutsu())
			err = m.store.SaveProgress(m.ctx, m.engine.Snapshot(), m.tracker.Snapshot())
		}
		return toggledMsg{res: res, newly: newly, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Save failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Found {
			m.lastLog = "Mission not found."
			return m, nil
		}
		mission := msg.res.Mission
		if msg.res.Completed {
			m.lastLog = fmt.Sprintf("Completed %s: +%d XP", mission.Title, mission.ExperienceReward)
		} else {
			m.lastLog = fmt.Sprintf("Undid %s: -%d XP (streak kept)", mission.Title, mission.ExperienceReward)
		}
		if msg.res.RankUp {
			m.lastLog += " · " + ui.BadgeRankUp + " " + msg.res.Rank.Name
		}
		for _, j := range msg.res.UnlockedJutsu {
			m.lastLog += " · unlocked " + j.Name
		}
		for _, a := range msg.newly {
			m.lastLog += " · " + a.Icon + " " + a.Title
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.engine.Missions())-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "c":
			missions := m.engine.Missions()
			if m.selected < 0 || m.selected >= len(missions) {
				return m, nil
			}
			target := missions[m.selected]
			m.lastLog = fmt.Sprintf("Toggling %s…", target.Title)
			return m, m.toggleCmd(target.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
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

func (m boardModel) renderHeader() string {
	stats := m.engine.Stats()
	rank := game.CurrentRank(stats.Experience)
	bar := ui.ProgressBar(game.RankProgress(stats.Experience), 100, 24)
	return fmt.Sprintf("Shinobi | %s %s | XP %d %s", rank.Badge, rank.Name, stats.Experience, bar)
}

func (m boardModel) renderSidebar() string {
	stats := m.engine.Stats()
	lines := []string{"Attributes"}
	for _, s := range game.Stats {
		lines = append(lines, fmt.Sprintf("%s %-12s %d", ui.StatIcon(s), s, stats.Get(s)))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Today: %d done", m.engine.CompletedToday()))
	lines = append(lines, fmt.Sprintf("Streaks: %d %s", m.engine.TotalActiveStreaks(), ui.IconFire))
	lines = append(lines, fmt.Sprintf("Badges: %d/%d", m.tracker.UnlockedCount(), len(m.tracker.Achievements())))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	missions := m.engine.Missions()
	out := []string{"Mission Board"}
	for i, ms := range missions {
		check := ui.IconTodo
		if ms.Completed {
			check = ui.IconDone
		}
		line := fmt.Sprintf("%s %s %s", check, ui.CategoryIcon(ms.Category), ms.Title)
		if ms.Streak > 0 {
			line += fmt.Sprintf(" %s%d", ui.IconFire, ms.Streak)
		}
		if ms.Completed && ms.LastCompleted != nil {
			line += " " + ms.LastCompleted.Local().Format("15:04")
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return fmt.Sprintf("\n%s %s\n", time.Now().Format("15:04:05"), m.lastLog)
}

func padRight(s string, w int) string {
	// Rune-count padding is close enough for the sidebar.
	n := len([]rune(s))
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
