package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-down/internal/storage"
)

// maxRankingRows is how many runs the ranking table loads.
const maxRankingRows = 50

// Scoreboard is the ranking table shown over the game.
type Scoreboard struct {
	store *storage.Store
	runs  []storage.Run
	stats storage.Stats
	table table.Model
	err   error
}

// NewScoreboard builds an empty scoreboard; call Refresh to load it.
func NewScoreboard(store *storage.Store, height int) Scoreboard {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Seed", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Scoreboard{store: store, table: t}
}

// Refresh reloads runs and totals from the store.
func (b *Scoreboard) Refresh() {
	b.err = nil
	if b.store == nil {
		b.runs = nil
		b.updateRows()
		return
	}

	runs, err := b.store.TopScores(maxRankingRows)
	if err != nil {
		b.err = err
		runs = nil
	}
	b.runs = runs

	if stats, err := b.store.Stats(); err == nil {
		b.stats = stats
	}
	b.updateRows()
}

func (b *Scoreboard) updateRows() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(r.Player, 12),
			fmt.Sprintf("%d", r.Score),
			r.Duration.Round(time.Second).String(),
			fmt.Sprintf("%d", r.Seed),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// SetHeight resizes the table to fit the window.
func (b *Scoreboard) SetHeight(height int) {
	b.table.SetHeight(max(height-8, 3))
}

// View renders the ranking panel.
func (b Scoreboard) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("SCORE RANKING"))
	sb.WriteString("\n\n")

	switch {
	case b.err != nil:
		sb.WriteString(dimStyle.Render("Ranking unavailable: " + b.err.Error()))
	case len(b.runs) == 0:
		sb.WriteString(dimStyle.Italic(true).Render("No runs yet.\nFall as far as you can!"))
	default:
		sb.WriteString(b.table.View())
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render(fmt.Sprintf(
			"%d runs by %d players, best %d, average %.1f",
			b.stats.Runs, b.stats.Players, b.stats.HighScore, b.stats.AvgScore,
		)))
	}

	return boxStyle.Render(sb.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
