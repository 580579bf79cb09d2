package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bouncer/internal/storage"
)

// maxScores is the number of entries loaded into the scoreboard overlay.
const maxScores = 100

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// scoreboardView is the menu overlay listing recorded scores.
type scoreboardView struct {
	tbl    table.Model
	width  int
	height int
}

// newScoreboardView loads the top scores into a table.
func newScoreboardView(store *storage.Store, width, height int) (scoreboardView, error) {
	entries, err := store.TopScores(maxScores)
	if err != nil {
		return scoreboardView{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 18},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.PlayerName,
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return scoreboardView{
		tbl:    tbl,
		width:  width,
		height: height,
	}, nil
}

// Update forwards navigation keys to the table.
func (v *scoreboardView) Update(msg tea.KeyMsg) {
	v.tbl, _ = v.tbl.Update(msg)
}

// View renders the scoreboard overlay.
func (v scoreboardView) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		scoreboardTitleStyle.Render("High Scores"),
		v.tbl.View(),
		subtleStyle.Render("↑/↓ scroll · esc back"),
	)

	return lipgloss.Place(v.width, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
