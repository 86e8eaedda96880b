package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/whiteboard/pkg/controller"
	"github.com/matzehuels/whiteboard/pkg/store"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// BoardListModel - Interactive board selection
// =============================================================================

// BoardListModel is the bubbletea model for interactive board selection.
type BoardListModel struct {
	Boards   []store.Meta
	Cursor   int
	Selected *store.Meta
	Height   int
	Offset   int

	now func() time.Time
}

// NewBoardListModel creates a board list model.
func NewBoardListModel(boards []store.Meta) BoardListModel {
	return BoardListModel{Boards: boards, Height: 15, now: time.Now}
}

func (m BoardListModel) Init() tea.Cmd {
	return nil
}

func (m BoardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Boards)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Boards) == 0 {
				return m, tea.Quit
			}
			meta := m.Boards[m.Cursor]
			m.Selected = &meta
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m BoardListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Board"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Boards) == 0 {
		b.WriteString(listDimStyle.Render("  no boards"))
		return b.String()
	}

	now := time.Now
	if m.now != nil {
		now = m.now
	}
	end := min(m.Offset+m.Height, len(m.Boards))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		meta := m.Boards[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, meta.Name, meta.ID, formatRelativeTime(meta.UpdatedAt, now())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Board", "ID", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Boards))))
	return b.String()
}

// =============================================================================
// Tables
// =============================================================================

// boardsTable renders board metadata as a static table.
func boardsTable(boards []store.Meta, now time.Time) string {
	rows := make([][]string, 0, len(boards))
	for _, meta := range boards {
		rows = append(rows, []string{meta.Name, meta.ID, formatRelativeTime(meta.UpdatedAt, now)})
	}
	return plainTable([]string{"Board", "ID", "Updated"}, rows, nil)
}

// layersTable renders the layer panel front to back. Selected rows are
// highlighted.
func layersTable(items []controller.LayerItem) string {
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		var moves []string
		if it.CanMoveForward {
			moves = append(moves, "↑")
		}
		if it.CanMoveBackward {
			moves = append(moves, "↓")
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), string(it.Type), it.Title, it.ID, strings.Join(moves, " ")})
	}
	return plainTable([]string{"#", "Type", "Title", "ID", "Move"}, rows, func(row int) bool {
		return items[row].IsSelected
	})
}

func plainTable(headers []string, rows [][]string, highlight func(row int) bool) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case highlight != nil && row >= 0 && highlight(row):
				return styleSelected.Bold(true)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "—"
	}
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
