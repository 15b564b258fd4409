// Package render prints leaderboards as terminal tables or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/okian/bacrama/internal/domain/types"
)

// PlacingMarker is appended to the name of bacchiatori still placing.
const PlacingMarker = "*"

// Palette shared by table renderings.
var (
	colorHeader = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
)

var headers = []string{"#", "Bacchiatore", "Elo", "Duels", "Days", "Victories"}

type tableOptions struct {
	placingMarker bool
}

// Option configures Table.
type Option func(*tableOptions)

// WithPlacingMarker marks placing bacchiatori with PlacingMarker.
func WithPlacingMarker(on bool) Option {
	return func(o *tableOptions) { o.placingMarker = on }
}

// Table writes entries as a bordered table. Colors are only emitted when w is
// a terminal.
func Table(w io.Writer, entries []types.Entry, opts ...Option) error {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)
	numberStyle := cellStyle.Align(lipgloss.Right)
	placingStyle := cellStyle.Foreground(colorMuted)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if o.placingMarker && e.Placing {
			name += PlacingMarker
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			name,
			strconv.Itoa(e.Elo),
			strconv.FormatUint(uint64(e.Duels), 10),
			strconv.FormatUint(uint64(e.Days), 10),
			strconv.FormatUint(uint64(e.Victories), 10),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case o.placingMarker && row >= 0 && row < len(entries) && entries[row].Placing:
				return placingStyle
			case col == 1:
				return cellStyle
			default:
				return numberStyle
			}
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// JSON writes entries as an indented JSON array.
func JSON(w io.Writer, entries []types.Entry) error {
	if entries == nil {
		entries = []types.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}
