package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// previewCommand creates the preview command, an interactive view that
// steps through the placements of a cloud.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		noCache bool
		tf      tagFlags
		lf      layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "preview [words.txt]",
		Short: "Step through the placement of a cloud in the terminal",
		Long: `Step through the placement of a cloud in the terminal.

Words appear in placement order on a character grid, so you can watch the
spiral search and the pull toward the center word by word.

Keys: →/l/space next, ←/h previous, g first, G all, p play/pause, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			tf.apply(cmd, &opts)
			lf.apply(cmd, &opts)
			return c.runPreview(cmd.Context(), args[0], opts, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	tf.register(cmd)
	lf.register(cmd)

	return cmd
}

// runPreview computes the layout and runs the TUI.
func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, noCache bool) error {
	ts, err := readTags(ctx, input, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d words...", len(ts)))
	spinner.Start()
	layout, _, err := runner.Layout(ctx, ts, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	p := tea.NewProgram(newPreviewModel(layout), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// =============================================================================
// PreviewModel - Placement stepper
// =============================================================================

// previewTick is the auto-play interval.
const previewTick = 120 * time.Millisecond

// Chrome lines around the grid: title, help, blank, blank, status.
const previewChrome = 5

type tickMsg time.Time

// previewPalette colors words by placement index.
var previewPalette = []lipgloss.Color{colorCyan, colorGreen, colorYellow, colorBlue, colorRed, colorWhite}

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	layout  cloud.Layout
	shown   int
	playing bool
	width   int
	height  int
}

func newPreviewModel(l cloud.Layout) previewModel {
	return previewModel{layout: l, width: 80, height: 24}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	total := len(m.layout.Tags)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", " ":
			m.shown = min(m.shown+1, total)
		case "left", "h":
			m.shown = max(m.shown-1, 0)
		case "home", "g":
			m.shown = 0
		case "end", "G":
			m.shown = total
		case "p":
			m.playing = !m.playing
			if m.playing {
				if m.shown == total {
					m.shown = 0
				}
				return m, tick()
			}
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.shown >= total {
			m.playing = false
			return m, nil
		}
		m.shown++
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(previewTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tag cloud preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("→ next  ← back  g first  G all  p play  q quit"))
	b.WriteString("\n\n")

	rows := max(m.height-previewChrome, 4)
	grid := rasterize(m.layout, m.shown, max(m.width, 10), rows)
	b.WriteString(m.renderGrid(grid))
	b.WriteString("\n\n")
	b.WriteString(m.status())

	return b.String()
}

// status describes the last shown placement.
func (m previewModel) status() string {
	total := len(m.layout.Tags)
	counter := StyleDim.Render(fmt.Sprintf("[%d/%d]", m.shown, total))
	if m.shown == 0 {
		return counter + " " + StyleDim.Render(fmt.Sprintf("center %s", m.layout.Center))
	}
	t := m.layout.Tags[m.shown-1]
	d := t.Rect.Center().Dist(m.layout.Center.Float())
	return fmt.Sprintf("%s %s %s", counter, StyleHighlight.Render(t.Word),
		StyleDim.Render(fmt.Sprintf("weight %d · %s · %.1f from center", t.Weight, t.Rect, d)))
}

// renderGrid colors cells by the word that owns them. Runs of equal
// ownership are rendered together to keep escape sequences short.
func (m previewModel) renderGrid(grid [][]gridCell) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		var line strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].tag == row[start].tag {
				continue
			}
			line.WriteString(m.cellStyle(row[start].tag).Render(runString(row[start:x])))
			start = x
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (m previewModel) cellStyle(tag int) lipgloss.Style {
	switch {
	case tag == centerCell:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case tag < 0:
		return StyleDim
	}
	style := lipgloss.NewStyle().Foreground(previewPalette[tag%len(previewPalette)])
	if tag == m.shown-1 {
		style = style.Bold(true).Reverse(true)
	}
	return style
}

func runString(cells []gridCell) string {
	rs := make([]rune, len(cells))
	for i, c := range cells {
		rs[i] = c.r
	}
	return string(rs)
}

// =============================================================================
// Rasterization
// =============================================================================

// Cell owners other than tag indices.
const (
	emptyCell  = -1
	centerCell = -2
)

type gridCell struct {
	r   rune
	tag int
}

// rasterize draws the first n tags of l onto a cols×rows character grid.
// The scale is fixed by the bounds of the whole layout so the view does not
// jump while stepping. Terminal cells are about twice as tall as wide, so
// one row covers twice the layout units of one column.
func rasterize(l cloud.Layout, n, cols, rows int) [][]gridCell {
	grid := make([][]gridCell, rows)
	for y := range grid {
		grid[y] = make([]gridCell, cols)
		for x := range grid[y] {
			grid[y][x] = gridCell{r: ' ', tag: emptyCell}
		}
	}

	b := l.Bounds.Union(geom.Rect{X: l.Center.X, Y: l.Center.Y})
	if b.Width == 0 || b.Height == 0 {
		return grid
	}
	k := min(float64(cols)/float64(b.Width), 2*float64(rows)/float64(b.Height))
	col := func(x int) int { return clamp(int(float64(x-b.Left())*k), 0, cols-1) }
	row := func(y int) int { return clamp(int(float64(b.Top()-y)*k/2), 0, rows-1) }

	for i, t := range l.Tags[:min(n, len(l.Tags))] {
		r := t.Rect
		x0, y0 := col(r.Left()), row(r.Top())
		x1, y1 := max(col(r.Right()-1), x0), max(row(r.Bottom()+1), y0)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				grid[y][x] = gridCell{r: '░', tag: i}
			}
		}

		label := []rune(t.Word)
		span := x1 - x0 + 1
		if len(label) > span {
			label = label[:span]
		}
		mid := (y0 + y1) / 2
		off := x0 + (span-len(label))/2
		for j, ch := range label {
			grid[mid][off+j] = gridCell{r: ch, tag: i}
		}
	}

	cx, cy := col(l.Center.X), row(l.Center.Y)
	if grid[cy][cx].tag == emptyCell {
		grid[cy][cx] = gridCell{r: '+', tag: centerCell}
	}
	return grid
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
