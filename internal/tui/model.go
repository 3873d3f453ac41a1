// Package tui is the interactive grid editor: two matrices, typed cell by
// cell, with function keys bound to engine operations.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/matcalc/internal/calc"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/render"
)

// MaxDim caps each grid dimension; Determinant is factorial in n.
const MaxDim = 8

const cellWidth = 9

var names = [2]string{"A", "B"}

// opKeys binds function keys to operations. Unary ones act on the focused matrix.
var opKeys = map[tea.KeyType]calc.Op{
	tea.KeyF1: calc.OpAdd,
	tea.KeyF2: calc.OpSub,
	tea.KeyF3: calc.OpMul,
	tea.KeyF4: calc.OpTranspose,
	tea.KeyF5: calc.OpDet,
	tea.KeyF6: calc.OpInverse,
}

type cursor struct{ row, col int }

// Model is the bubbletea model for the editor.
type Model struct {
	inputs   [2]calc.Input
	focus   int       // 0 = A, 1 = B
	cursors [2]cursor // one per grid, kept across focus switches

	renderer render.Renderer
	title    string
	result   string
	errText  string
	width    int

	cursorStyle lipgloss.Style
	focusStyle  lipgloss.Style
	dimStyle    lipgloss.Style
}

// New builds an editor with both grids sized from cfg.Grid.
func New(cfg config.Config) Model {
	rows, cols := clamp(cfg.Grid.Rows), clamp(cfg.Grid.Cols)
	return Model{
		inputs:      [2]calc.Input{calc.NewInput(rows, cols), calc.NewInput(rows, cols)},
		renderer:    render.New(cfg.Display),
		cursorStyle: lipgloss.NewStyle().Reverse(true),
		focusStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Display.Accent)),
		dimStyle:    lipgloss.NewStyle().Faint(true),
	}
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxDim {
		return MaxDim
	}
	return n
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if op, ok := opKeys[msg.Type]; ok {
		m.run(op)
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		m.focus = 1 - m.focus
	case tea.KeyUp:
		if c := m.pos(); c.row > 0 {
			c.row--
		}
	case tea.KeyDown:
		if c := m.pos(); c.row < len(m.cur().Cells)-1 {
			c.row++
		}
	case tea.KeyLeft:
		if c := m.pos(); c.col > 0 {
			c.col--
		}
	case tea.KeyRight, tea.KeyEnter:
		m.advance()
	case tea.KeyBackspace:
		cell := m.cell()
		if cell != "" {
			m.setCell(cell[:len(cell)-1])
		}
	case tea.KeyDelete:
		m.setCell("")
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		m.typeRunes(msg.Runes)
	}
	return m, nil
}

// typeRunes handles grid resizing keys and numeric text entry.
func (m *Model) typeRunes(runes []rune) {
	for _, r := range runes {
		rows, cols := len(m.cur().Cells), len(m.cur().Cells[0])
		switch {
		case r == ']':
			m.resize(rows, cols+1)
		case r == '[':
			m.resize(rows, cols-1)
		case r == '}':
			m.resize(rows+1, cols)
		case r == '{':
			m.resize(rows-1, cols)
		case strings.ContainsRune("0123456789.-+eE", r):
			m.setCell(m.cell() + string(r))
		}
	}
}

func (m *Model) cur() *calc.Input { return &m.inputs[m.focus] }

func (m *Model) pos() *cursor { return &m.cursors[m.focus] }

func (m *Model) cell() string {
	c := m.pos()
	return m.cur().Cells[c.row][c.col]
}

func (m *Model) setCell(s string) {
	c := m.pos()
	m.cur().Cells[c.row][c.col] = s
}

func (m *Model) resize(rows, cols int) {
	rows, cols = clamp(rows), clamp(cols)
	m.inputs[m.focus] = m.cur().Resize(rows, cols)
	m.fitCursor()
}

func (m *Model) fitCursor() {
	cells, c := m.cur().Cells, m.pos()
	if c.row >= len(cells) {
		c.row = len(cells) - 1
	}
	if c.col >= len(cells[0]) {
		c.col = len(cells[0]) - 1
	}
}

// advance moves right, wrapping to the next row like tabbing through inputs.
func (m *Model) advance() {
	cells, c := m.cur().Cells, m.pos()
	if c.col < len(cells[0])-1 {
		c.col++
		return
	}
	if c.row < len(cells)-1 {
		c.row++
		c.col = 0
	}
}

func (m *Model) run(op calc.Op) {
	m.result, m.errText, m.title = "", "", ""

	a, b := m.inputs[0], m.inputs[1]
	if !op.Binary() {
		a = m.inputs[m.focus]
	}

	ma, err := a.Matrix()
	if err != nil {
		m.errText = m.renderer.Error(op, err)
		return
	}
	res, err := func() (calc.Result, error) {
		if !op.Binary() {
			return calc.Run(op, ma, nil)
		}
		mb, err := b.Matrix()
		if err != nil {
			return calc.Result{}, err
		}
		return calc.Run(op, ma, mb)
	}()
	if err != nil {
		m.errText = m.renderer.Error(op, err)
		return
	}

	m.title = resultTitle(op, names[m.focus])
	m.result = m.renderer.Result(m.title, res)
}

func resultTitle(op calc.Op, focused string) string {
	switch op {
	case calc.OpAdd:
		return "A + B"
	case calc.OpSub:
		return "A - B"
	case calc.OpMul:
		return "A × B"
	case calc.OpTranspose:
		return focused + "ᵀ"
	case calc.OpDet:
		return "det(" + focused + ")"
	case calc.OpInverse:
		return focused + "⁻¹"
	}
	return string(op)
}

// View implements tea.Model.
func (m Model) View() string {
	grids := make([]string, 2)
	for k := range m.inputs {
		grids[k] = m.grid(k)
	}

	side := lipgloss.JoinHorizontal(lipgloss.Top, grids[0], "    ", grids[1])
	if m.width > 0 && lipgloss.Width(side) > m.width {
		side = lipgloss.JoinVertical(lipgloss.Left, grids[0], "", grids[1])
	}

	var b strings.Builder
	b.WriteString(side)
	b.WriteString("\n\n")
	b.WriteString(m.dimStyle.Render("tab switch  ←↑↓→ move  ] [ cols  } { rows  " +
		"F1 A+B  F2 A-B  F3 A×B  F4 transpose  F5 det  F6 inverse  esc quit"))
	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(m.errText)
	} else {
		b.WriteString(m.result)
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) grid(k int) string {
	in := m.inputs[k]
	header := fmt.Sprintf("Matrix %s (%s×%s)", names[k], in.Rows, in.Cols)
	if k == m.focus {
		header = m.focusStyle.Render(header)
	}

	lines := []string{header}
	for i, row := range in.Cells {
		parts := make([]string, len(row))
		for j, cell := range row {
			text := cell
			style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
			if text == "" {
				text = fmt.Sprintf("(%d,%d)", i+1, j+1)
				style = style.Faint(true)
			}
			if k == m.focus && i == m.cursors[k].row && j == m.cursors[k].col {
				style = style.Inherit(m.cursorStyle)
			}
			parts[j] = style.Render(text)
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}
