package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dnc/editdist"
	"github.com/katalvlaran/dnc/expr"
	"github.com/katalvlaran/dnc/internal/fixtures"
)

// epsilon labels the empty-prefix row and column.
const epsilon = "ε"

// Table renders t with x down the left and y across the top.
// Cells visited by script s are highlighted; pass nil to skip the path.
func Table(x, y []rune, t editdist.Table, s editdist.Script) string {
	onPath := pathCells(s)

	header := []string{LabelStyle.Render(""), LabelStyle.Render(epsilon)}
	for _, r := range y {
		header = append(header, LabelStyle.Render(string(r)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, row := range t {
		label := epsilon
		if i > 0 && i-1 < len(x) {
			label = string(x[i-1])
		}
		cells := []string{LabelStyle.Render(label)}
		for j, v := range row {
			style := CellStyle
			if onPath[[2]int{i, j}] {
				style = PathCellStyle
			}
			cells = append(cells, style.Render(strconv.Itoa(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// pathCells replays s from (0, 0) and records every visited cell.
func pathCells(s editdist.Script) map[[2]int]bool {
	if s == nil {
		return nil
	}
	cells := map[[2]int]bool{{0, 0}: true}
	i, j := 0, 0
	for _, op := range s {
		switch op {
		case editdist.Delete:
			j++
		case editdist.Insert:
			i++
		default:
			i++
			j++
		}
		cells[[2]int{i, j}] = true
	}

	return cells
}

// Alignment renders the distance and script of x → y in one line.
func Alignment(x, y string, d int, s editdist.Script) string {
	return fmt.Sprintf("%s %q → %q  distance=%d  script=%s",
		HeaderStyle.Render("align"), x, y, d, s)
}

// Tokens renders a token stream as kind:text pairs.
func Tokens(tokens []expr.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = MutedStyle.Render(tok.Kind.String()+":") + tok.Text
	}

	return strings.Join(parts, " ")
}

// Value renders an evaluation outcome.
func Value(text string, v float64, err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s  %s", FailStyle.Render("✗"), text, err)
	}

	return fmt.Sprintf("%s %s = %s", PassStyle.Render("✓"), text, strconv.FormatFloat(v, 'g', -1, 64))
}

// Report renders fixture results one per line followed by a summary.
func Report(rep fixtures.Report) string {
	var b strings.Builder
	for _, res := range rep.Results {
		mark := PassStyle.Render("✓")
		if !res.OK {
			mark = FailStyle.Render("✗")
		}
		fmt.Fprintf(&b, "%s %-5s %-24s got %s", mark, res.Kind, res.Input, res.Got)
		if !res.OK {
			fmt.Fprintf(&b, "  want %s", res.Want)
		}
		b.WriteByte('\n')
	}

	total, failed := len(rep.Results), rep.Failed()
	summary := fmt.Sprintf("%d/%d passed", total-failed, total)
	if failed > 0 {
		b.WriteString(FailStyle.Render(summary))
	} else {
		b.WriteString(PassStyle.Render(summary))
	}

	return b.String()
}
