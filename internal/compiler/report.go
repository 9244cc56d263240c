package compiler

import (
	"chuckscope/pkg/color"
	"chuckscope/pkg/resolver"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderLayouts renders one table per frame
func RenderLayouts(frames []resolver.Layout) string {
	var sb strings.Builder

	for i, f := range frames {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(color.CyanText(fmt.Sprintf("%s (%d bytes)", f.Name, f.Size)))
		sb.WriteString("\n")

		if len(f.Locals) == 0 {
			sb.WriteString(color.GrayText("no locals"))
			sb.WriteString("\n")
			continue
		}

		rows := make([][]string, 0, len(f.Locals))
		for _, l := range f.Locals {
			rows = append(rows, []string{
				l.Name,
				l.Type,
				strconv.FormatUint(uint64(l.Offset), 10),
				strconv.FormatUint(uint64(l.Size), 10),
				strconv.Itoa(l.Depth),
				flags(l),
				strconv.Itoa(l.Uses),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NAME", "TYPE", "OFFSET", "SIZE", "DEPTH", "FLAGS", "USES").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// flags abbreviates the classification of a local: r(ef), o(bject), g(lobal)
func flags(l resolver.LocalInfo) string {
	out := []byte("---")
	if l.IsRef {
		out[0] = 'r'
	}
	if l.IsObj {
		out[1] = 'o'
	}
	if l.IsGlobal {
		out[2] = 'g'
	}
	return string(out)
}
