package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeState is the marker drawn in front of a tree item.
type TreeState int

const (
	TreeOpen TreeState = iota
	TreeDone
	TreeCurrent
	TreeLocked
)

// TreeItem is one row of a course outline.
type TreeItem struct {
	Title  string
	Seq    int // lesson order; 0 hides it
	State  TreeState
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
)

// RenderTree renders items under a single root with box-drawing connectors.
// Done items get a green ✔, the current item an amber ▶, locked items a
// dimmed lock. Detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		prefix := treeBranch
		if i == len(items)-1 {
			prefix = treeCorner
		}

		title := item.Title
		if item.Seq > 0 {
			title = fmt.Sprintf("%d. %s", item.Seq, title)
		}

		var marker string
		switch item.State {
		case TreeDone:
			marker = StyleGreen.Render("✔ ")
			title = Dim(title)
		case TreeCurrent:
			marker = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		case TreeLocked:
			marker = Dim("🔒 ")
			title = Dim(title)
		default:
			marker = StyleBlue.Render("○ ")
		}

		contents[i] = StyleDim.Render(prefix) + marker + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			pad := widest - lipgloss.Width(contents[i])
			b.WriteString(strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.Detail+" ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
