package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/inkwell/internal/toolbar"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

// Zone IDs for mouse hit testing.
const (
	zonePrefix = "inkwell-toolbar-"
	zoneUndo   = "inkwell-toolbar-undo"
	zoneRedo   = "inkwell-toolbar-redo"
	zoneText   = "inkwell-editor-text"
)

// buttonLabels are the compact toolbar captions, by action ID.
var buttonLabels = map[string]string{
	"h1":       "H1",
	"h2":       "H2",
	"h3":       "H3",
	"bold":     "B",
	"italic":   "I",
	"code":     "</>",
	"bullet":   "•",
	"numbered": "1.",
	"quote":    "❝",
	"hr":       "—",
	"link":     "Link",
	"image":    "Img",
}

func actionZone(id string) string {
	return zonePrefix + id
}

func buttonLabel(a toolbar.Action) string {
	if l, ok := buttonLabels[a.ID]; ok {
		return l
	}
	return a.Label
}

// toolbarView draws the formatting buttons, then undo and redo. The row is
// cut to width.
func toolbarView(width int, canUndo, canRedo bool) string {
	sep := styles.ToolbarSepStyle.Render(" │ ")

	groups := make([]string, 0, len(toolbar.Groups)+1)
	for _, g := range toolbar.Groups {
		buttons := make([]string, 0, len(g))
		for _, a := range g {
			buttons = append(buttons, zone.Mark(actionZone(a.ID), styles.ButtonStyle.Render(buttonLabel(a))))
		}
		groups = append(groups, strings.Join(buttons, " "))
	}

	undo := styles.ButtonStyle
	if !canUndo {
		undo = styles.ButtonDisabledStyle
	}
	redo := styles.ButtonStyle
	if !canRedo {
		redo = styles.ButtonDisabledStyle
	}
	groups = append(groups,
		zone.Mark(zoneUndo, undo.Render("↶ Undo"))+" "+zone.Mark(zoneRedo, redo.Render("↷ Redo")))

	return ansi.Truncate(strings.Join(groups, sep), width, "")
}
