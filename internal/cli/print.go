package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/hackorsnooze/snooze/internal/models"
)

var (
	titleStyle = color.New(color.Bold)
	metaStyle  = color.New(color.FgCyan)
	starStyle  = color.New(color.FgYellow)
	okStyle    = color.New(color.FgGreen)
	errStyle   = color.New(color.FgRed)
)

// printStory renders one story line:
//
//	 3. * Some Title (http://example.com) by alice [storyId]
func (a *App) printStory(n int, s models.Story, favorite bool) {
	star := "  "
	if favorite {
		star = starStyle.Sprint("* ")
	}
	fmt.Fprintf(a.out, "%3d. %s%s (%s) by %s %s\n",
		n, star, titleStyle.Sprint(s.Title), s.URL, s.Author,
		metaStyle.Sprintf("[%s]", s.StoryID))
}

func (a *App) printOK(msg string) {
	fmt.Fprintln(a.out, okStyle.Sprint(msg))
}

func (a *App) printErr(msg string) {
	fmt.Fprintln(a.out, errStyle.Sprint(msg))
}
