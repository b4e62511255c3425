package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
██╗  ██╗ █████╗ ██╗  ██╗██╗██╗███╗   ██╗
██║ ██╔╝██╔══██╗██║  ██║██║██║████╗  ██║
█████╔╝ ███████║███████║██║██║██╔██╗ ██║
██╔═██╗ ██╔══██║██╔══██║██║██║██║╚██╗██║
██║  ██╗██║  ██║██║  ██║██║██║██║ ╚████║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝╚═╝  ╚═══╝
`

const ruleWidth = 70

type ui struct {
	out   io.Writer
	clear bool

	errStyle     lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	titleStyle   lipgloss.Style
}

// newUI renders with r's color profile and writes to out. clear enables
// screen clearing between screens and is only wanted on a real terminal.
func newUI(out io.Writer, r *lipgloss.Renderer, clear bool) *ui {
	return &ui{
		out:          out,
		clear:        clear,
		errStyle:     r.NewStyle().Foreground(lipgloss.Color("9")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("14")),
		titleStyle:   r.NewStyle().Bold(true),
	}
}

func (u *ui) Clear() {
	if u.clear {
		_, _ = io.WriteString(u.out, "\033[H\033[2J")
	}
}

func (u *ui) Rule() {
	u.Println(strings.Repeat("=", ruleWidth))
}

// Banner clears the screen and prints a framed screen title.
func (u *ui) Banner(title string) {
	u.Clear()
	u.Println("")
	u.Rule()
	u.Println("     " + u.titleStyle.Render(title))
	u.Rule()
	u.Println("")
}

func (u *ui) Println(s string) {
	_, _ = io.WriteString(u.out, s+"\n")
}

func (u *ui) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(u.out, format, args...)
}

func (u *ui) Errorf(format string, args ...any) {
	u.Println(u.errStyle.Render(fmt.Sprintf(format, args...)))
}

func (u *ui) Successf(format string, args ...any) {
	u.Println(u.successStyle.Render(fmt.Sprintf(format, args...)))
}

func (u *ui) Infof(format string, args ...any) {
	u.Println(u.infoStyle.Render(fmt.Sprintf(format, args...)))
}
