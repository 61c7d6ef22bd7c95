package tui

import (
	"fmt"
	"strings"
)

const appTitle = "tabkeeper"

func (m model) View() string {
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}

	var page string
	switch m.screen {
	case screenFolder:
		page = m.viewFolder()
	case screenTabs:
		page = m.viewTabs()
	case screenInput:
		page = m.viewInput()
	case screenShare:
		page = m.viewShare()
	case screenShareResult:
		page = m.viewShareResult()
	default:
		page = renderPage(appTitle, m.folders.View(), m.statusLine(),
			"enter view  c copy  o open  x share  n save tabs  r rename  d delete  / filter  tab open tabs  q quit")
	}
	return appStyle.Render(page)
}

func (m model) statusLine() string {
	switch {
	case m.status == "":
		return ""
	case m.statusIsErr:
		return errorStyle.Render(m.status)
	default:
		return statusStyle.Render(m.status)
	}
}

func (m model) textWidth() int {
	if m.width <= 10 {
		return 70
	}
	return m.width - 10
}

func (m model) viewFolder() string {
	var b strings.Builder
	for i, tab := range m.folder.HostTabs() {
		line := fmt.Sprintf("%2d. %s", i+1, fitText(tab.Title, m.textWidth()))
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("      " + fitText(tab.URL, m.textWidth())))
		b.WriteString("\n")
	}
	return renderPage(m.folder.Name, b.String(), m.statusLine(),
		"c copy  o open  x share  d remove tab  esc back  q quit")
}

func (m model) viewTabs() string {
	var b strings.Builder
	s := m.settings
	b.WriteString(fmt.Sprintf("titles %s  urls %s  markdown %s  sort %s  group %s\n\n",
		onOff(s.IncludeTitles), onOff(s.IncludeURLs), onOff(s.UseMarkdown),
		onOff(s.SortByPosition), onOff(s.GroupByDomain)))

	if len(m.tabs) == 0 {
		b.WriteString("No open tabs\n")
	}
	for i, tab := range m.tabs {
		box := "[ ]"
		if m.session.IsSelected(tab.ID) {
			box = "[x]"
		}
		line := box + " " + fitText(tab.Title, m.textWidth())
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	title := fmt.Sprintf("Open tabs (%d)", len(m.tabs))
	if n := len(m.session.Selected()); n > 0 {
		title += fmt.Sprintf(", %d selected", n)
	}
	return renderPage(title, b.String(), m.statusLine(),
		"space select  c copy  n save  t titles  u urls  m markdown  s sort  g group  esc folders  q quit")
}

func (m model) viewInput() string {
	prompt := "Save tabs as folder"
	if m.inputMode == inputRename {
		prompt = "Rename \"" + m.folder.Name + "\""
	}
	return renderPage(prompt, m.input.View(), m.statusLine(), "enter save  esc cancel")
}

func (m model) viewShare() string {
	box := overlayBoxStyle.Render("Share \"" + m.folder.Name + "\"\n\n" + m.password.View())
	return renderPage("Share folder", box, m.statusLine(), "enter share  esc cancel")
}

func (m model) viewShareResult() string {
	box := overlayBoxStyle.Render("Share link\n\n" + m.shareURL)
	return renderPage("Share folder", box, m.statusLine(), "c copy link  esc back  q quit")
}
