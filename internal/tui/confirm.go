package tui

type confirmModel struct {
	folderID string
	name     string
}

func (m confirmModel) View() string {
	content := "Delete folder \"" + m.name + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
