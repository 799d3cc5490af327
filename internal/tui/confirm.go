package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Leave \"" + m.message + "\"? [Y/n]"
	return overlayBoxStyle.Render(content)
}
