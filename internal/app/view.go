package app

import (
	"fmt"
	"strings"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	if m.confirm.IsOpen() {
		dialog, y := m.confirm.View(m.width, m.bodyHeight())
		b.WriteString(strings.Repeat("\n", max(0, y)))
		b.WriteString(dialog)
		b.WriteString("\n")
	} else {
		switch m.mode {
		case modeEdit:
			b.WriteString(m.editView())
		case modePreview:
			b.WriteString(m.previewView())
		case modeSettings:
			b.WriteString(m.settingsView())
		case modeHelp:
			b.WriteString(m.helpView())
		default:
			b.WriteString(m.listView())
		}
	}
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.hintView())
	return b.String()
}

func (m *Model) bodyHeight() int {
	return max(3, m.height-4)
}

func (m *Model) headerView() string {
	title := headerStyle.Render("jot")
	count := statusStyle.Render(fmt.Sprintf(" %s", m.noteList.StatusLine()))
	return title + count
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(searchLabelStyle.Render("search "))
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(1, m.width))))
	b.WriteString("\n")
	b.WriteString(m.noteList.View())
	return b.String()
}

func (m *Model) editView() string {
	current := m.sync.Current()
	var b strings.Builder

	label := func(name string, focus editFocus) string {
		if m.focus == focus {
			return fieldActiveStyle.Render(name + " ")
		}
		return fieldLabelStyle.Render(name + " ")
	}

	b.WriteString(label("title", focusTitle))
	b.WriteString(m.titleInput.View())
	if m.sync.CurrentIsDraft() {
		b.WriteString(noteDraftStyle.Render("  (unsaved)"))
	}
	b.WriteString("\n")
	b.WriteString(fieldLabelStyle.Render("category "))
	b.WriteString(categoryStyle.Render(current.Category))
	b.WriteString("  ")
	b.WriteString(label("tags", focusTags))
	b.WriteString(m.tagInput.View())
	if len(current.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(tagStyle.Render("#" + strings.Join(current.Tags, " #")))
	}
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(1, m.width))))
	b.WriteString("\n")
	b.WriteString(m.editor.View())
	return b.String()
}

func (m *Model) previewView() string {
	width := max(20, m.width-4)
	title := headerStyle.Render(m.previewNote.Title)
	body := renderMarkdown(m.previewNote.Content, width)
	if body == "" {
		body = helpStyle.Render("(empty note)")
	}
	return title + "\n" + previewFrameStyle.Render(body)
}

func (m *Model) settingsView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("settings"))
	b.WriteString("\n\n")
	location := m.settings.StorageLocation()
	if location == "" {
		location = "(default data dir)"
	}
	rows := [][2]string{
		{"storage backend", m.settings.Backend()},
		{"storage location", location},
		{"log level", m.settings.LogLevel()},
		{"categories", strings.Join(m.settings.Categories(), ", ")},
	}
	for _, row := range rows {
		b.WriteString(fieldLabelStyle.Render(padToWidth(row[0], 18)))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("values come from config.toml; edit the file and restart"))
	return b.String()
}

func (m *Model) helpView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("keys"))
	b.WriteString("\n\n")
	rows := [][2]string{
		{"enter / e", "open the selected note"},
		{"n", "start a new note"},
		{"d", "delete the selected note"},
		{"p", "preview the selected note"},
		{"/", "filter notes"},
		{"s", "settings"},
		{"tab", "cycle title / tags / body while editing"},
		{"ctrl+s", "save the current note"},
		{"ctrl+g", "cycle category while editing"},
		{"ctrl+p", "preview the note being edited"},
		{"y", "copy note content from preview"},
		{"esc", "back"},
		{"q / ctrl+c", "quit"},
	}
	for _, row := range rows {
		b.WriteString(fieldActiveStyle.Render(padToWidth(row[0], 12)))
		b.WriteString(helpStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) statusView() string {
	switch m.statusKind {
	case statusInfo:
		return statusInfoStyle.Render(m.status)
	case statusError:
		return statusErrorStyle.Render(m.status)
	}
	return ""
}

func (m *Model) hintView() string {
	var hint string
	switch m.mode {
	case modeEdit:
		hint = "ctrl+s save · tab switch field · ctrl+g category · esc back"
	case modePreview:
		hint = "y copy · esc back"
	case modeSettings, modeHelp:
		hint = "esc back"
	default:
		hint = "enter open · n new · d delete · p preview · / search · ? help · q quit"
	}
	return helpStyle.Render(hint)
}
