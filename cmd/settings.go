/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/store"
	"github.com/spf13/cobra"
)

type settingsModel struct {
	cursor    int
	fields    []string
	settings  model.Settings
	storage   store.Storage
	textInput textinput.Model
	editMode  bool
}

func newSettingsModel(settings model.Settings, storage store.Storage) tea.Model {
	return &settingsModel{
		cursor:    0,
		fields:    settingsFieldList(),
		settings:  settings,
		storage:   storage,
		textInput: textinput.New(),
		editMode:  false,
	}
}

func settingsFieldList() []string {
	return []string{
		"Theme", "DisplayName", "Notifications",
		"Save & Exit",
	}
}

func (m *settingsModel) Init() tea.Cmd {
	return nil
}

func (m *settingsModel) forceRedraw() tea.Msg {
	return tea.WindowSizeMsg{}
}

func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.updateSettings()
				m.editMode = false
				m.textInput.Blur()
				return m, tea.Batch(tea.ClearScreen, m.forceRedraw)
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.fields)-1 {
				if err := store.SaveSettings(m.storage, m.settings); err != nil {
					log.Printf("⚠️ Failed to save settings: %v", err)
				}
				return m, tea.Quit
			}
			// Notifications is a plain toggle, no text entry needed.
			if m.fields[m.cursor] == "Notifications" {
				m.settings.Notifications = !m.settings.Notifications
				if err := store.SaveSettings(m.storage, m.settings); err != nil {
					log.Printf("⚠️ Failed to save settings: %v", err)
				}
				return m, nil
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m *settingsModel) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("⚙️  Configure remind\n\n")

	for i, field := range settingsFieldList() {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}

		value := m.getFieldValue(field)
		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, value))
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + settingsFieldList()[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\nUp/Down to move, Enter to edit or toggle, Q to quit\n")
	}

	return s.String()
}

func (m *settingsModel) getFieldValue(field string) string {
	switch field {
	case "Theme":
		return m.settings.Theme
	case "DisplayName":
		return m.settings.DisplayName
	case "Notifications":
		if m.settings.Notifications {
			return "enabled"
		}
		return "disabled"
	default:
		return ""
	}
}

func (m *settingsModel) updateSettings() {
	newValue := m.textInput.Value()

	switch m.fields[m.cursor] {
	case "Theme":
		if newValue == "light" || newValue == "dark" {
			m.settings.Theme = newValue
		} else {
			log.Printf("⚠️ Theme must be light or dark, got %q", newValue)
		}
	case "DisplayName":
		m.settings.DisplayName = newValue
	}

	if err := store.SaveSettings(m.storage, m.settings); err != nil {
		log.Printf("⚠️ Failed to save settings: %v", err)
	}
}

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit theme, display name, and notifications interactively",
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, _ := openStore()
		requireUser(storage)

		settings, err := store.LoadSettings(storage)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		if _, err := tea.NewProgram(newSettingsModel(settings, storage)).Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
