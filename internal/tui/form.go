// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-file-encryptor/internal/utils"
	"github.com/MKhiriev/go-file-encryptor/internal/validators"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputPath = iota
	inputKey
)

// formModel is the input panel of one tab.
type formModel struct {
	op     models.Operation
	inputs []textinput.Model
	focus  int

	file    models.FileInfo
	fileErr error
}

func newFormModel(op models.Operation) formModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}

	inputs[inputPath].Placeholder = "path to file"
	inputs[inputKey].Placeholder = "at least 8 characters"
	inputs[inputKey].EchoMode = textinput.EchoPassword
	inputs[inputKey].EchoCharacter = '•'
	inputs[inputPath].Focus()

	return formModel{op: op, inputs: inputs}
}

func (f formModel) path() string {
	return strings.TrimSpace(f.inputs[inputPath].Value())
}

func (f formModel) key() string {
	return f.inputs[inputKey].Value()
}

func (f formModel) focusNext() formModel {
	return f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f formModel) focusPrev() formModel {
	return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f formModel) setFocus(idx int) formModel {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
	return f
}

// update forwards msg to the focused input and reports whether the path
// changed.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	before := f.path()

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	return f, cmd, f.path() != before
}

func (f formModel) View() string {
	var b strings.Builder

	b.WriteString("File:        [" + f.inputs[inputPath].View() + "]\n")
	b.WriteString("             " + f.fileLine() + "\n")
	b.WriteString("Secret key:  [" + f.inputs[inputKey].View() + "]\n")

	return b.String()
}

func (f formModel) fileLine() string {
	switch {
	case f.fileErr != nil:
		return errorStyle.Render("not found")
	case !f.file.Selected():
		return fileInfoStyle.Render("no file selected")
	case f.file.Size > validators.MaxUploadSize:
		return errorStyle.Render(f.file.Name + " (" + utils.FormatSize(f.file.Size) + ") exceeds the upload limit")
	default:
		return fileInfoStyle.Render(f.file.Name + " (" + utils.FormatSize(f.file.Size) + ")")
	}
}
