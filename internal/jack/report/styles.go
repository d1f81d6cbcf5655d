// File: styles.go
// Title: Report Styles
// Description: Terminal styles for diagnostics, summaries and tables.
//              A plain style set is used when colors are disabled.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

type styles struct {
	header   lipgloss.Style
	location lipgloss.Style
	kind     lipgloss.Style
	message  lipgloss.Style
	lexeme   lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	ok       lipgloss.Style
	failed   lipgloss.Style
	muted    lipgloss.Style
}

func colorStyles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		location: lipgloss.NewStyle().
			Bold(true),
		kind: lipgloss.NewStyle().
			Foreground(colorAccent),
		message: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
		lexeme: lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true),
		gutter: lipgloss.NewStyle().
			Foreground(colorMuted),
		caret: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
		ok: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		failed: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		header:   plain,
		location: plain,
		kind:     plain,
		message:  plain,
		lexeme:   plain,
		gutter:   plain,
		caret:    plain,
		ok:       plain,
		failed:   plain,
		muted:    plain,
	}
}
