// Package report renders compiler output for the terminal: diagnoses with
// a source excerpt, session summaries, token listings, scope tables and
// the run history. Colors come from lipgloss and can be switched off.
package report
