package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

// pickerDebounce is how long typing must pause before the customer lookup
// fires.
const pickerDebounce = 500 * time.Millisecond

// pickerMaxMatches bounds the dropdown.
const pickerMaxMatches = 7

type pickerDebounceMsg struct{ token int }

type pickerResultsMsg struct {
	token   int
	matches []api.Customer
	err     error
}

// customerPicker is the search-and-select field on payment and invoice
// forms. Each keystroke bumps a token; name terms look up right away,
// phone terms wait out a debounce, and only the latest token's results
// are shown.
type customerPicker struct {
	active    bool
	input     textinput.Model
	token     int
	searching bool
	matches   []api.Customer
	cursor    int
	selected  *api.Customer
}

func newCustomerPicker() customerPicker {
	input := textinput.New()
	input.Placeholder = "Customer name or phone"
	input.Focus()
	return customerPicker{active: true, input: input}
}

func (p *customerPicker) moveCursor(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.matches) {
		p.cursor = len(p.matches) - 1
	}
}

func (p *customerPicker) selectCurrent() {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return
	}
	c := p.matches[p.cursor]
	p.selected = &c
	p.matches = nil
	p.cursor = 0
	p.input.SetValue(c.FullName() + " (" + c.PhoneNumber + ")")
}

// pickerBrowsing reports whether the dropdown is open under the focused
// picker field.
func (m Model) pickerBrowsing() bool {
	return m.picker.active && m.focusIndex == 0 && len(m.picker.matches) > 0
}

// updatePickerInput feeds a key to the picker's text input and schedules a
// lookup when the term changed. Editing the term discards any selection.
func (m Model) updatePickerInput(msg tea.Msg) (Model, tea.Cmd) {
	before := m.picker.input.Value()
	var cmd tea.Cmd
	m.picker.input, cmd = m.picker.input.Update(msg)
	after := m.picker.input.Value()
	if after == before {
		return m, cmd
	}

	m.picker.selected = nil
	m.picker.matches = nil
	m.picker.cursor = 0
	m.picker.token++
	token := m.picker.token

	q := api.ParseSearch(after)
	if q.Kind == api.SearchAll || !q.Ready() {
		// Empty terms and short phone prefixes never fire a lookup.
		m.picker.searching = false
		return m, cmd
	}

	// Name terms look up on every keystroke; only phone input waits out
	// the debounce. Stale lookups are fenced by the token either way.
	if q.Kind == api.SearchByName {
		m.picker.searching = true
		return m, tea.Batch(cmd, m.pickerLookup(token, after))
	}

	debounce := tea.Tick(pickerDebounce, func(time.Time) tea.Msg {
		return pickerDebounceMsg{token: token}
	})
	return m, tea.Batch(cmd, debounce)
}

// pickerLookup queries the backend for dropdown matches.
func (m Model) pickerLookup(token int, term string) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		matches, _, err := client.SearchCustomers(ctx, term, api.PageRequest{Size: pickerMaxMatches})
		return pickerResultsMsg{token: token, matches: matches, err: err}
	}
}

// handlePickerDebounce fires the lookup when the timer that elapsed is the
// newest one; older timers are typing noise.
func (m Model) handlePickerDebounce(msg pickerDebounceMsg) (tea.Model, tea.Cmd) {
	if !m.picker.active || msg.token != m.picker.token {
		return m, nil
	}
	term := m.picker.input.Value()
	q := api.ParseSearch(term)
	if q.Kind == api.SearchAll || !q.Ready() {
		return m, nil
	}
	m.picker.searching = true
	return m, m.pickerLookup(msg.token, term)
}

func (m Model) handlePickerResults(msg pickerResultsMsg) (tea.Model, tea.Cmd) {
	if !m.picker.active || msg.token != m.picker.token {
		return m, nil
	}
	m.picker.searching = false
	if msg.err != nil {
		return m.handleError(msg.err)
	}
	m.picker.matches = msg.matches
	m.picker.cursor = 0
	return m, nil
}
