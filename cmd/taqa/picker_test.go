package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KKiumbe/web-taqa-sub000/internal/api"
	"github.com/KKiumbe/web-taqa-sub000/internal/config"
)

func testModel(t *testing.T, baseURL string) Model {
	t.Helper()
	client, err := api.NewClient(baseURL)
	require.NoError(t, err)
	cfg := &config.Config{
		API: config.APIConfig{
			BaseURL:             baseURL,
			RequestTimeout:      2 * time.Second,
			TenantStatusTimeout: 2 * time.Second,
		},
	}
	return newModel(cfg, client, 80, 24)
}

// drainCmd executes a command tree and flattens every message it yields.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drainCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerNameTermLooksUpImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search-customers", r.URL.Path)
		assert.Equal(t, "Jane", r.URL.Query().Get("query"))
		w.Write([]byte(`{"customers":[{"id":1,"firstName":"Jane","lastName":"Wanjiku","phoneNumber":"0712345678"}],"total":1}`))
	}))
	defer srv.Close()

	m := testModel(t, srv.URL)
	m.picker = newCustomerPicker()
	m.picker.input.SetValue("Jan")

	m, cmd := m.updatePickerInput(runeKey('e'))
	require.NotNil(t, cmd)
	assert.True(t, m.picker.searching)

	var results *pickerResultsMsg
	for _, msg := range drainCmd(cmd) {
		switch got := msg.(type) {
		case pickerDebounceMsg:
			t.Fatal("name term must not wait for the debounce timer")
		case pickerResultsMsg:
			results = &got
		}
	}
	require.NotNil(t, results, "lookup fires on the keystroke itself")
	assert.Equal(t, m.picker.token, results.token)
	require.NoError(t, results.err)
	require.Len(t, results.matches, 1)
	assert.Equal(t, "Jane Wanjiku", results.matches[0].FullName())
}

func TestPickerPhoneTermWaitsForDebounce(t *testing.T) {
	m := testModel(t, "http://localhost:1")
	m.picker = newCustomerPicker()
	m.picker.input.SetValue("071234567")

	m, cmd := m.updatePickerInput(runeKey('8'))
	require.NotNil(t, cmd)
	assert.False(t, m.picker.searching, "nothing is in flight until the timer elapses")

	var sawDebounce bool
	for _, msg := range drainCmd(cmd) {
		switch msg.(type) {
		case pickerResultsMsg:
			t.Fatal("phone term must not fire a lookup before the debounce")
		case pickerDebounceMsg:
			sawDebounce = true
		}
	}
	assert.True(t, sawDebounce)
}

func TestPickerShortPhonePrefixStaysQuiet(t *testing.T) {
	m := testModel(t, "http://localhost:1")
	m.picker = newCustomerPicker()
	m.picker.input.SetValue("0712")

	m, cmd := m.updatePickerInput(runeKey('3'))
	assert.False(t, m.picker.searching)
	for _, msg := range drainCmd(cmd) {
		switch msg.(type) {
		case pickerDebounceMsg, pickerResultsMsg:
			t.Fatal("short phone prefixes never schedule a lookup")
		}
	}
}
