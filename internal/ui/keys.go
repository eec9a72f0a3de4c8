package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"jtui/internal/config"
)

// KeyDefinition carries the metadata for a configurable key binding.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// allKeyDefinitions is the single source of truth for key names, defaults
// and help text. The settings file can override any of these by name.
var allKeyDefinitions = []KeyDefinition{
	// Issues
	{Name: "my_issues", Defaults: []string{"i"}, Help: "load my issues"},
	{Name: "search", Defaults: []string{"/"}, Help: "search with JQL"},
	{Name: "view", Defaults: []string{"enter", "v"}, Help: "view selected issue"},
	{Name: "comment", Defaults: []string{"C"}, Help: "comment on issue"},
	{Name: "transition", Defaults: []string{"t"}, Help: "transition issue"},
	{Name: "create", Defaults: []string{"c"}, Help: "create issue (interactive)"},

	// Navigation
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous issue"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next issue"},
	{Name: "back", Defaults: []string{"esc"}, Help: "back to issue list"},

	// Authentication
	{Name: "setup", Defaults: []string{"g"}, Help: "run jira init (interactive)"},
	{Name: "refresh_status", Defaults: []string{"R"}, Help: "re-check authentication"},

	// Application
	{Name: "detach", Defaults: []string{"ctrl+q"}, Help: "end terminal session"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
}

// GetValidKeyNames returns the sorted list of binding names accepted in the
// settings file. Used by config validation.
func GetValidKeyNames() []string {
	names := make([]string, 0, len(allKeyDefinitions))
	for _, def := range allKeyDefinitions {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// GetDefaultKeyBindings returns the built-in keys for every binding name.
// Used by the keys CLI command to show what a custom binding overrides.
func GetDefaultKeyBindings() map[string][]string {
	defaults := make(map[string][]string, len(allKeyDefinitions))
	for _, def := range allKeyDefinitions {
		defaults[def.Name] = def.Defaults
	}
	return defaults
}

// IsValidKeyName reports whether name is a configurable binding.
func IsValidKeyName(name string) bool {
	return getKeyDefinition(name) != nil
}

// KeyMap contains all keyboard shortcuts for the application
type KeyMap struct {
	Back          key.Binding
	Comment       key.Binding
	Create        key.Binding
	Detach        key.Binding
	Down          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	MyIssues      key.Binding
	Quit          key.Binding
	RefreshStatus key.Binding
	Search        key.Binding
	Setup         key.Binding
	Transition    key.Binding
	Up            key.Binding
	View          key.Binding
}

// NewKeyMap creates a KeyMap with all bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	return KeyMap{
		Back:          buildBinding("back", keysConfig),
		Comment:       buildBinding("comment", keysConfig),
		Create:        buildBinding("create", keysConfig),
		Detach:        buildBinding("detach", keysConfig),
		Down:          buildBinding("down", keysConfig),
		ForceQuit:     buildBinding("force_quit", keysConfig),
		Help:          buildBinding("help", keysConfig),
		MyIssues:      buildBinding("my_issues", keysConfig),
		Quit:          buildBinding("quit", keysConfig),
		RefreshStatus: buildBinding("refresh_status", keysConfig),
		Search:        buildBinding("search", keysConfig),
		Setup:         buildBinding("setup", keysConfig),
		Transition:    buildBinding("transition", keysConfig),
		Up:            buildBinding("up", keysConfig),
		View:          buildBinding("view", keysConfig),
	}
}

// ShortHelp returns the curated bindings for the bottom bar.
// detach is excluded because it only applies inside a terminal session.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.MyIssues,
		k.Search,
		k.View,
		k.Comment,
		k.Transition,
		k.Create,
		k.Help,
		k.Quit,
	}
}

// buildBinding creates a key.Binding by name, preferring custom keys from
// the settings file over the built-in defaults.
func buildBinding(name string, keysConfig config.KeyBindingsConfig) key.Binding {
	def := getKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if custom, ok := keysConfig[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

func getKeyDefinition(name string) *KeyDefinition {
	for i := range allKeyDefinitions {
		if allKeyDefinitions[i].Name == name {
			return &allKeyDefinitions[i]
		}
	}
	return nil
}
