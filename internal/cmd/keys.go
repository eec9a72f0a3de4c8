package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"jtui/internal/config"
	"jtui/internal/logging"
	"jtui/internal/ui"
)

// KeysCmd manages keyboard shortcuts
type KeysCmd struct {
	List KeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  KeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// KeysListCmd lists all key bindings
type KeysListCmd struct{}

// KeysSetCmd sets a key binding
type KeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., my_issues, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, or comma-separated for multiple: up,k)"`
}

// Run executes the list command
func (k *KeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	var customKeys config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		customKeys = cli.settings.Keys
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom")
	for _, name := range names {
		customStr := "-"
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(defaults[name], ", "), customStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'jtui keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (k *KeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(k.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			k.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(k.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", k.Key, "values", values)

	// Re-read the file so a concurrent edit is not clobbered with the
	// copy parsed at startup
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[k.Key] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", k.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
