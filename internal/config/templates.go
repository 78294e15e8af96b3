package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Trade Tracker Configuration

[journal]
# Risk-reward derivation mode: "lot-size" or "notional"
#   lot-size: RRR = |(exit - entry) / (lot_size * quantity)|
#   notional: RRR = |(exit - entry) / (lot_size * quantity * ltp)|
derivation_mode = "lot-size"
# Interchange blob carrying the working set between invocations,
# relative to this directory
session_file = "session.csv"
# Selectable strategy names
strategies = ["GZ-GZ", "DZ-DZ", "3rd wave", "5th wave", "C wave"]
# Selectable setup criteria tags
criteria = ["MBL break-retest", "Auto break-retest", "RBD", "HBD", "BAP"]

[ui]
# Enable colored output
color_enabled = true
# Date format for table rendering
date_format = "2006-01-02"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the terminal
console = true
# Log to a rotated file under this directory
file = true
`

// createTemplateConfig writes a template configuration file.
func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing template config: %w", err)
	}
	return nil
}
