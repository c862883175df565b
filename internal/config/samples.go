package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# tipcalc configuration
version: "1.0"

# Field capacities. A field commits as soon as one of its limits is reached.
entry:
  # symbols (decimal point included) before the subtotal commits
  amount_max_length: 10
  # digits after the decimal point before the subtotal commits
  amount_max_fraction: 2
  # digits before the tip percentage commits; 2 allows 10-99%
  percent_max_digits: 1

# Emulated 4-row display
display:
  theme: default # default, high-contrast, minimal
  height: 12     # terminal lines, split evenly across the 4 rows
  width: 24      # terminal columns
  no_emoji: false

# Keyboard keys standing in for the device buttons
keys:
  up: ["up", "k"]
  down: ["down", "j"]
  select: ["enter", " "]
  quit: ["q", "ctrl+c"]
  help: ["?"]

output:
  default_format: text # text, json, markdown, csv
  color_mode: auto     # auto, always, never
  verbose: false

logging:
  # Log file for the full-screen UI. Empty discards logs there.
  file: ""
`
}

// MinimalSampleConfig returns a compact configuration with essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
entry:
  percent_max_digits: 1
display:
  theme: default
output:
  default_format: text
`
}
