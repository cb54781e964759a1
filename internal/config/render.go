// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format selects the output syntax of Render.
type Format string

const (
	// FormatCUE renders the configuration as a CUE file.
	FormatCUE Format = "cue"
	// FormatTOML renders the configuration as TOML.
	FormatTOML Format = "toml"
)

// Render returns cfg in the requested format.
func Render(cfg *Config, format Format) (string, error) {
	switch format {
	case FormatCUE, "":
		return GenerateCUE(cfg), nil
	case FormatTOML:
		return GenerateTOML(cfg)
	default:
		return "", fmt.Errorf("unknown config format %q (valid: cue, toml)", format)
	}
}

// GenerateCUE generates a CUE representation of the configuration that
// validates against the schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// linepipe configuration file\n")
	sb.WriteString("// Run 'linepipe doc <stage>' for the flags these defaults apply to.\n\n")

	fmt.Fprintf(&sb, "fold: {\n\twidth: %d\n}\n", cfg.Fold.Width)
	fmt.Fprintf(&sb, "\nhead: {\n\tcount: %d\n}\n", cfg.Head.Count)
	fmt.Fprintf(&sb, "\ntail: {\n\tcount: %d\n}\n", cfg.Tail.Count)
	fmt.Fprintf(&sb, "\npaste: {\n\tdelimiters: %q\n}\n", cfg.Paste.Delimiters)
	fmt.Fprintf(&sb, "\nsort: {\n\tstable: %v\n}\n", cfg.Sort.Stable)

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML generates a TOML representation of the configuration.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(data), nil
}
