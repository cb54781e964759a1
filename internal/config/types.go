// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/linepipe/linepipe/pkg/pipe"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// maxFoldWidth mirrors the upper bound in config_schema.cue.
	maxFoldWidth = 4096
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidValue is the sentinel error wrapped by InvalidValueError.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidValueError is returned when a numeric setting is out of range.
	// It wraps ErrInvalidValue for errors.Is() compatibility.
	InvalidValueError struct {
		Field string
		Value int
		Want  string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Fold configures the fold stage.
		Fold FoldConfig `json:"fold" mapstructure:"fold" toml:"fold"`
		// Head configures the head stage.
		Head CountConfig `json:"head" mapstructure:"head" toml:"head"`
		// Tail configures the tail stage.
		Tail CountConfig `json:"tail" mapstructure:"tail" toml:"tail"`
		// Paste configures the paste stage.
		Paste PasteConfig `json:"paste" mapstructure:"paste" toml:"paste"`
		// Sort configures the sort stage.
		Sort SortConfig `json:"sort" mapstructure:"sort" toml:"sort"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// FoldConfig configures the fold stage.
	FoldConfig struct {
		// Width is the wrap column used when -w is not given.
		Width int `json:"width" mapstructure:"width" toml:"width"`
	}

	// CountConfig configures the head and tail stages.
	CountConfig struct {
		// Count is the number of lines kept when -n is not given.
		Count int `json:"count" mapstructure:"count" toml:"count"`
	}

	// PasteConfig configures the paste stage.
	PasteConfig struct {
		// Delimiters is the separator list used when -d is not given.
		Delimiters string `json:"delimiters" mapstructure:"delimiters" toml:"delimiters"`
	}

	// SortConfig configures the sort stage.
	SortConfig struct {
		// Stable keeps the input order of equal lines even without -s.
		Stable bool `json:"stable" mapstructure:"stable" toml:"stable"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects the glamour style for rendered help and errors.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Fold:  FoldConfig{Width: pipe.DefaultFoldWidth},
		Head:  CountConfig{Count: pipe.DefaultCount},
		Tail:  CountConfig{Count: pipe.DefaultCount},
		Paste: PasteConfig{Delimiters: pipe.DefaultDelimiters},
		Sort:  SortConfig{Stable: false},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// IsValid returns whether the Config has valid fields. The checks repeat the
// schema bounds, since environment overrides bypass the CUE validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.Fold.Width <= 0 || c.Fold.Width > maxFoldWidth {
		errs = append(errs, &InvalidValueError{Field: "fold.width", Value: c.Fold.Width, Want: fmt.Sprintf("1..%d", maxFoldWidth)})
	}
	if c.Head.Count < 0 {
		errs = append(errs, &InvalidValueError{Field: "head.count", Value: c.Head.Count, Want: ">= 0"})
	}
	if c.Tail.Count < 0 {
		errs = append(errs, &InvalidValueError{Field: "tail.count", Value: c.Tail.Count, Want: ">= 0"})
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Error implements the error interface for InvalidValueError.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %d (want %s)", e.Field, e.Value, e.Want)
}

// Unwrap returns ErrInvalidValue for errors.Is() compatibility.
func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}
