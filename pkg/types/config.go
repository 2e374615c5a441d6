package types

// ColorMode selects whether status output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ConvertConfig holds the settings for a conversion run. It is filled from
// flags, environment (JSON2MD_*), and json2md.yaml through viper.
type ConvertConfig struct {
	// NameField names output files after this string field instead of the
	// record position. Empty means position-based names.
	NameField string `json:"name_field,omitempty" yaml:"name_field,omitempty" mapstructure:"name_field"`

	// BodyField moves this field out of the frontmatter and writes it as the
	// document body. Empty means pure frontmatter output.
	BodyField string `json:"body_field,omitempty" yaml:"body_field,omitempty" mapstructure:"body_field"`

	// Unwrap accepts a top-level object and converts the first member that
	// holds an array of objects.
	Unwrap bool `json:"unwrap" yaml:"unwrap" mapstructure:"unwrap"`

	// Ext is the output file extension including the dot (default ".md").
	Ext string `json:"ext" yaml:"ext" mapstructure:"ext" validate:"required,startswith=.,excludesall=/"`

	// Strict makes per-file failures in directory scan mode fatal.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`

	// Catalog is an optional SQLite database path recording every emitted file.
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty" mapstructure:"catalog"`

	// Color selects styled output: auto, always, or never.
	Color ColorMode `json:"color" yaml:"color" mapstructure:"color" validate:"oneof=auto always never"`
}
