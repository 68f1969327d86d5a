package core

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gaurav-prasanna/docmd/core/markdown"
	"github.com/gaurav-prasanna/docmd/core/normalize"
)

// Engine names accepted by Options.Engine.
const (
	EngineNative  = "native"
	EngineLibrary = "library"
)

// Format names accepted by Options.Format.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// Options configures a conversion. Field tags map config file keys.
type Options struct {
	// Engine selects the body renderer: the built-in tree walker or
	// html-to-markdown.
	Engine string `mapstructure:"engine" validate:"oneof=native library"`

	// Format selects the output renderer.
	Format string `mapstructure:"format" validate:"oneof=markdown json pdf"`

	// Badge is inserted under the title line. Empty disables it.
	Badge string `mapstructure:"badge"`

	// ImageReference is the link target of image placeholders.
	ImageReference string `mapstructure:"image_reference" validate:"required"`

	// DisplayWidth measures table cells by terminal width instead of runes.
	DisplayWidth bool `mapstructure:"display_width"`

	// Frontmatter prepends YAML metadata to Markdown output.
	Frontmatter bool `mapstructure:"frontmatter"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Engine:         EngineNative,
		Format:         FormatMarkdown,
		Badge:          markdown.DefaultBadge,
		ImageReference: normalize.DefaultImageReference,
	}
}

var validate = validator.New()

// Validate checks that every option holds an accepted value.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
