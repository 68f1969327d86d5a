package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/docmd/core"
	"github.com/gaurav-prasanna/docmd/core/assemble"
	"github.com/gaurav-prasanna/docmd/internal/logger"
)

// Flag variables not carried by core.Options.
var (
	flagOutput  string
	flagNoBadge bool
)

func init() {
	defaults := core.DefaultOptions()
	flags := rootCmd.Flags()

	flags.StringVarP(&flagOutput, "output", "o", "", "output file (default: document path with the format's extension)")
	flags.StringP("format", "f", defaults.Format, "output format: markdown, json or pdf")
	flags.String("engine", defaults.Engine, "body renderer: native or library (html-to-markdown)")
	flags.String("badge", defaults.Badge, "snippet inserted under the title")
	flags.BoolVar(&flagNoBadge, "no-badge", false, "do not insert a badge")
	flags.String("image-ref", defaults.ImageReference, "link target of image placeholders")
	flags.Bool("frontmatter", defaults.Frontmatter, "prepend YAML frontmatter to Markdown output")
	flags.Bool("display-width", defaults.DisplayWidth, "align table columns by terminal display width")

	// Viper keys match the mapstructure tags of core.Options.
	for key, flag := range map[string]string{
		"format":          "format",
		"engine":          "engine",
		"badge":           "badge",
		"image_reference": "image-ref",
		"frontmatter":     "frontmatter",
		"display_width":   "display-width",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	a, err := assemble.New(opts, logger.With("component", "assemble"))
	if err != nil {
		return err
	}

	path, err := a.ConvertFile(args[0], flagOutput)
	if err != nil {
		return err
	}

	if !viper.GetBool("quiet") {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}
	return nil
}

// loadOptions merges defaults, config file, environment and flags.
func loadOptions() (core.Options, error) {
	opts := core.DefaultOptions()
	if err := viper.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("reading configuration: %w", err)
	}
	if flagNoBadge {
		opts.Badge = ""
	}
	return opts, nil
}
