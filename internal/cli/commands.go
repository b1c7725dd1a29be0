// Package cli builds the exporter command tree.
package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/exporter/internal/version"
	"github.com/arthur-debert/exporter/pkg/cobrax/topics"
	"github.com/arthur-debert/exporter/pkg/config"
	"github.com/arthur-debert/exporter/pkg/decode"
	"github.com/arthur-debert/exporter/pkg/errors"
	"github.com/arthur-debert/exporter/pkg/exporter"
	"github.com/arthur-debert/exporter/pkg/logging"
	"github.com/arthur-debert/exporter/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		cfgFile   string
	)

	rootCmd := &cobra.Command{
		Use:     "exporter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", MsgFlagConfig)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRenderCmd(&cfgFile))

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the embedded help topics. Markdown is styled only when
// stdout is a terminal.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.New(sub, topics.Options{Extensions: []string{".md"}, Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	tm.Install(rootCmd)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

type renderOptions struct {
	format    string
	short     bool
	maxLength int
	color     string
}

func newRenderCmd(cfgFile *string) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:     "render [file|-]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			// Flags win over configuration
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Input.Format = opts.format
			}
			if flags.Changed("max-length") {
				cfg.Export.MaxLength = opts.maxLength
			}
			if flags.Changed("color") {
				cfg.Output.Color = opts.color
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd.InOrStdin(), cmd.OutOrStdout(), path, opts.short, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().BoolVarP(&opts.short, "short", "s", false, MsgFlagShort)
	cmd.Flags().IntVar(&opts.maxLength, "max-length", 0, MsgFlagMaxLength)
	cmd.Flags().StringVar(&opts.color, "color", config.ColorAuto, MsgFlagColor)

	return cmd
}

func runRender(in io.Reader, out io.Writer, path string, short bool, cfg *config.Config) error {
	logger := logging.GetLogger("cli.render")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	var format decode.Format
	if cfg.Input.Format != "" {
		f, err := decode.ParseFormat(cfg.Input.Format)
		if err != nil {
			return err
		}
		format = f
	}

	var (
		value interface{}
		err   error
	)
	if path == "-" {
		if format == "" {
			format = decode.FormatYAML
		}
		logger.Debug().Str("format", string(format)).Msg("Reading standard input")
		value, err = decode.DecodeReader(in, format)
	} else {
		logger.Debug().Str("path", path).Str("format", string(format)).Msg("Reading file")
		value, err = decode.DecodeFile(path, format)
	}
	if err != nil {
		return err
	}
	if value == nil {
		return errors.New(errors.ErrInvalidInput, "document is empty")
	}

	exp := exporter.New(cfg.Export)
	var text string
	if short {
		text = exp.ShortenedExport(value)
	} else {
		text = exp.Export(value)
	}

	h := style.NewHighlighter(out, cfg.Output.Color)
	_, err = fmt.Fprintln(out, h.Highlight(text))
	return err
}

// Execute runs the root command and reports a failure on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
