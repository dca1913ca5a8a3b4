// Package cli implements the fhirtool commands.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fastfhir/fhir-r5-go/encoding"
	"github.com/fastfhir/fhir-r5-go/internal/config"
	"github.com/fastfhir/fhir-r5-go/model"
	// register the resource types
	_ "github.com/fastfhir/fhir-r5-go/model/r5"
)

type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
}

// NewRootCmd returns the fhirtool command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "fhirtool",
		Short:        "Parse, validate and create FHIR R5 resources",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	f.String("log-level", "warn", "log level (trace, debug, info, warn, error, disabled)")
	f.String("log-format", "console", "log format (console or json)")
	f.Bool("pretty", false, "indent JSON output")
	f.Int64("max-body-size", encoding.MaxBodySize, "maximum size of an input document in bytes")
	for key, flag := range map[string]string{
		"log_level":     "log-level",
		"log_format":    "log-format",
		"pretty":        "pretty",
		"max_body_size": "max-body-size",
	} {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	root.AddCommand(
		a.parseCmd(),
		a.validateCmd(),
		a.newCmd(),
		a.typesCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var w io.Writer = cmd.ErrOrStderr()
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).Level(cfg.Level()).With().Timestamp().Logger()
	return nil
}

func (a *app) format() encoding.Format {
	if a.cfg.Pretty {
		return encoding.FormatPrettyJSON
	}
	return encoding.FormatJSON
}

// decode reads one resource from name, where "-" is stdin.
func (a *app) decode(cmd *cobra.Command, name string) (model.Resource, error) {
	if name == "-" {
		return encoding.DecodeLimit(cmd.InOrStdin(), a.cfg.MaxBodySize)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return encoding.DecodeLimit(f, a.cfg.MaxBodySize)
}
