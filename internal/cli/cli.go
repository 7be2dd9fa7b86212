package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/chemlite/internal/app"
	"github.com/specialistvlad/chemlite/internal/hcl_adapter"
	"github.com/specialistvlad/chemlite/internal/rxnparse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is reported by --version.
var Version = "dev"

// Configuration keys shared by flags, the config file and the environment.
const (
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyOutput    = "output"
	keyPathway   = "pathway"
	keyPaths     = "paths"
)

// envPrefix is prepended to every configuration key looked up in the
// environment, e.g. CHEMLITE_LOG_LEVEL.
const envPrefix = "CHEMLITE"

// Execute runs the chemlite command line with args. Reports go to outW and
// log records to errW. Every failure is returned as an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before a command runs is a usage problem.
	return usageError(err)
}

type cliState struct {
	v          *viper.Viper
	configFile string
	logW       io.Writer
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	st := &cliState{v: viper.New(), logW: errW}

	root := &cobra.Command{
		Use:   "chemlite",
		Short: "Inspect chemical reaction networks",
		Long: `chemlite loads compounds, reactions and pathways from HCL definition
files and reports pathways, their net reactions, or parsed equations.`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: st.initConfig,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&st.configFile, "config", "c", "", "Optional YAML config file.")
	pf.String(keyLogLevel, "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.String(keyLogFormat, "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringP(keyOutput, "o", "text", "Report format. Options: 'text', 'json' or 'yaml'.")
	pf.StringP(keyPathway, "p", "", "Pathway to report. Defaults to every pathway.")
	for _, key := range []string{keyLogLevel, keyLogFormat, keyOutput, keyPathway} {
		_ = st.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(st.showCommand(), st.netCommand(), st.parseCommand())
	return root
}

// initConfig reads the optional config file and the environment once the
// flags are parsed.
func (st *cliState) initConfig(_ *cobra.Command, _ []string) error {
	st.v.SetEnvPrefix(envPrefix)
	st.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	st.v.AutomaticEnv()

	if st.configFile != "" {
		st.v.SetConfigFile(st.configFile)
		st.v.SetConfigType("yaml")
		if err := st.v.ReadInConfig(); err != nil {
			return usageError(err)
		}
		slog.Debug("Config file loaded.", "file", st.v.ConfigFileUsed())
	}
	return nil
}

// appConfig merges positional paths with the bound configuration. Paths
// given on the command line replace the configured ones.
func (st *cliState) appConfig(paths []string) (*app.Config, error) {
	if len(paths) == 0 {
		paths = st.v.GetStringSlice(keyPaths)
	}
	cfg, err := app.NewConfig(app.Config{
		Paths:     paths,
		Pathway:   st.v.GetString(keyPathway),
		Output:    strings.ToLower(st.v.GetString(keyOutput)),
		LogFormat: strings.ToLower(st.v.GetString(keyLogFormat)),
		LogLevel:  strings.ToLower(st.v.GetString(keyLogLevel)),
	})
	if err != nil {
		return nil, usageError(err)
	}
	slog.Debug("CLI parameter validation complete.", "config", cfg)
	return cfg, nil
}

func (st *cliState) newApp(cmd *cobra.Command, cfg *app.Config) *app.App {
	return app.NewApp(cmd.OutOrStdout(), st.logW, cfg, hcl_adapter.NewLoader())
}

func (st *cliState) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [PATH...]",
		Short: "Print the pathways defined in .hcl files or directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := st.appConfig(args)
			if err != nil {
				return err
			}
			if err := cfg.RequirePaths(); err != nil {
				return usageError(err)
			}
			if err := st.newApp(cmd, cfg).Show(cmd.Context()); err != nil {
				return failure(err)
			}
			return nil
		},
	}
}

func (st *cliState) netCommand() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "net [PATH...]",
		Short: "Print the net reaction of a pathway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := st.appConfig(args)
			if err != nil {
				return err
			}
			if err := cfg.RequirePaths(); err != nil {
				return usageError(err)
			}
			if err := st.newApp(cmd, cfg).Net(cmd.Context(), id); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", app.DefaultNetReactionID, "Identifier of the net reaction.")
	return cmd
}

func (st *cliState) parseCommand() *cobra.Command {
	var (
		id        string
		format    string
		ecNumbers []string
		defs      []string
	)
	cmd := &cobra.Command{
		Use:   "parse EQUATION",
		Short: "Parse a reaction equation, either SMILES (A.B>>C) or identifiers (2 A + B = C)",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rxnparse.ParseFormat(format)
			if err != nil {
				return usageError(err)
			}
			cfg, err := st.appConfig(defs)
			if err != nil {
				return err
			}
			req := app.ParseRequest{Equation: args[0], ID: id, ECNumbers: ecNumbers, Format: f}
			if err := st.newApp(cmd, cfg).Parse(cmd.Context(), req); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Identifier of the parsed reaction. Generated when empty.")
	cmd.Flags().StringVar(&format, "format", "auto", "Equation format. Options: 'auto', 'smiles' or 'ids'.")
	cmd.Flags().StringSliceVar(&ecNumbers, "ec", nil, "EC numbers of the reaction.")
	cmd.Flags().StringSliceVarP(&defs, "defs", "f", nil, "Definition files to resolve compounds against.")
	return cmd
}
