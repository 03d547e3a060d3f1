package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/artboard/editor"
	"github.com/npillmayer/artboard/store"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the global flags and the state derived from them.
type app struct {
	cfgFile   string
	storePath string
	format    string
	trace     string
	conf      schuko.Configuration
	opts      editor.Options
	store     store.Store
	closer    func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "artboard",
		Short:         "artboard edits responsive page designs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer()
			}
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.StringVarP(&a.storePath, "store", "s", "artboard-projects",
		"project store: a directory, or an SQLite file ending in .db/.sqlite")
	flags.StringVar(&a.format, "file-format", "json", "file format for directory stores: json|yaml")
	flags.StringVar(&a.trace, "trace", "error", "trace level: error|info|debug")
	root.AddCommand(
		a.newCmd(),
		a.addArtboardCmd(),
		a.addCmd(),
		a.styleCmd(),
		a.positionCmd(),
		a.treeCmd(),
		a.resolveCmd(),
		a.exportCmd(),
		a.listCmd(),
		a.tracksCmd(),
	)
	return root
}

// initTracing routes all tracers to a Go logger.
func (a *app) initTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("artboard").SetTraceLevel(tracing.TraceLevelFromString(a.trace))
}

// init sets up tracing, configuration and the store.
func (a *app) init() error {
	a.initTracing()
	vconf := viperadapter.New("artboard")
	vconf.InitDefaults()
	if a.cfgFile != "" {
		viper.SetConfigFile(a.cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		tracer().Infof("using config file %s", viper.ConfigFileUsed())
	}
	viper.SetEnvPrefix("ARTBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	a.conf = vconf
	a.opts = editor.OptionsFrom(a.conf)
	return a.openStore()
}

func (a *app) openStore() error {
	if strings.HasSuffix(a.storePath, ".db") || strings.HasSuffix(a.storePath, ".sqlite") {
		sst, err := store.OpenSQLite(a.storePath)
		if err != nil {
			return err
		}
		a.store, a.closer = sst, sst.Close
		return nil
	}
	var format store.Format
	switch strings.ToLower(a.format) {
	case "", "json":
		format = store.JSON
	case "yaml", "yml":
		format = store.YAML
	default:
		return fmt.Errorf("unknown file format %q", a.format)
	}
	fst, err := store.NewFileStore(a.storePath, format)
	if err != nil {
		return err
	}
	a.store = fst
	return nil
}
