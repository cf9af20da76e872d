package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"htmldata/builder"
	"htmldata/catalog"
	"htmldata/vscodedata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		asJSON  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "htmldata",
		Short: "Build and inspect the HTML knowledge collection",
		Long: "htmldata builds the HTML knowledge collection from the built-in HTML5\n" +
			"baseline plus any configured custom data, and prints the result.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			sink := builder.NewLogrusSink(log)

			builtin := builder.BuildBuiltin(sink)
			user := builder.BuildUser(cfg, vscodedata.Normalizer{}, sink)
			merged := catalog.MergeCollections(builtin.Append(user))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(merged)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tags: %d\nglobal attributes: %d\nglobal events: %d\n",
				len(merged.Tags), len(merged.Attrs), len(merged.Events))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "configuration file (json, yaml or toml)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the merged collection as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug tracing")
	return cmd
}

func loadConfig(path string) (builder.Config, error) {
	var cfg builder.Config
	if path == "" {
		return cfg, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "read config file %q", path)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode configuration")
	}
	return cfg, nil
}
