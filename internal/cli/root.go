package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the peardecode command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "peardecode [flags] FILE...",
		Short: "Decode PEAR channel REST documents",
		Long: `Peardecode reads PEAR channel REST documents saved from a channel
server, validates them against their schema and prints the decoded records.

Supported documents:
  - packages  package listing  (/rest/p/packages.xml)
  - package   package info     (/rest/p/<package>/info.xml)
  - releases  release listing  (/rest/r/<package>/allreleases.xml)
  - release   release          (/rest/r/<package>/<version>.xml)

A FILE of "-" reads standard input. Flags may also be set in the
environment, e.g. PEARDECODE_FORMAT=yaml.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
			logrus.Debugf("Configuration: %+v", cfg)

			return decodeFiles(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, args)
		},
	}

	rootCmd.Flags().StringP("format", "f", FormatJSON, "Output format (json, yaml)")
	rootCmd.Flags().StringP("kind", "k", "auto", "Document kind (auto, packages, package, releases, release)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	return rootCmd
}
