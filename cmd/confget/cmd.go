// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"
	"github.com/z5labs/typedconfig/config/source"
	"github.com/z5labs/typedconfig/config/source/remote"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type sourceFlags struct {
	files     []string
	envPrefix string
	remotes   []string
	logLevel  string
}

// LoadFileError occurs when a --file cannot be read.
type LoadFileError struct {
	File  string
	Cause error
}

// Error implements the error interface.
func (e LoadFileError) Error() string {
	return fmt.Sprintf("failed to load config file %s: %s", e.File, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e LoadFileError) Unwrap() error {
	return e.Cause
}

// FetchRemoteError occurs when a --remote document cannot be fetched.
type FetchRemoteError struct {
	URL   string
	Cause error
}

// Error implements the error interface.
func (e FetchRemoteError) Error() string {
	return fmt.Sprintf("failed to fetch remote config %s: %s", e.URL, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FetchRemoteError) Unwrap() error {
	return e.Cause
}

func buildCmd() *cobra.Command {
	var sf sourceFlags

	root := &cobra.Command{
		Use:           "confget",
		Short:         "Resolve typed config values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringSliceVarP(&sf.files, "file", "f", nil, "config file to read, later files take precedence (yaml, json, toml, ...)")
	flags.StringVar(&sf.envPrefix, "env-prefix", "", "read environment variables with this prefix, they take precedence over every file")
	flags.StringSliceVar(&sf.remotes, "remote", nil, "url of a json or yaml config document, files take precedence")
	flags.StringVar(&sf.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		buildGetCmd(&sf),
		buildEnvCmd(&sf),
	)
	return root
}

func (sf *sourceFlags) logHandler(cmd *cobra.Command) (slog.Handler, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(sf.logLevel))
	if err != nil {
		return nil, err
	}
	return slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}), nil
}

// source layers every configured source, highest precedence first:
// environment variables, files in reverse order and remote documents.
func (sf *sourceFlags) source(ctx context.Context, h slog.Handler) (config.Source, error) {
	var srcs []config.Source
	if sf.envPrefix != "" {
		srcs = append(srcs, source.Instrument(
			source.FromEnv(source.EnvPrefix(sf.envPrefix)),
			source.Context(ctx),
			source.LogHandler(h),
			source.Name("env"),
		))
	}

	for _, file := range slices.Backward(sf.files) {
		v := viper.New()
		v.SetConfigFile(file)
		err := v.ReadInConfig()
		if err != nil {
			return nil, LoadFileError{File: file, Cause: err}
		}
		srcs = append(srcs, source.Instrument(
			source.Viper(v),
			source.Context(ctx),
			source.LogHandler(h),
			source.Name(file),
		))
	}

	for _, url := range sf.remotes {
		m, err := remote.Fetch(ctx, url, remote.LogHandler(h), remote.Name(url))
		if err != nil {
			return nil, FetchRemoteError{URL: url, Cause: err}
		}
		srcs = append(srcs, source.Instrument(
			m,
			source.Context(ctx),
			source.LogHandler(h),
			source.Name(url),
		))
	}
	return source.Or(srcs...), nil
}

type getFlags struct {
	typ      string
	def      string
	list     bool
	optional bool
}

func buildGetCmd(sf *sourceFlags) *cobra.Command {
	var gf getFlags

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dotted config path",
		Long: `Print the value at a dotted config path.

Every problem with the value is reported at once: a missing value
without a default, an unparsable value or each unparsable list element.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			get, ok := resolvers[gf.typ]
			if !ok {
				return UnknownTypeError{Type: gf.typ}
			}

			h, err := sf.logHandler(cmd)
			if err != nil {
				return err
			}
			src, err := sf.source(cmd.Context(), h)
			if err != nil {
				return err
			}

			var def *string
			if cmd.Flags().Changed("default") {
				def = &gf.def
			}

			lines, err := get(src, key.Parse(args[0]), request{
				def:      def,
				list:     gf.list,
				optional: gf.optional,
			})
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&gf.typ, "type", "t", "string", fmt.Sprintf("type of the value, one of %v", typeNames()))
	flags.StringVarP(&gf.def, "default", "d", "", "raw value used when the path is absent")
	flags.BoolVar(&gf.list, "list", false, "resolve a list, either stored as one or comma separated, printing one element per line")
	flags.BoolVar(&gf.optional, "optional", false, "print nothing instead of failing when the path is absent")
	return cmd
}

func buildEnvCmd(sf *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "env <path>",
		Short: "Print the environment variable read for a dotted config path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), key.EnvName(sf.envPrefix, key.Parse(args[0])))
			return nil
		},
	}
}
