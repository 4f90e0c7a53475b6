package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tombrtls/contentful"
	"github.com/tombrtls/contentful/internal/config"
)

type rootOptions struct {
	params  contentful.Params
	noLinks bool
	timeout time.Duration
	debug   bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "contentful",
		Short:         "Read content from the Contentful Delivery API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	// Flag defaults come from CONTENTFUL_* variables.
	env, err := config.New()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid CONTENTFUL_* environment")
		env = &config.Config{}
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.params.Space, "space", env.Space, "Space ID")
	flags.StringVar(&opts.params.AccessToken, "access-token", env.AccessToken, "Delivery API access token")
	flags.StringVar(&opts.params.Host, "host", env.Host, "API host as hostname[:port] (default "+contentful.DefaultHost+")")
	flags.BoolVar(&opts.params.Insecure, "insecure", env.Insecure, "Use http instead of https")
	flags.StringToStringVar(&opts.params.Headers, "header", env.Headers, "Extra request header as key=value (repeatable)")
	flags.StringVar(&opts.params.Application, "application", env.Application, "Application identifier for the user-agent signature")
	flags.StringVar(&opts.params.Integration, "integration", env.Integration, "Integration identifier for the user-agent signature")
	flags.StringVar(&opts.params.Proxy, "proxy", env.Proxy, "Proxy URL")
	flags.BoolVar(&opts.noLinks, "no-resolve-links", env.ResolveLinks != nil && !*env.ResolveLinks, "Report that links should not be resolved")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")
	flags.BoolVarP(&opts.debug, "debug", "d", env.Debug, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newSpaceCmd(opts))
	rootCmd.AddCommand(newLocalesCmd(opts))
	rootCmd.AddCommand(newContentTypesCmd(opts))
	rootCmd.AddCommand(newContentTypeCmd(opts))
	rootCmd.AddCommand(newEntriesCmd(opts))
	rootCmd.AddCommand(newEntryCmd(opts))
	rootCmd.AddCommand(newAssetsCmd(opts))
	rootCmd.AddCommand(newAssetCmd(opts))

	return rootCmd
}

// run builds a client, applies the timeout, and prints whatever fn returns.
func (o *rootOptions) run(cmd *cobra.Command, fn func(context.Context, *contentful.Client) (any, error)) error {
	p := o.params
	if o.noLinks {
		p.ResolveLinks = contentful.Bool(false)
	}
	c, err := contentful.New(p, contentful.WithDebugLogging(o.debug), contentful.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx, c)
	if err != nil {
		return err
	}
	log.Debug().Str("command", cmd.Name()).Dur("elapsed", time.Since(start)).Msg("request complete")
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		var buf any
		if err := json.Unmarshal(raw, &buf); err != nil {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		}
		v = buf
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newGetCmd(o *rootOptions) *cobra.Command {
	var query, headers map[string]string
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Issue a raw GET below /spaces/{space}/",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				resp, err := c.Get(ctx, args[0], contentful.RequestOptions{Query: query, Headers: headers})
				if err != nil {
					return nil, err
				}
				return json.RawMessage(resp.Body()), nil
			})
		},
	}
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	cmd.Flags().StringToStringVar(&headers, "request-header", nil, "Per-request header as key=value (repeatable)")
	return cmd
}

func newSpaceCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "space",
		Short: "Show the space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetSpace(ctx)
			})
		},
	}
}

func newLocalesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetLocales(ctx)
			})
		},
	}
}

func newContentTypesCmd(o *rootOptions) *cobra.Command {
	var query map[string]string
	cmd := &cobra.Command{
		Use:   "content-types",
		Short: "List content types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetContentTypes(ctx, query)
			})
		},
	}
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	return cmd
}

func newContentTypeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "content-type <id>",
		Short: "Show a content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetContentType(ctx, args[0])
			})
		},
	}
}

func newEntriesCmd(o *rootOptions) *cobra.Command {
	var query map[string]string
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetEntries(ctx, query)
			})
		},
	}
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	return cmd
}

func newEntryCmd(o *rootOptions) *cobra.Command {
	var query map[string]string
	cmd := &cobra.Command{
		Use:   "entry <id>",
		Short: "Show an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetEntry(ctx, args[0], query)
			})
		},
	}
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	return cmd
}

func newAssetsCmd(o *rootOptions) *cobra.Command {
	var query map[string]string
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetAssets(ctx, query)
			})
		},
	}
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	return cmd
}

func newAssetCmd(o *rootOptions) *cobra.Command {
	var query map[string]string
	cmd := &cobra.Command{
		Use:   "asset <id>",
		Short: "Show an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, c *contentful.Client) (any, error) {
				return c.GetAsset(ctx, args[0], query)
			})
		},
	}
	cmd.Flags().StringToStringVar(&query, "query", nil, "Query parameter as key=value (repeatable)")
	return cmd
}
