package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/page-router/internal/config"
	"github.com/JaimeStill/page-router/pkg/route"
	"github.com/JaimeStill/page-router/web/app"
)

// buildTable compiles the route table; tests swap it for custom records.
var buildTable = app.Routes

type options struct {
	base         string
	maxRedirects int
	output       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "routectl",
		Short:        "Inspect the application route table",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "table", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unknown output format %q (must be table, json, or yaml)", opts.output)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.base, "base", "", "history base path (overrides router.base)")
	flags.IntVar(&opts.maxRedirects, "max-redirects", 0, "redirect hop limit (overrides router.max_redirects)")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format: table, json, or yaml")

	root.AddCommand(
		newRoutesCmd(opts),
		newResolveCmd(opts),
		newLookupCmd(opts),
	)
	return root
}

func newRoutesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every route record in table order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(opts)
			if err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), opts.output, table.Records(), func(out io.Writer) error {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PATH\tREDIRECT\tNAME\tCOMPONENT")
				for _, rec := range table.Records() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", table.Href(rec.Path), dash(rec.Redirect), dash(rec.Name), dash(rec.Component))
				}
				return tw.Flush()
			})
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Follow redirects for a path and print the final outcome",
		Long: `Resolve a navigation path against the route table.

Each redirect hop is printed in order, followed by the final outcome.
The command exits non-zero when the redirect chain loops.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(opts)
			if err != nil {
				return err
			}

			res, err := table.Resolve(args[0])
			if err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), opts.output, res, func(out io.Writer) error {
				for _, hop := range res.Redirects {
					fmt.Fprintf(out, "redirect  %s -> %s\n", hop.Path, hop.Target)
				}
				if res.Outcome.Kind == route.KindRender {
					fmt.Fprintf(out, "render    %s (name=%s component=%s)\n", res.Outcome.Path, dash(res.Outcome.Name), res.Outcome.Component)
				} else {
					fmt.Fprintf(out, "none      %s\n", res.Outcome.Path)
				}
				return nil
			})
		},
	}
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Find the route record registered under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(opts)
			if err != nil {
				return err
			}

			rec, ok := table.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no route named %q", args[0])
			}

			return write(cmd.OutOrStdout(), opts.output, rec, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "%s\t%s\n", table.Href(rec.Path), rec.Component)
				return err
			})
		},
	}
}

func loadTable(opts *options) (*route.Table, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.base != "" {
		cfg.Router.Base = opts.base
	}
	if opts.maxRedirects > 0 {
		cfg.Router.MaxRedirects = opts.maxRedirects
	}

	return buildTable(cfg.Router)
}

// write encodes v in the requested structured format, or calls table for
// the human-readable form.
func write(out io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return table(out)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
