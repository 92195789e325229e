// Command floorscript resolves a FloorScript document into geometry
// and lint diagnostics. Grounded on arx-os-arxos/cmd/arx's cobra
// wiring.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiiisorate/floorscript/internal/config"
	"github.com/xiiisorate/floorscript/internal/obslog"
	"github.com/xiiisorate/floorscript/pkg/resolver"
	"github.com/xiiisorate/floorscript/pkg/validate"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "floorscript",
		Short: "Resolve FloorScript documents into geometry and diagnostics",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	root.AddCommand(newResolveCmd(), newLintCmd())
	return root
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve every plan in a document and emit ResolvedPlan JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, _, err := resolveFile(args[0])
			if err != nil {
				return err
			}
			return emitJSON(plans)
		},
	}
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Resolve every plan and emit only validation results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, results, err := resolveFile(args[0])
			if err != nil {
				return err
			}
			return emitJSON(results)
		},
	}
}

func resolveFile(path string) (any, any, error) {
	log := obslog.MustNew(obslog.Config{Level: logLevel, Format: logFormat, ServiceName: "floorscript"})
	defer log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	doc, err := config.Load(raw)
	if err != nil {
		return nil, nil, err
	}

	var plans []any
	var results []any
	for _, planCfg := range doc.Plans {
		plan, err := resolver.Resolve(doc.Project.Title, planCfg, doc.Units, log)
		if err != nil {
			return nil, nil, fmt.Errorf("plan %q: %w", planCfg.ID, err)
		}
		plans = append(plans, plan)
		results = append(results, validate.Run(plan))
	}

	return plans, results, nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
