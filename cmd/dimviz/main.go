// Package main provides the CLI entry point for dimviz-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dimviz/dimviz-go/pkg/dimviz"
	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
	"github.com/dimviz/dimviz-go/pkg/dimviz/element"
	"github.com/dimviz/dimviz-go/pkg/dimviz/load"
	"github.com/dimviz/dimviz-go/pkg/dimviz/opts"
	"github.com/dimviz/dimviz-go/pkg/dimviz/output"
)

var (
	kindName   string
	kdimSpecs  string
	vdimSpecs  string
	group      string
	label      string
	sheet      string
	optsPath   string
	outputPath string
	pretty     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dimviz",
		Short: "Annotate tabular data with dimension metadata",
		Long: `dimviz-go loads tabular data (xlsx, csv), binds key and value
dimension metadata to it, and prints the resulting element metadata as JSON.`,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(describeCmd(), dimsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [input.xlsx|input.csv]",
		Short: "Load a data file and print its annotated metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}
	cmd.Flags().StringVar(&kindName, "type", "Curve", "Element kind: Curve, Scatter, Histogram, Points, HeatMap, Table")
	cmd.Flags().StringVar(&kdimSpecs, "kdims", "", "Comma-separated key dimensions (name or name:Label)")
	cmd.Flags().StringVar(&vdimSpecs, "vdims", "", "Comma-separated value dimensions (name or name:Label)")
	cmd.Flags().StringVar(&group, "group", "", "Element group tag")
	cmd.Flags().StringVar(&label, "label", "", "Element label tag")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (xlsx only, default: first)")
	cmd.Flags().StringVar(&optsPath, "opts", "", "YAML options document to resolve against the element")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	kind, ok := element.KindByName(kindName)
	if !ok {
		return fmt.Errorf("invalid element kind: %s", kindName)
	}

	cfg := element.Config{Group: group, Label: label}
	var err error
	if cfg.KDims, err = parseDims(kdimSpecs); err != nil {
		return err
	}
	if cfg.VDims, err = parseDims(vdimSpecs); err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	loader := load.NewLoader().WithLogger(logger)
	el, err := dimviz.AnnotateWith(loader, inputPath, kind, cfg, load.Options{Sheet: sheet})
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	info := output.Describe(el)
	if optsPath != "" {
		resolved, err := resolveOptions(optsPath, el)
		if err != nil {
			return err
		}
		info.Options = resolved
	}

	jsonData, err := output.ToJSON(info, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(jsonData)
}

func dimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dims [spec]...",
		Short: "Construct dimensions from specs and print them",
		Long: `Each spec is a bare name or a name:Label pair. Invalid specs fail
with the validation error a library caller would see.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDims,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runDims(cmd *cobra.Command, args []string) error {
	ds := make([]dims.Dimension, 0, len(args))
	for _, spec := range args {
		d, err := parseDim(spec)
		if err != nil {
			return fmt.Errorf("invalid dimension %q: %w", spec, err)
		}
		ds = append(ds, d)
	}
	jsonData, err := output.ToJSON(ds, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(jsonData)
}

// parseDims parses a comma-separated dimension list. Empty input means
// "use defaults" and yields nil.
func parseDims(specs string) ([]dims.Dimension, error) {
	if specs == "" {
		return nil, nil
	}
	var out []dims.Dimension
	for _, spec := range strings.Split(specs, ",") {
		d, err := parseDim(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", spec, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func parseDim(spec string) (dims.Dimension, error) {
	if name, lbl, ok := strings.Cut(spec, ":"); ok {
		return dims.NewLabeled(name, lbl)
	}
	return dims.New(spec)
}

func resolveOptions(path string, el element.Annotated) (map[string]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options: %w", err)
	}
	defer f.Close()

	store, err := opts.FromYAML(f)
	if err != nil {
		return nil, err
	}
	resolved := make(map[string]map[string]any)
	for _, g := range []opts.Group{opts.GroupStyle, opts.GroupPlot, opts.GroupNorm} {
		if o := store.Lookup(el, g); len(o) > 0 {
			resolved[string(g)] = o
		}
	}
	return resolved, nil
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func write(jsonData []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
