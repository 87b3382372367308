// Copyright (c) 2025 Terrascript Authors
// Licensed under the MIT License

// Command terrascript is a scripting-friendly front end over the library:
// convert between feature encodings, evaluate CQL filters, print brewer
// palettes and describe tile pyramids.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/terrascript/terrascript/pkg/color"
	"github.com/terrascript/terrascript/pkg/convert"
	"github.com/terrascript/terrascript/pkg/feature"
	"github.com/terrascript/terrascript/pkg/filter"
	"github.com/terrascript/terrascript/pkg/pyramid"
)

// ANSI color codes for console output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// useColor controls whether colored output is enabled.
var useColor = true

// printColor prints a message to the console with the specified color.
func printColor(colorCode string, message string) {
	if useColor {
		fmt.Printf("%s%s%s\n", colorCode, message, colorReset)
	} else {
		fmt.Println(message)
	}
}

// printInfo prints an informational message to the console.
func printInfo(message string) {
	printColor(colorCyan, message)
}

// printSuccess prints a success message to the console.
func printSuccess(message string) {
	printColor(colorGreen, message)
}

// printWarning prints a warning message to the console.
func printWarning(message string) {
	printColor(colorYellow, message)
}

// printError prints an error message to the console.
func printError(message string) {
	printColor(colorRed, message)
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "terrascript",
		Short:         "Geospatial scripting conveniences: convert, filter, palettes, pyramids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			useColor = !noColor
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newConvertCommand())
	root.AddCommand(newFilterCommand())
	root.AddCommand(newPaletteCommand())
	root.AddCommand(newPyramidCommand())
	return root
}

func newConvertCommand() *cobra.Command {
	var (
		input     string
		inFormat  string
		outFormat string
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a feature collection between formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := readCollection(input, inFormat)
			if err != nil {
				return err
			}
			printInfo(fmt.Sprintf("Read %d feature(s) from %s", c.Len(), input))

			data, err := convert.Write(c, outFormat)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Println(data)
				return nil
			}
			if err := writeOutput(output, data, overwrite); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Wrote %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input file (geojson or csv)")
	cmd.Flags().StringVar(&inFormat, "from", "", "Input format (default: by file extension)")
	cmd.Flags().StringVarP(&outFormat, "format", "f", convert.FormatGeoJSON, "Output format (geojson, kml, gpx, georss, gml, gml2, csv, text)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing output files")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newFilterCommand() *cobra.Command {
	var (
		input    string
		inFormat string
		cql      string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep the features matching a CQL expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(cql)
			if err != nil {
				return err
			}
			c, err := readCollection(input, inFormat)
			if err != nil {
				return err
			}

			matched := c.Filter(func(ft *feature.Feature) bool {
				return f.Evaluate(ft)
			})
			printInfo(fmt.Sprintf("%d of %d feature(s) match %s", matched.Len(), c.Len(), f.CQL()))

			data, err := convert.Write(matched, format)
			if err != nil {
				return err
			}
			fmt.Println(data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input file (geojson or csv)")
	cmd.Flags().StringVar(&inFormat, "from", "", "Input format (default: by file extension)")
	cmd.Flags().StringVarP(&cql, "cql", "c", "", "CQL expression, e.g. \"POP > 100000 AND name LIKE 'San%'\"")
	cmd.Flags().StringVarP(&format, "format", "f", convert.FormatGeoJSON, "Output format")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("cql")
	return cmd
}

func newPaletteCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "palette [NAME]",
		Short: "Print a ColorBrewer palette as hex colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range color.BrewerNames() {
					fmt.Println(name)
				}
				return nil
			}
			colors := color.Brewer(args[0], steps)
			if len(colors) == 0 {
				printWarning(fmt.Sprintf("No palette named %q", args[0]))
				return nil
			}
			hexes := make([]string, len(colors))
			for i, c := range colors {
				hexes[i] = c.Hex()
			}
			fmt.Println(strings.Join(hexes, " "))
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "Limit the palette to its first n colors")
	return cmd
}

func newPyramidCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pyramid NAME",
		Short: "Describe a well-known tile pyramid (GlobalMercator, GlobalGeodetic)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pyramid.WellKnown(args[0])
			if p == nil {
				return fmt.Errorf("no well-known pyramid named %q", args[0])
			}
			switch format {
			case "csv":
				out, err := p.CSV()
				if err != nil {
					return err
				}
				fmt.Print(out)
			case "yaml":
				out, err := p.YAML()
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			default:
				fmt.Printf("%s (%s) origin=%s tile=%dx%d levels=%d-%d\n",
					p.Name, p.SRS, p.Origin, p.TileWidth, p.TileHeight, p.MinZoom(), p.MaxZoom())
				for _, g := range p.Grids {
					fmt.Printf("  z=%-2d grid=%dx%d res=%g\n", g.Z, g.Width, g.Height, g.XRes)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "describe", "Output format (describe, csv, yaml)")
	return cmd
}

// readCollection loads an input file, sniffing the format from the file
// extension when it is not given.
func readCollection(path, format string) (*feature.Collection, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			format = convert.FormatCSV
		default:
			format = convert.FormatGeoJSON
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %v", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return convert.Read(name, data, format)
}

// writeOutput writes a rendered document, refusing to clobber existing
// files unless asked.
func writeOutput(path, data string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("output file %s already exists. Use --overwrite", path)
		}
		printWarning(fmt.Sprintf("Overwriting existing file: %s", path))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check output file status %s: %v", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write output file %s: %v", path, err)
	}
	return nil
}
