package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/render/layers"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

// catalogOpts holds the command-line flags for the catalog command.
type catalogOpts struct {
	graph    string // write the layer graph SVG here
	dot      bool   // print the DOT source instead of a table
	detailed bool   // include primitive kinds and sides in graph labels
	json     bool   // print groups as JSON
}

// catalogCommand creates the catalog command, which lists every rink
// marking grouped by paint layer.
func (c *CLI) catalogCommand() *cobra.Command {
	var opts catalogOpts

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the rink markings by layer",
		Example: `  rinkplot catalog
  rinkplot catalog --graph layers.svg --detailed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.graph, "graph", "", "write the layer graph as SVG to this file")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "print the layer graph in DOT format")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show primitive kinds and sides in the graph")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the catalog as JSON")

	return cmd
}

func runCatalog(ctx context.Context, opts *catalogOpts) error {
	logger := loggerFromContext(ctx)
	shapes := rink.Shapes()
	groups := layers.Groups(shapes)

	switch {
	case opts.json:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	case opts.dot:
		fmt.Print(layers.ToDOT(shapes, layers.Options{Detailed: opts.detailed}))
		return nil
	case opts.graph != "":
		if err := errors.ValidateOutputPath(opts.graph); err != nil {
			return err
		}
		prog := newProgress(logger)
		svg, err := layers.RenderSVG(ctx, layers.ToDOT(shapes, layers.Options{Detailed: opts.detailed}))
		if err != nil {
			return fmt.Errorf("render layer graph: %w", err)
		}
		if err := writeOutput(opts.graph, svg); err != nil {
			return err
		}
		prog.done("Rendered layer graph")
		printSuccess("Layer graph written")
		printFile(opts.graph)
		return nil
	}

	fmt.Println(catalogTable(groups))
	printKeyValue("Markings", strconv.Itoa(len(groups)))
	printKeyValue("Shapes", strconv.Itoa(len(shapes)))
	printNextStep("Draw it", "rinkplot render -o rink.svg")
	return nil
}

// catalogTable renders groups as a bordered table, one row per marking.
func catalogTable(groups []layers.Group) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		kinds := make([]string, len(g.Kinds))
		for i, k := range g.Kinds {
			kinds[i] = k.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(g.Layer),
			g.Name,
			string(g.Color),
			strings.Join(kinds, ", "),
			strconv.Itoa(g.Count),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Layer", "Marking", "Color", "Kinds", "Shapes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0, 4:
				return lipgloss.NewStyle().Foreground(colorCyan).Align(lipgloss.Right)
			case 2:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}
