package cmds

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/catalog"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type categoryListing struct {
	Category string   `json:"category" yaml:"category"`
	Title    string   `json:"title" yaml:"title"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

func NewListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List design pattern categories and patterns",
		Long: `List every category with its patterns, in menu order.

Examples:
  dpm list
  dpm list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(os.Stdout, catalog.Default(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "tree", "Output format: tree, json, yaml")

	return cmd
}

func runList(w io.Writer, c *catalog.Catalog, format string) error {
	var listings []categoryListing
	for _, category := range domain.Categories() {
		listings = append(listings, categoryListing{
			Category: string(category),
			Title:    category.Title(),
			Patterns: c.PatternNames(category),
		})
	}

	switch format {
	case "tree":
		return printListTree(w, listings)
	case "json":
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal patterns to JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listings); err != nil {
			return errors.Wrap(err, "failed to marshal patterns to YAML")
		}
		return enc.Close()
	default:
		return errors.Errorf("unsupported format: %s", format)
	}
}

func printListTree(w io.Writer, listings []categoryListing) error {
	root := tree.Root("Design Patterns")
	for _, l := range listings {
		branch := tree.Root(l.Title)
		for _, p := range l.Patterns {
			branch.Child(p)
		}
		root.Child(branch)
	}
	_, err := fmt.Fprintln(w, root.String())
	return err
}
