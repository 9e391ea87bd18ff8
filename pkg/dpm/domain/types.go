package domain

import (
	"slices"
)

// Category is one of the three top-level design pattern groupings
type Category string

const (
	CategoryCreational Category = "creational"
	CategoryStructural Category = "structural"
	CategoryBehavioral Category = "behavioral"
)

// Categories returns the categories in menu order
func Categories() []Category {
	return []Category{CategoryCreational, CategoryStructural, CategoryBehavioral}
}

// ParseCategory maps a menu label to a Category.
// The second return value is false for "help" and anything unrecognized.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if slices.Contains(Categories(), c) {
		return c, true
	}
	return "", false
}

// Title returns the display name of the category
func (c Category) Title() string {
	switch c {
	case CategoryCreational:
		return "Creational"
	case CategoryStructural:
		return "Structural"
	case CategoryBehavioral:
		return "Behavioral"
	default:
		return string(c)
	}
}

// OutputAction is one of the results a pattern menu can produce
type OutputAction string

const (
	OutputHelp        OutputAction = "help"
	OutputExec        OutputAction = "exec"
	OutputDescription OutputAction = "description"
	OutputFlowChart   OutputAction = "flow-chart"
	OutputExampleCode OutputAction = "example-code"
)

// OutputActions returns every output action in menu order
func OutputActions() []OutputAction {
	return []OutputAction{
		OutputHelp,
		OutputExec,
		OutputDescription,
		OutputFlowChart,
		OutputExampleCode,
	}
}

// Granularity selects how specific a help entry is
type Granularity string

const (
	// GranularityCoarse entries are keyed by category name
	GranularityCoarse Granularity = "coarse"
	// GranularityFine entries are keyed by pattern name
	GranularityFine Granularity = "fine"
)

// HelpChoice is the menu label that shows help at every level
const HelpChoice = "help"
