package catalog

import (
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/demo"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/flowchart"
)

func creational() []Pattern {
	return []Pattern{
		{
			Name:     "factory-method",
			Category: domain.CategoryCreational,
			Title:    "Factory Method",
			Description: `**Factory Method** lets implementations decide which concrete type to create.
The creator exposes a method that returns a product interface; each concrete
creator returns its own product, so client code never names concrete types.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "RobotFactory", Label: "CreateRobot"},
				{From: "RobotFactory", To: "AssemblerFactory", Label: "implemented by"},
				{From: "RobotFactory", To: "RepairerFactory", Label: "implemented by"},
				{From: "AssemblerFactory", To: "ElectronicAssembler", Label: "returns"},
				{From: "RepairerFactory", To: "EngineRepairer", Label: "returns"},
			},
			Example: example("factory-method"),
			Demo:    demo.FactoryMethod,
		},
		{
			Name:     "abstract-factory",
			Category: domain.CategoryCreational,
			Title:    "Abstract Factory",
			Description: `**Abstract Factory** provides an interface for creating families of related
objects without naming their concrete types. Clients receive a whole family
from one factory, which keeps the products of a family consistent.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "GUIFactory"},
				{From: "GUIFactory", To: "Button", Label: "CreateButton"},
				{From: "GUIFactory", To: "Window", Label: "CreateWindow"},
				{From: "WindowsFactory", To: "GUIFactory", Label: "implements"},
				{From: "MacFactory", To: "GUIFactory", Label: "implements"},
			},
			Example: example("abstract-factory"),
			Demo:    demo.AbstractFactory,
		},
		{
			Name:     "builder",
			Category: domain.CategoryCreational,
			Title:    "Builder",
			Description: `**Builder** separates the construction of a complex object from its
representation. A director runs the construction steps on a builder, and the
same steps can produce different results.`,
			Flow: []flowchart.Edge{
				{From: "Director", To: "Builder", Label: "PartA / PartB / PartC"},
				{From: "Builder", To: "Product", Label: "Build"},
			},
			Example: example("builder"),
			Demo:    demo.Builder,
		},
		{
			Name:     "prototype",
			Category: domain.CategoryCreational,
			Title:    "Prototype",
			Description: `**Prototype** creates new objects by copying an existing one. The copy must
be deep enough that changing the clone never changes the original.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Prototype", Label: "Clone"},
				{From: "Prototype", To: "Copy", Label: "returns"},
			},
			Example: example("prototype"),
			Demo:    demo.Prototype,
		},
	}
}
