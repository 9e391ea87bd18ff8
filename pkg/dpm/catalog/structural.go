package catalog

import (
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/demo"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/flowchart"
)

func structural() []Pattern {
	return []Pattern{
		{
			Name:     "adapter",
			Category: domain.CategoryStructural,
			Title:    "Adapter",
			Description: `**Adapter** converts the interface of an existing type into the interface
clients expect. The adapter wraps the old type and translates each call.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Printer", Label: "Print"},
				{From: "PrinterAdapter", To: "Printer", Label: "implements"},
				{From: "PrinterAdapter", To: "OldPrinter", Label: "PrintOld"},
			},
			Example: example("adapter"),
			Demo:    demo.Adapter,
		},
		{
			Name:     "bridge",
			Category: domain.CategoryStructural,
			Title:    "Bridge",
			Description: `**Bridge** splits an abstraction from its implementation so both can vary
independently. The abstraction holds an implementation interface and delegates
to it.`,
			Flow: []flowchart.Edge{
				{From: "Circle", To: "DrawAPI", Label: "DrawCircle"},
				{From: "RedCircle", To: "DrawAPI", Label: "implements"},
				{From: "GreenCircle", To: "DrawAPI", Label: "implements"},
			},
			Example: example("bridge"),
			Demo:    demo.Bridge,
		},
		{
			Name:     "composite",
			Category: domain.CategoryStructural,
			Title:    "Composite",
			Description: `**Composite** composes objects into trees and lets clients treat leaves and
groups through the same interface.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Component", Label: "Operation"},
				{From: "Leaf", To: "Component", Label: "implements"},
				{From: "Composite", To: "Component", Label: "implements"},
				{From: "Composite", To: "Children", Label: "forwards Operation"},
			},
			Example: example("composite"),
			Demo:    demo.Composite,
		},
		{
			Name:     "decorator",
			Category: domain.CategoryStructural,
			Title:    "Decorator",
			Description: `**Decorator** attaches extra behaviour to an object at runtime by wrapping it
in another value with the same interface. Decorators stack.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "DecoratorB", Label: "Operation"},
				{From: "DecoratorB", To: "DecoratorA", Label: "Operation"},
				{From: "DecoratorA", To: "ConcreteComponent", Label: "Operation"},
			},
			Example: example("decorator"),
			Demo:    demo.Decorator,
		},
		{
			Name:     "facade",
			Category: domain.CategoryStructural,
			Title:    "Facade",
			Description: `**Facade** offers one simple interface to a set of subsystem types, so
common tasks take one call instead of many.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "MusicSystem", Label: "ListenToRadio / ListenToCD"},
				{From: "MusicSystem", To: "Amplifier"},
				{From: "MusicSystem", To: "Tuner"},
				{From: "MusicSystem", To: "CDPlayer"},
			},
			Example: example("facade"),
			Demo:    demo.Facade,
		},
		{
			Name:     "flyweight",
			Category: domain.CategoryStructural,
			Title:    "Flyweight",
			Description: `**Flyweight** shares immutable state between many fine-grained objects. A
factory returns the existing instance for a key instead of allocating a new one.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "StyleFactory", Label: "Get(key)"},
				{From: "StyleFactory", To: "Cache", Label: "lookup"},
				{From: "Cache", To: "TextStyle", Label: "shared instance"},
			},
			Example: example("flyweight"),
			Demo:    demo.Flyweight,
		},
		{
			Name:     "proxy",
			Category: domain.CategoryStructural,
			Title:    "Proxy",
			Description: `**Proxy** stands in for another object with the same interface and controls
access to it, adding checks, logging or lazy creation around each call.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Proxy", Label: "Request"},
				{From: "Proxy", To: "RealSubject", Label: "Request after access check"},
			},
			Example: example("proxy"),
			Demo:    demo.Proxy,
		},
	}
}
