package catalog

import (
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/demo"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/flowchart"
)

func behavioral() []Pattern {
	return []Pattern{
		{
			Name:     "chain-of-responsibility",
			Category: domain.CategoryBehavioral,
			Title:    "Chain of Responsibility",
			Description: `**Chain of Responsibility** passes a request along a chain of handlers until
one of them handles it. The sender does not know which handler will respond.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "HandlerA", Label: "Handle"},
				{From: "HandlerA", To: "HandlerB", Label: "not mine"},
				{From: "HandlerB", To: "Unhandled", Label: "not mine"},
			},
			Example: example("chain-of-responsibility"),
			Demo:    demo.ChainOfResponsibility,
		},
		{
			Name:     "command",
			Category: domain.CategoryBehavioral,
			Title:    "Command",
			Description: `**Command** turns a request into a value. Invokers store and execute
commands without knowing what they do, which makes queuing and undo simple.`,
			Flow: []flowchart.Edge{
				{From: "RemoteControl", To: "Command", Label: "Execute / Undo"},
				{From: "SwitchCommand", To: "Command", Label: "implements"},
				{From: "SwitchCommand", To: "Light", Label: "Set"},
			},
			Example: example("command"),
			Demo:    demo.Command,
		},
		{
			Name:     "interpreter",
			Category: domain.CategoryBehavioral,
			Title:    "Interpreter",
			Description: `**Interpreter** represents each rule of a small grammar as a type, and
evaluates a sentence by walking the tree of those types.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Add", Label: "Interpret(ctx)"},
				{From: "Add", To: "Variable", Label: "left"},
				{From: "Add", To: "Number", Label: "right"},
			},
			Example: example("interpreter"),
			Demo:    demo.Interpreter,
		},
		{
			Name:     "iterator",
			Category: domain.CategoryBehavioral,
			Title:    "Iterator",
			Description: `**Iterator** gives sequential access to the elements of a collection without
exposing its internal representation.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Aggregate", Label: "Iterator"},
				{From: "Aggregate", To: "Iterator", Label: "returns"},
				{From: "Client", To: "Iterator", Label: "HasNext / Next"},
			},
			Example: example("iterator"),
			Demo:    demo.Iterator,
		},
		{
			Name:     "mediator",
			Category: domain.CategoryBehavioral,
			Title:    "Mediator",
			Description: `**Mediator** centralises how a set of objects interact. Colleagues only talk
to the mediator, which decides who reacts.`,
			Flow: []flowchart.Edge{
				{From: "ColleagueA", To: "Mediator", Label: "Notify"},
				{From: "Mediator", To: "ColleagueB", Label: "Action"},
				{From: "ColleagueB", To: "Mediator", Label: "Notify"},
				{From: "Mediator", To: "ColleagueA", Label: "Action"},
			},
			Example: example("mediator"),
			Demo:    demo.Mediator,
		},
		{
			Name:     "memento",
			Category: domain.CategoryBehavioral,
			Title:    "Memento",
			Description: `**Memento** captures an object's internal state in an opaque value so it
can be restored later without exposing the state to the caretaker.`,
			Flow: []flowchart.Edge{
				{From: "Originator", To: "Memento", Label: "Save"},
				{From: "Caretaker", To: "Memento", Label: "keeps"},
				{From: "Memento", To: "Originator", Label: "Restore"},
			},
			Example: example("memento"),
			Demo:    demo.Memento,
		},
		{
			Name:     "observer",
			Category: domain.CategoryBehavioral,
			Title:    "Observer",
			Description: `**Observer** defines a one-to-many dependency: when the subject changes, all
attached observers are notified automatically.`,
			Flow: []flowchart.Edge{
				{From: "Subject", To: "Observer 1", Label: "Update"},
				{From: "Subject", To: "Observer 2", Label: "Update"},
				{From: "Client", To: "Subject", Label: "Attach / SetMessage"},
			},
			Example: example("observer"),
			Demo:    demo.Observer,
		},
		{
			Name:     "state",
			Category: domain.CategoryBehavioral,
			Title:    "State",
			Description: `**State** lets an object change its behaviour when its internal state
changes. Each state is a type, and handling a request picks the next state.`,
			Flow: []flowchart.Edge{
				{From: "Context", To: "StateA", Label: "Request"},
				{From: "StateA", To: "StateB", Label: "next"},
				{From: "StateB", To: "StateA", Label: "next"},
			},
			Example: example("state"),
			Demo:    demo.State,
		},
		{
			Name:     "strategy",
			Category: domain.CategoryBehavioral,
			Title:    "Strategy",
			Description: `**Strategy** defines a family of interchangeable algorithms and lets the
client pick one at runtime. In Go a strategy is often just a function value.`,
			Flow: []flowchart.Edge{
				{From: "PaymentContext", To: "PaymentStrategy", Label: "Pay"},
				{From: "CreditCard", To: "PaymentStrategy", Label: "is a"},
				{From: "PayPal", To: "PaymentStrategy", Label: "is a"},
			},
			Example: example("strategy"),
			Demo:    demo.Strategy,
		},
		{
			Name:     "template-method",
			Category: domain.CategoryBehavioral,
			Title:    "Template Method",
			Description: `**Template Method** fixes the skeleton of an algorithm and lets variants
supply individual steps. In Go the skeleton is a function over an interface.`,
			Flow: []flowchart.Edge{
				{From: "Prepare", To: "Beverage", Label: "Brew / Condiments"},
				{From: "Coffee", To: "Beverage", Label: "implements"},
				{From: "Tea", To: "Beverage", Label: "implements"},
			},
			Example: example("template-method"),
			Demo:    demo.TemplateMethod,
		},
		{
			Name:     "visitor",
			Category: domain.CategoryBehavioral,
			Title:    "Visitor",
			Description: `**Visitor** moves an operation out of a set of element types into a visitor.
Elements accept the visitor and call the method for their own type.`,
			Flow: []flowchart.Edge{
				{From: "Client", To: "Element", Label: "Accept(visitor)"},
				{From: "ElementA", To: "Visitor", Label: "VisitA"},
				{From: "ElementB", To: "Visitor", Label: "VisitB"},
			},
			Example: example("visitor"),
			Demo:    demo.Visitor,
		},
	}
}
