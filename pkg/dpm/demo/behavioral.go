package demo

import (
	"fmt"
	"io"
	"strings"
)

type handler interface {
	Handle(request string) bool
}

type chain []handler

func (c chain) Handle(request string) bool {
	for _, h := range c {
		if h.Handle(request) {
			return true
		}
	}
	return false
}

type prefixHandler struct {
	name  string
	match string
	w     io.Writer
}

func (h prefixHandler) Handle(request string) bool {
	if request != h.match {
		return false
	}
	fmt.Fprintf(h.w, "%s handling %s\n", h.name, request)
	return true
}

func ChainOfResponsibility(w io.Writer) {
	c := chain{
		prefixHandler{name: "ConcreteHandlerA", match: "requestA", w: w},
		prefixHandler{name: "ConcreteHandlerB", match: "requestB", w: w},
	}
	for _, req := range []string{"requestA", "requestB", "requestC"} {
		if !c.Handle(req) {
			fmt.Fprintf(w, "No handler for %s\n", req)
		}
	}
}

type light struct {
	w  io.Writer
	on bool
}

type lightCommand interface {
	Execute()
	Undo()
}

type switchCommand struct {
	light *light
	turn  bool
}

func (c switchCommand) Execute() { c.light.set(c.turn) }
func (c switchCommand) Undo()    { c.light.set(!c.turn) }

func (l *light) set(on bool) {
	l.on = on
	if on {
		fmt.Fprintln(l.w, "Light is ON")
		return
	}
	fmt.Fprintln(l.w, "Light is OFF")
}

type remoteControl struct {
	history []lightCommand
}

func (r *remoteControl) Press(c lightCommand) {
	c.Execute()
	r.history = append(r.history, c)
}

func (r *remoteControl) UndoLast() {
	if len(r.history) == 0 {
		return
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	last.Undo()
}

func Command(w io.Writer) {
	l := &light{w: w}
	remote := &remoteControl{}
	remote.Press(switchCommand{light: l, turn: true})
	remote.Press(switchCommand{light: l, turn: false})
	fmt.Fprintln(w, "Undo:")
	remote.UndoLast()
}

type expression interface {
	Interpret(ctx map[string]int) int
}

type number int

func (n number) Interpret(map[string]int) int { return int(n) }

type variable string

func (v variable) Interpret(ctx map[string]int) int { return ctx[string(v)] }

type add struct{ left, right expression }

func (a add) Interpret(ctx map[string]int) int {
	return a.left.Interpret(ctx) + a.right.Interpret(ctx)
}

func Interpreter(w io.Writer) {
	ctx := map[string]int{"x": 5}
	expr := add{left: variable("x"), right: number(7)}
	fmt.Fprintf(w, "x + 7 with x=%d = %d\n", ctx["x"], expr.Interpret(ctx))
}

type aggregate struct {
	items []int
}

type intIterator struct {
	agg   *aggregate
	index int
}

func (a *aggregate) Iterator() *intIterator { return &intIterator{agg: a} }

func (it *intIterator) HasNext() bool { return it.index < len(it.agg.items) }

func (it *intIterator) Next() int {
	v := it.agg.items[it.index]
	it.index++
	return v
}

func Iterator(w io.Writer) {
	agg := &aggregate{items: []int{1, 2, 3, 4}}
	for it := agg.Iterator(); it.HasNext(); {
		fmt.Fprintln(w, it.Next())
	}
}

type mediator struct {
	w          io.Writer
	colleagues map[string]*colleague
	depth      int
}

type colleague struct {
	name     string
	mediator *mediator
}

func (c *colleague) Action() {
	fmt.Fprintf(c.mediator.w, "%s is taking action.\n", c.name)
	c.mediator.Notify(c.name)
}

// Notify forwards one hop only so colleagues do not bounce forever
func (m *mediator) Notify(sender string) {
	if m.depth > 0 {
		return
	}
	m.depth++
	defer func() { m.depth-- }()

	switch sender {
	case "ColleagueA":
		m.colleagues["ColleagueB"].Action()
	case "ColleagueB":
		m.colleagues["ColleagueA"].Action()
	}
}

func Mediator(w io.Writer) {
	m := &mediator{w: w, colleagues: make(map[string]*colleague)}
	for _, name := range []string{"ColleagueA", "ColleagueB"} {
		m.colleagues[name] = &colleague{name: name, mediator: m}
	}
	m.colleagues["ColleagueA"].Action()
	m.colleagues["ColleagueB"].Action()
}

type memento struct{ state string }

type originator struct{ state string }

func (o *originator) Save() memento     { return memento{state: o.state} }
func (o *originator) Restore(m memento) { o.state = m.state }
func (o *originator) Set(state string)  { o.state = state }
func (o *originator) String() string    { return o.state }

func Memento(w io.Writer) {
	o := &originator{}
	var caretaker []memento

	o.Set("State1")
	caretaker = append(caretaker, o.Save())
	o.Set("State2")
	caretaker = append(caretaker, o.Save())
	fmt.Fprintf(w, "Current: %s\n", o)

	o.Restore(caretaker[0])
	fmt.Fprintf(w, "Restored: %s\n", o)
}

type observer interface {
	Update(message string)
}

type namedObserver struct {
	name string
	w    io.Writer
}

func (o *namedObserver) Update(message string) {
	fmt.Fprintf(o.w, "%s received message: %s\n", o.name, message)
}

type subject struct {
	observers []observer
}

func (s *subject) Attach(o observer) { s.observers = append(s.observers, o) }

func (s *subject) Detach(o observer) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *subject) SetMessage(message string) {
	for _, o := range s.observers {
		o.Update(message)
	}
}

func Observer(w io.Writer) {
	s := &subject{}
	o1 := &namedObserver{name: "Observer 1", w: w}
	o2 := &namedObserver{name: "Observer 2", w: w}

	s.Attach(o1)
	s.Attach(o2)
	s.SetMessage("Hello, Observers!")

	s.Detach(o1)
	s.SetMessage("Only one left")
}

type state interface {
	Handle(w io.Writer) state
}

type stateA struct{}

func (stateA) Handle(w io.Writer) state {
	fmt.Fprintln(w, "Handling in State A")
	return stateB{}
}

type stateB struct{}

func (stateB) Handle(w io.Writer) state {
	fmt.Fprintln(w, "Handling in State B")
	return stateA{}
}

type stateContext struct {
	current state
}

func (c *stateContext) Request(w io.Writer) { c.current = c.current.Handle(w) }

func State(w io.Writer) {
	c := &stateContext{current: stateA{}}
	for i := 0; i < 3; i++ {
		c.Request(w)
	}
}

type paymentStrategy func(amount int) string

func creditCard(amount int) string { return fmt.Sprintf("Paid %d using Credit Card", amount) }
func payPal(amount int) string     { return fmt.Sprintf("Paid %d using PayPal", amount) }

type paymentContext struct {
	strategy paymentStrategy
}

func (c *paymentContext) Pay(amount int) string { return c.strategy(amount) }

func Strategy(w io.Writer) {
	c := &paymentContext{strategy: creditCard}
	fmt.Fprintln(w, c.Pay(100))
	c.strategy = payPal
	fmt.Fprintln(w, c.Pay(200))
}

type beverage interface {
	Brew() string
	Condiments() string
}

// prepare is the fixed skeleton; beverages only supply the varying steps
func prepare(w io.Writer, b beverage) {
	fmt.Fprintln(w, "Boiling water")
	fmt.Fprintln(w, b.Brew())
	fmt.Fprintln(w, "Pouring into cup")
	fmt.Fprintln(w, b.Condiments())
}

type coffee struct{}

func (coffee) Brew() string       { return "Brewing Coffee" }
func (coffee) Condiments() string { return "Adding sugar and milk" }

type tea struct{}

func (tea) Brew() string       { return "Brewing Tea" }
func (tea) Condiments() string { return "Adding lemon" }

func TemplateMethod(w io.Writer) {
	prepare(w, coffee{})
	prepare(w, tea{})
}

type element interface {
	Accept(v visitor)
}

type visitor interface {
	VisitA(e elementA)
	VisitB(e elementB)
}

type elementA struct{}

func (e elementA) Accept(v visitor) { v.VisitA(e) }
func (elementA) OperationA() string { return "ConcreteElementA operation" }

type elementB struct{}

func (e elementB) Accept(v visitor) { v.VisitB(e) }
func (elementB) OperationB() string { return "ConcreteElementB operation" }

type printingVisitor struct {
	lines []string
}

func (p *printingVisitor) VisitA(e elementA) {
	p.lines = append(p.lines, "Visiting ConcreteElementA", e.OperationA())
}

func (p *printingVisitor) VisitB(e elementB) {
	p.lines = append(p.lines, "Visiting ConcreteElementB", e.OperationB())
}

func Visitor(w io.Writer) {
	v := &printingVisitor{}
	for _, e := range []element{elementA{}, elementB{}} {
		e.Accept(v)
	}
	fmt.Fprintln(w, strings.Join(v.lines, "\n"))
}
