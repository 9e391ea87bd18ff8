package demo

import (
	"fmt"
	"io"
	"strings"
)

type oldPrinter struct {
	w io.Writer
}

func (p oldPrinter) PrintOld(msg string) {
	fmt.Fprintf(p.w, "Printing using old method: %s\n", msg)
}

type printer interface {
	Print(msg string)
}

type printerAdapter struct {
	old oldPrinter
}

func (a printerAdapter) Print(msg string) { a.old.PrintOld(msg) }

func Adapter(w io.Writer) {
	var p printer = printerAdapter{old: oldPrinter{w: w}}
	p.Print("Hello, World!")
}

type drawAPI interface {
	DrawCircle(radius, x, y int) string
}

type redCircle struct{}

func (redCircle) DrawCircle(radius, x, y int) string {
	return fmt.Sprintf("Drawing Circle[ color: red, radius: %d, x: %d, y: %d ]", radius, x, y)
}

type greenCircle struct{}

func (greenCircle) DrawCircle(radius, x, y int) string {
	return fmt.Sprintf("Drawing Circle[ color: green, radius: %d, x: %d, y: %d ]", radius, x, y)
}

type circle struct {
	x, y, radius int
	api          drawAPI
}

func (c circle) Draw() string { return c.api.DrawCircle(c.radius, c.x, c.y) }

func Bridge(w io.Writer) {
	for _, api := range []drawAPI{redCircle{}, greenCircle{}} {
		fmt.Fprintln(w, circle{x: 100, y: 100, radius: 10, api: api}.Draw())
	}
}

type component interface {
	Operation(w io.Writer, depth int)
}

type leaf struct{ name string }

func (l leaf) Operation(w io.Writer, depth int) {
	fmt.Fprintf(w, "%sLeaf %s operation.\n", strings.Repeat("  ", depth), l.name)
}

type composite struct {
	name     string
	children []component
}

func (c *composite) Add(child component) { c.children = append(c.children, child) }

func (c *composite) Operation(w io.Writer, depth int) {
	fmt.Fprintf(w, "%sComposite %s operation.\n", strings.Repeat("  ", depth), c.name)
	for _, child := range c.children {
		child.Operation(w, depth+1)
	}
}

func Composite(w io.Writer) {
	root := &composite{name: "root"}
	root.Add(leaf{name: "a"})
	branch := &composite{name: "branch"}
	branch.Add(leaf{name: "b"})
	branch.Add(leaf{name: "c"})
	root.Add(branch)

	root.Operation(w, 0)
}

type operation interface {
	Operation() string
}

type concreteComponent struct{}

func (concreteComponent) Operation() string { return "ConcreteComponent" }

type decoratorA struct{ inner operation }

func (d decoratorA) Operation() string { return "ConcreteDecoratorA(" + d.inner.Operation() + ")" }

type decoratorB struct{ inner operation }

func (d decoratorB) Operation() string { return "ConcreteDecoratorB(" + d.inner.Operation() + ")" }

func Decorator(w io.Writer) {
	var c operation = concreteComponent{}
	fmt.Fprintln(w, c.Operation())
	c = decoratorA{inner: c}
	fmt.Fprintln(w, c.Operation())
	c = decoratorB{inner: c}
	fmt.Fprintln(w, c.Operation())
}

type musicSystem struct {
	w io.Writer
}

func (m musicSystem) amplifier(on bool) {
	if on {
		fmt.Fprintln(m.w, "Amplifier is turned on")
		return
	}
	fmt.Fprintln(m.w, "Amplifier is turned off")
}

func (m musicSystem) ListenToRadio(station string) {
	m.amplifier(true)
	fmt.Fprintf(m.w, "Tuner is set to station %s\n", station)
	fmt.Fprintln(m.w, "Speakers volume is set to 5")
}

func (m musicSystem) ListenToCD(cd string) {
	m.amplifier(true)
	fmt.Fprintf(m.w, "CDPlayer is playing %s\n", cd)
	fmt.Fprintln(m.w, "Speakers volume is set to 5")
}

func (m musicSystem) TurnOff() { m.amplifier(false) }

func Facade(w io.Writer) {
	system := musicSystem{w: w}
	system.ListenToRadio("80.4 FM")
	system.TurnOff()
	system.ListenToCD("Beatles")
	system.TurnOff()
}

type textStyle struct {
	color      string
	fontSize   int
	fontFamily string
}

type textStyleFactory struct {
	styles map[string]*textStyle
}

func (f *textStyleFactory) Get(color string, size int, family string) *textStyle {
	key := fmt.Sprintf("%s-%d-%s", color, size, family)
	if s, ok := f.styles[key]; ok {
		return s
	}
	s := &textStyle{color: color, fontSize: size, fontFamily: family}
	f.styles[key] = s
	return s
}

func Flyweight(w io.Writer) {
	f := &textStyleFactory{styles: make(map[string]*textStyle)}

	s1 := f.Get("red", 16, "Arial")
	s2 := f.Get("blue", 20, "Times New Roman")
	s3 := f.Get("red", 16, "Arial")

	fmt.Fprintln(w, s1 == s3)
	fmt.Fprintln(w, s1 == s2)
	for _, s := range []*textStyle{s1, s2} {
		fmt.Fprintf(w, "Applying style: %s, %dpx, %s\n", s.color, s.fontSize, s.fontFamily)
	}
	fmt.Fprintf(w, "Shared styles: %d\n", len(f.styles))
}

type requester interface {
	Request()
}

type realSubject struct{ w io.Writer }

func (s realSubject) Request() { fmt.Fprintln(s.w, "RealSubject: Handling request.") }

type proxySubject struct {
	real requester
	w    io.Writer
}

func (p proxySubject) Request() {
	fmt.Fprintln(p.w, "Proxy: Checking access...")
	p.real.Request()
	fmt.Fprintln(p.w, "Proxy: Logging the time of request.")
}

func Proxy(w io.Writer) {
	subject := realSubject{w: w}
	fmt.Fprintln(w, "Client: Executing the client code with a real subject:")
	subject.Request()

	fmt.Fprintln(w, "Client: Executing the client code with a proxy:")
	proxySubject{real: subject, w: w}.Request()
}
