// Package demo holds small runnable demonstrations of each design pattern.
// Every demonstration writes deterministic output to the given writer.
package demo

import (
	"fmt"
	"io"
	"strings"
)

// Func runs one demonstration
type Func func(w io.Writer)

type robot interface {
	Work() string
}

type robotFactory interface {
	CreateRobot() robot
}

type electronicAssembler struct{}

func (electronicAssembler) Work() string { return "assembling" }

type engineRepairer struct{}

func (engineRepairer) Work() string { return "repairing" }

type assemblerFactory struct{}

func (assemblerFactory) CreateRobot() robot { return electronicAssembler{} }

type repairerFactory struct{}

func (repairerFactory) CreateRobot() robot { return engineRepairer{} }

func FactoryMethod(w io.Writer) {
	for _, f := range []robotFactory{assemblerFactory{}, repairerFactory{}} {
		fmt.Fprintln(w, f.CreateRobot().Work())
	}
}

type button interface{ Click() string }
type window interface{ Open() string }

type guiFactory interface {
	CreateButton() button
	CreateWindow() window
}

type winButton struct{}

func (winButton) Click() string { return "Windows Button clicked" }

type winWindow struct{}

func (winWindow) Open() string { return "Windows Window opened" }

type macButton struct{}

func (macButton) Click() string { return "Mac Button clicked" }

type macWindow struct{}

func (macWindow) Open() string { return "Mac Window opened" }

type windowsFactory struct{}

func (windowsFactory) CreateButton() button { return winButton{} }
func (windowsFactory) CreateWindow() window { return winWindow{} }

type macFactory struct{}

func (macFactory) CreateButton() button { return macButton{} }
func (macFactory) CreateWindow() window { return macWindow{} }

func AbstractFactory(w io.Writer) {
	for _, f := range []guiFactory{windowsFactory{}, macFactory{}} {
		fmt.Fprintln(w, f.CreateButton().Click())
		fmt.Fprintln(w, f.CreateWindow().Open())
	}
}

type product struct {
	parts []string
}

func (p *product) String() string {
	return "Product parts: " + strings.Join(p.parts, ", ")
}

type productBuilder struct {
	product *product
}

func newProductBuilder() *productBuilder {
	return &productBuilder{product: &product{}}
}

func (b *productBuilder) PartA() *productBuilder {
	b.product.parts = append(b.product.parts, "PartA")
	return b
}

func (b *productBuilder) PartB() *productBuilder {
	b.product.parts = append(b.product.parts, "PartB")
	return b
}

func (b *productBuilder) PartC() *productBuilder {
	b.product.parts = append(b.product.parts, "PartC")
	return b
}

func (b *productBuilder) Build() *product { return b.product }

type director struct{}

func (director) Full(b *productBuilder) *product    { return b.PartA().PartB().PartC().Build() }
func (director) Minimal(b *productBuilder) *product { return b.PartA().Build() }

func Builder(w io.Writer) {
	var d director
	fmt.Fprintln(w, d.Full(newProductBuilder()))
	fmt.Fprintln(w, d.Minimal(newProductBuilder()))
}

type document struct {
	data string
	tags []string
}

// Clone copies the tags so the copy can change independently
func (d *document) Clone() *document {
	tags := make([]string, len(d.tags))
	copy(tags, d.tags)
	return &document{data: d.data, tags: tags}
}

func Prototype(w io.Writer) {
	original := &document{data: "Initial Data", tags: []string{"draft"}}
	fmt.Fprintf(w, "Original Object's Data: %s\n", original.data)

	cloned := original.Clone()
	fmt.Fprintf(w, "Cloned Object's Data: %s\n", cloned.data)

	cloned.data = "Changed Data"
	cloned.tags[0] = "final"
	fmt.Fprintf(w, "Cloned Object's New Data: %s\n", cloned.data)
	fmt.Fprintf(w, "Original Object's Data (After Clone Modification): %s [%s]\n", original.data, original.tags[0])
}
