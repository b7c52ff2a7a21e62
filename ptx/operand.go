package ptx

import (
	"strconv"
	"strings"
)

// Value is an opaque handle to a value in the host's dataflow graph. The
// builder never inspects it; it only carries it back out through
// GetAllMLIRArgs in placeholder order.
type Value interface{}

// Operand is one operand slot of an inline PTX snippet.
type Operand struct {
	Value      Value
	Constraint string
	// Idx is the placeholder number, so the operand renders as $Idx.
	// Constants and packs never consume a placeholder and keep -1.
	Idx int
	// List holds the child operands of an operand pack.
	List []*Operand
	// Repr overrides the default $Idx rendering when set.
	Repr func(idx int) string
}

// IsList reports whether the operand is a pack of child operands.
func (o *Operand) IsList() bool {
	return len(o.List) > 0
}

// Dump renders the operand the way it appears in the instruction text.
func (o *Operand) Dump() string {
	if o.Repr != nil {
		return o.Repr(o.Idx)
	}
	if !o.IsList() {
		return "$" + strconv.Itoa(o.Idx)
	}
	reprs := make([]string, 0, len(o.List))
	for _, sub := range o.List {
		reprs = append(reprs, sub.Dump())
	}
	return "{ " + strings.Join(reprs, ", ") + " }"
}

// NewOperand creates a register operand bound to a host value and assigns it
// the next placeholder index.
func (b *Builder) NewOperand(v Value, constraint string) *Operand {
	opr := &Operand{Value: v, Constraint: constraint, Idx: b.oprCounter}
	b.oprCounter++
	b.argArchive = append(b.argArchive, opr)
	return opr
}

// NewOutputOperand creates an indexed operand that carries a constraint but
// no bound value. The host resolves such a slot as an inline-assembly result
// rather than an argument, so it contributes to GetConstraints but not to
// GetAllMLIRArgs.
func (b *Builder) NewOutputOperand(constraint string) *Operand {
	opr := &Operand{Constraint: constraint, Idx: b.oprCounter}
	b.oprCounter++
	b.argArchive = append(b.argArchive, opr)
	return opr
}

// NewConstantOperand creates an immediate operand rendered as a lowercase
// hexadecimal literal. It consumes no placeholder and never appears in the
// extracted metadata.
func (b *Builder) NewConstantOperand(v int64) *Operand {
	opr := &Operand{Idx: -1}
	opr.Repr = func(int) string {
		return "0x" + strconv.FormatUint(uint64(v), 16)
	}
	b.argArchive = append(b.argArchive, opr)
	return opr
}

// NewAddrOperand creates an address operand rendered as [ $Idx + off ].
func (b *Builder) NewAddrOperand(v Value, constraint string, off int) *Operand {
	opr := b.NewOperand(v, constraint)
	opr.Repr = func(idx int) string {
		return "[ $" + strconv.Itoa(idx) + " + " + strconv.Itoa(off) + " ]"
	}
	return opr
}

// NewListOperand creates an operand pack rendered as { child, child, ... }.
// The pack itself consumes no placeholder; the children keep their own.
func (b *Builder) NewListOperand(oprs ...*Operand) *Operand {
	opr := &Operand{Idx: -1, List: oprs}
	b.argArchive = append(b.argArchive, opr)
	return opr
}
