package ptx

import (
	"strconv"
	"strings"
)

type instrCommon struct {
	builder *Builder
	// Opcode followed by the enabled modifier suffixes, joined by "." when
	// the instruction is rendered.
	instrParts []string
}

func (c *instrCommon) o(suffix string, enabled bool) {
	if enabled {
		c.instrParts = append(c.instrParts, suffix)
	}
}

// call records one execution of the instruction with the given operands. The
// execution owns one output line; its operand order is fixed here.
func (c *instrCommon) call(oprs []*Operand) *InstrExecution {
	exec := &InstrExecution{instr: c, argsInOrder: oprs}
	c.builder.executions = append(c.builder.executions, exec)
	return exec
}

// Instr is a plain instruction without modifier chaining.
type Instr struct {
	instrCommon
}

// Call attaches operands in order and records one output line.
func (i *Instr) Call(oprs ...*Operand) *InstrExecution {
	return i.call(oprs)
}

// IOInstr is an instruction with PTX modifier chaining, such as ld and st.
// All chaining methods mutate the instruction and return it.
type IOInstr struct {
	instrCommon
}

// O appends the modifier suffix when enabled. Repeated calls with the same
// suffix all append; callers keep the chain free of duplicates.
func (i *IOInstr) O(suffix string, enabled bool) *IOInstr {
	i.o(suffix, enabled)
	return i
}

// Global marks the access as global memory.
func (i *IOInstr) Global() *IOInstr {
	return i.O("global", true)
}

// V sets the vector width. PTX omits the suffix for scalar accesses.
func (i *IOInstr) V(vecWidth int) *IOInstr {
	if vecWidth > 1 {
		i.o("v"+strconv.Itoa(vecWidth), true)
	}
	return i
}

// B sets the bit width of each element.
func (i *IOInstr) B(width int) *IOInstr {
	i.o("b"+strconv.Itoa(width), true)
	return i
}

// Call attaches operands in order and records one output line.
func (i *IOInstr) Call(oprs ...*Operand) *InstrExecution {
	return i.call(oprs)
}

// InstrExecution is one recorded invocation of an instruction. Each
// execution renders as one ;-terminated line of the final text.
type InstrExecution struct {
	instr       *instrCommon
	argsInOrder []*Operand
	pred        *Operand
}

// Predicate guards the line with @$i. The boolean register operand is
// created here, so its placeholder index reflects the attachment time
// relative to other operand creations. Attaching a predicate twice is
// caller error.
func (e *InstrExecution) Predicate(v Value) *InstrExecution {
	e.pred = e.instr.builder.NewOperand(v, "b")
	return e
}

// PredicateNot guards the line with the negated predicate @!$i.
func (e *InstrExecution) PredicateNot(v Value) *InstrExecution {
	e.pred = e.instr.builder.NewOperand(v, "b")
	e.pred.Repr = func(idx int) string {
		return "@!$" + strconv.Itoa(idx)
	}
	return e
}

// Dump renders the execution as one line of instruction text.
func (e *InstrExecution) Dump() string {
	var sb strings.Builder

	if e.pred != nil {
		if e.pred.Repr != nil {
			sb.WriteString(e.pred.Repr(e.pred.Idx))
		} else {
			sb.WriteString("@" + e.pred.Dump())
		}
		sb.WriteString(" ")
	}

	sb.WriteString(strings.Join(e.instr.instrParts, "."))

	if len(e.argsInOrder) > 0 {
		reprs := make([]string, 0, len(e.argsInOrder))
		for _, arg := range e.argsInOrder {
			reprs = append(reprs, arg.Dump())
		}
		sb.WriteString(" ")
		sb.WriteString(strings.Join(reprs, ", "))
	}

	sb.WriteString(";")

	return sb.String()
}
