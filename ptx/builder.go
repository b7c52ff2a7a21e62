// Package ptx assembles parameterized inline PTX instruction text for the
// backend lowering passes. A builder accumulates operands and instructions
// for one lowered operation and renders three positionally aligned
// artifacts: the instruction text with $i placeholders, the bound host
// values, and the register constraints. Entry i of the value and constraint
// sequences corresponds to placeholder $i in the text.
package ptx

import "strings"

// Builder owns every operand and instruction of one inline PTX snippet. It
// is used by a single lowering step, read out, and discarded; state is
// append-only and rendering is a pure read.
type Builder struct {
	oprCounter int
	argArchive []*Operand
	executions []*InstrExecution
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Create creates a plain instruction. The opcode may already carry dotted
// suffixes, e.g. "mov.b16".
func (b *Builder) Create(opcode string) *Instr {
	return &Instr{instrCommon{builder: b, instrParts: []string{opcode}}}
}

// CreateIO creates a modifier-chaining instruction.
func (b *Builder) CreateIO(opcode string) *IOInstr {
	return &IOInstr{instrCommon{builder: b, instrParts: []string{opcode}}}
}

// Dump renders all recorded instruction lines in execution order, joined
// with CRLF and with no trailing separator.
func (b *Builder) Dump() string {
	lines := make([]string, 0, len(b.executions))
	for _, exec := range b.executions {
		lines = append(lines, exec.Dump())
	}
	return strings.Join(lines, "\r\n")
}

// GetAllMLIRArgs returns the bound host values of the indexed operands in
// placeholder order. Output slots carry no value and are skipped, as are
// constants and packs.
func (b *Builder) GetAllMLIRArgs() []Value {
	args := make([]Value, 0, len(b.argArchive))
	for _, opr := range b.argArchive {
		if opr.Idx >= 0 && opr.Value != nil {
			args = append(args, opr.Value)
		}
	}
	return args
}

// GetConstraints returns the comma-joined constraint strings of the indexed
// operands in placeholder order. An empty constraint renders as an empty
// entry; keeping it preserves the $i alignment.
func (b *Builder) GetConstraints() string {
	cons := make([]string, 0, len(b.argArchive))
	for _, opr := range b.argArchive {
		if opr.Idx >= 0 {
			cons = append(cons, opr.Constraint)
		}
	}
	return strings.Join(cons, ",")
}
