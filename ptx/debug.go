package ptx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	PrintToggle            = false
	LevelTrace  slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintOperands prints the operand binding table of a builder. Useful when
// debugging a lowering pattern whose placeholders come out misaligned.
func PrintOperands(b *Builder) {
	if !PrintToggle {
		return
	}

	t := table.NewWriter()
	t.SetTitle("Operand Bindings")
	t.AppendHeader(table.Row{"Placeholder", "Kind", "Constraint", "Value"})

	for _, opr := range b.argArchive {
		placeholder := "-"
		if opr.Idx >= 0 {
			placeholder = fmt.Sprintf("$%d", opr.Idx)
		}

		t.AppendRow(table.Row{placeholder, operandKind(opr), opr.Constraint, fmt.Sprintf("%v", opr.Value)})
	}

	fmt.Println(t.Render())
}

// operandKind labels an operand for the binding table. Predicates are
// recognized by the boolean register constraint before the Repr check, so a
// negated predicate does not show up as an address.
func operandKind(o *Operand) string {
	switch {
	case o.IsList():
		return "list"
	case o.Idx < 0:
		return "constant"
	case o.Value == nil:
		return "output"
	case o.Constraint == "b":
		return "predicate"
	case o.Repr != nil:
		return "address"
	default:
		return "register"
	}
}
