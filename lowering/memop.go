// Package lowering glues the backend's memory-access lowering patterns to
// the ptx builder. It decides nothing by itself: the host passes the exact
// instruction shape and receives the rendered text, bound values, and
// constraints through the InlineAsmEmitter boundary.
package lowering

import (
	"github.com/dfukalov/triton/ptx"
)

// CacheModifier selects the cache operation suffix of a memory access.
type CacheModifier int

const (
	CacheNone CacheModifier = iota
	CacheCA
	CacheCG
	CacheWB
	CacheCS
	CacheWT
)

// Name returns the PTX suffix of the cache modifier.
func (c CacheModifier) Name() string {
	switch c {
	case CacheNone:
		return ""
	case CacheCA:
		return "ca"
	case CacheCG:
		return "cg"
	case CacheWB:
		return "wb"
	case CacheCS:
		return "cs"
	case CacheWT:
		return "wt"
	default:
		panic("invalid cache modifier")
	}
}

// EvictionPolicy selects the L1 eviction priority of a memory access.
type EvictionPolicy int

const (
	EvictNormal EvictionPolicy = iota
	EvictFirst
	EvictLast
)

// Name returns the PTX suffix of the eviction policy.
func (p EvictionPolicy) Name() string {
	switch p {
	case EvictNormal:
		return ""
	case EvictFirst:
		return "L1::evict_first"
	case EvictLast:
		return "L1::evict_last"
	default:
		panic("invalid eviction policy")
	}
}

// InlineAsmEmitter consumes the three artifacts of one lowered memory
// access. The host implementation splices them into an inline-assembly call
// node in its generated code; this package never does.
type InlineAsmEmitter interface {
	Emit(asm string, args []ptx.Value, constraints string)
}

// LoadParams describes the shape of one global load decided by the host.
type LoadParams struct {
	Addr             ptx.Value
	Pred             ptx.Value // nil for an unpredicated load
	Offset           int
	VecWidth         int
	BitWidth         int
	IsVolatile       bool
	Cache            CacheModifier
	Eviction         EvictionPolicy
	HasL2EvictPolicy bool
}

// LowerLoad renders one global load and hands the text, bound values, and
// constraints to the emitter. The destination slots come first, so the host
// maps placeholders 0..VecWidth-1 to the loaded words.
func LowerLoad(e InlineAsmEmitter, p LoadParams) {
	if p.VecWidth < 1 {
		panic("load needs at least one destination word")
	}

	b := ptx.NewBuilder()

	dsts := make([]*ptx.Operand, 0, p.VecWidth)
	for i := 0; i < p.VecWidth; i++ {
		dsts = append(dsts, b.NewOutputOperand("=r"))
	}
	dst := dsts[0]
	if p.VecWidth > 1 {
		dst = b.NewListOperand(dsts...)
	}

	addr := b.NewAddrOperand(p.Addr, "l", p.Offset)

	ld := b.CreateIO("ld").
		O("volatile", p.IsVolatile).
		Global().
		O("ca", p.Cache == CacheCA).
		O("cg", p.Cache == CacheCG).
		O("L1::evict_first", p.Eviction == EvictFirst).
		O("L1::evict_last", p.Eviction == EvictLast).
		O("L1::cache_hint", p.HasL2EvictPolicy).
		V(p.VecWidth).
		B(p.BitWidth)

	exec := ld.Call(dst, addr)
	if p.Pred != nil {
		exec.Predicate(p.Pred)
	}

	asm := b.Dump()
	ptx.Trace("lowered global load", "asm", asm)
	ptx.PrintOperands(b)

	e.Emit(asm, b.GetAllMLIRArgs(), b.GetConstraints())
}

// StoreParams describes the shape of one global store decided by the host.
type StoreParams struct {
	Addr     ptx.Value
	Data     []ptx.Value
	Pred     ptx.Value // nil for an unpredicated store
	Offset   int
	BitWidth int
	Cache    CacheModifier
	Eviction EvictionPolicy
}

// LowerStore renders one global store, address first and data after.
func LowerStore(e InlineAsmEmitter, p StoreParams) {
	if len(p.Data) == 0 {
		panic("store needs at least one data value")
	}

	b := ptx.NewBuilder()

	addr := b.NewAddrOperand(p.Addr, "l", p.Offset)

	vals := make([]*ptx.Operand, 0, len(p.Data))
	for _, v := range p.Data {
		vals = append(vals, b.NewOperand(v, "r"))
	}
	val := vals[0]
	if len(vals) > 1 {
		val = b.NewListOperand(vals...)
	}

	st := b.CreateIO("st").
		Global().
		O(p.Cache.Name(), p.Cache != CacheNone).
		O(p.Eviction.Name(), p.Eviction != EvictNormal).
		V(len(p.Data)).
		B(p.BitWidth)

	exec := st.Call(addr, val)
	if p.Pred != nil {
		exec.Predicate(p.Pred)
	}

	asm := b.Dump()
	ptx.Trace("lowered global store", "asm", asm)
	ptx.PrintOperands(b)

	e.Emit(asm, b.GetAllMLIRArgs(), b.GetConstraints())
}
