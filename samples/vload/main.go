package main

import (
	"fmt"

	"github.com/dfukalov/triton/lowering"
	"github.com/dfukalov/triton/ptx"
	valgen "github.com/dfukalov/triton/util"
	"github.com/tebeka/atexit"
)

// printEmitter stands in for the host backend and just shows the three
// artifacts it would splice into an inline-assembly node.
type printEmitter struct{}

func (printEmitter) Emit(asm string, args []ptx.Value, constraints string) {
	fmt.Println(asm)
	fmt.Println(args)
	fmt.Println(constraints)
}

func main() {
	gen := valgen.MakeIncreasingGen(0)
	// Both accesses run under the same guard, so its id is a constant.
	predGen := valgen.MakeConstGen(100)

	lowering.LowerLoad(printEmitter{}, lowering.LoadParams{
		Addr:             gen(),
		Pred:             predGen(),
		Offset:           128,
		VecWidth:         4,
		BitWidth:         32,
		Cache:            lowering.CacheCG,
		Eviction:         lowering.EvictLast,
		HasL2EvictPolicy: false,
	})

	lowering.LowerStore(printEmitter{}, lowering.StoreParams{
		Addr:     gen(),
		Data:     []ptx.Value{gen(), gen()},
		Pred:     predGen(),
		Offset:   0,
		BitWidth: 32,
		Cache:    lowering.CacheWB,
	})

	atexit.Exit(0)
}
