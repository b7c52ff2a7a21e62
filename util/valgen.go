// Some helpers using closures to generate dataflow value ids
package valgen

// MakeConstGen returns a generator that always hands out the same id.
func MakeConstGen(constant int) func() int {
	return func() int {
		return constant
	}
}

// MakeIncreasingGen returns a generator that hands out fresh ids, starting
// above start.
func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeSequenceGen replays a fixed id sequence and panics when exhausted.
func MakeSequenceGen(ids []int) func() int {
	next := 0
	return func() int {
		if next >= len(ids) {
			panic("value id sequence exhausted")
		}
		id := ids[next]
		next++
		return id
	}
}
