package game

// FixedStep converts variable frame times into a whole number of simulation
// ticks at Rate ticks per second.
type FixedStep struct {
	Rate int
	acc  float64
}

// maxFrameDT caps a single frame so a stall does not replay seconds of ticks.
const maxFrameDT = 0.1

// Advance adds dt seconds and returns how many ticks are now due.
func (f *FixedStep) Advance(dt float64) int {
	if f.Rate <= 0 || dt <= 0 {
		return 0
	}
	if dt > maxFrameDT {
		dt = maxFrameDT
	}
	f.acc += dt * float64(f.Rate)
	n := int(f.acc)
	f.acc -= float64(n)
	return n
}
