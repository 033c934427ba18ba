// SPDX-License-Identifier: EPL-2.0

package audiotest

// CannedRandom replays fixed values in [0, 1), cycling when exhausted.
type CannedRandom struct {
	values []float64
	next   int
	calls  int
}

func NewCannedRandom(values ...float64) *CannedRandom {
	return &CannedRandom{values: values}
}

func (c *CannedRandom) Float64() float64 {
	c.calls++
	if len(c.values) == 0 {
		return 0.5
	}

	v := c.values[c.next]
	c.next = (c.next + 1) % len(c.values)

	return v
}

// Calls reports how many values were drawn.
func (c *CannedRandom) Calls() int { return c.calls }

// ExtremeRandom alternates between the lowest and highest values a
// uniform [0, 1) source can return.
type ExtremeRandom struct {
	high bool
}

func (e *ExtremeRandom) Float64() float64 {
	e.high = !e.high
	if e.high {
		return 0.9999999999999999
	}
	return 0
}
