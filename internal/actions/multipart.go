package actions

import "time"

// Multipart splits the [0,1] progress of one animation into consecutive
// parts weighted by their durations.
type Multipart struct {
	fracs []float64
	total time.Duration
}

// NewMultipart builds the split from per-part durations in milliseconds
func NewMultipart(partsMs ...int) *Multipart {
	sum := 0
	for _, ms := range partsMs {
		if ms > 0 {
			sum += ms
		}
	}
	m := &Multipart{total: time.Duration(sum) * time.Millisecond}
	for _, ms := range partsMs {
		if ms < 0 {
			ms = 0
		}
		f := 0.0
		if sum > 0 {
			f = float64(ms) / float64(sum)
		}
		m.fracs = append(m.fracs, f)
	}
	return m
}

// Duration is the total duration of all parts
func (m *Multipart) Duration() time.Duration {
	return m.total
}

// Locate returns the part covering frac and the progress within that part.
// frac <= 0 is the start of the first part; frac >= 1 is the end of the
// last part regardless of accumulated rounding.
func (m *Multipart) Locate(frac float64) (part int, local float64) {
	last := len(m.fracs) - 1
	if last < 0 {
		return -1, 0
	}
	if frac <= 0 {
		return 0, 0
	}
	if frac >= 1 {
		return last, 1
	}
	for i, width := range m.fracs {
		if frac <= width {
			if width == 0 {
				return i, 1
			}
			return i, frac / width
		}
		frac -= width
	}
	return last, 1
}

// Draw dispatches frac to the part renderer that covers it
func (m *Multipart) Draw(frac float64, parts ...func(local float64)) {
	part, local := m.Locate(frac)
	if part < 0 || part >= len(parts) || parts[part] == nil {
		return
	}
	parts[part](local)
}
