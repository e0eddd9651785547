package canvas

import (
	"github.com/meghashyamc/geoviz/geometry"
)

// DashPolyline splits a polyline into the "on" pieces of a dash pattern. The
// pattern phase carries over from one segment to the next.
func DashPolyline(points []geometry.Vector, pattern []float64) [][2]geometry.Vector {
	if len(points) < 2 || len(pattern) == 0 {
		return nil
	}

	var dashes [][2]geometry.Vector
	index := 0
	remaining := pattern[0]
	on := true

	for i := 1; i < len(points); i++ {
		start := points[i-1]
		segment := geometry.Between(start, points[i])
		length := segment.Magnitude()
		if length == 0 {
			continue
		}
		direction := segment.Scale(1 / length)

		travelled := 0.0
		for travelled < length {
			step := remaining
			if travelled+step > length {
				step = length - travelled
			}
			if on && step > 0 {
				from := start.Add(direction.Scale(travelled))
				to := start.Add(direction.Scale(travelled + step))
				dashes = append(dashes, [2]geometry.Vector{from, to})
			}
			travelled += step
			remaining -= step
			if remaining <= 0 {
				index = (index + 1) % len(pattern)
				remaining = pattern[index]
				on = !on
			}
		}
	}

	return dashes
}
