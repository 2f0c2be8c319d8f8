package engine

import "smartfurnace/internal/models"

// Point is one polyline vertex.
type Point struct {
	Minutes float64 `json:"minutes"`
	TempC   float64 `json:"temp_c"`
}

// Curve is the plot-ready polyline of a schedule with its axis extents.
type Curve struct {
	Points       []Point `json:"points"`
	MinTempC     float64 `json:"min_temp_c"`
	MaxTempC     float64 `json:"max_temp_c"`
	TotalMinutes float64 `json:"total_minutes"`
}

// BuildCurve returns two vertices per step, (start, startTemp) and
// (end, endTemp). An empty schedule yields an empty curve, not an error.
func BuildCurve(steps []models.Step) (Curve, error) {
	tl, err := BuildTimeline(steps)
	if err != nil {
		return emptyCurve(), err
	}
	return tl.Curve(), nil
}

// Curve builds the polyline for an already laid out timeline.
func (tl Timeline) Curve() Curve {
	if len(tl.Segments) == 0 {
		return emptyCurve()
	}

	c := Curve{
		Points:       make([]Point, 0, 2*len(tl.Segments)),
		MinTempC:     tl.Segments[0].StartTempC(),
		MaxTempC:     tl.Segments[0].StartTempC(),
		TotalMinutes: tl.TotalMinutes,
	}
	for _, seg := range tl.Segments {
		c.add(Point{Minutes: seg.StartMinutes, TempC: seg.StartTempC()})
		c.add(Point{Minutes: seg.EndMinutes, TempC: seg.EndTempC()})
	}
	return c
}

func (c *Curve) add(p Point) {
	c.Points = append(c.Points, p)
	c.MinTempC = min(c.MinTempC, p.TempC)
	c.MaxTempC = max(c.MaxTempC, p.TempC)
}

func emptyCurve() Curve {
	return Curve{Points: []Point{}}
}
