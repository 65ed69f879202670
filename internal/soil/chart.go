package soil

import "math"

// Chart is the plasticity chart geometry as plain coordinates, so a
// renderer can draw it without knowing the formulas.
type Chart struct {
	XLabel     string          `json:"x_label"`
	YLabel     string          `json:"y_label"`
	XRange     [2]float64      `json:"x_range"`
	YRange     [2]float64      `json:"y_range"`
	Lines      []Series        `json:"lines"`
	References []ReferenceLine `json:"references"`
	Zones      []ZoneLabel     `json:"zones"`
	Sample     *Point          `json:"sample,omitempty"`
}

// Point is a (liquid limit, plasticity index) coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a sampled curve.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Orientation of a reference line.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// ReferenceLine is a dashed guide on the chart. Value is the x of a
// vertical line or the y of a horizontal one; From and To bound it along
// the other axis.
type ReferenceLine struct {
	Name        string      `json:"name"`
	Orientation Orientation `json:"orientation"`
	Value       float64     `json:"value"`
	From        float64     `json:"from"`
	To          float64     `json:"to"`
}

// ZoneLabel anchors a soil group name in its chart region.
type ZoneLabel struct {
	Text  string `json:"text"`
	At    Point  `json:"at"`
	Major bool   `json:"major"`
}

const (
	chartLLMax = 100.0
	chartPIMax = 60.0
)

var chartReferences = []ReferenceLine{
	{Name: "LL=35", Orientation: Vertical, Value: 35, From: 0, To: chartPIMax},
	{Name: "LL=50", Orientation: Vertical, Value: 50, From: 0, To: chartPIMax},
	{Name: "PI=4", Orientation: Horizontal, Value: 4, From: 12, To: 25},
	{Name: "PI=7", Orientation: Horizontal, Value: 7, From: 0, To: 30},
}

var chartZones = []ZoneLabel{
	{Text: "CL", At: Point{10, 25}, Major: true},
	{Text: "CI", At: Point{40, 35}, Major: true},
	{Text: "CH", At: Point{55, 55}, Major: true},
	{Text: "ML", At: Point{2, 2}},
	{Text: "CL-ML", At: Point{20, 5.5}},
	{Text: "ML or OL", At: Point{30, 2}},
	{Text: "MI or OI", At: Point{43, 4}, Major: true},
	{Text: "MH or OH", At: Point{60, 10}, Major: true},
}

// MinChartStep is the finest liquid limit sampling step PlasticityChart
// honours.
const MinChartStep = 0.01

// PlasticityChart samples the A-line and U-line across the liquid limit
// axis every step percent and returns them with the standard reference
// lines and zone labels. A step that is not positive or not finite uses 1;
// a positive step below MinChartStep uses MinChartStep. Samples are not
// clipped to the axis ranges.
func PlasticityChart(step float64) Chart {
	switch {
	case step <= 0 || math.IsNaN(step) || math.IsInf(step, 0):
		step = 1
	case step < MinChartStep:
		step = MinChartStep
	}

	// The epsilon keeps steps like 0.1 from dropping the LL=100 sample.
	n := int(math.Floor(chartLLMax/step+1e-9)) + 1
	aLine := make([]Point, 0, n)
	uLine := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		ll := float64(i) * step
		aLine = append(aLine, Point{ll, ALine(ll)})
		uLine = append(uLine, Point{ll, ULine(ll)})
	}

	return Chart{
		XLabel: "Liquid Limit (%)",
		YLabel: "Plasticity Index (%)",
		XRange: [2]float64{0, chartLLMax},
		YRange: [2]float64{0, chartPIMax},
		Lines: []Series{
			{Name: "A-line", Points: aLine},
			{Name: "U-line", Points: uLine},
		},
		References: append([]ReferenceLine(nil), chartReferences...),
		Zones:      append([]ZoneLabel(nil), chartZones...),
	}
}

// WithSample returns a copy of the chart with the sample point set.
func (c Chart) WithSample(p Plasticity) Chart {
	c.Sample = &Point{p.LiquidLimit, p.PlasticityIndex}
	return c
}
