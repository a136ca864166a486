package dashboard

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const echartsAssetsPrefix = "https://go-echarts.github.io/go-echarts-assets/assets/"

const (
	chartWidth  = "100%"
	chartHeight = "460px"
)

// viridis is the color ramp used for value-mapped charts.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// EmissionBarChart renders the grouped emissions spec as a bar chart:
// one bar group per test-condition entry, three series.
func EmissionBarChart(spec EmissionBars) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Emissions",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Emissions for %s Under Different Conditions", spec.Fuel)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithColorsOpts(opts.Colors{"indianred", "lightsalmon", "lightblue"}),
	)

	co2 := make([]opts.BarData, len(spec.CO2))
	nox := make([]opts.BarData, len(spec.NOx))
	pm := make([]opts.BarData, len(spec.Particulate))
	for i := range spec.Conditions {
		co2[i] = opts.BarData{Value: spec.CO2[i]}
		nox[i] = opts.BarData{Value: spec.NOx[i]}
		pm[i] = opts.BarData{Value: spec.Particulate[i]}
	}

	bar.SetXAxis(spec.Conditions).
		AddSeries("CO2 Emission (g/kg)", co2).
		AddSeries("NOx Emission (g/kg)", nox).
		AddSeries("Particulate Matter (mg/kg)", pm)
	return bar
}

// CompositionPieChart renders the composition spec as a donut.
func CompositionPieChart(spec CompositionPie) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Composition",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Chemical Composition of %s", spec.Fuel)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)

	slices := make([]opts.PieData, len(spec.Slices))
	for i, s := range spec.Slices {
		slices[i] = opts.PieData{Name: s.Component, Value: s.Proportion}
	}
	pie.AddSeries("composition", slices,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return pie
}

// EfficiencyHeatmapChart renders the efficiency/residue density spec.
func EfficiencyHeatmapChart(spec EfficiencyHeatmap) *charts.HeatMap {
	hm := charts.NewHeatMap()

	maxResidue := 0.0
	cells := make([]opts.HeatMapData, 0, len(spec.Cells))
	for _, c := range spec.Cells {
		if c.Residue > maxResidue {
			maxResidue = c.Residue
		}
		cells = append(cells, opts.HeatMapData{Value: []interface{}{c.ConditionIndex, c.BinIndex, c.Residue}})
	}
	if maxResidue == 0 {
		maxResidue = 1
	}

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Combustion Efficiency",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Combustion Efficiency and Residue Formation for %s", spec.Fuel)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Name:      "Test Conditions",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Name:      "Combustion Efficiency (%)",
			Data:      spec.BinLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxResidue),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	hm.SetXAxis(spec.Conditions).AddSeries("Residue Formation (mg)", cells)
	return hm
}

// LifecycleSankeyChart renders the lifecycle flow spec.
func LifecycleSankeyChart(spec LifecycleSankey) *charts.Sankey {
	sankey := charts.NewSankey()
	sankey.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Lifecycle",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Lifecycle Carbon Footprint for %s", spec.Fuel)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	nodes := make([]opts.SankeyNode, len(spec.Flow.Stages))
	for i, stage := range spec.Flow.Stages {
		nodes[i] = opts.SankeyNode{Name: stage}
	}
	var links []opts.SankeyLink
	for i, v := range spec.Flow.Values {
		if i+1 >= len(spec.Flow.Stages) {
			break
		}
		links = append(links, opts.SankeyLink{
			Source: spec.Flow.Stages[i],
			Target: spec.Flow.Stages[i+1],
			Value:  float32(v),
		})
	}

	sankey.AddSeries("lifecycle", nodes, links,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return sankey
}

// CostEmissionScatterChart renders the cost/emission spec: symbol size
// follows NOx, color follows particulate matter.
func CostEmissionScatterChart(spec CostEmissionScatter) *charts.Scatter {
	maxPM := 0.0
	maxNOx := 0.0
	for _, p := range spec.Points {
		if p.Particulate > maxPM {
			maxPM = p.Particulate
		}
		if p.NOx > maxNOx {
			maxNOx = p.NOx
		}
	}
	if maxPM == 0 {
		maxPM = 1
	}
	if maxNOx == 0 {
		maxNOx = 1
	}

	points := make([]opts.ScatterData, 0, len(spec.Points))
	for _, p := range spec.Points {
		// Scale symbol size into a 6..30px band so small NOx values
		// stay visible.
		size := 6 + int(24*p.NOx/maxNOx)
		points = append(points, opts.ScatterData{
			Value:      []interface{}{p.Cost, p.CO2, p.Particulate, p.NOx},
			SymbolSize: size,
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Cost vs. Emission Reduction",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Cost vs. Emission Reduction for %s", spec.Fuel)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Cost per Unit Emission Reduction ($)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: "CO2 Emission (g/kg)", NameLocation: "middle", NameGap: 40}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxPM),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	scatter.AddSeries("tests", points)
	return scatter
}

// PerformanceRadarChart renders the flight performance means as a
// filled three-axis radar.
func PerformanceRadarChart(spec PerformanceRadar) *charts.Radar {
	// Indicator maxima scale to the data with headroom so the filled
	// area stays inside the grid.
	indicatorMax := func(v float64) float32 {
		if v <= 0 {
			return 1
		}
		return float32(v * 1.25)
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Flight Performance",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Flight Performance for %s", spec.Fuel)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: []*opts.Indicator{
				{Name: "Thrust", Max: indicatorMax(spec.Means.Thrust)},
				{Name: "Range", Max: indicatorMax(spec.Means.FlightRange)},
				{Name: "Payload Capacity", Max: indicatorMax(spec.Means.PayloadCapacity)},
			},
		}),
	)

	radar.AddSeries("performance", []opts.RadarData{
		{
			Name:  spec.Fuel,
			Value: []float32{float32(spec.Means.Thrust), float32(spec.Means.FlightRange), float32(spec.Means.PayloadCapacity)},
		},
	},
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.4)}),
	)
	return radar
}

// ContrailMapChart renders the placeholder contrail map: an empty
// world map with no data series wired.
func ContrailMapChart(spec ContrailMap) *charts.Geo {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Contrail Prediction",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Contrail Formation Prediction for %s", spec.Fuel)}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: spec.Region}),
	)
	return geo
}

// ComplianceGaugeChart renders the compliance count as a single gauge.
// The gauge shows the absolute count of compliant tests, not a
// percentage of the filtered total.
func ComplianceGaugeChart(spec ComplianceGauge) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "SAF Compliance",
			Width:      chartWidth,
			Height:     chartHeight,
			AssetsHost: echartsAssetsPrefix,
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Compliance Status for %s", spec.Fuel)}),
	)

	gauge.AddSeries("compliance", []opts.GaugeData{
		{Name: "Compliant Tests", Value: spec.Compliant},
	})
	return gauge
}
