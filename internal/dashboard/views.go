// Package dashboard computes the eight chart specifications of the SAF
// emissions dashboard and serves them over HTTP as rendered go-echarts
// pages. The view functions in this file are pure: they read the
// selected fuel and the immutable record store and return a spec value,
// never an error. A fuel with zero matching records yields an empty
// spec, not a failure.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/skyfuel-data/saf.report/internal/saf"
)

// EmissionBars is the grouped emissions bar chart: three bars (CO2,
// NOx, particulate matter) per test-condition entry. Duplicate
// condition values among the matching records stay separate entries;
// rows are never summed together.
type EmissionBars struct {
	Fuel        string
	Conditions  []string
	CO2         []float64
	NOx         []float64
	Particulate []float64
}

// EmissionBarView builds the emissions chart for the selected fuel.
func EmissionBarView(fuel string, store *saf.RecordStore) EmissionBars {
	spec := EmissionBars{Fuel: fuel}
	for _, r := range store.ByFuel(fuel) {
		spec.Conditions = append(spec.Conditions, r.TestConditions)
		spec.CO2 = append(spec.CO2, r.CO2Emission)
		spec.NOx = append(spec.NOx, r.NOxEmission)
		spec.Particulate = append(spec.Particulate, r.ParticulateMatter)
	}
	return spec
}

// PieSlice is one component of the composition donut.
type PieSlice struct {
	Component  string
	Proportion float64
}

// CompositionPie is the chemical composition donut for one fuel. The
// slices come from the first matching record only; compositions are
// assumed constant per fuel type.
type CompositionPie struct {
	Fuel   string
	Slices []PieSlice
}

// Total returns the sum of all slice proportions.
func (p CompositionPie) Total() float64 {
	var t float64
	for _, s := range p.Slices {
		t += s.Proportion
	}
	return t
}

// CompositionPieView builds the composition donut for the selected
// fuel. Slices are sorted by component name so the spec is
// deterministic regardless of mapping iteration order.
func CompositionPieView(fuel string, store *saf.RecordStore) CompositionPie {
	spec := CompositionPie{Fuel: fuel}
	comp, ok := store.FirstComposition(fuel)
	if !ok {
		return spec
	}
	for component, proportion := range comp {
		spec.Slices = append(spec.Slices, PieSlice{Component: component, Proportion: proportion})
	}
	sort.Slice(spec.Slices, func(i, j int) bool {
		return spec.Slices[i].Component < spec.Slices[j].Component
	})
	return spec
}

// heatmapBins is how many combustion-efficiency buckets the heatmap
// uses when the matching records span a range of efficiencies.
const heatmapBins = 8

// HeatmapCell is one (condition, efficiency-bin) cell, colored by the
// summed residue formation of the records that fall into it.
type HeatmapCell struct {
	ConditionIndex int
	BinIndex       int
	Residue        float64
	Count          int
}

// EfficiencyHeatmap is the 2D density of combustion efficiency per test
// condition, weighted by residue formation.
type EfficiencyHeatmap struct {
	Fuel       string
	Conditions []string // x axis, first-seen order
	BinLabels  []string // y axis, ascending efficiency
	Cells      []HeatmapCell
}

// EfficiencyHeatmapView buckets the matching records' combustion
// efficiencies into equal-width bins and sums residue formation per
// (condition, bin) cell. An empty filter result yields no cells.
func EfficiencyHeatmapView(fuel string, store *saf.RecordStore) EfficiencyHeatmap {
	spec := EfficiencyHeatmap{Fuel: fuel}
	matches := store.ByFuel(fuel)
	if len(matches) == 0 {
		return spec
	}

	condIndex := map[string]int{}
	for _, r := range matches {
		if _, ok := condIndex[r.TestConditions]; !ok {
			condIndex[r.TestConditions] = len(spec.Conditions)
			spec.Conditions = append(spec.Conditions, r.TestConditions)
		}
	}

	minEff, maxEff := matches[0].CombustionEfficiency, matches[0].CombustionEfficiency
	for _, r := range matches[1:] {
		if r.CombustionEfficiency < minEff {
			minEff = r.CombustionEfficiency
		}
		if r.CombustionEfficiency > maxEff {
			maxEff = r.CombustionEfficiency
		}
	}

	bins := heatmapBins
	if maxEff == minEff {
		bins = 1
	}
	width := (maxEff - minEff) / float64(bins)
	for b := 0; b < bins; b++ {
		if bins == 1 {
			spec.BinLabels = append(spec.BinLabels, fmt.Sprintf("%.1f", minEff))
			break
		}
		spec.BinLabels = append(spec.BinLabels,
			fmt.Sprintf("%.1f–%.1f", minEff+float64(b)*width, minEff+float64(b+1)*width))
	}

	cells := map[[2]int]*HeatmapCell{}
	var order [][2]int
	for _, r := range matches {
		bin := 0
		if bins > 1 {
			bin = int((r.CombustionEfficiency - minEff) / width)
			if bin >= bins {
				bin = bins - 1 // max value lands in the top bin
			}
		}
		key := [2]int{condIndex[r.TestConditions], bin}
		cell, ok := cells[key]
		if !ok {
			cell = &HeatmapCell{ConditionIndex: key[0], BinIndex: key[1]}
			cells[key] = cell
			order = append(order, key)
		}
		cell.Residue += r.ResidueFormation
		cell.Count++
	}
	for _, key := range order {
		spec.Cells = append(spec.Cells, *cells[key])
	}
	return spec
}

// LifecycleFlow is the stage chain of the lifecycle Sankey. Values[i]
// is the flow from Stages[i] to Stages[i+1].
type LifecycleFlow struct {
	Stages []string
	Values []float64
}

// DefaultLifecycleFlow carries illustrative values only. Replace with a
// real per-fuel lifecycle source when one exists.
var DefaultLifecycleFlow = LifecycleFlow{
	Stages: []string{
		"Raw Material Extraction",
		"Production",
		"Transportation",
		"Combustion",
		"Total Emissions",
	},
	Values: []float64{30, 40, 20, 60},
}

// LifecycleSankey is the lifecycle carbon footprint diagram. The flow
// does not vary with the selected fuel; only the title does.
type LifecycleSankey struct {
	Fuel string
	Flow LifecycleFlow
}

// LifecycleSankeyView builds the lifecycle Sankey for the selected
// fuel. The record store is accepted for signature uniformity with the
// other views but is intentionally unused.
func LifecycleSankeyView(fuel string, _ *saf.RecordStore) LifecycleSankey {
	return LifecycleSankey{Fuel: fuel, Flow: DefaultLifecycleFlow}
}

// ScatterPoint is one record on the cost/emission scatter: x is cost
// per unit of emission reduction, y is CO2, point size tracks NOx and
// color tracks particulate matter.
type ScatterPoint struct {
	Cost        float64
	CO2         float64
	NOx         float64
	Particulate float64
}

// CostEmissionScatter is the economic feasibility scatter, one point
// per matching record.
type CostEmissionScatter struct {
	Fuel   string
	Points []ScatterPoint
}

// CostEmissionScatterView builds the cost/emission scatter for the
// selected fuel.
func CostEmissionScatterView(fuel string, store *saf.RecordStore) CostEmissionScatter {
	spec := CostEmissionScatter{Fuel: fuel}
	for _, r := range store.ByFuel(fuel) {
		spec.Points = append(spec.Points, ScatterPoint{
			Cost:        r.CostPerUnitReduction,
			CO2:         r.CO2Emission,
			NOx:         r.NOxEmission,
			Particulate: r.ParticulateMatter,
		})
	}
	return spec
}

// PerformanceRadar is the three-axis flight performance chart: mean
// thrust, flight range and payload capacity over the matching records.
type PerformanceRadar struct {
	Fuel  string
	Means saf.PerformanceMeans
}

// PerformanceRadarView builds the flight performance radar for the
// selected fuel.
func PerformanceRadarView(fuel string, store *saf.RecordStore) PerformanceRadar {
	return PerformanceRadar{Fuel: fuel, Means: saf.MeanPerformance(store.ByFuel(fuel))}
}

// ContrailMap is the contrail formation prediction map. No geospatial
// source is wired yet, so the spec renders an empty world map whose
// structure never varies with the fuel.
type ContrailMap struct {
	Fuel   string
	Region string
}

// ContrailMapView builds the placeholder contrail map for the selected
// fuel. The record store is intentionally unused.
func ContrailMapView(fuel string, _ *saf.RecordStore) ContrailMap {
	return ContrailMap{Fuel: fuel, Region: "world"}
}

// ComplianceGauge is the regulatory compliance indicator: the absolute
// count of matching records with Compliant status, not a percentage.
type ComplianceGauge struct {
	Fuel      string
	Compliant int
	Total     int
}

// ComplianceGaugeView builds the compliance gauge for the selected
// fuel.
func ComplianceGaugeView(fuel string, store *saf.RecordStore) ComplianceGauge {
	matches := store.ByFuel(fuel)
	return ComplianceGauge{
		Fuel:      fuel,
		Compliant: saf.CompliantCount(matches),
		Total:     len(matches),
	}
}
