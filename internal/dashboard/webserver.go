package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/skyfuel-data/saf.report/internal/monitoring"
	"github.com/skyfuel-data/saf.report/internal/saf"
)

// WebServer serves the dashboard page and the eight chart endpoints.
// It reads only from the immutable record store, so handlers are safe
// under the HTTP server's concurrency without locking.
type WebServer struct {
	store *saf.RecordStore
}

// NewWebServer creates a dashboard server over the loaded record set.
func NewWebServer(store *saf.RecordStore) *WebServer {
	return &WebServer{store: store}
}

type chartRoute struct {
	Path    string
	Handler http.HandlerFunc
}

// chartRoutes maps each chart path under /charts/ to its handler. The
// dashboard page embeds one iframe per entry, in this order.
func (ws *WebServer) chartRoutes() []chartRoute {
	return []chartRoute{
		{"/charts/emissions", ws.handleEmissionBar},
		{"/charts/composition", ws.handleCompositionPie},
		{"/charts/efficiency", ws.handleEfficiencyHeatmap},
		{"/charts/lifecycle", ws.handleLifecycleSankey},
		{"/charts/cost", ws.handleCostEmissionScatter},
		{"/charts/performance", ws.handlePerformanceRadar},
		{"/charts/contrail", ws.handleContrailMap},
		{"/charts/compliance", ws.handleComplianceGauge},
	}
}

// ServeMux returns the routing table for the dashboard.
func (ws *WebServer) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range ws.chartRoutes() {
		mux.HandleFunc(route.Path, route.Handler)
	}
	mux.HandleFunc("/", ws.handleDashboard)
	return mux
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// selectedFuel resolves the fuel selector value for a request: the
// "fuel" query parameter when present, the first-seen fuel type
// otherwise. A selection always exists while the store is non-empty.
func (ws *WebServer) selectedFuel(r *http.Request) string {
	if fuel := r.URL.Query().Get("fuel"); fuel != "" {
		return fuel
	}
	return ws.store.DefaultFuel()
}

type renderable interface {
	Render(w io.Writer) error
}

// renderChart writes a rendered chart page, buffering so a render
// failure can still produce an error response.
func (ws *WebServer) renderChart(w http.ResponseWriter, chart renderable) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		monitoring.Logf("chart render failed: %v", err)
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (ws *WebServer) handleEmissionBar(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, EmissionBarChart(EmissionBarView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handleCompositionPie(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, CompositionPieChart(CompositionPieView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handleEfficiencyHeatmap(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, EfficiencyHeatmapChart(EfficiencyHeatmapView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handleLifecycleSankey(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, LifecycleSankeyChart(LifecycleSankeyView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handleCostEmissionScatter(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, CostEmissionScatterChart(CostEmissionScatterView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handlePerformanceRadar(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, PerformanceRadarChart(PerformanceRadarView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handleContrailMap(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, ContrailMapChart(ContrailMapView(ws.selectedFuel(r), ws.store)))
}

func (ws *WebServer) handleComplianceGauge(w http.ResponseWriter, r *http.Request) {
	ws.renderChart(w, ComplianceGaugeChart(ComplianceGaugeView(ws.selectedFuel(r), ws.store)))
}

// handleDashboard serves the single-page dashboard: the fuel selector
// plus one iframe per chart. Changing the selector reloads the page
// with the new fuel, which recomputes all eight views.
func (ws *WebServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	fuel := ws.selectedFuel(r)
	if fuel == "" {
		ws.writeJSONError(w, http.StatusServiceUnavailable, "no fuel types loaded")
		return
	}

	var options strings.Builder
	for _, ft := range ws.store.FuelTypes() {
		selected := ""
		if ft == fuel {
			selected = " selected"
		}
		fmt.Fprintf(&options, `<option value="%s"%s>%s</option>`,
			html.EscapeString(ft), selected, html.EscapeString(ft))
	}

	var frames strings.Builder
	qs := "?fuel=" + url.QueryEscape(fuel)
	for _, route := range ws.chartRoutes() {
		fmt.Fprintf(&frames, "<iframe src=\"%s%s\" loading=\"lazy\"></iframe>\n",
			route.Path, html.EscapeString(qs))
	}

	doc := fmt.Sprintf(dashboardHTML, html.EscapeString(fuel), options.String(), frames.String())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}
