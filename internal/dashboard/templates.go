package dashboard

// dashboardHTML is the single-page layout: a fuel selector plus one
// iframe per chart endpoint. Placeholders: selected fuel (escaped),
// selector option tags, iframe tags.
const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>SAF Emissions Dashboard - %s</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 1.5rem; background: #fafafa; }
  h1 { font-size: 1.4rem; }
  .selector { margin: 1rem 0; }
  .selector select { font-size: 1rem; padding: 0.25rem 0.5rem; }
  .charts { display: grid; grid-template-columns: repeat(auto-fit, minmax(560px, 1fr)); gap: 1rem; }
  iframe { width: 100%%; height: 500px; border: 1px solid #ddd; border-radius: 4px; background: #fff; }
</style>
</head>
<body>
<h1>Comprehensive Sustainable Aviation Fuel (SAF) Dashboard</h1>
<div class="selector">
  <label for="fuel">Fuel type:</label>
  <select id="fuel" onchange="window.location.search = '?fuel=' + encodeURIComponent(this.value)">
    %s
  </select>
</div>
<div class="charts">
%s
</div>
</body>
</html>
`
