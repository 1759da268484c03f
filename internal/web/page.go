package web

// page.go holds the map/table HTML shell. The shell is deliberately thin:
// Leaflet draws the markers and all filtering, aggregation, and selection
// logic lives server-side behind the /api endpoints.

import "html/template"

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Women of Color Organizations Map</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; background: #f7f7f8; color: #1f2430; }
  header { padding: 12px 20px; background: #fff; border-bottom: 1px solid #e2e4ea; }
  header h1 { margin: 0; font-size: 18px; }
  .controls { display: flex; flex-wrap: wrap; gap: 10px; padding: 10px 20px; align-items: center; }
  .controls label { font-size: 13px; color: #5a6072; }
  .controls select, .controls input { padding: 4px 6px; font-size: 13px; }
  .maps { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; padding: 0 20px; }
  .map-panel h2 { font-size: 14px; margin: 8px 0 4px; }
  .map { height: 420px; border: 1px solid #e2e4ea; border-radius: 4px; }
  .map-status { font-size: 12px; color: #5a6072; margin: 4px 0; }
  .map-status button { margin-left: 8px; font-size: 11px; }
  .table-wrap { padding: 12px 20px 40px; }
  #summary { font-size: 13px; color: #5a6072; margin-bottom: 6px; }
  table { border-collapse: collapse; width: 100%; background: #fff; font-size: 13px; }
  th, td { border: 1px solid #e2e4ea; padding: 4px 8px; text-align: left; }
  th { background: #f0f1f5; }
  th input { width: 90%; font-size: 12px; padding: 2px 4px; }
  #status { padding: 8px 20px; color: #b3261e; font-size: 13px; }
</style>
</head>
<body>
<header><h1>Women of Color Organizations Map</h1></header>
<div id="status"></div>
<div class="controls">
  <label>Type <select id="f-type"><option value="all">All</option></select></label>
  <label>Search <input id="f-search" type="text" placeholder="organization name"></label>
  <label>Founded
    <select id="f-year-op">
      <option value="eq">=</option><option value="gt">&gt;</option>
      <option value="lt">&lt;</option><option value="le">&le;</option>
      <option value="ge">&ge;</option>
    </select>
    <input id="f-year" type="text" size="6" placeholder="year">
  </label>
</div>
<div class="maps">
{{range .Datasets}}
  <div class="map-panel">
    <h2>{{.Label}}</h2>
    <div class="map" id="map-{{.Key}}"></div>
    <div class="map-status" id="sel-{{.Key}}"></div>
  </div>
{{end}}
</div>
<div class="table-wrap">
  <div id="summary"></div>
  <table>
    <thead>
      <tr>
        <th>Dataset<br><input data-col="dataset"></th>
        <th>Name<br><input data-col="name"></th>
        <th>Type<br><input data-col="type"></th>
        <th>Founded<br>
          <select id="t-year-op">
            <option value="eq">=</option><option value="gt">&gt;</option>
            <option value="lt">&lt;</option><option value="le">&le;</option>
            <option value="ge">&ge;</option>
          </select>
          <input data-col="year" size="5">
        </th>
        <th>City<br><input data-col="city"></th>
        <th>State<br><input data-col="state" size="3"></th>
        <th>County<br><input data-col="county"></th>
      </tr>
    </thead>
    <tbody id="rows"></tbody>
  </table>
</div>
<script>
const maps = {}, pointLayers = {}, aggLayers = {};
let datasets = [];

function bounds() { return [[24.0, -125.0], [49.5, -66.5]]; }

async function getJSON(url) {
  const resp = await fetch(url);
  if (!resp.ok) throw new Error(url + ": " + resp.status);
  return resp.json();
}

async function postEvent(body) {
  const resp = await fetch("/api/events", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(body),
  });
  if (!resp.ok) throw new Error("event failed: " + resp.status);
  return resp.json();
}

function initMaps() {
  for (const d of datasets) {
    const m = L.map("map-" + d.key).fitBounds(bounds());
    L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
      attribution: "&copy; OpenStreetMap contributors",
    }).addTo(m);
    maps[d.key] = m;
    pointLayers[d.key] = L.layerGroup().addTo(m);
    aggLayers[d.key] = L.layerGroup().addTo(m);
  }
}

function fillTypeOptions() {
  const sel = document.getElementById("f-type");
  const seen = new Set(["all"]);
  for (const d of datasets) {
    for (const t of d.types) {
      if (seen.has(t)) continue;
      seen.add(t);
      const opt = document.createElement("option");
      opt.value = t; opt.textContent = t;
      sel.appendChild(opt);
    }
  }
}

async function select(dataset, state) {
  await postEvent({type: "marker_clicked", dataset: dataset, state: state});
  await Promise.all([renderSelections(), renderTable()]);
}

async function clearSelection(dataset) {
  await postEvent({type: "selection_cleared", dataset: dataset});
  await Promise.all([renderSelections(), renderTable()]);
}

async function renderMaps() {
  for (const d of datasets) {
    const [points, aggs] = await Promise.all([
      getJSON("/api/points/" + d.key),
      getJSON("/api/aggregates/" + d.key),
    ]);
    pointLayers[d.key].clearLayers();
    for (const f of points.features) {
      const [lon, lat] = f.geometry.coordinates;
      const p = f.properties;
      L.circleMarker([lat, lon], {radius: 5, color: p.color, fillOpacity: 0.8})
        .bindPopup("<b>" + p.name + "</b><br>" + (p.city || "") + " " + (p.state || ""))
        .on("click", () => { if (p.state) select(d.key, p.state); })
        .addTo(pointLayers[d.key]);
    }
    aggLayers[d.key].clearLayers();
    for (const f of aggs.features) {
      const [lon, lat] = f.geometry.coordinates;
      const p = f.properties;
      L.circleMarker([lat, lon], {radius: p.radius, color: p.color, fillOpacity: 0.4})
        .bindPopup(p.state + ": " + p.count + " organizations (state-level)")
        .on("click", () => select(d.key, p.state))
        .addTo(aggLayers[d.key]);
    }
  }
}

async function renderSelections() {
  const state = await getJSON("/api/state");
  for (const d of datasets) {
    const el = document.getElementById("sel-" + d.key);
    const sel = state.selected && state.selected[d.key];
    if (sel) {
      el.innerHTML = "Showing: " + sel + ' <button onclick="clearSelection(\'' + d.key + '\')">clear</button>';
    } else {
      el.textContent = "Showing all states";
    }
  }
}

async function renderTable() {
  const view = await getJSON("/api/table");
  const s = view.summary;
  let label = s.total + " matching organizations";
  if (s.shown < s.total) label += " (showing first " + s.shown + ")";
  document.getElementById("summary").textContent = label;

  const body = document.getElementById("rows");
  body.innerHTML = "";
  for (const r of view.rows) {
    const tr = document.createElement("tr");
    const cells = [r.dataset_label, r.name, r.type,
      r.founding_year === null ? "" : r.founding_year,
      r.city, r.state, r.county];
    for (const c of cells) {
      const td = document.createElement("td");
      td.textContent = c == null ? "" : c;
      tr.appendChild(td);
    }
    body.appendChild(tr);
  }
}

function tableFilters() {
  const val = (col) => document.querySelector('input[data-col="' + col + '"]').value;
  return {
    dataset: val("dataset"), name: val("name"), type: val("type"),
    city: val("city"), state: val("state"), county: val("county"),
    year: {op: document.getElementById("t-year-op").value, value: val("year")},
  };
}

async function filtersChanged() {
  await postEvent({
    type: "filter_changed",
    primary: {
      type: document.getElementById("f-type").value,
      search: document.getElementById("f-search").value,
      year: {
        op: document.getElementById("f-year-op").value,
        value: document.getElementById("f-year").value,
      },
    },
    table: tableFilters(),
  });
  await Promise.all([renderMaps(), renderSelections(), renderTable()]);
}

async function main() {
  try {
    datasets = await getJSON("/api/datasets");
    initMaps();
    fillTypeOptions();
    for (const el of document.querySelectorAll(".controls select, .controls input, th input, #t-year-op")) {
      el.addEventListener("change", filtersChanged);
      el.addEventListener("keyup", filtersChanged);
    }
    await Promise.all([renderMaps(), renderSelections(), renderTable()]);
  } catch (err) {
    document.getElementById("status").textContent = "Failed to load datasets: " + err.message;
  }
}

main();
</script>
</body>
</html>
`))
