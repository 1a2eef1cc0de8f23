package main

import (
	"bytes"
	"encoding/csv"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/sizing/pkg/chart"
	"github.com/ja7ad/sizing/pkg/report"
	"github.com/ja7ad/sizing/pkg/sizing"
	"github.com/ja7ad/sizing/pkg/util"
)

// document is the machine-readable form of one run.
type document struct {
	Input   sizing.Input    `json:"input" yaml:"input"`
	Profile *sizing.Profile `json:"profile" yaml:"profile"`
	Result  sizing.Result   `json:"result" yaml:"result"`
	Months  []sizing.Point  `json:"months" yaml:"months"`
}

// writeFile creates path (and its directory) and hands it to fn.
func writeFile(path string, fn func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, doc document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeYAML(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(w io.Writer, pts []sizing.Point) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"month", "duration_hours", "charge_ah", "energy_wh", "weight_lbs", "sd_size_gb"})
	for _, p := range pts {
		_ = cw.Write([]string{
			util.FmtInt(p.Month),
			util.FmtFloat(p.DurationHours),
			util.FmtFloat(p.ChargeAh),
			util.FmtFloat(p.EnergyWh),
			util.FmtFloat(p.WeightLbs),
			util.FmtFloat(p.SDSizeGB),
		})
	}
	cw.Flush()
	return cw.Error()
}

var svgNames = []string{"charge.svg", "battery_weight.svg", "sd_card_size.svg"}

func writeSVGs(dir string, charts []chart.Spec) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var r chart.Renderer = chart.SVG{}
	paths := make([]string, 0, len(charts))
	for i, s := range charts {
		path := filepath.Join(dir, svgNames[i%len(svgNames)])
		if err := writeFile(path, func(f *os.File) error { return r.Render(f, s) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeHTML(w io.Writer, doc document, charts []chart.Spec) error {
	type view struct {
		Doc    document
		Report string
		Charts []template.HTML
	}

	var rep bytes.Buffer
	if err := report.Write(&rep, doc.Input, doc.Profile, doc.Result); err != nil {
		return err
	}

	data := view{Doc: doc, Report: rep.String()}
	var r chart.Renderer = chart.SVG{}
	for _, s := range charts {
		var buf bytes.Buffer
		if err := r.Render(&buf, s); err != nil {
			return err
		}
		// rendered by chart.SVG, labels already escaped
		data.Charts = append(data.Charts, template.HTML(buf.String()))
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Sizing Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
pre{background:#f5f5f5;padding:8px;border-radius:4px;overflow-x:auto}
.small{color:#555}
.charts svg{margin:0 12px 12px 0}
</style>

<h1><a href="https://github.com/ja7ad/sizing" target="_blank" rel="noopener noreferrer" style="color:inherit;text-decoration:none;">Sizing Report</a></h1>

<p class="small">
Months: {{.Doc.Input.Months}} &nbsp;|&nbsp;
Inferences/hour: {{.Doc.Input.InferencesPerHour}} &nbsp;|&nbsp;
Battery: {{.Doc.Input.Battery}}
</p>

<h2>Summary</h2>
<ul>
<li>Charge: {{printf "%.2f" .Doc.Result.ChargeAh}} Ah</li>
<li>Battery weight: {{printf "%.2f" .Doc.Result.WeightLbs}} lbs</li>
<li>SD card size: {{printf "%.2f" .Doc.Result.SDSizeGB}} GB</li>
</ul>

<h2>Charts</h2>
<div class="charts">
{{range .Charts}}{{.}}
{{end}}</div>

<h2>Fermi estimation</h2>
<pre>{{.Report}}</pre>

<h2>Per-month</h2>
<table>
<thead>
<tr>
<th>month</th><th>hours</th><th>charge (Ah)</th><th>energy (Wh)</th><th>weight (lbs)</th><th>SD (GB)</th>
</tr>
</thead>
<tbody>
{{range .Doc.Months}}
<tr>
<td>{{.Month}}</td>
<td>{{printf "%.2f" .DurationHours}}</td>
<td>{{printf "%.2f" .ChargeAh}}</td>
<td>{{printf "%.2f" .EnergyWh}}</td>
<td>{{printf "%.2f" .WeightLbs}}</td>
<td>{{printf "%.2f" .SDSizeGB}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
