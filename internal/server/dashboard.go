// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>App Idea Generator</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
form { display: flex; gap: 1rem; flex-wrap: wrap; align-items: end; margin-bottom: 1.5rem; }
label { display: flex; flex-direction: column; font-size: 0.9rem; }
.idea-card { border: 1px solid #d0e8d0; background: #f3fbf3; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.idea-card h3 { margin: 0 0 0.5rem; font-size: 1.05rem; }
.idea-card ul { margin: 0; padding-left: 1.2rem; }
.error { border: 1px solid #e8c0c0; background: #fbf1f1; border-radius: 8px; padding: 1rem; }
</style>
</head>
<body>
<h1>App Idea Generator</h1>
<p>Generate custom application ideas for your next project. Choose how many ideas you want and press the button.</p>
<form method="get" action="/">
  <label>Number of ideas
    <input type="number" name="count" min="1" max="{{.MaxCount}}" value="{{.Query.Count}}">
  </label>
  <label>Variant
    <select name="variant">
      <option value="">default</option>
      {{- range .Variants}}
      <option value="{{.}}"{{if eq (print .) $.Query.Variant}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
  </label>
  <label>Feasibility
    <select name="feasibility">
      <option value="">any</option>
      {{- range .Feasibility}}
      <option value="{{.}}"{{if eq . $.Query.Feasibility}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
  </label>
  <button type="submit">Generate Ideas</button>
</form>
{{- if .Error}}
<div class="error" role="alert">Could not generate ideas: {{.Error}}</div>
{{- else if .Submitted}}
<h2>Generated Ideas</h2>
{{- range $i, $idea := .Ideas}}
<div class="idea-card">
  <h3>{{inc $i}}. {{$idea.Description}}</h3>
  {{- with details $idea}}
  <ul>
    {{- range .}}
    <li><strong>{{.Label}}:</strong> {{.Value}}</li>
    {{- end}}
  </ul>
  {{- end}}
</div>
{{- end}}
{{- end}}
</body>
</html>
`
