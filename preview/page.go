package preview

import "html/template"

var pageTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}} — Preview</title>
<style>
  :root { --accent: #4f46e5; --ink: #1f2937; --muted: #6b7280; }
  * { box-sizing: border-box; }
  body { margin: 0; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: var(--ink); background: #f9fafb; }
  .wrap { max-width: 880px; margin: 0 auto; padding: 2rem 1rem; }
  header.hero { background: #fff; border: 1px solid #e5e7eb; border-radius: 12px; padding: 2rem; }
  .hero h1 { margin: 0 0 .25rem; font-size: 1.8rem; }
  .hero .type { color: var(--muted); }
  .hero .price { font-size: 1.4rem; font-weight: 700; color: var(--accent); margin-top: .5rem; }
  .hero .tagline { font-style: italic; color: var(--muted); }
  section { background: #fff; border: 1px solid #e5e7eb; border-radius: 12px; padding: 1.5rem 2rem; margin-top: 1.25rem; }
  section h2 { margin-top: 0; font-size: 1.2rem; border-bottom: 2px solid var(--accent); display: inline-block; padding-bottom: .25rem; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: .5rem .75rem; border-bottom: 1px solid #e5e7eb; vertical-align: top; }
  th { color: var(--muted); font-weight: 600; }
  details { border-bottom: 1px solid #e5e7eb; padding: .5rem 0; }
  summary { cursor: pointer; font-weight: 600; }
  .cat { font-size: .75rem; color: var(--accent); margin-right: .5rem; text-transform: uppercase; }
  .note { color: var(--muted); font-size: .9rem; }
</style>
</head>
<body>
<div class="wrap">
  <header class="hero">
    <h1>{{.Name}}</h1>
    <div class="type">{{.ProductType}}</div>
    {{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
    <div>{{.Description}}</div>
    {{if .Price}}<div class="price">{{.Price}}</div>{{end}}
    <div class="note">For: {{.TargetUsers}}</div>
  </header>

  {{if .Features}}
  <section>
    <h2>Key Features</h2>
    <ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>
  </section>
  {{end}}

  {{if .Benefits}}
  <section>
    <h2>Benefits</h2>
    <ul>{{range .Benefits}}<li><strong>{{.Benefit}}</strong> {{.Description}}</li>{{end}}</ul>
  </section>
  {{end}}

  {{if .UsageSteps}}
  <section>
    <h2>How to Use</h2>
    <ol>{{range .UsageSteps}}<li><strong>{{.Action}}:</strong> {{.Description}}</li>{{end}}</ol>
  </section>
  {{end}}

  {{if .ProductB.Name}}
  <section>
    <h2>Compare</h2>
    <table>
      <tr><th></th><th>{{.ProductA.Name}}</th><th>{{.ProductB.Name}}</th></tr>
      <tr><th>Type</th><td>{{.ProductA.Type}}</td><td>{{.ProductB.Type}}</td></tr>
      <tr><th>Features</th>
        <td><ul>{{range .ProductA.Features}}<li>{{.}}</li>{{end}}</ul></td>
        <td><ul>{{range .ProductB.Features}}<li>{{.}}</li>{{end}}</ul></td></tr>
      <tr><th>Benefits</th>
        <td><ul>{{range .ProductA.Benefits}}<li>{{.}}</li>{{end}}</ul></td>
        <td><ul>{{range .ProductB.Benefits}}<li>{{.}}</li>{{end}}</ul></td></tr>
      <tr><th>Price</th><td>{{.ProductA.Price}}</td><td>{{.ProductB.Price}}</td></tr>
    </table>
    {{if .Cheaper}}<p class="note">Better price: {{.Cheaper}}</p>{{end}}
  </section>
  {{end}}

  {{if .FAQ}}
  <section>
    <h2>FAQ</h2>
    {{range .FAQ}}
    <details>
      <summary><span class="cat">{{.Category}}</span>{{.Question}}</summary>
      <p>{{.Answer}}</p>
    </details>
    {{end}}
  </section>
  {{end}}
</div>
</body>
</html>
`))
