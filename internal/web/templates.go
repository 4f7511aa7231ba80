package web

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/UnknownOlympus/athena/internal/view"
)

// pollInterval is how often the browser re-requests the page fragment while a fetch is in flight.
const pollInterval = "500ms"

var pageTmpl = template.Must(template.New("layout").Funcs(template.FuncMap{
	"poll": func() string { return pollInterval },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employees</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
  body { font-family: sans-serif; margin: 2rem auto; max-width: 1100px; color: #1d1d1f; }
  .filters { display: flex; gap: 1rem; align-items: center; padding: 1rem; border: 1px solid #ddd; border-radius: 6px; }
  .filters input { flex: 1; padding: .5rem; }
  .note { color: #666; font-size: .9rem; }
  .note.updating { text-align: right; }
  h1 { text-align: center; }
  table { width: 100%; border-collapse: collapse; }
  th { background: #5c8dd6; color: #fff; text-align: left; padding: .5rem; }
  td { border-bottom: 1px solid #eee; padding: .5rem; }
  td.message { text-align: center; }
  td.message.error { color: #c0392b; }
  .exports { display: flex; gap: .5rem; }
</style>
</head>
<body>
{{template "page" .}}
</body>
</html>

{{define "page"}}
<div id="page"{{if .Busy}} hx-get="/page" hx-trigger="every {{poll}}" hx-swap="outerHTML"{{end}}>
{{if .Loading}}
  <p class="loading">Loading...</p>
{{else}}
  <form id="filters" class="filters" hx-post="/search" hx-target="#page" hx-swap="outerHTML">
    <input type="text" name="first_name" placeholder="First name" aria-label="First name" value="{{.FirstNameInput}}"
      hx-post="/filters/input" hx-trigger="input changed delay:150ms" hx-include="#filters" hx-target="#actions" hx-swap="outerHTML"{{if .Busy}} disabled{{end}}>
    <input type="text" name="last_name" placeholder="Last name" aria-label="Last name" value="{{.LastNameInput}}"
      hx-post="/filters/input" hx-trigger="input changed delay:150ms" hx-include="#filters" hx-target="#actions" hx-swap="outerHTML"{{if .Busy}} disabled{{end}}>
    {{template "actions" .}}
  </form>

  {{if .Refreshing}}<p class="note updating">Updating results...</p>{{end}}

  {{if .HasActiveFilters}}
  <p class="note active-filters">Active filters:{{if .Filters.FirstName}} First name = "{{.Filters.FirstName}}"{{end}}{{if .Filters.LastName}} Last name = "{{.Filters.LastName}}"{{end}}</p>
  {{end}}

  <div class="exports">
    <form method="get" action="/export/employees.xml">
      <button id="export-xml" type="submit"{{if not .CanExport}} disabled{{end}}>Export XML</button>
    </form>
    <form method="get" action="/export/employees.xlsx">
      <button id="export-xlsx" type="submit"{{if not .CanExport}} disabled{{end}}>Export XLSX</button>
    </form>
  </div>

  <h1>Employees</h1>

  <table>
    <thead>
      <tr><th>Name</th><th>Address</th><th>Email</th><th>Phone</th><th>Department</th></tr>
    </thead>
    <tbody>
    {{if .ShowError}}
      <tr><td colspan="5" class="message error">{{.Error}}</td></tr>
    {{else if .ShowEmpty}}
      <tr><td colspan="5" class="message empty">{{.EmptyMessage}}</td></tr>
    {{else}}
      {{range .Employees}}
      <tr class="employee" data-id="{{.ID}}">
        <td>{{.FirstName}} {{.LastName}}</td>
        <td>{{.Address}}</td>
        <td>{{.Email}}</td>
        <td>{{.Phone}}</td>
        <td>{{.DepartmentDescription}}</td>
      </tr>
      {{end}}
    {{end}}
    </tbody>
  </table>
{{end}}
</div>
{{end}}

{{define "actions"}}
<span id="actions">
  <button id="search" type="submit"{{if not .CanSearch}} disabled{{end}}>Search</button>
  <button id="reset" type="button" hx-post="/reset" hx-target="#page" hx-swap="outerHTML"{{if not .CanReset}} disabled{{end}}>Reset</button>
</span>
{{end}}
`))

// pageData is the template view of a page snapshot.
type pageData struct {
	view.State

	ShowError bool
	ShowEmpty bool
}

func newPageData(state view.State) pageData {
	body := state.Body()

	return pageData{
		State:     state,
		ShowError: body == view.BodyError,
		ShowEmpty: body == view.BodyEmpty,
	}
}

func templateComponent(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pageTmpl.ExecuteTemplate(w, name, data)
	})
}

// Layout renders the full HTML document.
func Layout(state view.State) templ.Component {
	return templateComponent("layout", newPageData(state))
}

// Page renders the swappable page fragment.
func Page(state view.State) templ.Component {
	return templateComponent("page", newPageData(state))
}

// Actions renders the Search and Reset buttons.
func Actions(state view.State) templ.Component {
	return templateComponent("actions", newPageData(state))
}
