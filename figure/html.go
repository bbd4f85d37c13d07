package figure

import (
	"html/template"
	"io"
)

// plotlyScript is the browser chart library the page loads.
const plotlyScript = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.Script}}"></script>
</head>
<body>
<div id="figure" style="width:100%;height:95vh;"></div>
<script>
var fig = {{.Figure}};
Plotly.newPlot("figure", fig.data, fig.layout);
</script>
</body>
</html>
`))

// WriteHTML writes a standalone HTML page that draws the figure in a browser.
func (f *Figure) WriteHTML(w io.Writer) error {
	raw, err := f.MarshalJSON()
	if err != nil {
		return err
	}
	title := f.title
	if title == "" {
		title = "zplot"
	}

	return pageTmpl.Execute(w, struct {
		Title  string
		Script string
		Figure template.JS
	}{
		Title:  title,
		Script: plotlyScript,
		// json.Marshal already escapes <, > and & inside strings.
		Figure: template.JS(raw),
	})
}
