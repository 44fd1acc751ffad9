package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/model"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"number": FormatNumber,
		"inc":    func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html.tmpl"),
)

// Files holds the paths of the written report files
type Files struct {
	JSON      string
	CSV       string
	Dashboard string
}

// Paths returns the files in attachment order
func (f *Files) Paths() []string {
	return []string{f.CSV, f.JSON, f.Dashboard}
}

// WriteFiles writes the JSON, CSV and dashboard files of the report into
// <root>/<date>/ and returns their paths
func WriteFiles(root string, report *model.Report) (*Files, error) {
	date := report.Date.String()
	if err := report.Date.Validate(); err != nil {
		return nil, goerr.Wrap(err, "report has no valid date")
	}

	dir := filepath.Join(root, date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create report directory", goerr.V("dir", dir))
	}

	files := &Files{
		JSON:      filepath.Join(dir, "techflow_report_"+date+".json"),
		CSV:       filepath.Join(dir, "techflow_report_"+date+".csv"),
		Dashboard: filepath.Join(dir, "techflow_dashboard_"+date+".html"),
	}

	writers := []struct {
		path   string
		render func(io.Writer, *model.Report) error
	}{
		{files.JSON, JSON},
		{files.CSV, CSV},
		{files.Dashboard, Dashboard},
	}
	for _, w := range writers {
		if err := writeFile(w.path, report, w.render); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func writeFile(path string, report *model.Report, render func(io.Writer, *model.Report) error) error {
	var buf bytes.Buffer
	if err := render(&buf, report); err != nil {
		return goerr.Wrap(err, "failed to render report", goerr.V("path", path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}
	return nil
}

// JSON writes the full report, indented with two spaces. Non-ASCII text and
// HTML characters are written as is.
func JSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode report")
	}
	return nil
}

type dashboardData struct {
	Report *model.Report
}

// Dashboard writes the self-contained HTML dashboard. The report is embedded
// as a script literal and drawn by the page itself.
func Dashboard(w io.Writer, report *model.Report) error {
	if err := templates.ExecuteTemplate(w, "dashboard.html.tmpl", dashboardData{Report: report}); err != nil {
		return goerr.Wrap(err, "failed to render dashboard")
	}
	return nil
}

type emailData struct {
	Report   *model.Report
	Workload []model.WorkloadEntry
}

// EmailHTML returns the HTML body of the report email
func EmailHTML(report *model.Report) (string, error) {
	var buf bytes.Buffer
	data := emailData{
		Report:   report,
		Workload: report.Metrics.WorkloadEntries(),
	}
	if err := templates.ExecuteTemplate(&buf, "email.html.tmpl", data); err != nil {
		return "", goerr.Wrap(err, "failed to render email body")
	}
	return buf.String(), nil
}

// FormatNumber prints a metric value with at least one decimal place, so 24
// is shown as "24.0" and 12.5 as "12.5"
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
