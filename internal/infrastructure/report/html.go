package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/reqqual/reqqual/internal/application"
	"github.com/reqqual/reqqual/internal/domain/requirement"
)

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Requirement Quality Report</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; background: #f5f7fa; color: #333; }
    header { font-size: 22px; font-weight: bold; padding-bottom: 10px; margin-bottom: 16px; border-bottom: 2px solid #888; }
    .meta { color: #555; margin-bottom: 18px; }
    .status-PASS { color: #2e7d32; font-weight: bold; }
    .status-WARN { color: #b26a00; font-weight: bold; }
    .status-FAIL { color: #b71c1c; font-weight: bold; }
    table { border-collapse: collapse; width: 100%; background: #fff; }
    th, td { border: 1px solid #ddd; padding: 8px; vertical-align: top; }
    th { background: #f0f0f0; text-align: left; }
    ul { margin: 0; padding-left: 18px; }
    .ai { color: #456; font-style: italic; }
  </style>
</head>
<body>
  <header>Requirement Quality Report</header>
  <div class="meta">
    Run {{.Summary.RunID}} &mdash; generated {{.GeneratedAt}} &mdash;
    {{.Summary.Total}} requirements, overall status
    <span class="status-{{.Summary.Status}}">{{.Summary.Status}}</span>,
    mean score {{printf "%.1f" .Summary.MeanScore}}
  </div>
  <table>
    <thead>
      <tr><th>ID</th><th>Title</th><th>Text</th><th>Score</th><th>Status</th><th>Findings</th></tr>
    </thead>
    <tbody>
      {{range .Results}}
      <tr>
        <td>{{.Requirement.ID}}</td>
        <td>{{.Requirement.Title}}</td>
        <td>{{.Requirement.Text}}</td>
        <td style="text-align:right">{{.Score}}</td>
        <td class="status-{{.Status}}">{{.Status}}</td>
        <td>
          {{if .Issues}}
          <ul>
            {{range .Issues}}
            <li{{if eq .Source "AI"}} class="ai"{{end}}><b>{{.RuleID}}</b> [{{.Severity}}] {{.Message}}</li>
            {{end}}
          </ul>
          {{else}}OK{{end}}
        </td>
      </tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Parse(htmlTemplate))

type htmlData struct {
	Summary     application.RunSummary
	Results     []requirement.Result
	GeneratedAt string
}

// WriteHTML renders a standalone page that can be opened locally.
func WriteHTML(path string, results []requirement.Result, summary application.RunSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	defer f.Close()

	return reportTemplate.Execute(f, htmlData{
		Summary:     summary,
		Results:     results,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	})
}
