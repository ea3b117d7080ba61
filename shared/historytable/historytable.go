// Package historytable renders survey run history as console tables.
package historytable

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/aws-reporter/service/storage"
)

// RenderRunTable prints an ASCII table of recent survey runs.
func RenderRunTable(runs []storage.RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Timestamp", "Accounts", "Profiles", "Resources", "Reports", "Format", "Output"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.RunID, r.RunTimestamp.Format("2006-01-02 15:04:05"), r.AccountIDs, r.Profiles, r.TotalResources, r.Reports, r.OutputFormat, r.OutputFile})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderEntityCountTable prints per-entity-type resource counts for one run.
func RenderEntityCountTable(counts []storage.EntityCount) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Entity Type", "Resources"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.EntityType, c.ResourceCount})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
