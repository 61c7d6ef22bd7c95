package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/models"
)

const outputJSON = "json"

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output format: json for raw output")
}

func outputFlag(cmd *cobra.Command) (string, error) {
	out, _ := cmd.Flags().GetString("output")
	if out != "" && out != outputJSON {
		return "", ErrUnsupportedOutput
	}
	return out, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	pterm.Println(string(data))
	return nil
}

func renderTable(rows pterm.TableData) {
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func tabRows(tabs []models.Tab) pterm.TableData {
	rows := pterm.TableData{{"#", "Title", "URL"}}
	for i, tab := range tabs {
		title := tab.Title
		if title == "" {
			title = "-"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), title, tab.URL})
	}
	return rows
}

func folderRows(folders []models.Folder) pterm.TableData {
	rows := pterm.TableData{{"ID", "Name", "Tabs", "Created"}}
	for _, f := range folders {
		created := "-"
		if t := f.CreatedTime(); !t.IsZero() {
			created = t.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{f.ID, f.Name, strconv.Itoa(len(f.Tabs)), created})
	}
	return rows
}

func tabsWord(n int) string {
	if n == 1 {
		return "tab"
	}
	return "tabs"
}
