// Package output formats a completed run's Summary for the CLI, keeping
// the teacher's three-format switch shape (text/json/csv) from
// pkg/interfaces/cli/output/output.go, rewritten to print entities.Summary
// instead of dto.MRPResult.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

// Config holds the options that control how a Summary is rendered.
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate writes summary in the configured format. Text always goes to
// stdout (a non-empty OutputDir is only created). JSON goes to stdout when
// OutputDir is empty and to mrp_summary.json under OutputDir otherwise. CSV
// is written to part_summaries.csv under OutputDir and fails when OutputDir
// is empty.
func Generate(summary entities.Summary, config Config) error {
	switch config.Format {
	case "text", "":
		return generateTextOutput(summary, config)
	case "json":
		return generateJSONOutput(summary, config)
	case "csv":
		return generateCSVOutput(summary, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateTextOutput(summary entities.Summary, config Config) error {
	fmt.Printf("📊 MRP Run Summary\n")
	fmt.Printf("==================\n\n")
	fmt.Printf("Run Time: %v\n", summary.RunTime)
	fmt.Printf("Planned Orders: %d\n", summary.PlannedOrderCount)
	fmt.Printf("Total Planned Qty: %s\n\n", summary.TotalPlannedQty)

	if len(summary.PartSummaries) > 0 {
		fmt.Printf("%-15s %-12s %-12s %-12s %-12s %-12s %-12s %-10s\n",
			"Part", "Gross", "Scheduled", "Projected", "Net", "1st Qty", "1st Date", "Resched")
		fmt.Printf("%-15s %-12s %-12s %-12s %-12s %-12s %-12s %-10s\n",
			"---------------", "------------", "------------", "------------",
			"------------", "------------", "------------", "----------")

		for _, ps := range summary.PartSummaries {
			firstDate := ""
			if !ps.FirstPlannedDate.IsZero() {
				firstDate = ps.FirstPlannedDate.Format("2006-01-02")
			}
			fmt.Printf("%-15s %-12s %-12s %-12s %-12s %-12s %-12s %-10d\n",
				ps.Part, ps.GrossRequirements, ps.ScheduledReceipts, ps.ProjectedBalance,
				ps.NetRequirements, ps.FirstPlannedQty, firstDate, ps.RescheduleCount)
		}
		fmt.Println()
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Text summary already printed to stdout; no file copy for this format\n")
		}
	}
	return nil
}

func generateJSONOutput(summary entities.Summary, config Config) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "mrp_summary.json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 JSON summary saved to: %s\n", filename)
	}
	return nil
}

func generateCSVOutput(summary entities.Summary, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "part_summaries.csv")
	if err := writePartSummariesCSV(summary.PartSummaries, filename); err != nil {
		return fmt.Errorf("failed to write part summaries CSV: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 CSV summary saved to: %s\n", filename)
	}
	return nil
}

func writePartSummariesCSV(rows []entities.PartSummary, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"part", "gross_requirements", "scheduled_receipts", "projected_balance",
		"net_requirements", "first_planned_qty", "first_planned_date", "reschedule_count"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, ps := range rows {
		firstDate := ""
		if !ps.FirstPlannedDate.IsZero() {
			firstDate = ps.FirstPlannedDate.Format("2006-01-02")
		}
		record := []string{
			string(ps.Part),
			ps.GrossRequirements.String(),
			ps.ScheduledReceipts.String(),
			ps.ProjectedBalance.String(),
			ps.NetRequirements.String(),
			ps.FirstPlannedQty.String(),
			firstDate,
			fmt.Sprintf("%d", ps.RescheduleCount),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}
