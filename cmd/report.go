package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amahle/famcheck/internal/report"
	"github.com/amahle/famcheck/internal/scoring"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the composite household report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().Bool("json", false, "Emit the raw report structure as JSON")
	reportCmd.Flags().String("cutoffs", "", "Path to a YAML cutoff table (defaults to the embedded table)")
	reportCmd.Flags().String("skip-policy", "zero", "How skipped questions score: zero or exclude")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, household, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	engine, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	agg := report.NewAggregator(st.ProfileRepo(), st.AssessmentRepo(), st.AnswerRepo(), engine)
	rep, err := agg.BuildHouseholdReport(ctx, household)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	color.New(color.Bold).Printf("Household report — %s\n", rep.HouseholdID)

	if len(rep.Children) == 0 && rep.Parent == nil && rep.Family == nil {
		fmt.Println("No completed check-ins yet. Run `famcheck checkin` first.")
		return nil
	}

	for i, child := range rep.Children {
		printSubject(fmt.Sprintf("Child %d (%s)", i+1, shortID(child.ProfileID)), &child)
	}
	if rep.Parent != nil {
		printSubject("Parent", rep.Parent)
	}
	if rep.Family != nil {
		printSubject("Family", rep.Family)
	}
	return nil
}

func printSubject(heading string, sub *report.SubjectReport) {
	color.New(color.FgCyan, color.Bold).Printf("\n%s — completed %s\n", heading, sub.CompletedAt.Format("2006-01-02"))

	if !sub.ResultsAvailable {
		fmt.Println("  results not yet available")
		return
	}

	domains := make([]string, 0, len(sub.Domains))
	for d := range sub.Domains {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	for _, d := range domains {
		r := sub.Domains[d]
		fmt.Printf("  %-22s %2d/%-2d  %s\n", d, r.Score, r.Max, statusColor(r.Status).Sprint(r.Status))
	}
}

func statusColor(status string) *color.Color {
	switch status {
	case string(scoring.StatusConcerning):
		return color.New(color.FgRed, color.Bold)
	case string(scoring.StatusBorderline):
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
