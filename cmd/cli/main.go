package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Kumungchi/vyzkumdata/internal/config"
	"github.com/Kumungchi/vyzkumdata/internal/report"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "vyzkumdata",
		Short: "Word placement study report generator",
	}

	rootCmd.AddCommand(
		newParticipantsCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() (*report.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return report.NewService(report.NewLoader(cfg.Data), cfg.Data.CacheTTL), nil
}

func newParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants",
		Short: "List participant IDs found in the placement data",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			ids, err := svc.Participants(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report <participant-id>",
		Short: "Generate one participant's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			rep, err := svc.BuildReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report.ToWire(rep))
			}
			fmt.Print(renderMarkdown(rep))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON instead of markdown")
	return cmd
}

// renderMarkdown writes the report as a markdown document, the same text
// the web UI renders to HTML.
func renderMarkdown(r *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Personal report — participant %s\n\n", r.ParticipantID)
	fmt.Fprintf(&b, "%s\n\n", r.Summary)

	b.WriteString("## Your averages\n\n")
	fmt.Fprintf(&b, "- Δ Valence: %s (vs. group %s)\n", num(r.Metrics.DeltaValence), signed(r.Metrics.DeltaValenceVsPop))
	fmt.Fprintf(&b, "- Δ Arousal: %s (vs. group %s)\n", num(r.Metrics.DeltaArousal), signed(r.Metrics.DeltaArousalVsPop))
	fmt.Fprintf(&b, "- First reaction time: %s s (vs. group %s)\n", num(r.Metrics.FirstReactionTime), signed(r.Metrics.FirstReactionTimeVsPop))
	fmt.Fprintf(&b, "- Dominance: %s (vs. group %s)\n\n", num(r.Metrics.Dominance), signed(r.Metrics.DominanceVsPop))

	b.WriteString("## How you compare to the group\n\n")
	for _, c := range r.Comparisons {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\n## What your placements suggest\n\n")
	for _, i := range r.Insights {
		fmt.Fprintf(&b, "- %s\n", i)
	}

	if len(r.TopWords) > 0 {
		b.WriteString("\n## Your most distinctive words\n\n")
		for _, w := range r.TopWords {
			fmt.Fprintf(&b, "- %s (Δv %s, Δa %s)\n", w.Term, signed(w.DeltaValence), signed(w.DeltaArousal))
		}
	}

	if len(r.Quotes) > 0 {
		b.WriteString("\n## What other participants said\n\n")
		for _, q := range r.Quotes {
			fmt.Fprintf(&b, "> %s — *%s*\n\n", q.Quote, q.Theme)
		}
	}
	return b.String()
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.2f", v)
}

func signed(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%+.2f", v)
}
