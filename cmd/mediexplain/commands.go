package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mediexplain/internal/analysis"
	"mediexplain/internal/app"
	"mediexplain/internal/auth"
	"mediexplain/internal/content"
	"mediexplain/internal/dashboard"
	"mediexplain/internal/knowledge"
	"mediexplain/internal/models"
)

func (c *cli) loginCmd(signup bool) *cobra.Command {
	var creds auth.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session (any email and password are accepted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				user, err := auth.Login(ctx, a.Sessions, creds, signup, a.Config.Auth.LoginDelay)
				var formErr *auth.FormError
				if errors.As(err, &formErr) {
					return errors.New(formErr.Msg)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", user.Name)
				return nil
			})
		},
	}
	if signup {
		cmd.Use = "signup"
		cmd.Short = "Create an account and start a session"
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password")
	cmd.Flags().StringVar(&creds.Name, "name", "", "display name (defaults to the email's local part)")
	return cmd
}

func (c *cli) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Log in as the demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				user, err := auth.DemoLogin(ctx, a.Sessions)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", user.Name)
				return nil
			})
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session (history is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Sessions.Clear(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
				return nil
			})
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				user, err := requireUser(ctx, a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
				return nil
			})
		},
	}
}

func (c *cli) analyzeCmd() *cobra.Command {
	var (
		patient models.PatientInfo
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Upload a report (PDF, JPG, PNG) and explain it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				entry, err := a.Analyzer.Analyze(ctx, analysis.Submission{
					Filename: filepath.Base(args[0]),
					Data:     data,
					Patient:  patient,
				})
				if err != nil {
					return fmt.Errorf("%s", analysis.Message(err))
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), entry)
				}
				printResult(cmd.OutOrStdout(), entry)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&patient.Age, "age", 0, "patient age (omitted when 0)")
	cmd.Flags().StringVar(&patient.Gender, "gender", "male", "male, female or other")
	cmd.Flags().StringVar(&patient.Language, "language", content.DefaultLanguage, "explanation language: en, hi, bn, ta, te, mr")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	return cmd
}

func printResult(w io.Writer, entry *models.HistoryEntry) {
	g := content.GuidanceFor(entry.RiskLevel)
	fmt.Fprintf(w, "Risk level: %s\n%s %s\n", entry.RiskLevel.OrDefault(models.RiskInfo), g.Icon, g.Message)

	if len(entry.AbnormalValues) > 0 {
		fmt.Fprintln(w, "\nAbnormal values:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TEST\tVALUE\tSTATUS\tNORMAL RANGE")
		for _, v := range entry.AbnormalValues {
			fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", v.Test, v.Value, v.Unit, strings.ToUpper(v.Status), v.NormalRange)
		}
		tw.Flush()
	}
	if entry.SimplifiedExplanation != "" {
		fmt.Fprintf(w, "\nWhat this means:\n%s\n", entry.SimplifiedExplanation)
	}
	printList(w, "Recommendations", entry.Recommendations)
	printList(w, "Questions to ask your doctor", entry.QuestionsToAskDoctor)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for i, item := range items {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item)
	}
}

func (c *cli) historyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past analyses, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				entries, err := a.History.Load(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No reports analyzed yet.")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DATE\tRISK\tABNORMAL\tFILE\tID")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", dashboard.DateLabel(e.Date),
						e.RiskLevel.OrDefault(models.RiskInfo), len(e.AbnormalValues), e.Filename, e.ID)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw history as JSON")
	return cmd
}

func (c *cli) dashboardCmd() *cobra.Command {
	var htmlOut string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize your history: risk progress and value trends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				entries, err := a.History.Load(ctx)
				if err != nil {
					return err
				}
				summary := dashboard.Summarize(entries, time.Now())
				printSummary(cmd.OutOrStdout(), summary)

				if htmlOut == "" {
					return nil
				}
				f, err := os.Create(htmlOut)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := dashboard.RenderTrends(f, summary.Trends); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nTrend charts written to %s\n", htmlOut)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&htmlOut, "html", "", "also write the trend charts to this HTML file")
	return cmd
}

func printSummary(w io.Writer, s dashboard.Summary) {
	if s.Empty {
		fmt.Fprintln(w, "No reports yet. Analyze a report to start tracking your health.")
	} else {
		fmt.Fprintf(w, "Reports: %d   Current risk: %s   Improvements: %d   Days tracked: %d\n",
			s.Stats.Count, s.Stats.CurrentRisk, s.Stats.Improved, s.Stats.Days)
		if s.Progress != nil {
			fmt.Fprintf(w, "\n%s\n", s.Progress.Text)
		}
		for _, series := range s.Trends {
			points := make([]string, 0, len(series.Points))
			for _, p := range series.Points {
				points = append(points, fmt.Sprintf("%s: %g", p.Date, p.Value))
			}
			fmt.Fprintf(w, "\n%s (%s)\n  %s\n", series.Name, series.Unit, strings.Join(points, "  →  "))
		}
		if s.TrendsHint != "" {
			fmt.Fprintf(w, "\n%s\n", s.TrendsHint)
		}
	}

	fmt.Fprintln(w, "\nHealth tips:")
	for _, t := range s.Tips {
		fmt.Fprintf(w, "  %s %s: %s\n", t.Icon, t.Category, t.Text)
	}
}

func (c *cli) knowledgeCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:       "knowledge {tests|meds} [name]",
		Short:     "Look up lab tests and medications",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"tests", "meds"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != "tests" && kind != "meds" {
				return fmt.Errorf("unknown knowledge kind %q: use tests or meds", kind)
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				if len(args) == 2 {
					var (
						info interface{}
						err  error
					)
					if kind == "tests" {
						info, err = a.Knowledge.TestDetail(ctx, args[1])
					} else {
						info, err = a.Knowledge.MedicationDetail(ctx, args[1])
					}
					if err != nil {
						return fmt.Errorf("no information for %q: %w", args[1], err)
					}
					return writeJSON(out, info)
				}

				var listing knowledge.Listing
				if kind == "tests" {
					listing = a.Knowledge.ListTests(ctx)
				} else {
					listing = a.Knowledge.ListMedications(ctx)
				}
				for _, item := range knowledge.Filter(listing.Items, query) {
					fmt.Fprintln(out, item)
				}
				if listing.Fallback {
					fmt.Fprintln(cmd.ErrOrStderr(), "(knowledge service unavailable, showing built-in list)")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive filter")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
