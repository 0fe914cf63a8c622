package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woodmark/curatectl/curated"
	"github.com/woodmark/curatectl/filter"
)

var (
	issueFilter  string
	issueState   string
	issuePerPage int
	issuePage    int
	issueStats   bool
)

// issuesCmd represents the issues command
var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Inspect and manage newsletter issues",
}

var issuesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues",
	RunE:  runIssuesList,
}

var issuesGetCmd = &cobra.Command{
	Use:   "get NUMBER",
	Short: "Show a single issue by number",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssuesGet,
}

var issuesDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Create a new draft issue",
	RunE:  runIssuesDraft,
}

var issuesRmCmd = &cobra.Command{
	Use:   "rm NUMBER",
	Short: "Delete a draft issue",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssuesRm,
}

func init() {
	rootCmd.AddCommand(issuesCmd)
	issuesCmd.AddCommand(issuesListCmd)
	issuesCmd.AddCommand(issuesGetCmd)
	issuesCmd.AddCommand(issuesDraftCmd)
	issuesCmd.AddCommand(issuesRmCmd)

	issuesListCmd.Flags().StringVarP(&issueFilter, "filter", "f", "", "filter expression, e.g. 'published and number > 10'")
	issuesListCmd.Flags().StringVar(&issueState, "state", "", "issue state (default draft)")
	issuesListCmd.Flags().IntVar(&issuePerPage, "per-page", 0, "results per page (default 10)")
	issuesListCmd.Flags().IntVar(&issuePage, "page", 0, "page to fetch")
	issuesListCmd.Flags().BoolVar(&issueStats, "stats", false, "include issue statistics")
	issuesGetCmd.Flags().BoolVar(&issueStats, "stats", false, "include issue statistics")
}

func runIssuesList(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	opts := curated.ListIssuesOptions{
		PerPage: issuePerPage,
		State:   issueState,
		Page:    issuePage,
		Stats:   issueStats,
	}
	page, err := p.ListIssues(context.Background(), opts)
	if err != nil {
		return err
	}

	issues := page.Data
	if issueFilter != "" {
		compiled, err := filter.Compile(issueFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		var matched []curated.Issue
		for _, issue := range issues {
			ok, err := compiled.Match(filter.IssueEnv(issue))
			if err != nil {
				return err
			}
			if ok {
				matched = append(matched, issue)
			}
		}
		issues = matched
	}

	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	fmt.Printf("Page %d of %d (%d issues total):\n", page.Page, page.TotalPages, page.TotalResults)
	fmt.Println(strings.Repeat("-", 80))
	for _, issue := range issues {
		printIssue(issue)
	}
	return nil
}

func runIssuesGet(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid issue number %q", args[0])
	}

	issue, err := p.GetIssue(context.Background(), number, issueStats)
	if err != nil {
		return err
	}

	printIssue(*issue)
	return nil
}

func runIssuesDraft(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	issue, err := p.CreateDraftIssue(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Draft issue #%d created.\n", issue.Number)
	return nil
}

func runIssuesRm(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid issue number %q", args[0])
	}

	result, err := p.DeleteDraftIssue(context.Background(), number)
	if err != nil {
		return err
	}

	switch result {
	case curated.Deleted:
		fmt.Printf("Draft issue #%d deleted.\n", number)
	case curated.NotFound:
		fmt.Printf("Draft issue #%d not found.\n", number)
	}
	return nil
}

func printIssue(issue curated.Issue) {
	fmt.Printf("• Issue #%d", issue.Number)
	if issue.IsPublished() {
		fmt.Printf(" (published %s)", issue.PublishedAt.Format("2006-01-02"))
	} else {
		fmt.Printf(" (draft)")
	}
	fmt.Println()
	if issue.Summary != "" {
		fmt.Printf("  %s\n", issue.Summary)
	}
	if issue.URL != "" {
		fmt.Printf("  %s\n", issue.URL)
	}
}
