package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woodmark/curatectl/curated"
)

var (
	emailPerPage int
	emailPage    int
	emailSync    bool
)

// subscribersCmd represents the subscribers command
var subscribersCmd = &cobra.Command{
	Use:   "subscribers",
	Short: "Manage the email subscriber list",
}

var subscribersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribers",
	RunE:  runSubscribersList,
}

var subscribersAddCmd = &cobra.Command{
	Use:   "add EMAIL",
	Short: "Subscribe an email address",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscribersAdd,
}

var subscribersGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single subscriber record",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscribersGet,
}

// unsubscribersCmd represents the unsubscribers command
var unsubscribersCmd = &cobra.Command{
	Use:   "unsubscribers",
	Short: "List opt-out records",
	RunE:  runUnsubscribersList,
}

func init() {
	rootCmd.AddCommand(subscribersCmd)
	rootCmd.AddCommand(unsubscribersCmd)
	subscribersCmd.AddCommand(subscribersListCmd)
	subscribersCmd.AddCommand(subscribersAddCmd)
	subscribersCmd.AddCommand(subscribersGetCmd)

	subscribersListCmd.Flags().IntVar(&emailPerPage, "per-page", 0, "results per page (default 100)")
	subscribersListCmd.Flags().IntVar(&emailPage, "page", 0, "page to fetch (default 1)")
	subscribersAddCmd.Flags().BoolVar(&emailSync, "sync", false, "process the subscription synchronously")
	unsubscribersCmd.Flags().IntVar(&emailPerPage, "per-page", 0, "results per page (default 100)")
	unsubscribersCmd.Flags().IntVar(&emailPage, "page", 0, "page to fetch (default 1)")
}

func runSubscribersList(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	page, err := p.ListSubscribers(context.Background(), curated.ListOptions{PerPage: emailPerPage, Page: emailPage})
	if err != nil {
		return err
	}

	printEmailPage(page)
	return nil
}

func runSubscribersAdd(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	subscriber, err := p.SubscribeEmail(context.Background(), args[0], emailSync)
	if err != nil {
		return err
	}

	fmt.Printf("Subscribed %s (ID %d)\n", subscriber.Email, subscriber.ID)
	return nil
}

func runSubscribersGet(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid subscriber ID %q", args[0])
	}

	subscriber, err := p.GetSubscriber(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%-10d %s\n", subscriber.ID, subscriber.Email)
	return nil
}

func runUnsubscribersList(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	page, err := p.ListUnsubscribers(context.Background(), curated.ListOptions{PerPage: emailPerPage, Page: emailPage})
	if err != nil {
		return err
	}

	printEmailPage(page)
	return nil
}

func printEmailPage(page *curated.Page[curated.Email]) {
	if len(page.Data) == 0 {
		fmt.Println("No records found.")
		return
	}

	fmt.Printf("Page %d of %d (%d records total):\n", page.Page, page.TotalPages, page.TotalResults)
	for _, record := range page.Data {
		fmt.Printf("%-10d %s\n", record.ID, record.Email)
	}
}
