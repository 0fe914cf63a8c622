package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woodmark/curatectl/curated"
	"github.com/woodmark/curatectl/filter"
)

var (
	linkFilter      string
	linkTitle       string
	linkDescription string
	linkImage       string
	linkCategory    string
)

// linksCmd represents the links command
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Manage links collected for the current issue",
}

var linksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collected links",
	RunE:  runLinksList,
}

var linksGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single link",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinksGet,
}

var linksAddCmd = &cobra.Command{
	Use:   "add URL",
	Short: "Collect a new link",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinksAdd,
}

var linksRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Remove a link",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinksRm,
}

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.AddCommand(linksListCmd)
	linksCmd.AddCommand(linksGetCmd)
	linksCmd.AddCommand(linksAddCmd)
	linksCmd.AddCommand(linksRmCmd)

	linksListCmd.Flags().StringVarP(&linkFilter, "filter", "f", "", "filter expression, e.g. 'category == \"reading\"'")
	linksAddCmd.Flags().StringVar(&linkTitle, "title", "", "link title (required)")
	linksAddCmd.Flags().StringVar(&linkDescription, "description", "", "link description")
	linksAddCmd.Flags().StringVar(&linkImage, "image", "", "image URL")
	linksAddCmd.Flags().StringVar(&linkCategory, "category", "", "category code")
	linksAddCmd.MarkFlagRequired("title")
}

func runLinksList(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	links, err := p.ListLinks(context.Background())
	if err != nil {
		return err
	}

	if linkFilter != "" {
		compiled, err := filter.Compile(linkFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		var matched []curated.Link
		for _, link := range links {
			ok, err := compiled.Match(filter.LinkEnv(link))
			if err != nil {
				return err
			}
			if ok {
				matched = append(matched, link)
			}
		}
		links = matched
	}

	if len(links) == 0 {
		fmt.Println("No links found.")
		return nil
	}

	fmt.Printf("Found %d links:\n", len(links))
	fmt.Println(strings.Repeat("-", 80))
	for _, link := range links {
		printLink(link)
	}
	return nil
}

func runLinksGet(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	link, err := p.GetLink(context.Background(), curated.ID(args[0]))
	if err != nil {
		return err
	}

	printLink(*link)
	return nil
}

func runLinksAdd(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	link := curated.Link{
		URL:         args[0],
		Title:       linkTitle,
		Description: linkDescription,
		Image:       linkImage,
		Category:    linkCategory,
	}

	created, err := p.CreateLink(context.Background(), link)
	if err != nil {
		return err
	}

	fmt.Printf("Link created with ID %s\n", created.ID)
	return nil
}

func runLinksRm(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	result, err := p.DeleteLink(context.Background(), curated.ID(args[0]))
	if err != nil {
		return err
	}

	switch result {
	case curated.Deleted:
		fmt.Println("Link deleted.")
	case curated.NotFound:
		fmt.Println("Link not found.")
	}
	return nil
}

func printLink(link curated.Link) {
	fmt.Printf("• %s", link.Title)
	if link.ID != "" {
		fmt.Printf(" [%s]", link.ID)
	}
	fmt.Println()
	fmt.Printf("  URL: %s\n", link.URL)
	if link.Category != "" {
		fmt.Printf("  Category: %s\n", link.Category)
	}
	if link.Description != "" {
		fmt.Printf("  %s\n", link.Description)
	}
}
