package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// publicationsCmd represents the publications command
var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "List publications accessible to the API key",
	RunE:  runPublications,
}

func init() {
	rootCmd.AddCommand(publicationsCmd)
}

func runPublications(cmd *cobra.Command, args []string) error {
	publications, err := client.ListPublications(context.Background())
	if err != nil {
		return err
	}

	if len(publications) == 0 {
		fmt.Println("No publications accessible with this API key.")
		return nil
	}

	for _, p := range publications {
		fmt.Printf("%-16s %s\n", p.ID, p.Name)
	}
	return nil
}
