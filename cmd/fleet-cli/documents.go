package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corvusHold/fleet/fleet"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage configuration documents",
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		filters, err := parseFilters(docFilters)
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.ListDocumentsRequest{Filters: filters, Marker: optString(docMarker)}
		if docMaxRecords > 0 {
			req.MaxRecords = fleet.Int(docMaxRecords)
		}
		res, err := client.ListDocuments(ctx, req)
		if err != nil {
			return err
		}
		if outputFmt == "table" {
			for _, d := range res.Identifiers {
				fmt.Println(d.Name)
			}
			return nil
		}
		return printJSON(res)
	},
}

var documentGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Fetch a document's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.GetDocument(ctx, &fleet.GetDocumentRequest{Name: fleet.String(args[0])})
		if err != nil {
			return err
		}
		fmt.Println(res.Content)
		return nil
	},
}

var documentDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Describe a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.DescribeDocument(ctx, &fleet.DescribeDocumentRequest{Name: fleet.String(args[0])})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var documentCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a document from a content file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(docContentFile)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.CreateDocument(ctx, &fleet.CreateDocumentRequest{
			Name:    fleet.String(args[0]),
			Content: fleet.String(string(content)),
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		if _, err := client.DeleteDocument(ctx, &fleet.DeleteDocumentRequest{Name: fleet.String(args[0])}); err != nil {
			return err
		}
		fmt.Printf("Deleted document %s\n", args[0])
		return nil
	},
}

var documentPermissionCmd = &cobra.Command{
	Use:   "permission <name>",
	Short: "Show which accounts a document is shared with",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.DescribeDocumentPermission(ctx, &fleet.DescribeDocumentPermissionRequest{
			Name:           fleet.String(args[0]),
			PermissionType: fleet.String("Share"),
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var documentShareCmd = &cobra.Command{
	Use:   "share <name>",
	Short: "Modify which accounts a document is shared with",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if docShareAdd == "" && docShareRemove == "" {
			return fmt.Errorf("nothing to change: use --add and/or --remove")
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.ModifyDocumentPermissionRequest{
			Name:           fleet.String(args[0]),
			PermissionType: fleet.String("Share"),
		}
		for _, id := range splitIDs(docShareAdd) {
			req.AccountIDsToAdd = append(req.AccountIDsToAdd, fleet.String(id))
		}
		for _, id := range splitIDs(docShareRemove) {
			req.AccountIDsToRemove = append(req.AccountIDsToRemove, fleet.String(id))
		}
		if _, err := client.ModifyDocumentPermission(ctx, req); err != nil {
			return err
		}
		fmt.Printf("Updated sharing for document %s\n", args[0])
		return nil
	},
}

var (
	docFilters     []string
	docMarker      string
	docMaxRecords  int
	docContentFile string
	docShareAdd    string
	docShareRemove string
)

func init() {
	documentListCmd.Flags().StringArrayVar(&docFilters, "filter", nil, "filter as Name=value[,value...] (repeatable)")
	documentListCmd.Flags().StringVar(&docMarker, "marker", "", "pagination marker from a previous call")
	documentListCmd.Flags().IntVar(&docMaxRecords, "max-records", 0, "maximum records to return")

	documentCreateCmd.Flags().StringVar(&docContentFile, "content", "", "path to the document content file")
	documentCreateCmd.MarkFlagRequired("content")

	documentShareCmd.Flags().StringVar(&docShareAdd, "add", "", "comma-separated account IDs to add")
	documentShareCmd.Flags().StringVar(&docShareRemove, "remove", "", "comma-separated account IDs to remove")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDescribeCmd)
	documentCmd.AddCommand(documentCreateCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentPermissionCmd)
	documentCmd.AddCommand(documentShareCmd)
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
