package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvusHold/fleet/fleet"
)

var associationCmd = &cobra.Command{
	Use:   "association",
	Short: "Manage document-to-instance associations",
}

var associationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List associations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		filters, err := parseFilters(assocFilters)
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.ListAssociationsRequest{Filters: filters, Marker: optString(assocMarker)}
		if assocMaxRecords > 0 {
			req.MaxRecords = fleet.Int(assocMaxRecords)
		}
		res, err := client.ListAssociations(ctx, req)
		if err != nil {
			return err
		}
		if outputFmt == "table" {
			for _, a := range res.Associations {
				fmt.Printf("%s\t%s\n", a.Name, a.InstanceID)
			}
			return nil
		}
		return printJSON(res)
	},
}

var associationCreateCmd = &cobra.Command{
	Use:   "create <document-name> <instance-id>",
	Short: "Associate a document with an instance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.CreateAssociation(ctx, &fleet.CreateAssociationRequest{
			Name:       fleet.String(args[0]),
			InstanceID: fleet.String(args[1]),
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var associationDeleteCmd = &cobra.Command{
	Use:   "delete <document-name> <instance-id>",
	Short: "Remove a document-to-instance association",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		if _, err := client.DeleteAssociation(ctx, &fleet.DeleteAssociationRequest{
			Name:       fleet.String(args[0]),
			InstanceID: fleet.String(args[1]),
		}); err != nil {
			return err
		}
		fmt.Printf("Deleted association %s -> %s\n", args[0], args[1])
		return nil
	},
}

var associationDescribeCmd = &cobra.Command{
	Use:   "describe <document-name> <instance-id>",
	Short: "Describe an association",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.DescribeAssociation(ctx, &fleet.DescribeAssociationRequest{
			Name:       fleet.String(args[0]),
			InstanceID: fleet.String(args[1]),
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var associationStatusCmd = &cobra.Command{
	Use:   "update-status <document-name> <instance-id>",
	Short: "Report an association's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		res, err := client.UpdateAssociationStatus(ctx, &fleet.UpdateAssociationStatusRequest{
			Name:       fleet.String(args[0]),
			InstanceID: fleet.String(args[1]),
			Status: &fleet.AssociationStatus{
				Date:    fleet.Time(time.Now()),
				Name:    fleet.String(assocStatusName),
				Message: optString(assocStatusMessage),
			},
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var (
	assocFilters       []string
	assocMarker        string
	assocMaxRecords    int
	assocStatusName    string
	assocStatusMessage string
)

func init() {
	associationListCmd.Flags().StringArrayVar(&assocFilters, "filter", nil, "filter as Name=value[,value...] (repeatable)")
	associationListCmd.Flags().StringVar(&assocMarker, "marker", "", "pagination marker from a previous call")
	associationListCmd.Flags().IntVar(&assocMaxRecords, "max-records", 0, "maximum records to return")

	associationStatusCmd.Flags().StringVar(&assocStatusName, "status", "Success", "status name (Pending, Success, Failed)")
	associationStatusCmd.Flags().StringVar(&assocStatusMessage, "message", "", "status detail message")

	associationCmd.AddCommand(associationListCmd)
	associationCmd.AddCommand(associationCreateCmd)
	associationCmd.AddCommand(associationDeleteCmd)
	associationCmd.AddCommand(associationDescribeCmd)
	associationCmd.AddCommand(associationStatusCmd)
}
