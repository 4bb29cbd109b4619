package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corvusHold/fleet/fleet"
)

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Run and inspect remote commands",
}

var commandSendCmd = &cobra.Command{
	Use:   "send <document-name> <instance-id>...",
	Short: "Run a document on one or more instances",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.SendCommandRequest{
			DocumentName: fleet.String(args[0]),
			Comment:      optString(cmdComment),
		}
		for _, id := range args[1:] {
			req.InstanceIDs = append(req.InstanceIDs, fleet.String(id))
		}
		if cmdTimeoutSeconds > 0 {
			req.TimeoutSeconds = fleet.Int(cmdTimeoutSeconds)
		}
		res, err := client.SendCommand(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var commandCancelCmd = &cobra.Command{
	Use:   "cancel <command-id>",
	Short: "Cancel a command before it runs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.CancelCommandRequest{CommandID: fleet.String(args[0])}
		for _, id := range cmdInstanceIDs {
			req.InstanceIDs = append(req.InstanceIDs, fleet.String(id))
		}
		if _, err := client.CancelCommand(ctx, req); err != nil {
			return err
		}
		fmt.Printf("Cancelled command %s\n", args[0])
		return nil
	},
}

var commandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		filters, err := parseFilters(cmdFilters)
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.ListCommandsRequest{
			CommandID:  optString(cmdID),
			InstanceID: optString(cmdInstanceID),
			Filters:    filters,
			Marker:     optString(cmdMarker),
		}
		if cmdMaxRecords > 0 {
			req.MaxRecords = fleet.Int(cmdMaxRecords)
		}
		res, err := client.ListCommands(ctx, req)
		if err != nil {
			return err
		}
		if outputFmt == "table" {
			for _, c := range res.Commands {
				fmt.Printf("%s\t%s\t%s\n", c.CommandID, c.DocumentName, c.Status)
			}
			return nil
		}
		return printJSON(res)
	},
}

var commandInvocationsCmd = &cobra.Command{
	Use:   "invocations",
	Short: "List per-instance command invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		filters, err := parseFilters(cmdFilters)
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.ListCommandInvocationsRequest{
			CommandID:  optString(cmdID),
			InstanceID: optString(cmdInstanceID),
			Filters:    filters,
			Marker:     optString(cmdMarker),
		}
		if cmdDetails {
			req.Details = fleet.Bool(true)
		}
		if cmdMaxRecords > 0 {
			req.MaxRecords = fleet.Int(cmdMaxRecords)
		}
		res, err := client.ListCommandInvocations(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var (
	cmdComment        string
	cmdTimeoutSeconds int
	cmdInstanceIDs    []string
	cmdFilters        []string
	cmdID             string
	cmdInstanceID     string
	cmdMarker         string
	cmdMaxRecords     int
	cmdDetails        bool
)

func init() {
	commandSendCmd.Flags().StringVar(&cmdComment, "comment", "", "free-form comment attached to the command")
	commandSendCmd.Flags().IntVar(&cmdTimeoutSeconds, "timeout-seconds", 0, "seconds the service waits for an agent to pick up the command")

	commandCancelCmd.Flags().StringArrayVar(&cmdInstanceIDs, "instance", nil, "limit cancellation to these instance IDs (repeatable)")

	for _, c := range []*cobra.Command{commandListCmd, commandInvocationsCmd} {
		c.Flags().StringArrayVar(&cmdFilters, "filter", nil, "filter as Name=value[,value...] (repeatable)")
		c.Flags().StringVar(&cmdID, "command-id", "", "restrict to one command ID")
		c.Flags().StringVar(&cmdInstanceID, "instance-id", "", "restrict to one instance ID")
		c.Flags().StringVar(&cmdMarker, "marker", "", "pagination marker from a previous call")
		c.Flags().IntVar(&cmdMaxRecords, "max-records", 0, "maximum records to return")
	}
	commandInvocationsCmd.Flags().BoolVar(&cmdDetails, "details", false, "include command output in the listing")

	commandCmd.AddCommand(commandSendCmd)
	commandCmd.AddCommand(commandCancelCmd)
	commandCmd.AddCommand(commandListCmd)
	commandCmd.AddCommand(commandInvocationsCmd)
}
