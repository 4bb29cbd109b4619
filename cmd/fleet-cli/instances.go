package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corvusHold/fleet/fleet"
)

var instanceCmd = &cobra.Command{
	Use:   "instance",
	Short: "Inspect managed instances",
}

var instanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List managed instances and their agent state",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		filters, err := parseFilters(instFilters)
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		req := &fleet.DescribeInstanceInformationRequest{
			Filters: filters,
			Marker:  optString(instMarker),
		}
		if instMaxRecords > 0 {
			req.MaxRecords = fleet.Int(instMaxRecords)
		}
		res, err := client.DescribeInstanceInformation(ctx, req)
		if err != nil {
			return err
		}
		if outputFmt == "table" {
			for _, i := range res.Instances {
				fmt.Printf("%s\t%s\t%s\t%s\n", i.InstanceID, i.PingStatus, i.PlatformType, i.AgentVersion)
			}
			return nil
		}
		return printJSON(res)
	},
}

var (
	instFilters    []string
	instMarker     string
	instMaxRecords int
)

func init() {
	instanceListCmd.Flags().StringArrayVar(&instFilters, "filter", nil, "filter as Name=value[,value...] (repeatable), e.g. PingStatus=Online")
	instanceListCmd.Flags().StringVar(&instMarker, "marker", "", "pagination marker from a previous call")
	instanceListCmd.Flags().IntVar(&instMaxRecords, "max-records", 0, "maximum records to return")

	instanceCmd.AddCommand(instanceListCmd)
}
