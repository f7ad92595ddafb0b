package main

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/refdata"
)

func NewPricesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "prices [domain]",
		Short:   "Show reference unit prices",
		GroupID: gReference,
		Long: `Show the reference unit prices per domain. With no argument,
all domains are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domains := calc.Domains()
			if len(args) == 1 {
				d, err := parseDomainArg(args[0])
				if err != nil {
					return err
				}
				domains = []calc.Domain{d}
			}

			e := engine.New()
			for _, d := range domains {
				pricing, err := e.DefaultPricing(d)
				if err != nil {
					return err
				}

				keys := make([]string, 0, len(pricing))
				for k := range pricing {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				cmd.Println(bold("%s", d.Title()))
				for _, k := range keys {
					cmd.Printf("  %-36s %10.2f\n", k, pricing[k])
				}
			}
			return nil
		},
	}
}

func NewBlocksCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "blocks",
		Short:   "List the block catalogue",
		GroupID: gReference,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(bold("%-28s %8s %8s %10s", "Block", "Face m2", "/pallet", "USD/block"))
			for _, name := range refdata.BlockNames() {
				b, err := refdata.BlockByName(name)
				if err != nil {
					return err
				}
				cmd.Printf("%-28s %8.3f %8d %10.2f\n",
					b.Name, b.FaceArea(), b.BlocksPerPallet, b.DefaultCostUSD)
			}
			return nil
		},
	}
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
