package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"specular/internal/dumpfmt"
	"specular/internal/snapshot"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <snapshot>...",
	Short: "Print the documentation tree of one or more snapshots",
	Args:  cobra.MinimumNArgs(1),
	RunE:  inspectExecution,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	inspectCmd.Flags().Bool("types", true, "show type summaries")
	inspectCmd.Flags().Bool("all", false, "include signatures, parameters and type parameters")
}

func inspectExecution(cmd *cobra.Command, args []string) error {
	if err := configureColor(cmd); err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	showTypes, err := cmd.Flags().GetBool("types")
	if err != nil {
		return err
	}
	showAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	build, err := snapshot.LoadAll(cmd.Context(), args, jobs)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		return dumpfmt.Tree(os.Stdout, build.Table, build.Table.Root(), dumpfmt.PrettyOpts{
			Color:       !color.NoColor,
			ShowTypes:   showTypes,
			ShowHidden:  showAll,
			BindingMark: true,
		})
	case "json":
		return dumpfmt.JSON(os.Stdout, build.Table, build.Table.Root(), dumpfmt.JSONOpts{
			Indent:       true,
			IncludeTypes: showTypes,
		})
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
