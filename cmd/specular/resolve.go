package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"specular/internal/program"
	"specular/internal/resolve"
	"specular/internal/snapshot"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <snapshot>...",
	Short: "Resolve missing type references in documentation snapshots",
	Long:  "Load one or more documentation snapshots, alias or synthesize an entity for every unresolved type reference, and optionally write the repaired model back out.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  resolveExecution,
}

func init() {
	resolveCmd.Flags().String("internal-module", "", "name of the per-module namespace for synthesized declarations")
	resolveCmd.Flags().Bool("no-synthesis", false, "never synthesize declarations; leave undocumented symbols unresolved")
	resolveCmd.Flags().StringP("output", "o", "", "write the resolved model to this snapshot file")
}

func resolveExecution(cmd *cobra.Command, args []string) error {
	if err := configureColor(cmd); err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(".")
	if err != nil {
		return err
	}
	opts := resolve.Options{
		InternalModule: cfg.Resolve.InternalModule,
		NoSynthesis:    cfg.Resolve.NoSynthesis,
	}
	if cmd.Flags().Changed("internal-module") {
		opts.InternalModule, _ = cmd.Flags().GetString("internal-module")
	}
	if cmd.Flags().Changed("no-synthesis") {
		opts.NoSynthesis, _ = cmd.Flags().GetBool("no-synthesis")
	}

	build, err := snapshot.LoadAll(cmd.Context(), args, jobs)
	if err != nil {
		return err
	}

	hooks := resolve.NewHooks()
	env := program.NewEnv(build.Table, build.Library, hooks)
	stats := resolve.Run(env, build.Table, build.Origins, opts)
	for refl, prog := range hooks.Origins() {
		build.Origins[refl] = prog
	}

	if !quiet {
		printStats(cmd, stats)
	}

	if output != "" {
		if err := snapshot.Save(output, snapshot.Capture(build)); err != nil {
			return fmt.Errorf("write resolved snapshot: %w", err)
		}
		if !quiet {
			cmd.Printf("wrote %s\n", output)
		}
	}
	return nil
}

func printStats(cmd *cobra.Command, stats resolve.Stats) {
	header := color.New(color.Bold)
	cmd.Println(header.Sprint("resolution summary"))
	cmd.Printf("  modules touched   %d\n", stats.Modules)
	cmd.Printf("  aliased           %d\n", stats.Aliased)
	cmd.Printf("  synthesized       %d\n", stats.Synthesized)
	cmd.Printf("  skipped           %d\n", stats.Skipped)
	cmd.Printf("  dropped           %d\n", stats.Dropped)
	cmd.Printf("  namespaces pruned %d\n", stats.Pruned)
}
