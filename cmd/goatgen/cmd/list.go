package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/logger"
	"github.com/pepconf/goatgen/pkg/molecule"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available XYZ coordinate files",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("xyz-dir", "", "directory containing XYZ coordinate files")
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("xyz-dir"); dir != "" {
		cfg.Output.XYZDir = dir
	}

	molecules, err := molecule.Discover(cfg.Output.XYZDir)
	if err != nil {
		return err
	}
	if len(molecules) == 0 {
		logger.Warnf("No XYZ files found in %s", cfg.Output.XYZDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tPATH")
	for i, mol := range molecules {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, mol.Name, mol.Path)
	}
	return w.Flush()
}
