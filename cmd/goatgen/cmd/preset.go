package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/logger"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved configuration presets",
	Long:  `Presets are named configurations stored in ~/.goatgen/presets.yaml.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := config.LoadPresets()
		if err != nil {
			return err
		}
		if len(store.Presets) == 0 {
			logger.Info("No presets saved")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVARIANT\tMETHOD\tDESCRIPTION")
		for _, p := range store.Presets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				p.Name, p.Config.Goat.Variant, p.Config.Method.Name, p.Description)
		}
		return w.Flush()
	},
}

var presetAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save the current configuration as a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("refusing to save invalid configuration: %w", err)
		}

		store, err := config.LoadPresets()
		if err != nil {
			return err
		}

		desc, _ := cmd.Flags().GetString("description")
		preset := config.Preset{Name: name, Description: desc, Config: *cfg}

		replaced := false
		for i, p := range store.Presets {
			if p.Name == name {
				store.Presets[i] = preset
				replaced = true
				break
			}
		}
		if !replaced {
			store.Presets = append(store.Presets, preset)
		}

		if err := config.SavePresets(store); err != nil {
			return err
		}
		logger.Successf("Saved preset %s", name)
		return nil
	},
}

var presetRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := args[0]

		store, err := config.LoadPresets()
		if err != nil {
			return err
		}

		kept := store.Presets[:0]
		found := false
		for _, p := range store.Presets {
			if p.Name == name {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return fmt.Errorf("preset %s not found", name)
		}
		store.Presets = kept

		if err := config.SavePresets(store); err != nil {
			return err
		}
		logger.Successf("Removed preset %s", name)
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := config.LoadPresets()
		if err != nil {
			return err
		}
		preset, err := store.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(preset.Config.String())
		return nil
	},
}

func init() {
	presetAddCmd.Flags().StringP("description", "d", "", "short description of the preset")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetAddCmd)
	presetCmd.AddCommand(presetRemoveCmd)
	presetCmd.AddCommand(presetShowCmd)
}
