package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persistent settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current config",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(statusStyle.Render(cfgFile.Path()))
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfgFile.Config())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a config value and save the config file.

Keys:
  db_path         Database file path
  catalogue_path  Catalogue YAML file used instead of the database
  max_depth       Maximum algorithm reference depth (0 restores the default)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfgFile.Set(args[0], args[1]); err != nil {
			return err
		}
		log.WithField("key", args[0]).Debug("config updated")
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
