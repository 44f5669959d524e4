package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// dictCommand creates the dictionary marker table command.
func (c *CLI) dictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect dictionary marker tables",
	}

	cmd.AddCommand(c.dictListCommand())
	cmd.AddCommand(c.dictShowCommand())

	return cmd
}

// dictListCommand creates the "dict list" subcommand.
func (c *CLI) dictListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Built-in dictionaries:")
			printDetail("en  (aliases: english)")
			printDetail("ru  (aliases: russian)")
			printDetail("Any other name is resolved as a marker TOML path")
			return nil
		},
	}
}

// dictShowCommand creates the "dict show" subcommand. It prints the
// effective marker table as TOML, so the output of "dict show en" is a
// valid starting point for a custom table file.
func (c *CLI) dictShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name-or-path]",
		Short: "Print the effective marker table as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			m, err := loadMarkers(name)
			if err != nil {
				return err
			}

			enc := toml.NewEncoder(os.Stdout)
			if err := enc.Encode(m); err != nil {
				return fmt.Errorf("encode marker table: %w", err)
			}
			return nil
		},
	}
}
