package cmd

import (
	"context"

	"github.com/spf13/cobra"

	thrivebox "github.com/AidanDelaney/thrivebox/pkg"
)

const (
	configFlag       = "config"
	outputFolderFlag = "output-folder"
	overrideFlag     = "override"
	basicFlag        = "basic"
	skipUpFlag       = "skip-up"
	templateFlag     = "template"
)

// NewRootCommand builds the thrivebox command. It takes no arguments; every
// answer comes from the interactive questions or --override.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thrivebox",
		Short: "Create a local WordPress development site",
		Long: `Thrivebox asks for site details, clones the thrive-box template, writes
the answers into its Vagrantfile and config.yml, then boots the box with
vagrant and runs the WordPress setup script inside it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			configPath := thrivebox.DefaultConfigFile
			if path, err := flags.GetString(configFlag); err == nil {
				configPath = path
			}
			config, err := thrivebox.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if url, err := flags.GetString(templateFlag); err == nil && url != "" {
				config.TemplateURL = url
			}

			opts := []thrivebox.Option{thrivebox.WithConfig(config)}
			if outputDir, err := flags.GetString(outputFolderFlag); err == nil {
				opts = append(opts, thrivebox.WithOutputFolder(outputDir))
			}
			if overrides, err := flags.GetStringToString(overrideFlag); err == nil {
				opts = append(opts, thrivebox.WithOverrides(overrides))
			}
			if basic, err := flags.GetBool(basicFlag); err == nil {
				opts = append(opts, thrivebox.WithBasic(basic))
			}
			if skip, err := flags.GetBool(skipUpFlag); err == nil {
				opts = append(opts, thrivebox.WithSkipUp(skip))
			}

			return thrivebox.NewThrivebox(opts...).Run(cmd.Context())
		},
	}

	cmd.Flags().String(configFlag, thrivebox.DefaultConfigFile, "TOML file overriding the template settings")
	cmd.Flags().String(outputFolderFlag, ".", "create the site directory inside the provided output directory")
	cmd.Flags().StringToStringP(overrideFlag, "o", map[string]string{}, "answer questions up front as key-value pairs (dirname, wpuser, wppassword, wpemail, wptitle)")
	cmd.Flags().Bool(basicFlag, false, "skip the plugin and theme questions")
	cmd.Flags().Bool(skipUpFlag, false, "stop after writing the configuration, without booting the box")
	cmd.Flags().String(templateFlag, "", "template git URL or local directory")

	return cmd
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
