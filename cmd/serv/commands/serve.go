package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/serv/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the project with on-the-fly module rewriting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			port, _ := cmd.Flags().GetInt("port")
			root, _ := cmd.Flags().GetString("root")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Port: port,
				Root: root,
			})
		},
	}
	cmd.Flags().IntP("port", "p", 0, "Listen port (overrides the config file)")
	cmd.Flags().StringP("root", "r", "", "Project root to serve (overrides the config file)")
	return cmd
}
