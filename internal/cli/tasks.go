package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwysocki/pipevine/internal/tasks"
)

func NewTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered transform tasks",
		Run: func(c *cobra.Command, args []string) {
			for _, name := range tasks.Names() {
				fmt.Println(name)
			}
		},
	}
}
