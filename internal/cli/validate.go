package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwysocki/pipevine/internal/config"
	"github.com/pwysocki/pipevine/internal/tasks"
	"github.com/pwysocki/pipevine/pkg/models"
)

func NewValidateCmd() *cobra.Command {
	var pipelineFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a pipeline definition without running it",
		RunE: func(c *cobra.Command, args []string) error {
			spec, err := config.LoadPipeline(pipelineFile)
			if err != nil {
				return err
			}
			if _, err := tasks.Resolve(spec.Transform.Task); err != nil {
				return err
			}

			fmt.Printf("Pipeline:  %s\n", spec.Info.ID)
			for _, src := range spec.Extract {
				fmt.Printf("Extract:   %s (%s", src.ID, src.Type)
				if src.Type == models.SourceTypeFile {
					fmt.Printf(", %s, sep=%q", src.Format, src.Options.Sep)
				}
				fmt.Printf(")\n")
			}
			fmt.Printf("Transform: %s\n", spec.Transform.Task)
			fmt.Printf("Load:      %s", spec.Load.Type)
			if spec.Load.Format != "" {
				fmt.Printf(" (%s)", spec.Load.Format)
			}
			fmt.Printf("\nOK\n")
			return nil
		},
	}

	cmd.Flags().StringVarP(&pipelineFile, "pipeline", "p", "", "Path to the pipeline definition file")
	cmd.MarkFlagRequired("pipeline")

	return cmd
}
