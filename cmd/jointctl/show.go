package main

import (
	"fmt"

	"github.com/jakecoffman/joint"
	"github.com/jakecoffman/joint/preset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type shownJoint struct {
	Name  string          `yaml:"name"`
	Joint joint.JointData `yaml:"joint"`
}

func showCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the configurations the presets build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := preset.LoadFile(args[0])
			if err != nil {
				return err
			}

			presets := file.Joints
			if name != "" {
				p, ok := file.Find(name)
				if !ok {
					return fmt.Errorf("show: no preset %q in %s", name, args[0])
				}
				presets = []preset.Preset{p}
			}

			shown := make([]shownJoint, 0, len(presets))
			for _, p := range presets {
				data, err := p.Build()
				if err != nil {
					return fmt.Errorf("show: %w", err)
				}
				shown = append(shown, shownJoint{Name: p.Name, Joint: data})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(shown); err != nil {
				return fmt.Errorf("show: encode: %w", err)
			}
			a.log.Debug("shown", zap.String("file", args[0]), zap.Int("presets", len(shown)))
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&name, "preset", "p", "", "Only show this preset")
	return cmd
}
