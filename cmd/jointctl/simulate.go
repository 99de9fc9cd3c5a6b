package main

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/joint"
	"github.com/jakecoffman/joint/preset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type simulateOptions struct {
	preset     string
	steps      int
	dt         float64
	gravity    []float64
	iterations uint
	logEvery   int
}

func simulateCmd(a *app) *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate FILE",
		Short: "Run a 2D preset between a static body and a unit box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := preset.LoadFile(args[0])
			if err != nil {
				return err
			}
			p, ok := file.Find(opts.preset)
			if !ok {
				return fmt.Errorf("simulate: no preset %q in %s", opts.preset, args[0])
			}
			data, err := p.Build()
			if err != nil {
				return fmt.Errorf("simulate: %w", err)
			}

			state, err := a.simulate(data, opts)
			if err != nil {
				return fmt.Errorf("simulate %s: %w", p.Name, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), state)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Preset to simulate")
	cmd.Flags().IntVar(&opts.steps, "steps", 600, "Number of steps")
	cmd.Flags().Float64Var(&opts.dt, "dt", 1.0/60.0, "Time step in seconds")
	cmd.Flags().Float64SliceVar(&opts.gravity, "gravity", []float64{0, -10}, "Gravity as x,y")
	cmd.Flags().UintVar(&opts.iterations, "iterations", 10, "Solver iterations per step")
	cmd.Flags().IntVar(&opts.logEvery, "log-every", 60, "Log the body state every N steps, 0 to disable")
	_ = cmd.MarkFlagRequired("preset")
	return cmd
}

// simulate hangs a unit box off the static body with data and returns the
// box's final state.
func (a *app) simulate(data joint.JointData, opts simulateOptions) (string, error) {
	if data.Dim() != joint.Dim2 {
		return "", fmt.Errorf("only %s presets can be simulated, got %s", joint.Dim2, data.Dim())
	}
	if len(opts.gravity) != 2 {
		return "", fmt.Errorf("gravity needs 2 components, got %d", len(opts.gravity))
	}
	if opts.dt <= 0 || opts.steps < 0 {
		return "", fmt.Errorf("need a positive dt and step count")
	}
	if err := data.Validate(); err != nil {
		a.log.Warn("simulating an invalid configuration", zap.Error(err))
	}

	space := joint.NewSpace()
	space.Iterations = opts.iterations
	space.SetGravity(joint.Vector{X: opts.gravity[0], Y: opts.gravity[1]})

	body := space.AddBody(joint.NewBody(1, joint.MomentForBox(1, 1, 1)))
	// start with the anchors together
	body.SetPosition(joint.Vec2(data.LocalAnchor1()).Sub(joint.Vec2(data.LocalAnchor2())))
	constraint := space.AddConstraint(joint.NewAxisJoint(space.StaticBody, body, data))
	axisJoint := constraint.Class.(*joint.AxisJoint)

	for i := 1; i <= opts.steps; i++ {
		space.Step(opts.dt)
		if opts.logEvery > 0 && i%opts.logEvery == 0 {
			a.log.Info("step",
				zap.Int("step", i),
				zap.Stringer("position", body.Position()),
				zap.Float64("angle", body.Angle()),
				zap.Float64("impulse", axisJoint.GetImpulse()),
			)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "position=%v angle=%.4f velocity=%v angular_velocity=%.4f",
		body.Position(), body.Angle(), body.Velocity(), body.AngularVelocity())
	for _, axis := range []joint.JointAxis{joint.LinX, joint.LinY, joint.AngX} {
		fmt.Fprintf(&b, " %s=%.4f", axis, axisJoint.JointPosition(axis))
	}
	return b.String(), nil
}
