/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
	"github.com/NVIDIA/tosca-stack/pkg/registry"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate template inputs and outputs",
		Description: `Validates the parameter sections of a TOSCA service template:
  - Input schema field names and type tags
  - Output field names and required value expressions
  - Supplied input values against declared types and constraints

Validation accumulates diagnostics instead of stopping at the first
problem, so one run reports every defect found in the template.

# Examples

Check the template schemas only:
  toscactl validate --template service.yaml

Validate concrete deployment values:
  toscactl validate -f service.yaml --set cpus=4 --set flavor=m1.large

Gate a CI pipeline:
  toscactl validate -f service.yaml --set cpus=4 --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "template",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "service template file path",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "Input value to validate (format: name=value, can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit non-zero when any diagnostic is recorded",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			values, err := parseSetValues(cmd.StringSlice("set"))
			if err != nil {
				return err
			}

			reg, err := registry.Load()
			if err != nil {
				return fmt.Errorf("failed to load datatype registry: %w", err)
			}

			templatePath := cmd.String("template")
			col := diag.NewCollector()
			tpl, err := loadTemplate(col, templatePath)
			if err != nil {
				slog.Error("failed to load template", "error", err, "path", templatePath)
				return err
			}

			validateValues(col, tpl, reg, values)

			slog.Info("template validated",
				slog.String("template", templatePath),
				slog.Int("inputs", len(tpl.Inputs)),
				slog.Int("outputs", len(tpl.Outputs)),
				slog.Int("diagnostics", col.Len()),
			)

			rep := newValidationReport(templatePath, tpl, col)
			if err := emitReport(ctx, cmd, outFormat, rep); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && !col.Empty() {
				return fmt.Errorf("validation failed with %d diagnostic(s)", col.Len())
			}
			return nil
		},
	}
}

// validateValues checks supplied values against the declared inputs. Names
// that match no input are diagnosed with a spelling suggestion. When values
// are supplied, required inputs left without a value and without a default
// are diagnosed as missing.
func validateValues(col *diag.Collector, tpl *template, reg *registry.Registry, values map[string]any) {
	for _, name := range sortedKeys(values) {
		in, ok := tpl.input(name)
		if !ok {
			col.Add(diag.UnknownField("template inputs", name, tpl.inputNames()))
			continue
		}
		in.Validate(reg, values[name])
	}

	if len(values) == 0 {
		return
	}
	for _, in := range tpl.Inputs {
		if _, supplied := values[in.Name]; supplied {
			continue
		}
		if in.Required() && in.Default() == nil {
			col.Add(diag.MissingRequiredField("template inputs", in.Name))
		}
	}
}
