/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
	ver "github.com/NVIDIA/tosca-stack/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "version",
		EnableShellCompletion: true,
		Usage:                 "Parse and canonicalize a version property string",
		ArgsUsage:             "VERSION",
		Description: `Parses a version property using the grammar
major[.minor[.fix[.qualifier[-build]]]] and reports its components and
canonical form. A bare major version canonicalizes with a ".0" minor;
an all-zero version is treated as undefined.

# Examples

  toscactl version 18
  toscactl version 1.0.0.rc1-2`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one VERSION argument")
			}
			raw := cmd.Args().First()

			col := diag.NewCollector()
			prop := ver.Parse(col, raw)

			rep := &VersionReport{
				Raw:         raw,
				Canonical:   prop.GetVersion(),
				Major:       prop.Major,
				Minor:       prop.Minor,
				Fix:         prop.Fix,
				Qualifier:   prop.Qualifier,
				Build:       prop.Build,
				Valid:       col.Empty(),
				Diagnostics: col.Records(),
			}
			rep.Set("Version")

			return emitReport(ctx, cmd, outFormat, rep)
		},
	}
}
