/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencontainers/go-digest"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tosca-stack/pkg/fingerprint"
)

func fingerprintCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fingerprint",
		EnableShellCompletion: true,
		Usage:                 "Compute a deterministic content digest for a template",
		Description: `Computes one digest over a service template and its associated files.
Each file is hashed independently and the per-file digests are combined
order-independently, so the same file set always yields the same digest
no matter how it is enumerated.

# Examples

Fingerprint a template with named imports:
  toscactl fingerprint --template service.yaml \
    --associated imports/db.yaml --associated imports/web.yaml

Fingerprint a template plus an entire import directory:
  toscactl fingerprint -f service.yaml --dir imports/`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "template",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "service template file path",
			},
			&cli.StringSliceFlag{
				Name:    "associated",
				Aliases: []string{"a"},
				Usage:   "Associated file path relative to the template (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory whose files are all included, walked recursively",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			templatePath := cmd.String("template")
			dir := cmd.String("dir")
			associated := cmd.StringSlice("associated")
			if dir != "" && len(associated) > 0 {
				return fmt.Errorf("--dir and --associated are mutually exclusive")
			}

			var sum string
			if dir != "" {
				sum, err = fingerprint.HashTree(templatePath, dir)
			} else {
				sum, err = fingerprint.HashAll(templatePath, associated)
			}
			if err != nil {
				slog.Error("fingerprint failed", "error", err, "template", templatePath)
				return err
			}

			rep := &FingerprintReport{
				Template:  templatePath,
				Algorithm: string(digest.Canonical),
				Digest:    sum,
			}
			rep.Set("Fingerprint")

			return emitReport(ctx, cmd, outFormat, rep)
		},
	}
}
