package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/srijan/shruti/config"
	"github.com/srijan/shruti/core"
	"github.com/srijan/shruti/reader"
	"github.com/srijan/shruti/redact"
	"github.com/srijan/shruti/render"
	"github.com/urfave/cli/v3"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a transcript file into a color-coded document",
		ArgsUsage: "<transcript_path> [output_path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: docx, text, terminal",
				Value: "docx",
			},
			&cli.StringSliceFlag{
				Name:  "redact",
				Usage: "Redaction rules to apply before rendering. Example: --redact=pii",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in := cmd.Args().Get(0)
			if in == "" {
				return fmt.Errorf("%w: a transcript file path is required", core.ErrInput)
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			t, err := reader.ReadFile(in)
			if err != nil {
				return err
			}
			log.Info("parsed transcript", "file", in, "turns", len(t.Utterances), "speakers", len(t.Speakers()))

			redactor, err := newRedactor(cmd.StringSlice("redact"))
			if err != nil {
				return err
			}
			if redactor != nil {
				if err := core.Chain(t, redactor); err != nil {
					return fmt.Errorf("redact: %w", err)
				}
			}

			format := cmd.String("o")
			rnd, err := newApp().renderer(format, cfg)
			if err != nil {
				return err
			}

			if format == "terminal" {
				return rnd.Render(os.Stdout, t)
			}

			out := cmd.Args().Get(1)
			if out == "" {
				out = convertOutputPath(in, format)
			}
			if err := render.WriteFile(out, rnd, t); err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}
}

// newRedactor builds a Redactor from --redact values. Returns nil when no
// rules are requested.
func newRedactor(rules []string) (*redact.Redactor, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	cfg := redact.Config{}
	for _, r := range rules {
		switch r {
		case "pii":
			cfg.PII = true
		default:
			return nil, fmt.Errorf("unknown redaction rule %q", r)
		}
	}
	return redact.New(cfg), nil
}
