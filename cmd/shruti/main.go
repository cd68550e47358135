package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/srijan/shruti/config"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "shruti",
		Usage: "Transcribe audio with speaker diarization and turn transcripts into color-coded documents",
		Description: `
      _              _   _
  ___| |_  ___ _  _ | |_(_)
 (_-<| ' \| '_| || ||  _| |
 /__/|_||_|_|  \_,_| \__|_|

 The listener: recorded speech in, speaker-labeled transcripts out.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file",
				Value: config.DefaultPath,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			transcribeCmd(),
			convertCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
