package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/srijan/shruti/config"
	"github.com/srijan/shruti/core"
	"github.com/srijan/shruti/render"
	"github.com/srijan/shruti/render/terminal"
	textrender "github.com/srijan/shruti/render/text"
	"github.com/srijan/shruti/transcribe"
	"github.com/srijan/shruti/transcribe/assemblyai"
	"github.com/urfave/cli/v3"
)

func transcribeCmd() *cli.Command {
	return &cli.Command{
		Name:      "transcribe",
		Usage:     "Submit an audio file for diarized transcription and save the result as text",
		ArgsUsage: "<audio_path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "key",
				Usage: "Path to the API key file",
				Value: transcribe.DefaultKeyPath,
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "Print the transcript to the terminal after saving",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			audio := cmd.Args().First()
			if audio == "" {
				return fmt.Errorf("%w: an audio file path is required", core.ErrInput)
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			key, err := transcribe.LoadKey(cmd.String("key"))
			if err != nil {
				return err
			}

			client := assemblyai.New(key, transcribe.Options{
				LanguageCode:  cfg.LanguageCode,
				SpeechModel:   cfg.SpeechModel(),
				SpeakerLabels: cfg.Diarize(),
				PollTimeout:   time.Duration(cfg.PollTimeoutMinutes) * time.Minute,
			})

			log.Info("uploading audio", "file", audio, "language", cfg.LanguageCode, "model", cfg.SpeechModel())
			t, err := client.Transcribe(ctx, audio)
			if err != nil {
				return err
			}
			log.Info("transcription complete", "turns", len(t.Utterances), "speakers", len(t.Speakers()))

			out := transcriptPath(audio, time.Now())
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%w: transcript already exists: %s", core.ErrOutput, out)
			}
			if err := render.WriteFile(out, textrender.New(), t); err != nil {
				return err
			}

			if cmd.Bool("preview") {
				if err := terminal.New().Render(os.Stdout, t); err != nil {
					return err
				}
			}

			fmt.Println(out)
			return nil
		},
	}
}
