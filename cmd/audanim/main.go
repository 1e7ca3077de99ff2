// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/ik5/audanim"
	"github.com/ik5/audanim/animator"
	"github.com/ik5/audanim/curve"
	"github.com/ik5/audanim/internal/config"
	"github.com/ik5/audanim/wobble"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "audanim",
	Short: "Turn audio channels into keyframe animation data",
	Long: `audanim reads a 16-bit PCM WAV or AIFF file and writes one keyframed
property per channel, so objects can move in time with the sound.

Pipeline: audio → channel → decimation or envelope → range → keyframes`,
	Version:      version,
	SilenceUsage: true,
}

var animateCmd = &cobra.Command{
	Use:   "animate <file>",
	Short: "Animate targets from an audio file and print the scene as JSON",
	Long: `Animate up to three targets (left, right and sub channel) from an
audio file. Each target is written as "id" or "id:scalar[,vector]".

Defaults can be set with AUDANIM_FPS, AUDANIM_KEYFRAMES, AUDANIM_OFFSET,
AUDANIM_BIAS, AUDANIM_PREPROCESS, AUDANIM_SEED and AUDANIM_VERBOSE.

Examples:
  audanim animate track.wav --left Cube
  audanim animate ~/beat.aiff --left Cube:Scale,Location --right Sphere --preprocess
  audanim animate stereo.wav --left Cube --left-range 0:2 -o scene.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnimate,
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show channels, sample rate, duration and frame count",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var (
	defaults = config.Load()

	// animate flags
	frameRate  int
	keyframes  int
	offset     float64
	preprocess bool
	bias       float64
	seed       uint64
	outputPath string
	verbose    bool

	targets [animator.MaxChannels]string
	ranges  [animator.MaxChannels]string
)

func init() {
	a := defaults.Animator

	animateCmd.Flags().IntVar(&frameRate, "fps", a.FrameRate, "Timeline frames per second (1-1000)")
	animateCmd.Flags().IntVarP(&keyframes, "keyframes", "k", a.KeyframesPerFrame, "Keyframes per frame (1-48000)")
	animateCmd.Flags().Float64Var(&offset, "offset", a.StartOffset, "Frame of the first keyframe")
	animateCmd.Flags().BoolVarP(&preprocess, "preprocess", "p", a.Preprocess, "Extract an envelope instead of decimating")
	animateCmd.Flags().Float64Var(&bias, "bias", a.Bias, "Envelope blend: 0 average, 1 peak")
	animateCmd.Flags().Uint64Var(&seed, "seed", defaults.Seed, "Wobble seed (0 = random)")
	animateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write JSON here instead of stdout")

	for i, name := range []string{"left", "right", "sub"} {
		animateCmd.Flags().StringVar(&targets[i], name, "", fmt.Sprintf("Target for the %s channel as id[:scalar[,vector]]", name))
		animateCmd.Flags().StringVar(&ranges[i], name+"-range", "", fmt.Sprintf("Map the %s channel onto min:max", name))
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", defaults.Verbose, "Debug logging on stderr")

	rootCmd.AddCommand(animateCmd)
	rootCmd.AddCommand(infoCmd)
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runAnimate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	bindings, err := buildBindings(targets, ranges)
	if err != nil {
		return err
	}
	ids := targetIDs(bindings)
	if len(ids) == 0 {
		return errNoTarget
	}

	cfg := animator.Config{
		FrameRate:         frameRate,
		KeyframesPerFrame: keyframes,
		StartOffset:       offset,
		Preprocess:        preprocess,
		Bias:              bias,
		Bindings:          bindings,
	}

	opts := []animator.Option{animator.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, animator.WithSynthesizer(wobble.NewSeeded(seed)))
	}

	scene := curve.NewScene(ids...)
	res, runErr := audanim.AnimateFile(args[0], cfg, scene, opts...)
	if res == nil || res.State == animator.Rejected {
		return runErr
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		path, err := homedir.Expand(outputPath)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scene); err != nil {
		return fmt.Errorf("writing scene: %w", err)
	}

	if outputPath != "" {
		logger.Info("scene written", slog.String("path", outputPath))
	}

	// partial output is still written; the exit status reports failed channels
	return runErr
}

func runInfo(cmd *cobra.Command, args []string) error {
	buf, err := audanim.DecodeFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Channels:    %d\n", buf.Channels)
	fmt.Fprintf(out, "Sample rate: %d Hz\n", buf.SampleRate)
	fmt.Fprintf(out, "Duration:    %d s\n", buf.Duration())
	fmt.Fprintf(out, "Frames:      %d\n", buf.Frames())
	return nil
}
