// Package cmd provides the command line entry point.
package cmd

import (
	"fmt"
	"os"
	"strings"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"region-editor/internal/config"
	"region-editor/internal/region"
	"region-editor/ui/mainwindow"
)

var (
	flagOutput  string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "region-editor <image> <regions.json>",
	Short: "Interactive editor for AI-detected region boundaries",
	Long: `Region Editor displays AI-produced region boundaries over a photo and
lets you correct them: move, add, and delete points, or drag whole
regions. Corrected regions are written back with a user-modified flag.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path for edited regions (default: overwrite input)")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file (default: "+config.DefaultPath()+")")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	imagePath, regionsPath := args[0], args[1]

	configPath := flagConfig
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	regions, dropped, err := region.Load(regionsPath)
	if err != nil {
		return fmt.Errorf("load regions: %w", err)
	}
	for _, d := range dropped {
		log.WithError(d).Warn("dropped unusable region")
	}
	log.WithFields(logrus.Fields{
		"regions":         len(regions),
		"mean_confidence": fmt.Sprintf("%.2f", region.MeanConfidence(regions)),
	}).Info("regions loaded")

	outputPath := flagOutput
	if outputPath == "" {
		outputPath = regionsPath
	}
	if !strings.HasSuffix(outputPath, ".json") {
		log.WithField("path", outputPath).Warn("output path has no .json extension")
	}

	app := fyneapp.New()
	win := mainwindow.New(app, cfg, log, regions, outputPath)
	win.LoadPhoto(imagePath)
	win.Show()
	app.Run()
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
