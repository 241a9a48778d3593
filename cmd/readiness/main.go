package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"nestready/server/config"
	"nestready/server/internal/engine"
	"nestready/server/internal/models"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	inputPath := flag.String("input", "-", "Path to a ScoreInput JSON document, or - for stdin")
	compact := flag.Bool("compact", false, "Emit compact JSON instead of indented")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	var reader io.Reader = os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.WithError(err).Fatal("Failed to open input file")
		}
		defer f.Close()
		reader = f
	}

	var input models.ScoreInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		logger.WithError(err).Fatal("Failed to parse input")
	}

	result := engine.New(cfg, logger).CalculateScore(input)

	encoder := json.NewEncoder(os.Stdout)
	if !*compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		logger.WithError(err).Fatal("Failed to encode result")
	}
}
