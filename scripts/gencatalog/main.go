// Command gencatalog writes the embedded catalogue as gzipped YAML section
// archives (cakes.yaml.gz, sweets.yaml.gz) for the file and s3 sources.
//
//	go run ./scripts/gencatalog -out data/catalog
//
// Upload the archives under S3_PREFIX to serve them from S3.
package main

import (
	"compress/gzip"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"aesthetic-cakes/internal/catalog"
	"aesthetic-cakes/internal/config"
	"aesthetic-cakes/internal/model"
)

func main() {
	outDir := flag.String("out", "data/catalog", "directory to write section archives to")
	flag.Parse()

	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})

	// Create directory if it doesn't exist
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Fatal().Err(err).Str("dir", *outDir).Msg("failed to create directory")
	}

	loader := catalog.NewEmbeddedLoader(logger)
	for _, kind := range model.Kinds {
		section, err := loader.Load(context.Background(), kind)
		if err != nil {
			logger.Fatal().Err(err).Str("kind", string(kind)).Msg("failed to load embedded section")
		}

		filePath := filepath.Join(*outDir, catalog.ArchiveName(kind))
		if err := writeArchive(filePath, section); err != nil {
			logger.Fatal().Err(err).Str("file", filePath).Msg("failed to write archive")
		}

		logger.Info().
			Str("file", filePath).
			Int("products", len(section.Products)).
			Int("categories", len(section.Categories)).
			Msg("section archive written")
	}
}

func writeArchive(filePath string, section *catalog.Section) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	if err := catalog.Encode(gzipWriter, section); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}

	return file.Sync()
}
