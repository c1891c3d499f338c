package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-readmegen/pkg/metadata"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/render"
)

func main() {
	metadataPath := flag.String("metadata", ".repo-metadata.json", "path to the repo metadata file")
	samplesDir := flag.String("samples", "", "samples directory to scan (skipped if empty)")
	rendererName := flag.String("renderer", "", "renderer to use (default: library)")
	templateName := flag.String("template", "", "template name override")
	latestVersion := flag.String("latest-version", "", "latest released artifact version")
	latestBOM := flag.String("latest-bom-version", "", "latest libraries-bom version")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	req := orchestrator.Request{
		Source:           metadata.SourceFromFile(*metadataPath),
		Renderer:         *rendererName,
		LatestVersion:    *latestVersion,
		LatestBOMVersion: *latestBOM,
		Options:          render.RenderOptions{Template: *templateName},
	}
	if *samplesDir != "" {
		req.SamplesFS = os.DirFS(*samplesDir)
	}

	gen := orchestrator.New()

	readme, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate README: %v", err)
	}

	if *output != "" {
		if err := atomic.WriteFile(*output, bytes.NewReader(readme)); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("README written to %s\n", *output)
	} else {
		fmt.Println(string(readme))
	}
}
