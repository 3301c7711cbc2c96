// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command trace renders a scene description to a PPM image, grounded on
// render/gl/gen/gen.go's flag-driven, single-purpose main and on
// eg/is.go's use of log/slog for run-time diagnostics.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lucent-labs/pathtrace/camera"
	"github.com/lucent-labs/pathtrace/ppm"
	"github.com/lucent-labs/pathtrace/sceneconfig"
)

var (
	scenePath = flag.String("scene", "", "path to a YAML scene description (required)")
	outPath   = flag.String("out", "out.ppm", "path to write the rendered PPM image")
)

func main() {
	flag.Parse()
	if *scenePath == "" {
		slog.Error("trace: -scene is required")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*scenePath)
	if err != nil {
		slog.Error("trace: read scene", "err", err)
		os.Exit(1)
	}

	scene, err := sceneconfig.Load(data)
	if err != nil {
		slog.Error("trace: load scene", "err", err)
		os.Exit(1)
	}

	cam := camera.New(scene.CameraConfig)
	slog.Info("trace: rendering",
		"width", cam.ImageWidth(), "height", cam.ImageHeight(),
		"samples", scene.CameraConfig.SamplesPerPixel)

	start := time.Now()
	pixels := cam.Render(scene.World, os.Stderr)
	slog.Info("trace: rendered", "elapsed", time.Since(start))

	f, err := os.Create(*outPath)
	if err != nil {
		slog.Error("trace: create output", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := ppm.Write(f, cam.ImageWidth(), cam.ImageHeight(), pixels); err != nil {
		slog.Error("trace: write output", "err", err)
		os.Exit(1)
	}
}
