// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera implements the thin-lens camera, the recursive
// Monte-Carlo radiance estimator, and the row-stripe parallel render
// driver, grounded on original_source's camera.h and eg/rt.go's
// worker/channel pattern.
package camera

import (
	"fmt"
	"io"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/lucent-labs/pathtrace/hit"
	"github.com/lucent-labs/pathtrace/math/geom"
	"github.com/lucent-labs/pathtrace/rng"
	"github.com/lucent-labs/pathtrace/tonemap"
)

// Config holds every camera and integrator parameter a scene supplies.
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	Background      geom.Color

	VFov     float64 // vertical field of view, degrees
	LookFrom geom.Point3
	LookAt   geom.Point3
	VUp      geom.Vec3

	DefocusAngle float64 // degrees
	FocusDist    float64

	// Seed is the global seed every worker's RNG is mixed from. A fixed
	// Seed and a fixed thread count reproduce bit-identical output.
	Seed int64
}

// DefaultConfig returns a Config with the same defaults as the original
// camera: square aspect ratio, 100px wide, 10 samples, depth 10, 90°
// vertical FOV looking down -Z, no defocus.
func DefaultConfig() Config {
	return Config{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Background:      geom.Color{},
		VFov:            90,
		LookFrom:        geom.Point3{},
		LookAt:          geom.New(0, 0, -1),
		VUp:             geom.New(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Camera is an initialized Config: every derived quantity (basis vectors,
// pixel spacing, defocus disk) is precomputed once by New.
type Camera struct {
	cfg Config

	imageHeight       int
	pixelSamplesScale float64
	center            geom.Point3
	pixel00Loc        geom.Point3
	pixelDeltaU       geom.Vec3
	pixelDeltaV       geom.Vec3
	u, v, w           geom.Vec3
	defocusDiskU      geom.Vec3
	defocusDiskV      geom.Vec3
}

// New derives a Camera's render-time state from cfg.
func New(cfg Config) *Camera {
	c := &Camera{cfg: cfg}

	c.imageHeight = int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}
	c.pixelSamplesScale = 1.0 / float64(cfg.SamplesPerPixel)
	c.center = cfg.LookFrom

	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(c.imageHeight))

	c.w = cfg.LookFrom.Sub(cfg.LookAt).Unit()
	c.u = cfg.VUp.Cross(c.w).Unit()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Mul(viewportWidth)
	viewportV := c.v.Neg().Mul(viewportHeight)

	c.pixelDeltaU = viewportU.Div(float64(cfg.ImageWidth))
	c.pixelDeltaV = viewportV.Div(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Sub(c.w.Mul(cfg.FocusDist)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Mul(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(cfg.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Mul(defocusRadius)
	c.defocusDiskV = c.v.Mul(defocusRadius)

	return c
}

// ImageHeight returns the derived image height.
func (c *Camera) ImageHeight() int { return c.imageHeight }

// ImageWidth returns the configured image width.
func (c *Camera) ImageWidth() int { return c.cfg.ImageWidth }

// getRay builds one jittered, possibly defocused sample ray through
// pixel (i,j).
func (c *Camera) getRay(i, j int, rnd *rng.Source) geom.Ray {
	offset := sampleSquare(rnd)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Mul(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Mul(float64(j) + offset.Y))

	origin := c.center
	if c.cfg.DefocusAngle > 0 {
		origin = c.defocusDiskSample(rnd)
	}
	direction := pixelSample.Sub(origin)
	return geom.NewRay(origin, direction, rnd.Float64())
}

func sampleSquare(rnd *rng.Source) geom.Vec3 {
	return geom.New(rnd.Float64()-0.5, rnd.Float64()-0.5, 0)
}

func (c *Camera) defocusDiskSample(rnd *rng.Source) geom.Point3 {
	p := rnd.UnitDisk()
	return c.center.Add(c.defocusDiskU.Mul(p.X)).Add(c.defocusDiskV.Mul(p.Y))
}

// rayColor is the recursive Monte-Carlo radiance estimator: it terminates
// at max depth, on a miss (returning background), or on an
// absorbing/non-scattering material (returning only its emission).
func (c *Camera) rayColor(r geom.Ray, depth int, world hit.Hittable, rnd *rng.Source) geom.Color {
	if depth <= 0 {
		return geom.Color{}
	}

	rec, ok := world.Hit(r, geom.NewInterval(0.001, math.Inf(1)), rnd)
	if !ok {
		return c.cfg.Background
	}

	// Emission is front-face only (the diffuse_light convention), so a
	// back-facing hit on an emitter contributes no light.
	var emission geom.Color
	if rec.FrontFace {
		emission = rec.Mat.Emitted(rec.U, rec.V, rec.P)
	}

	attenuation, scattered, scatters := rec.Mat.Scatter(r, rec, rnd)
	if !scatters {
		return emission
	}

	fromScatter := attenuation.MulVec(c.rayColor(scattered, depth-1, world, rnd))
	return emission.Add(fromScatter)
}

// Render drives a row-stripe parallel render of world into a freshly
// allocated, row-major linear-RGB pixel buffer (one geom.Color per
// pixel), and returns it; the dimensions are ImageWidth() by
// ImageHeight(). progress, if
// non-nil, receives human-readable remaining-scanline updates the way
// the original writes to its diagnostic stream.
func (c *Camera) Render(world hit.Hittable, progress io.Writer) []geom.Color {
	start := time.Now()
	width, height := c.cfg.ImageWidth, c.imageHeight
	pixels := make([]geom.Color, width*height)

	workers := runtime.NumCPU()
	rowsPerWorker := (height + workers - 1) / workers

	var wg sync.WaitGroup
	var progressMu sync.Mutex
	completedRows := 0

	for t := 0; t < workers; t++ {
		startRow := t * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > height {
			endRow = height
		}
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(startRow, endRow, workerIndex int) {
			defer wg.Done()
			rnd := rng.New(c.cfg.Seed, workerIndex)
			for j := startRow; j < endRow; j++ {
				for i := 0; i < width; i++ {
					var sum geom.Color
					for s := 0; s < c.cfg.SamplesPerPixel; s++ {
						r := c.getRay(i, j, rnd)
						sum = sum.Add(c.rayColor(r, c.cfg.MaxDepth, world, rnd))
					}
					pixels[j*width+i] = sum.Mul(c.pixelSamplesScale)
				}
				if progress != nil {
					progressMu.Lock()
					completedRows++
					fmt.Fprintf(progress, "\rScanlines remaining: %d ", height-completedRows)
					progressMu.Unlock()
				}
			}
		}(startRow, endRow, t)
	}
	wg.Wait()

	if progress != nil {
		fmt.Fprint(progress, "\rDone.                 \n")
	}
	log.Printf("render: %dx%d, %d samples/px, %s", width, height, c.cfg.SamplesPerPixel, time.Since(start))
	return pixels
}

// EncodePixels gamma-encodes and byte-quantizes a linear-RGB pixel
// buffer produced by Render.
func EncodePixels(pixels []geom.Color) [][3]byte {
	out := make([][3]byte, len(pixels))
	for i, p := range pixels {
		r, g, b := tonemap.Encode(p)
		out[i] = [3]byte{r, g, b}
	}
	return out
}
