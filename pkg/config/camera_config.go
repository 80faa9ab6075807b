// Package config loads the camera's configuration surface from a YAML
// document. It is a convenience layered on top of renderer.CameraConfig:
// no geometry, materials, or lights are described here, only camera
// parameters, so it does not constitute scene-file parsing.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/renderer"
)

// cameraDocument mirrors renderer.CameraConfig with YAML tags; vectors
// are expressed as flat arrays to keep the document compact.
type cameraDocument struct {
	ImageWidth      int        `yaml:"image_width"`
	ImageHeight     int        `yaml:"image_height"`
	SamplesPerPixel int        `yaml:"samples_per_pixel"`
	MaxDepth        int        `yaml:"max_depth"`
	VFOV            float64    `yaml:"vfov"`
	LookFrom        [3]float64 `yaml:"look_from"`
	LookAt          [3]float64 `yaml:"look_at"`
	VUp             [3]float64 `yaml:"vup"`
	DefocusAngle    float64    `yaml:"defocus_angle"`
	FocusDist       float64    `yaml:"focus_dist"`
	Background      [3]float64 `yaml:"background"`
}

// LoadCameraConfig reads a YAML document from r and returns the
// equivalent renderer.CameraConfig. It does not construct a Camera;
// callers still call renderer.NewCamera to validate and derive it.
func LoadCameraConfig(r io.Reader) (renderer.CameraConfig, error) {
	var doc cameraDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return renderer.CameraConfig{}, fmt.Errorf("decoding camera config: %w", err)
	}

	return renderer.CameraConfig{
		ImageWidth:      doc.ImageWidth,
		ImageHeight:     doc.ImageHeight,
		SamplesPerPixel: doc.SamplesPerPixel,
		MaxDepth:        doc.MaxDepth,
		VFOV:            doc.VFOV,
		LookFrom:        vecFromArray(doc.LookFrom),
		LookAt:          vecFromArray(doc.LookAt),
		VUp:             vecFromArray(doc.VUp),
		DefocusAngle:    doc.DefocusAngle,
		FocusDist:       doc.FocusDist,
		Background:      vecFromArray(doc.Background),
	}, nil
}

func vecFromArray(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
