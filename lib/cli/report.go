package cli

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-trimesh/go-trimesh/lib/topology"
	"github.com/go-trimesh/go-trimesh/lib/wavefront"
)

// Report is the YAML-serializable result of one validation run.
type Report struct {
	Mesh     string   `yaml:"mesh"`
	Faces    int      `yaml:"faces"`
	Vertices int      `yaml:"vertices"`
	Checks   []string `yaml:"checks"`
	Status   string   `yaml:"status"`
	Messages []string `yaml:"messages,omitempty"`
}

func checkNames(flags topology.Flags) []string {
	names := []string{"bounds"}
	if flags.Has(topology.ValidateDegenerate) {
		names = append(names, "degenerate")
	}
	if flags.Has(topology.ValidateBackfacing) {
		names = append(names, "backfacing")
	}
	if flags.Has(topology.ValidateBowties) {
		names = append(names, "bowties")
	}
	return names
}

func statusString(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, topology.ErrInvalidArgument):
		return "invalid-argument"
	case errors.Is(err, topology.ErrArithmeticOverflow):
		return "arithmetic-overflow"
	case errors.Is(err, topology.ErrOutOfMemory):
		return "out-of-memory"
	case errors.Is(err, topology.ErrValidationFailed):
		return "failed"
	default:
		return "error"
	}
}

func newReport(path string, mesh *wavefront.Mesh, flags topology.Flags, diags *topology.Diagnostics, err error) *Report {
	return &Report{
		Mesh:     path,
		Faces:    mesh.NumFaces(),
		Vertices: mesh.NumVerts(),
		Checks:   checkNames(flags),
		Status:   statusString(err),
		Messages: diags.Entries(),
	}
}

func writeReport(path string, rep *Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
