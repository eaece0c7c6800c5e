// Package wavefront reads the subset of the Wavefront OBJ format the CLI
// needs: vertex positions and faces, with polygons fan-triangulated.
package wavefront

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// Mesh is the triangle soup read from an OBJ stream: positions plus a flat
// index buffer, three entries per triangle.
type Mesh struct {
	Positions [][3]float64
	Indices   []uint32
}

// NumFaces returns the triangle count.
func (m *Mesh) NumFaces() int {
	return len(m.Indices) / 3
}

// NumVerts returns the vertex count.
func (m *Mesh) NumVerts() int {
	return len(m.Positions)
}

// LoadFile reads an OBJ file from disk.
func LoadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load reads an OBJ stream. Only v and f statements are consumed; texture
// and normal references inside face elements are ignored. Polygons with
// more than three corners are fan-triangulated around their first corner.
func Load(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, oops.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, oops.Wrapf(err, "line %d: bad coordinate %q", lineNo, fields[i+1])
				}
				p[i] = v
			}
			mesh.Positions = append(mesh.Positions, p)

		case "f":
			idx, err := parseFace(fields[1:], len(mesh.Positions), lineNo)
			if err != nil {
				return nil, err
			}
			for i := 1; i < len(idx)-1; i++ {
				mesh.Indices = append(mesh.Indices, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, oops.Wrapf(err, "reading OBJ stream")
	}
	if len(mesh.Indices) == 0 {
		return nil, oops.Errorf("no faces found in OBJ stream")
	}
	return mesh, nil
}

// parseFace resolves the vertex references of one face statement to
// zero-based indices. Formats: v, v/vt, v//vn, v/vt/vn. Negative indices
// count back from the most recently read vertex.
func parseFace(args []string, nVerts, lineNo int) ([]uint32, error) {
	if len(args) < 3 {
		return nil, oops.Errorf("line %d: face needs at least 3 corners", lineNo)
	}
	out := make([]uint32, 0, len(args))
	for _, arg := range args {
		head, _, _ := strings.Cut(arg, "/")
		i, err := strconv.Atoi(head)
		if err != nil {
			return nil, oops.Wrapf(err, "line %d: bad face index %q", lineNo, arg)
		}
		if i < 0 {
			i = nVerts + i + 1
		}
		if i < 1 || i > nVerts {
			return nil, oops.Errorf("line %d: face index %d out of range (%d vertices)", lineNo, i, nVerts)
		}
		out = append(out, uint32(i-1))
	}
	return out, nil
}
