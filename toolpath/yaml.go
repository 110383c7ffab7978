package toolpath

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zooyer/dxf2path/core"
)

// yamlToolpath is the on-disk shape of a precomputed toolpath:
//
//	cut:
//	  points:
//	    - [0.0, 0.0, 0.0]
//	    - [0.1, 0.0, 0.0]
type yamlToolpath struct {
	Cut struct {
		Points [][]float64 `yaml:"points"`
	} `yaml:"cut"`
}

// ReadYAML loads a toolpath file. Points are taken as they are, without
// scaling or deduplication.
func ReadYAML(r io.Reader) (Polyline, error) {
	var dto yamlToolpath
	if err := yaml.NewDecoder(r).Decode(&dto); err != nil && err != io.EOF {
		return nil, &Error{Op: "read_yaml", Index: -1, Err: err}
	}
	if len(dto.Cut.Points) == 0 {
		return nil, &Error{Op: "read_yaml", Index: -1, Err: ErrEmptyDocument}
	}

	out := make(Polyline, 0, len(dto.Cut.Points))
	for i, p := range dto.Cut.Points {
		if len(p) != 3 {
			return nil, &Error{Op: "read_yaml", Index: -1, Err: fmt.Errorf("point %d has %d coordinates, want 3", i, len(p))}
		}
		out = append(out, core.Point{X: p[0], Y: p[1], Z: p[2]})
	}
	return out, nil
}

// WriteYAML writes p in the format read by ReadYAML.
func (p Polyline) WriteYAML(w io.Writer) error {
	var dto yamlToolpath
	dto.Cut.Points = make([][]float64, 0, len(p))
	for _, pt := range p {
		dto.Cut.Points = append(dto.Cut.Points, []float64{pt.X, pt.Y, pt.Z})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dto); err != nil {
		return err
	}
	return enc.Close()
}
