package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type PatchParameters struct {
	Title         string  `yaml:"Title"`
	MeshLevels    int     `yaml:"MeshLevels"`
	CoarseNx      int     `yaml:"CoarseNx"`
	CoarseNy      int     `yaml:"CoarseNy"`
	Element       string  `yaml:"Element"`     // Q1, DGQ1, RannacherTurek, None
	PatchPolicy   string  `yaml:"PatchPolicy"` // all, interior, interior+boundary
	Omega         float64 `yaml:"Omega"`
	MaxIterations int     `yaml:"MaxIterations"`
	Tolerance     float64 `yaml:"Tolerance"`
}

func NewPatchParameters() *PatchParameters {
	return &PatchParameters{
		Title:         "patch extraction",
		MeshLevels:    2,
		CoarseNx:      1,
		CoarseNy:      1,
		Element:       "Q1",
		PatchPolicy:   "all",
		Omega:         0.25,
		MaxIterations: 100,
		Tolerance:     1.e-8,
	}
}

func (pp *PatchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PatchParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("[%d]\t\t\t= Mesh Levels\n", pp.MeshLevels)
	fmt.Printf("[%dx%d]\t\t\t= Coarse Mesh\n", pp.CoarseNx, pp.CoarseNy)
	fmt.Printf("[%s]\t\t\t= Element\n", pp.Element)
	fmt.Printf("[%s]\t\t\t= Patch Policy\n", pp.PatchPolicy)
	fmt.Printf("%8.5f\t\t= Omega\n", pp.Omega)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", pp.MaxIterations)
	fmt.Printf("%8.2e\t\t= Tolerance\n", pp.Tolerance)
}
