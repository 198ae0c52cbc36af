package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/quadfem/gomg/InputParameters"
	"github.com/quadfem/gomg/element2D"
	"github.com/quadfem/gomg/multigrid"
)

func TestPatchParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
MeshLevels: 3
CoarseNx: 2
CoarseNy: 2
Element: RannacherTurek
PatchPolicy: interior
Omega: 0.5
MaxIterations: 200
Tolerance: 1.e-10
`)
	pp := InputParameters.NewPatchParameters()
	if err = pp.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, pp.MeshLevels, 3)
	assert.Equal(t, pp.Element, "RannacherTurek")
	assert.Equal(t, pp.Omega, 0.5)
	pp.Print()

	assert.Equal(t, ElementLayoutFromName(pp.Element), element2D.RTLayout)
	assert.Equal(t, PatchPolicyFromName(pp.PatchPolicy), multigrid.InteriorOnly)

	RunPatches(pp)
}
