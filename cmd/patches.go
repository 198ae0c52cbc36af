/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadfem/gomg/InputParameters"
	"github.com/quadfem/gomg/element2D"
	"github.com/quadfem/gomg/mesh2D"
	"github.com/quadfem/gomg/multigrid"
)

// patchesCmd represents the patches command
var patchesCmd = &cobra.Command{
	Use:   "patches",
	Short: "Extract child patch block lists from a refined quadrilateral mesh",
	Long: `
Builds a hierarchical mesh, distributes level dofs for the chosen element,
and prints the patch to dof incidence pattern for each patch policy.

gomg patches -l 3 -e Q1`,
	Run: func(cmd *cobra.Command, args []string) {
		pp := InputParameters.NewPatchParameters()
		if icFile, _ := cmd.Flags().GetString("inputParametersFile"); len(icFile) != 0 {
			data, err := os.ReadFile(icFile)
			if err != nil {
				panic(err)
			}
			if err = pp.Parse(data); err != nil {
				panic(err)
			}
		}
		if levels, _ := cmd.Flags().GetInt("levels"); levels != 0 {
			pp.MeshLevels = levels
		}
		if element, _ := cmd.Flags().GetString("element"); len(element) != 0 {
			pp.Element = element
		}
		pp.Print()
		RunPatches(pp)
	},
}

func init() {
	rootCmd.AddCommand(patchesCmd)
	patchesCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with run parameters")
	patchesCmd.Flags().IntP("levels", "l", 0, "number of mesh levels (coarse mesh is level 0)")
	patchesCmd.Flags().StringP("element", "e", "", "element layout: Q1, DGQ1, RannacherTurek, None")
}

func RunPatches(pp *InputParameters.PatchParameters) {
	var (
		msh = mesh2D.NewUniform(pp.CoarseNx, pp.CoarseNy)
	)
	for l := 1; l < pp.MeshLevels; l++ {
		msh.RefineAll()
	}
	var (
		dh    = mesh2D.NewDofHandler(msh, ElementLayoutFromName(pp.Element))
		level = msh.NLevels() - 1
	)
	for _, policy := range []multigrid.PatchPolicy{
		multigrid.AllDofs, multigrid.InteriorOnly, multigrid.InteriorAndBoundary,
	} {
		bl := multigrid.NewBlockList(msh.NCells(level-1), dh.NDofs(level),
			4*dh.Layout.DofsPerCell())
		multigrid.MakeChildPatches(bl, dh, level, policy)
		bl.Compress()
		fmt.Printf("%s:\n%s", policy, bl.String())
	}
}

func ElementLayoutFromName(name string) element2D.ElementLayout {
	switch name {
	case "Q1":
		return element2D.Q1Layout
	case "DGQ1":
		return element2D.DGQ1Layout
	case "RannacherTurek", "RT":
		return element2D.RTLayout
	case "None":
		return element2D.NoneLayout
	}
	panic(fmt.Errorf("unknown element layout: %s", name))
}
