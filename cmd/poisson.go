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
	"github.com/quadfem/gomg/model_problems/Poisson2D"
	"github.com/quadfem/gomg/multigrid"
)

// poissonCmd represents the poisson command
var poissonCmd = &cobra.Command{
	Use:   "poisson",
	Short: "Solve a Q1 Poisson model problem with the patch smoother",
	Long: `
Assembles -Laplace(u) = 1 on the unit square with Q1 elements and runs the
additive Schwarz patch smoother built from child patches until the residual
tolerance is met.

gomg poisson -l 4`,
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
		if omega, _ := cmd.Flags().GetFloat64("omega"); omega != 0 {
			pp.Omega = omega
		}
		pp.Print()
		RunPoisson(pp)
	},
}

func init() {
	rootCmd.AddCommand(poissonCmd)
	poissonCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with run parameters")
	poissonCmd.Flags().IntP("levels", "l", 0, "number of mesh levels (coarse mesh is level 0)")
	poissonCmd.Flags().Float64P("omega", "w", 0, "smoother damping factor")
}

func RunPoisson(pp *InputParameters.PatchParameters) {
	p := Poisson2D.NewPoisson(pp.MeshLevels)
	_, residuals := p.Solve(PatchPolicyFromName(pp.PatchPolicy), pp.Omega,
		pp.MaxIterations, pp.Tolerance)
	for i, r := range residuals {
		fmt.Printf("sweep %4d: residual = %10.4e\n", i+1, r)
	}
	if len(residuals) == pp.MaxIterations {
		fmt.Printf("no convergence in %d sweeps\n", pp.MaxIterations)
	} else {
		fmt.Printf("converged in %d sweeps\n", len(residuals))
	}
}

func PatchPolicyFromName(name string) multigrid.PatchPolicy {
	switch name {
	case "all":
		return multigrid.AllDofs
	case "interior":
		return multigrid.InteriorOnly
	case "interior+boundary":
		return multigrid.InteriorAndBoundary
	}
	panic(fmt.Errorf("unknown patch policy: %s", name))
}
