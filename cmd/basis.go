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

	"github.com/spf13/cobra"

	"github.com/quadfem/gomg/element2D"
)

// basisCmd represents the basis command
var basisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Tabulate the Rannacher-Turek basis on the reference cell",
	Long: `
Prints values and gradients of the four nonconforming Rannacher-Turek basis
functions on a sample grid of the unit reference cell.

gomg basis -n 5`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("samples")
		RunBasis(n)
	},
}

func init() {
	rootCmd.AddCommand(basisCmd)
	basisCmd.Flags().IntP("samples", "n", 3, "samples per direction on the reference cell")
}

func RunBasis(n int) {
	if n < 2 {
		n = 2
	}
	var (
		rt     = element2D.NewRannacherTurek(2)
		values = make([]float64, rt.NumPolynomials())
		grads  = make([]element2D.Tensor1, rt.NumPolynomials())
		h      = 1. / float64(n-1)
	)
	fmt.Printf("%s basis, %d functions, degree %d\n", rt.Name(), rt.NumPolynomials(), rt.Degree())
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			p := [2]float64{float64(i) * h, float64(j) * h}
			rt.Evaluate(p, values, grads, nil, nil, nil)
			fmt.Printf("(%5.3f,%5.3f):", p[0], p[1])
			for k := range values {
				fmt.Printf(" phi%d = %8.5f (%8.5f,%8.5f)", k, values[k], grads[k][0], grads[k][1])
			}
			fmt.Printf("\n")
		}
	}
}
