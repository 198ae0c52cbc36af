//go:build cgo
// +build cgo

package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	fmt.Println("Using netlib to accelerate BLAS")
	blas64.Use(netblas.Implementation{})
}
