// Package main provides the Ascent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ascent-ml/ascent/graph"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ascent %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Ascent - reverse-mode tensor autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a small expression graph")
}

// demo builds L = (a*b + c) * f and prints dL w.r.t. every leaf.
func demo() {
	a := graph.Scalar(2.0)
	b := graph.Scalar(-3.0)
	c := graph.Scalar(10.0)
	f := graph.Scalar(-2.0)

	e := a.Mul(b)
	d := e.Add(c)
	l := d.Mul(f)

	l.Backward()

	fmt.Printf("L  = %.1f\n", l.Value().Item())
	fmt.Printf("dL/da = %.1f\n", a.Grad().Item())
	fmt.Printf("dL/db = %.1f\n", b.Grad().Item())
	fmt.Printf("dL/dc = %.1f\n", c.Grad().Item())
	fmt.Printf("dL/df = %.1f\n", f.Grad().Item())
}
