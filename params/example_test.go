package params_test

import (
	"fmt"

	"paramtree.dev/paramtree/params"
)

func ExampleBlock() {
	cfg := params.NewBlock("solver")
	cfg.AddValue("type", "diffusion")
	cfg.AddValue("max_iterations", int64(500))
	params.AddVector(&cfg, "tolerances", []float64{1e-8, 1e-6})

	n, _ := params.GetParamValue[int64](&cfg, "max_iterations")
	tols, _ := params.GetParamVectorValue[float64](&cfg, "tolerances")
	fmt.Println(n, tols)
	fmt.Println(string(cfg.DumpJSON()))
	// Output:
	// 500 [1e-08 1e-06]
	// {"type":"diffusion","max_iterations":500,"tolerances":[1e-08,1e-06]}
}
