package paramcmd

import (
	"go.brendoncarroll.net/star"
	"golang.org/x/sync/errgroup"

	"paramtree.dev/paramtree/params"
	"paramtree.dev/paramtree/paramstore"
	"paramtree.dev/paramtree/paramui"
)

var list = star.Command{
	Metadata: star.Metadata{
		Short: "list the archived parameter trees",
		Tags:  []string{"tree"},
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		s := paramstore.New(DBParam.Load(c))
		ents, err := s.List(c)
		if err != nil {
			return err
		}
		c.Printf("NAME\tFINGERPRINT\n")
		for _, ent := range ents {
			c.Printf("%s\t%x\n", ent.Name, ent.FP)
		}
		return nil
	},
}

var show = star.Command{
	Metadata: star.Metadata{
		Short: "print the human-readable dump of an archived tree",
		Tags:  []string{"tree"},
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{NameParam},
	F: func(c star.Context) error {
		s := paramstore.New(DBParam.Load(c))
		data, err := s.GetDump(c, NameParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%s", data)
		return nil
	},
}

var showJSON = star.Command{
	Metadata: star.Metadata{
		Short: "print the JSON projection of an archived tree",
		Tags:  []string{"tree"},
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{NameParam},
	F: func(c star.Context) error {
		s := paramstore.New(DBParam.Load(c))
		data, err := s.GetJSON(c, NameParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%s\n", data)
		return nil
	},
}

var drop = star.Command{
	Metadata: star.Metadata{
		Short: "remove an archived tree",
		Tags:  []string{"tree"},
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{NameParam},
	F: func(c star.Context) error {
		s := paramstore.New(DBParam.Load(c))
		return s.Delete(c, NameParam.Load(c))
	},
}

var seed = star.Command{
	Metadata: star.Metadata{
		Short: "build the example solver configuration and archive it",
		Tags:  []string{"tree"},
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		s := paramstore.New(DBParam.Load(c))
		b := exampleConfig()
		fp, err := s.Put(c, b.Name(), b)
		if err != nil {
			return err
		}
		c.Printf("archived %q fp=%v\n", b.Name(), fp)
		return nil
	},
}

var serve = star.Command{
	Metadata: star.Metadata{
		Short: "serve the archived trees over HTTP",
	},
	Flags: []star.IParam{DBParam, ListenerParam},
	F: func(c star.Context) error {
		s := paramstore.New(DBParam.Load(c))
		lis := ListenerParam.Load(c)

		eg, ctx := errgroup.WithContext(c.Context)
		eg.Go(func() error { return paramui.Serve(ctx, lis, paramui.StoreSource(s)) })
		return eg.Wait()
	},
}

var NameParam = star.Param[string]{
	Name:  "name",
	Parse: star.ParseString,
}

// exampleConfig builds a representative solver configuration tree.
func exampleConfig() *params.Block {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	b := params.NewBlock("solver")
	b.SetErrorOriginScope("seed")
	must(b.AddValue("type", "diffusion"))
	must(b.AddValue("max_iterations", int64(500)))
	must(b.AddValue("tolerance", 1.0e-8))
	must(b.AddValue("verbose", true))

	mesh := params.NewBlock("mesh")
	must(mesh.AddValue("dimension", int64(2)))
	must(params.AddVector(&mesh, "node_spacing", []float64{0.1, 0.1}))
	must(b.AddParameter(mesh))

	must(params.AddVector(&b, "boundary_ids", []int64{0, 1, 2, 3}))
	return &b
}
