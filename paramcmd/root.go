// Package paramcmd implements the paramtree command line tool.
package paramcmd

import (
	"context"
	"net"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"

	"paramtree.dev/paramtree/paramstore"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "Parameter tree archive",
}, map[star.Symbol]star.Command{
	"list":  list,
	"show":  show,
	"json":  showJSON,
	"drop":  drop,
	"seed":  seed,
	"serve": serve,

	"status": status,
})

var status = star.Command{
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{},
	F: func(c star.Context) error {
		c.Printf("STATUS\n")
		db := DBParam.Load(c)
		if err := db.Ping(); err != nil {
			return err
		}
		return db.Close()
	},
}

var DBParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr(":memory:"),
	Parse: func(x string) (*sqlx.DB, error) {
		db, err := paramstore.OpenDB(x)
		if err != nil {
			return nil, err
		}
		if err := paramstore.SetupDB(context.Background(), db); err != nil {
			return nil, err
		}
		return db, nil
	},
}

var ListenerParam = star.Param[net.Listener]{
	Name:    "l",
	Default: star.Ptr("127.0.0.1:6660"),
	Parse: func(x string) (net.Listener, error) {
		return net.Listen("tcp", x)
	},
}
