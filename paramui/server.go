// Package paramui serves parameter trees over HTTP: an HTML index plus JSON
// and plain-text projections of each tree.
package paramui

import (
	"context"
	"embed"
	"net"
	"net/http"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"paramtree.dev/paramtree"
)

func Serve(ctx context.Context, l net.Listener, src Source) error {
	return New(src).Serve(ctx, l)
}

type Server struct {
	src   Source
	app   *fiber.App
	bgCtx context.Context
}

func New(src Source) *Server {
	s := &Server{src: src}

	renderer := html.NewFileSystem(http.FS(viewFS), ".html")
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Views:                 renderer,
	})
	app.Get("/", s.home)

	v1 := app.Group("/v1")
	v1.Get("/param/:name/json", s.paramJSON)
	v1.Get("/param/:name/dump", s.paramDump)
	v1.Get("/events", websocket.New(s.handleWS))
	s.app = app
	return s
}

func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.bgCtx = ctx
	logctx.Infof(ctx, "serving on %v", l.Addr())
	return s.app.Listener(l)
}

type treeInfo struct {
	Name string
	FP   string
	Size int
}

func (s *Server) home(c *fiber.Ctx) error {
	ctx := c.Context()
	names, err := s.src.Names(ctx)
	if err != nil {
		return err
	}
	infos := slices2.Map(names, func(name string) treeInfo {
		data, err := s.src.JSON(ctx, name)
		if err != nil {
			logctx.Error(ctx, "tree infos", zap.Error(err))
			return treeInfo{Name: name}
		}
		fp := paramtree.Hash(nil, data)
		return treeInfo{Name: name, FP: fp.String(), Size: len(data)}
	})
	return c.Render("view/home", struct {
		Hostname string
		Trees    []treeInfo
	}{
		Hostname: c.Hostname(),
		Trees:    infos,
	})
}

func (s *Server) paramJSON(c *fiber.Ctx) error {
	data, err := s.src.JSON(c.Context(), c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err = c.Write(data)
	return err
}

func (s *Server) paramDump(c *fiber.Ctx) error {
	data, err := s.src.Dump(c.Context(), c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	_, err = c.Write(data)
	return err
}

func (s *Server) handleWS(c *websocket.Conn) {
	ctx := s.bgCtx
	w, ok := s.src.(Watcher)
	if !ok {
		c.Close()
		return
	}
	logctx.Info(ctx, "started websocket")
	defer logctx.Info(ctx, "closing websocket")

	if err := func() error {
		ctx, cf := context.WithCancel(ctx)
		defer cf()
		notif := make(chan string, 1)
		w.Subscribe(notif)
		defer w.Unsubscribe(notif)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case name := <-notif:
				if err := c.WriteJSON(map[string]any{
					"name": name,
				}); err != nil {
					return err
				}
			}
		}
	}(); err != nil {
		logctx.Error(ctx, "handling websocket", zap.Error(err))
		return
	}
}

//go:embed view/*
var viewFS embed.FS
