package paramui

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"paramtree.dev/paramtree/internal/testutil"
	"paramtree.dev/paramtree/params"
)

func buildTree(t testing.TB) params.Block {
	b := params.NewBlock("solver")
	require.NoError(t, b.AddValue("type", "diffusion"))
	require.NoError(t, params.AddVector(&b, "tols", []float64{1.5, 2.5}))
	return b
}

func TestParamJSON(t *testing.T) {
	reg := NewRegistry()
	b := buildTree(t)
	reg.Put("solver", &b)
	lAddr := startServing(t, reg)

	resp, err := http.Get(mkURL(lAddr, "solver") + "json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, `{"type":"diffusion","tols":[1.5,2.5]}`, string(data))
}

func TestParamDump(t *testing.T) {
	reg := NewRegistry()
	b := buildTree(t)
	reg.Put("solver", &b)
	lAddr := startServing(t, reg)

	resp, err := http.Get(mkURL(lAddr, "solver") + "dump")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, b.DumpString(), string(data))
}

func TestParamNotFound(t *testing.T) {
	reg := NewRegistry()
	lAddr := startServing(t, reg)

	resp, err := http.Get(mkURL(lAddr, "nope") + "json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHome(t *testing.T) {
	reg := NewRegistry()
	b := buildTree(t)
	reg.Put("solver", &b)
	lAddr := startServing(t, reg)

	resp, err := http.Get(fmt.Sprintf("http://%s/", lAddr))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "solver")
}

func TestRegistryWatch(t *testing.T) {
	reg := NewRegistry()
	ch := make(chan string, 1)
	reg.Subscribe(ch)
	defer reg.Unsubscribe(ch)

	b := buildTree(t)
	reg.Put("solver", &b)
	require.Equal(t, "solver", <-ch)
}

func TestRegistryIsolation(t *testing.T) {
	reg := NewRegistry()
	b := buildTree(t)
	reg.Put("solver", &b)

	// mutating the source tree after Put must not affect the served copy
	require.NoError(t, b.AddValue("late", int64(1)))
	got, ok := reg.Get("solver")
	require.True(t, ok)
	require.False(t, got.Has("late"))
}

type errSource struct{}

func (errSource) Names(ctx context.Context) ([]string, error) {
	return []string{"broken"}, nil
}

func (errSource) JSON(ctx context.Context, name string) ([]byte, error) {
	return nil, fmt.Errorf("no projection for %q", name)
}

func (errSource) Dump(ctx context.Context, name string) ([]byte, error) {
	return nil, fmt.Errorf("no projection for %q", name)
}

func TestHomeSourceError(t *testing.T) {
	// the index must render even when a projection fails, and the error
	// path must only rely on the request's own context
	srv := New(errSource{})
	resp, err := srv.app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "broken")
}

func mkURL(addr net.Addr, name string) string {
	return fmt.Sprintf("http://%s/v1/param/%s/", addr.String(), name)
}

func startServing(t testing.TB, src Source) net.Addr {
	ctx := testutil.Context(t)
	srv := New(src)
	lis := testutil.Listen(t)
	go srv.Serve(ctx, lis)
	return lis.Addr()
}
