// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wol-manager/internal/logger"
	"wol-manager/internal/wake"
	"wol-manager/internal/wol"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nullConn discards datagrams, counting them.
type nullConn struct {
	writes int
	fail   bool
}

func (c *nullConn) WriteTo(b []byte, addr net.Addr) (int, error) {
	if c.fail {
		return 0, errors.New("network is unreachable")
	}
	c.writes++
	return len(b), nil
}

func (c *nullConn) Close() error { return nil }

func (c *nullConn) ReadFrom(b []byte) (int, net.Addr, error) {
	return 0, nil, io.EOF
}

func (c *nullConn) LocalAddr() net.Addr                { return &net.UDPAddr{} }
func (c *nullConn) SetDeadline(t time.Time) error      { return nil }
func (c *nullConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *nullConn) SetWriteDeadline(t time.Time) error { return nil }

func newTestServer(t *testing.T, conn net.PacketConn) *mux.Router {
	t.Helper()

	reg := wol.NewRegistry(
		wol.NewHost("foo", "AA:BB:CC:00:11:22", wol.DefaultIP, wol.DefaultPort),
		wol.NewHost("bar", "DD:EE:FF:33:44:55", wol.DefaultIP, wol.DefaultPort),
	)
	log := logger.New(logger.Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	dispatcher := wake.NewDispatcher(log)
	dispatcher.Listen = func(ctx context.Context) (net.PacketConn, error) { return conn, nil }

	router := mux.NewRouter()
	NewServer(reg, dispatcher, log).Register(router)
	return router
}

func TestListHosts(t *testing.T) {
	router := newTestServer(t, &nullConn{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hosts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var hosts []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hosts))
	require.Len(t, hosts, 2)
	assert.Equal(t, "foo", hosts[0]["name"])
	assert.Equal(t, "AA:BB:CC:00:11:22", hosts[0]["mac"])
	assert.Equal(t, "255.255.255.255", hosts[0]["ip"])
	assert.Equal(t, float64(9), hosts[0]["port"])
	assert.Equal(t, "bar", hosts[1]["name"])
}

func TestWakeHost(t *testing.T) {
	conn := &nullConn{}
	router := newTestServer(t, conn)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/hosts/foo/wake", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, conn.writes)
	assert.JSONEq(t, `{"woken": 1}`, rec.Body.String())
}

func TestWakeHostUnknown(t *testing.T) {
	conn := &nullConn{}
	router := newTestServer(t, conn)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/hosts/nope/wake", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, conn.writes)
}

func TestWakeHostTransportFailure(t *testing.T) {
	router := newTestServer(t, &nullConn{fail: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/hosts/foo/wake", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWakeManyResolvesNames(t *testing.T) {
	conn := &nullConn{}
	router := newTestServer(t, conn)

	body := strings.NewReader(`{"names": ["foo", "x"]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/wake", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, conn.writes)
	assert.JSONEq(t, `{"woken": 1, "unknown": ["x"]}`, rec.Body.String())
}

func TestWakeAllWithEmptyBody(t *testing.T) {
	conn := &nullConn{}
	router := newTestServer(t, conn)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/wake", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, conn.writes)
	assert.JSONEq(t, `{"woken": 2}`, rec.Body.String())
}
