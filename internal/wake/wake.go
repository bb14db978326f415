// SPDX-License-Identifier: Apache-2.0

// Package wake resolves wake targets against the host registry and sends
// magic packets over UDP broadcast.
package wake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"syscall"

	"wol-manager/internal/wol"

	"golang.org/x/sys/unix"
)

// ErrNoTargets is returned when the resolved target set is empty. It is an
// informational outcome, not a transport failure; no socket is opened.
var ErrNoTargets = errors.New("no hosts to wake")

// Dispatcher sends magic packets. One socket is opened per Wake call and
// shared by every send in that invocation.
type Dispatcher struct {
	Log *slog.Logger

	// Listen opens the UDP socket used for sends. Replaceable so tests can
	// substitute an in-memory packet connection.
	Listen func(ctx context.Context) (net.PacketConn, error)
}

// NewDispatcher returns a Dispatcher using a broadcast-enabled UDP socket.
func NewDispatcher(log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		Log:    log,
		Listen: listenBroadcast,
	}
}

// Targets resolves the requested names against the registry, in request
// order. Unknown names are logged as warnings and skipped; they never fail
// the resolution. When all is true the registry's full host list is
// returned instead.
func (d *Dispatcher) Targets(reg *wol.Registry, names []string, all bool) []wol.Host {
	if all {
		d.Log.Debug("Waking all defined hosts", "count", reg.Count())
		return reg.All()
	}

	var targets []wol.Host
	for _, name := range names {
		h, ok := reg.Get(name)
		if !ok {
			d.Log.Warn(fmt.Sprintf("Unknown host %q", name))
			continue
		}
		d.Log.Debug(fmt.Sprintf("Found host %q", h.Name))
		targets = append(targets, h)
	}
	return targets
}

// Wake sends one magic packet per host, in order, over a single socket.
// The first send error aborts the remaining sends and is returned; the
// number of packets already sent is returned either way. An empty host list
// returns ErrNoTargets without touching the network.
func (d *Dispatcher) Wake(ctx context.Context, hosts []wol.Host) (int, error) {
	if len(hosts) == 0 {
		return 0, ErrNoTargets
	}

	conn, err := d.Listen(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open UDP socket: %w", err)
	}
	defer conn.Close()

	sent := 0
	for _, h := range hosts {
		packet, err := h.MagicPacket()
		if err != nil {
			return sent, fmt.Errorf("host %q: %w", h.Name, err)
		}
		addr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(h.IP, strconv.Itoa(h.Port)))
		if err != nil {
			return sent, fmt.Errorf("host %q: %w", h.Name, err)
		}

		d.Log.Info(fmt.Sprintf("Waking host %q", h.Name))
		if _, err := conn.WriteTo(packet, addr); err != nil {
			return sent, fmt.Errorf("failed to send magic packet to %q: %w", h.Name, err)
		}
		sent++
	}
	return sent, nil
}

// listenBroadcast opens a UDP4 socket with SO_BROADCAST and SO_REUSEADDR
// set, bound to an ephemeral local port.
func listenBroadcast(ctx context.Context) (net.PacketConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				if sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1); sockErr != nil {
					return
				}
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}
	return lc.ListenPacket(ctx, "udp4", ":0")
}
