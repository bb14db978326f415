// SPDX-License-Identifier: Apache-2.0

// Message types for the Bubble Tea update loop.

package ui

// wakeResultMsg reports the outcome of an asynchronous wake command.
type wakeResultMsg struct {
	names []string // hosts the packets were addressed to
	sent  int      // packets actually sent before any failure
	err   error
}
