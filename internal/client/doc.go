// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session and habit services, and the
// background refresh job into a single process lifecycle.
package client
