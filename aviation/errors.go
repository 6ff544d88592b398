// aviation/errors.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

var (
	ErrUnknownNavaid  = errors.New("unknown navaid")
	ErrUnknownAirbase = errors.New("unknown airbase")
)
