// SPDX-License-Identifier: EPL-2.0

package iq

import "errors"

var (
	ErrUnsupportedChannels = errors.New("only mono or I/Q stereo sources are supported")
	ErrUnknownEncoding     = errors.New("unknown output encoding")
)
