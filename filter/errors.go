// SPDX-License-Identifier: EPL-2.0

package filter

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid filter parameter")
	ErrUnknownWindow    = errors.New("unknown window function")
)
