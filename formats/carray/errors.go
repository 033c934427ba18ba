// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"fmt"

	"github.com/ik5/pcmgen/audio"
)

// ErrInvalidIdentifier reports an array name that is not a C identifier.
// It matches audio.ErrInvalidParameter.
var ErrInvalidIdentifier = fmt.Errorf("%w: array name must be a C identifier", audio.ErrInvalidParameter)
