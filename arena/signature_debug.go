// SPDX-License-Identifier: MIT

//go:build arenadebug

package arena

import (
	"fmt"

	"github.com/google/uuid"
)

// DebugChecks reports whether handles carry arena signatures.
const DebugChecks = true

// signature identifies the arena instance that issued a handle.
type signature = uuid.UUID

func newSignature() signature { return uuid.New() }

// check panics when h was not issued by a.
func (a *Arena[T]) check(h Handle) {
	if h.sig != a.sig {
		panic(fmt.Errorf("%w: %v carries signature %s, arena is %s", ErrInvalidHandle, h, h.sig, a.sig))
	}
}

func (a *Arena[T]) signed(h Handle) bool { return h.sig == a.sig }
