// SPDX-License-Identifier: MIT

//go:build !arenadebug

package arena

// DebugChecks reports whether handles carry arena signatures.
const DebugChecks = false

// signature is zero-sized outside arenadebug builds.
type signature struct{}

func newSignature() signature { return signature{} }

func (a *Arena[T]) check(Handle) {}

func (a *Arena[T]) signed(Handle) bool { return true }
