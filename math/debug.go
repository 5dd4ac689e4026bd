// math/debug.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build meshdebug

package math

// DebugChecks is true when built with the meshdebug tag; preconditions
// that are too costly to verify in production builds are then checked.
const DebugChecks = true
