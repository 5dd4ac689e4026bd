// math/debug_off.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build !meshdebug

package math

// DebugChecks is false unless built with the meshdebug tag.
const DebugChecks = false
