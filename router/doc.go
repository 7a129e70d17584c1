// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the quizhost HTTP routes to their handlers using
// the standard library ServeMux with method-qualified patterns. Public
// routes get request logging; admin routes additionally pass through the
// RequireAdmin session gate, except POST /admin/login itself.
package router
