// Package domain defines the contracts and value types shared by the demos.
// It contains plain types and interfaces only; behaviour lives in
// internal/services.
package domain
