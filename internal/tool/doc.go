// Package tool defines the two scaffolding tool variants and selects the one
// a run uses. Versions are pinned here and never resolved against a registry.
package tool
