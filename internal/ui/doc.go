// Package ui implements the interactive picker: a Bubble Tea model that owns
// the query buffer, the filtered view and the selection marks, and renders
// them as a repainted frame until the user confirms or cancels.
package ui
