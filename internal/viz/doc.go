// Package viz draws particle instance buffers in the terminal.
//
//   - [Canvas]: braille pixel canvas, 2x4 sub-pixels per cell
//   - [Viewport]: maps normalized device coordinates onto a canvas
//   - [PlotInstances] and [DrawBox]: draw a population and its region
//   - lipgloss styles shared by the terminal UI
package viz
