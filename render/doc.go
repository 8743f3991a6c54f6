// Package render draws spread-sketch snapshots as SVG documents.
//
// A frame shows the ring, a tick at position 0, a trail of earlier
// positions fading from the head colour to the tail colour, a line from
// the previous to the current position, a marker on the current position
// and the status line on a dark strip at the bottom.
//
// Rendering is headless (github.com/ajstarks/svgo), so frames can be
// produced in tests, pipelines or a browser without a GPU window.
package render
