// Package lvspread places points on a circle one at a time so that every
// prefix stays evenly spread, and measures how even a set of points is.
//
// 🚀 What is lvspread?
//
//	A small, deterministic toolkit built around one sequence:
//		• spread/  — index → position generator, uniformity & concentration metrics
//		• sketch/  — headless model of the spread sketch: config, tracker, tick loop
//		• render/  — SVG frames of the sketch (trail, marker, status line)
//		• cmd/spread — CLI: sample, score, render, run, config
//
// ✨ Why a spread sequence?
//
//   - No final length needed – position n never moves when n+1 is added
//   - Exact – dyadic positions, computed with integer bit arithmetic
//   - Pure – every function is safe for concurrent use
//
// Quick picture, first eight positions (fractions of a turn):
//
//	        .25
//	   .375     .125
//	  .5    ·     0
//	   .625     .875
//	        .75
//
//	go get github.com/katalvlaran/lvspread/spread
package lvspread
