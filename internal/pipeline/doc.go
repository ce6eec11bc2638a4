// Package pipeline runs a generation request through a sequence of steps.
//
// A request flows through generate, score, record and copy steps. Each step
// is a Step that receives the Result built so far and fills in its part.
// Generation failures stop the pipeline; history and clipboard failures are
// recorded on the Result and the value is still returned.
//
// BatchProcessor runs many requests concurrently using errgroup, each with
// its own pipeline, and keeps results in input order.
package pipeline
