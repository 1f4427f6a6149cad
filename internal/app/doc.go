// Package app contains the tutoring use cases: chat replies, quiz generation
// and molecule analysis. Services depend on port interfaces and hold no
// mutable state of their own, so one instance serves all requests.
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters/http)
//   - Catalog decoding or diagram markup (that's adapters)
//   - Formula normalization and quiz limits (that's the domain layer)
package app

import "go.opentelemetry.io/otel"

const instrumentationName = "github.com/jsamuelsen/chembond-tutor/app"

var tracer = otel.Tracer(instrumentationName)
