// SPDX-License-Identifier: MIT

// Package httpapi exposes the S-P analysis over HTTP.
//
//	GET  /healthz           liveness
//	GET  /metrics           Prometheus metrics
//	GET  /samples           bundled sample names
//	GET  /samples/{name}    analysis of a bundled sample
//	POST /analyze           JSON {studentIds, problemIds, matrix}
//	POST /analyze/csv       CSV body, parsed by ingest
//	POST /analyze/chart     JSON body, S-P curve chart (HTML, or PNG with ?format=png)
//
// Analysis endpoints answer with {"id": <uuid>, "result": <sptable.Result>}
// unless ?format=csv|xlsx|json asks for an export document. Failures answer
// with {"error": <code>, "message": <text>}: 400 for malformed input, 404 for
// an unknown sample, 413 for a body over the configured limit, 429 when the
// analysis rate limit is exhausted.
package httpapi
