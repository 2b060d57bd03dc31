// Package tubes provides Transformers for common chunk operations:
// per-element mapping and filtering, delimiter splitting and joining,
// gzip compression and JSON encoding, plus tee and debug pass-throughs.
//
// None of these add engine behavior; each is an ordinary Transformer
// selected at composition time with apparatus.Through.
package tubes
