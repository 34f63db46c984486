// Package substitution holds the Liskov substitution demo.
//
// Bird, Eagle and Penguin all satisfy domain.Flyer. Trainer accepts any
// Flyer and trusts it to fly. Penguin always fails with
// domain.ErrFlightUnsupported, which is the substitution violation the
// demo exists to show; the default entry point trains an Eagle instead.
package substitution
