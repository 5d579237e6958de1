// Package channel bundles a Sender and Receiver of the same value type
// over one transport into a single handle, and layers a stats.Hook that
// also exposes plain counters for callers that don't want to bring their
// own metrics backend.
package channel
