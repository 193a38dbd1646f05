// Package search provides the patent and prior-art search client.
//
// Searches are delegated to the Perplexity chat-completions API with a fixed
// model, low sampling temperature and bounded response length. The client
// returns the first completion's text verbatim; non-success statuses,
// timeouts and transport faults surface as UpstreamError values that the
// tool layer renders as descriptive strings.
package search
