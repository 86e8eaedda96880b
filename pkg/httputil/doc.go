// Package httputil provides helpers for clients of the whiteboard HTTP API.
//
//   - [Retry]: retry with exponential backoff for transient failures
//   - [CheckResponse]: turn error responses into Go errors, marking
//     5xx and 429 responses as retryable
//
// Usage:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    return httputil.CheckResponse(resp)
//	})
package httputil
