// Package resilience retries operations that report their outcome as a
// result.Result.
//
// Retry keeps calling the operation with exponential backoff until it
// returns Ok, the error payload is judged permanent, the attempts run out or
// the context ends:
//
//	r, err := resilience.Retry(ctx, resilience.DefaultRetryConfig[error](),
//	    func(ctx context.Context) result.Result[*User, error] {
//	        return result.Of(client.FetchUser(ctx, id))
//	    })
//
// The returned error is non-nil only when the context stopped the loop; the
// last attempt's Result is returned in every other case.
package resilience
