// Package resilience paces outbound API calls.
//
// A Limiter keeps a client under the API's request quota with a token
// bucket shared by every goroutine using the client:
//
//	limiter := resilience.NewLimiter(resilience.LimiterConfig{Rate: 1, Burst: 5})
//	if err := limiter.Wait(ctx); err != nil {
//	    return err
//	}
//
// A nil *Limiter, as returned for a zero rate, never waits.
package resilience
