// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs named [Checks] in parallel under a timeout and
// answers 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "catalog": func(ctx context.Context) error {
//	        return cat.CheckArity(catalog.DefaultArity())
//	    },
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with an Accept: application/json header or ?format=json:
//
//	{"status":"unhealthy","checks":{"catalog":{"status":"unhealthy","error":"..."}}}
package health
