package service

// scopeParams adds the caller's auth scope to a key parameter set. The same
// service instance serves both the staff dashboards (bearer token attached)
// and the anonymous public surface (empty token), and the upstream answers
// the two differently, so their cache entries must never be shared.
func scopeParams(token string, filters map[string]string) map[string]string {
	out := make(map[string]string, len(filters)+1)
	for name, value := range filters {
		out[name] = value
	}
	if token == "" {
		out["scope"] = "public"
	} else {
		out["scope"] = "staff"
	}
	return out
}
