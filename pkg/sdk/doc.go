// Package tripdex embeds the tripdex flight and hotel search pipelines in a
// Go program. Searches run in-process over a read-only catalog: the bundled
// demo data by default, or YAML files supplied by the caller.
//
//	client, _ := tripdex.New(tripdex.WithCatalogDir("./catalog"))
//	flights := client.Flights().Search(ctx, map[string]any{
//	    "from":       "NYC",
//	    "to":         "LAX",
//	    "passengers": map[string]any{"adults": 2},
//	    "sortBy":     "duration",
//	})
//
//	q := url.Values{"location": {"Miami"}, "minRating": {"4"}, "limit": {"5"}}
//	hotels := client.Hotels().Filter(ctx, q)
//
// Search never fails: malformed criteria are ignored and a search with no
// matches returns an empty slice.
package tripdex
