package handlers

import (
	"net/http"
	"net/url"

	"dishdash/httputil"
	"dishdash/service"
)

// ParseListParams extracts the optional cuisine, sortBy and search filters.
// A parameter that is present but empty is passed through so the service can
// reject it the same way as any other unparseable value.
func ParseListParams(query url.Values) service.ListParams {
	var p service.ListParams
	if query.Has("cuisine") {
		v := query.Get("cuisine")
		p.Cuisine = &v
	}
	if query.Has("sortBy") {
		v := query.Get("sortBy")
		p.SortBy = &v
	}
	if query.Has("search") {
		v := query.Get("search")
		p.Search = &v
	}
	return p
}

// ListRestaurantsHandler answers 200 with the filtered, ordered list. An empty
// result is a valid answer, encoded as [].
func ListRestaurantsHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), ParseListParams(r.URL.Query()))
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, list)
	}
}
