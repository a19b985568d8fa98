package handlers

import (
	"net/http"

	"dishdash/httputil"
)

// AddRestaurantHandler creates a restaurant and answers 201 with the stored record.
func AddRestaurantHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRequest(w, r)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		resp, err := svc.Add(r.Context(), req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		httputil.RespondJSON(w, http.StatusCreated, resp)
	}
}

func GetRestaurantHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		resp, err := svc.Get(r.Context(), id)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, resp)
	}
}

// UpdateRestaurantHandler overwrites the restaurant named by the path id. Any
// id inside the body is ignored.
func UpdateRestaurantHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		req, err := decodeRequest(w, r)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		resp, err := svc.Update(r.Context(), id, req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, resp)
	}
}

// DeleteRestaurantHandler removes a restaurant and answers with the removed record.
func DeleteRestaurantHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		resp, err := svc.Delete(r.Context(), id)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, resp)
	}
}
