package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Handler holds the catalog view handlers.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// List serves the list view model: fetch the summary collection, then derive
// the requested page. A fetch failure is surfaced as an error the client
// shows as a banner; retry is a fresh request.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ParseParams(r.URL.Query())

	people, err := h.client.FetchPeople(r.Context())
	if err != nil {
		writeJSON(w, fetchStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, Run(people, params))
}

// Detail serves one detail view model by its numeric identifier.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.client.FetchPerson(r.Context(), id)
	if err != nil {
		writeJSON(w, fetchStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// fetchStatus maps a catalog fetch failure to a response status: upstream 404
// passes through, anything else is a bad gateway.
func fetchStatus(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
