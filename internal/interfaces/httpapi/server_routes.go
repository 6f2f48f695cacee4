package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("/", handler.NotFound)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	registerGET(mux, "/matches", handler.ListMatches, handler.MethodNotAllowed)
	registerGET(mux, "/matchDetails", handler.GetMatchDetails, handler.MethodNotAllowed)

	// Paths of the original serverless deployment.
	registerGET(mux, "/.netlify/functions/getMatches", handler.ListMatches, handler.MethodNotAllowed)
	registerGET(mux, "/.netlify/functions/getMatchDetails", handler.GetMatchDetails, handler.MethodNotAllowed)
}

// registerGET mounts get on path and answers every other method with
// notAllowed. Preflight is handled by CORS before the mux.
func registerGET(mux *http.ServeMux, path string, get, notAllowed http.HandlerFunc) {
	mux.HandleFunc("GET "+path, get)
	mux.HandleFunc(path, notAllowed)
}
