package handler

import (
	"net/http"
	"prepcheck/internal/http/handler/middleware"
)

// RegisterRoutes mounts every endpoint on mux. Everything except register and
// login requires a bearer token.
func RegisterRoutes(mux *http.ServeMux, h *PrepCheckHandler, auth *middleware.AuthMiddleware) {
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)

	mux.Handle(Logout, auth.Authenticate(http.HandlerFunc(h.HandleLogout)))
	mux.Handle(AddPatient, auth.Authenticate(http.HandlerFunc(h.HandleAddPatient)))
	mux.Handle(GetPatients, auth.Authenticate(http.HandlerFunc(h.HandleGetPatients)))
	mux.Handle(AddStaff, auth.Authenticate(http.HandlerFunc(h.HandleAddStaff)))
	mux.Handle(GetStaff, auth.Authenticate(http.HandlerFunc(h.HandleGetStaff)))
	mux.Handle(GetUsers, auth.Authenticate(http.HandlerFunc(h.HandleGetUsers)))
}
