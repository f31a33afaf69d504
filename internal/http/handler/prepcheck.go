package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"prepcheck/internal/core"
	"prepcheck/internal/http/handler/middleware"
	"prepcheck/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register    = "POST /register"
	Login       = "POST /login"
	Logout      = "POST /logout"
	AddPatient  = "POST /patients"
	GetPatients = "GET /patients"
	AddStaff    = "POST /staff"
	GetStaff    = "GET /staff"
	GetUsers    = "GET /users"
)

type PrepCheckHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	prepCheck        RecordService
}

func NewPrepCheckHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, recordService RecordService) *PrepCheckHandler {
	return &PrepCheckHandler{
		logs:             logger,
		requestValidator: requestValidator,
		prepCheck:        recordService,
	}
}

func (h *PrepCheckHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Registration failed", err, Register, requestId)
		return
	}

	user, err := h.prepCheck.Register(r.Context(), payload.ToCoreAuthMessage())
	if err != nil {
		h.fail(w, "Registration failed", err, Register, requestId)
		return
	}

	h.logs.Infow("user registered",
		"user_id", user.ID,
		"handler", Register,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "User registered successfully!",
		Data:    user,
	}, http.StatusCreated, requestId)
}

func (h *PrepCheckHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Login failed", err, Login, requestId)
		return
	}

	token, err := h.prepCheck.Authenticate(r.Context(), payload.ToCoreAuthMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Login, requestId)
		return
	}

	h.respond(w, TokenResponse{AccessToken: token}, http.StatusOK, requestId)
}

// HandleLogout only acknowledges the request. Issued tokens stay valid until
// they expire.
func (h *PrepCheckHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	identity, _ := core.IdentityFromContext(r.Context())
	h.logs.Infow("user logged out",
		"username", identity.Username,
		"handler", Logout,
		"request_id", requestId)

	h.respond(w, Response{Message: "Logged out!"}, http.StatusOK, requestId)
}

func (h *PrepCheckHandler) HandleAddPatient(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.PatientRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.internalError(w, "Could not add patient", err, AddPatient, requestId)
		return
	}

	patient, err := h.prepCheck.AddPatient(r.Context(), payload.ToCorePatientMessage())
	if err != nil {
		h.internalError(w, "Could not add patient", err, AddPatient, requestId)
		return
	}

	h.respond(w, patient, http.StatusCreated, requestId)
}

func (h *PrepCheckHandler) HandleGetPatients(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	patients, err := h.prepCheck.ListPatients(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve patients", err, GetPatients, requestId)
		return
	}

	h.respond(w, patients, http.StatusOK, requestId)
}

func (h *PrepCheckHandler) HandleAddStaff(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var payload payload.StaffRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.internalError(w, "Could not add staff", err, AddStaff, requestId)
		return
	}

	staff, err := h.prepCheck.AddStaff(r.Context(), payload.ToCoreStaffMessage())
	if err != nil {
		h.internalError(w, "Could not add staff", err, AddStaff, requestId)
		return
	}

	h.respond(w, staff, http.StatusCreated, requestId)
}

func (h *PrepCheckHandler) HandleGetStaff(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	staff, err := h.prepCheck.ListStaff(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve staff", err, GetStaff, requestId)
		return
	}

	h.respond(w, staff, http.StatusOK, requestId)
}

func (h *PrepCheckHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	users, err := h.prepCheck.ListUsers(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve users", err, GetUsers, requestId)
		return
	}

	h.respond(w, users, http.StatusOK, requestId)
}

func (h *PrepCheckHandler) badRequest(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Warnw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// fail maps core errors to client errors. Anything unrecognised is answered
// with a generic 500.
func (h *PrepCheckHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	resp := Response{
		Message: message,
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrValidation):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, core.ErrDuplicateUsername):
		httpCode = http.StatusBadRequest
		resp.Error = core.ErrDuplicateUsername.Error()
	case errors.Is(err, core.ErrInvalidCredentials):
		httpCode = http.StatusUnauthorized
		resp.Error = core.ErrInvalidCredentials.Error()
	case errors.Is(err, core.ErrUnauthorized):
		httpCode = http.StatusUnauthorized
		resp.Error = core.ErrUnauthorized.Error()
	default:
		h.internalError(w, message, err, route, requestId)
		return
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Warnw("request rejected",
		"error", err,
		"status", httpCode,
		"handler", route,
		"request_id", requestId)
}

// internalError answers with the generic 500 body. The record routes send
// every failure, malformed input included, through here.
func (h *PrepCheckHandler) internalError(w http.ResponseWriter, message string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   unexpectedErr,
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", http.StatusInternalServerError,
		"handler", route,
		"request_id", requestId)
}

func (h *PrepCheckHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
