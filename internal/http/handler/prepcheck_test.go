package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"prepcheck/internal/core"
	"prepcheck/internal/http/handler"
	"prepcheck/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("PrepCheckHandler", func() {
	var (
		ph            *handler.PrepCheckHandler
		fakeService   *fake.RecordService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.RecordService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, jsonPayload any) error {
			return json.NewDecoder(r.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ph = handler.NewPrepCheckHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/register", strings.NewReader(`{"username":"alice","password":"correct"}`))
			fakeService.RegisterReturns(core.UserRecord{ID: 1, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with a message", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("User registered successfully!"))
				Expect(w.Body.String()).NotTo(ContainSubstring("correct"))

				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "correct"}))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, core.ErrDuplicateUsername)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("username already exists"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, fmt.Errorf("create user: %w", fakeErr))
			})

			It("should return a generic 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var response map[string]string

		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice","password":"correct"}`))
			fakeService.AuthenticateReturns("test-token", nil)
		})

		JustBeforeEach(func() {
			ph.HandleLogin(w, req)
		})

		When("authentication succeeds", func() {
			It("should return the access token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["access_token"]).To(Equal("test-token"))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrInvalidCredentials)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("invalid credentials"))
			})
		})

		When("fields are missing", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLogout", func() {
		It("should acknowledge", func() {
			req = httptest.NewRequest("POST", "/logout", nil)
			ph.HandleLogout(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Logged out!"))
		})
	})

	Describe("HandleAddPatient", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/patients", strings.NewReader(`{"name":"John Doe","surgery_date":"2024-03-01"}`))
			fakeService.AddPatientReturns(core.PatientRecord{
				ID:          1,
				Name:        "John Doe",
				SurgeryDate: "2024-03-01",
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleAddPatient(w, req)
		})

		When("the patient is stored", func() {
			It("should return 201 with the record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				var patient core.PatientRecord
				Expect(json.NewDecoder(w.Body).Decode(&patient)).To(Succeed())
				Expect(patient.ID).To(Equal(uint(1)))
				Expect(patient.MedicalHistory).To(BeEmpty())

				_, msg := fakeService.AddPatientArgsForCall(0)
				Expect(msg).To(Equal(core.PatientMessage{Name: "John Doe", SurgeryDate: "2024-03-01"}))
			})
		})

		When("the service rejects the fields", func() {
			BeforeEach(func() {
				fakeService.AddPatientReturns(core.PatientRecord{}, fmt.Errorf("%w: surgery_date", core.ErrValidation))
			})

			It("should return the generic 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring("surgery_date"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return the generic 500 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(fakeService.AddPatientCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AddPatientReturns(core.PatientRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetPatients", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/patients", nil)
			ph.HandleGetPatients(w, req)
		})

		When("there are no patients", func() {
			BeforeEach(func() {
				fakeService.ListPatientsReturns([]core.PatientRecord{}, nil)
			})

			It("should return an empty json array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListPatientsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleAddStaff", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/staff", strings.NewReader(`{"name":"Dr. Grey","role":"Surgeon","credentials":"MD"}`))
			fakeService.AddStaffReturns(core.StaffRecord{ID: 2, Name: "Dr. Grey", Role: "Surgeon", Credentials: "MD"}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleAddStaff(w, req)
		})

		It("should return 201 with the staff member", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).To(ContainSubstring(`"role":"Surgeon"`))
		})

		When("fields are missing", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return the generic 500 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(fakeService.AddStaffCallCount()).To(Equal(0))
			})
		})

		When("the service rejects the fields", func() {
			BeforeEach(func() {
				fakeService.AddStaffReturns(core.StaffRecord{}, fmt.Errorf("%w: missing role", core.ErrValidation))
			})

			It("should return the generic 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring("missing role"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AddStaffReturns(core.StaffRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetStaff", func() {
		It("should return the staff list", func() {
			fakeService.ListStaffReturns([]core.StaffRecord{{ID: 1, Name: "Dr. Grey"}}, nil)
			ph.HandleGetStaff(w, httptest.NewRequest("GET", "/staff", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Dr. Grey"))
		})
	})

	Describe("HandleGetUsers", func() {
		It("should return ids and usernames", func() {
			fakeService.ListUsersReturns([]core.UserRecord{{ID: 1, Username: "alice"}}, nil)
			ph.HandleGetUsers(w, httptest.NewRequest("GET", "/users", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal(`[{"id":1,"username":"alice"}]`))
		})

		It("should return 500 when the service fails", func() {
			fakeService.ListUsersReturns(nil, fakeErr)
			ph.HandleGetUsers(w, httptest.NewRequest("GET", "/users", nil))
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("logging", func() {
		var logs *observer.ObservedLogs

		BeforeEach(func() {
			var observed zapcore.Core
			observed, logs = observer.New(zapcore.DebugLevel)
			ph = handler.NewPrepCheckHandler(zap.New(observed).Sugar(), fakeValidator, fakeService)
		})

		It("should log client errors as warnings", func() {
			fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			ph.HandleRegister(w, httptest.NewRequest("POST", "/register", strings.NewReader(`{}`)))
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			fakeService.AuthenticateReturns("", core.ErrInvalidCredentials)
			fakeValidator.DecodeJSONPayloadReturns(nil)
			ph.HandleLogin(httptest.NewRecorder(), httptest.NewRequest("POST", "/login", strings.NewReader(`{}`)))

			Expect(logs.FilterLevelExact(zapcore.WarnLevel).Len()).To(Equal(2))
			Expect(logs.FilterLevelExact(zapcore.ErrorLevel).Len()).To(Equal(0))
		})

		It("should log internal failures as errors", func() {
			fakeService.ListPatientsReturns(nil, fakeErr)
			ph.HandleGetPatients(w, httptest.NewRequest("GET", "/patients", nil))
			Expect(w.Code).To(Equal(http.StatusInternalServerError))

			entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("error", fakeErr.Error()))
		})
	})
})
