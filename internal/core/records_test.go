package core_test

import (
	"context"
	"errors"
	"prepcheck/internal/core"
	"prepcheck/internal/core/fake"
	"prepcheck/internal/repository"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Records", func() {
	var (
		fakeRepo  *fake.Repository
		ctx       context.Context
		prepCheck *core.PrepCheck
		fakeErr   error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		ctx = core.ContextWithIdentity(context.Background(), core.Identity{Username: "alice"})
		prepCheck = core.NewPrepCheck(zap.NewNop().Sugar(), fakeRepo, new(fake.JWTIssuer), time.Minute)
		fakeErr = errors.New("fake error")
	})

	Describe("AddPatient", func() {
		var (
			msg     core.PatientMessage
			patient core.PatientRecord
			err     error
		)

		BeforeEach(func() {
			msg = core.PatientMessage{
				Name:        "John Doe",
				SurgeryDate: "2024-02-29",
			}
			fakeRepo.CreatePatientStub = func(ctx context.Context, p repository.Patient) (repository.Patient, error) {
				p.ID = 42
				return p, nil
			}
		})

		JustBeforeEach(func() {
			patient, err = prepCheck.AddPatient(ctx, msg)
		})

		When("the fields are valid", func() {
			It("should store the parsed date and default the history to empty", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(patient).To(Equal(core.PatientRecord{
					ID:             42,
					Name:           "John Doe",
					MedicalHistory: "",
					SurgeryDate:    "2024-02-29",
				}))

				_, stored := fakeRepo.CreatePatientArgsForCall(0)
				Expect(stored.SurgeryDate).To(Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
			})
		})

		When("the surgery date is not a calendar date", func() {
			BeforeEach(func() {
				msg.SurgeryDate = "2024-02-30"
			})

			It("should fail validation and create nothing", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreatePatientCallCount()).To(Equal(0))
			})
		})

		When("the surgery date has the wrong layout", func() {
			BeforeEach(func() {
				msg.SurgeryDate = "03/01/2024"
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreatePatientCallCount()).To(Equal(0))
			})
		})

		When("the name is blank", func() {
			BeforeEach(func() {
				msg.Name = "  "
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreatePatientCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreatePatientReturns(repository.Patient{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrValidation))
			})
		})
	})

	Describe("ListPatients", func() {
		It("should keep store order and format dates", func() {
			fakeRepo.ListPatientsReturns([]repository.Patient{
				{ID: 1, Name: "A", SurgeryDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
				{ID: 2, Name: "B", MedicalHistory: "asthma", SurgeryDate: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
			}, nil)

			patients, err := prepCheck.ListPatients(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(patients).To(Equal([]core.PatientRecord{
				{ID: 1, Name: "A", SurgeryDate: "2024-05-02"},
				{ID: 2, Name: "B", MedicalHistory: "asthma", SurgeryDate: "2024-01-09"},
			}))
		})

		It("should return an empty slice when there are no patients", func() {
			fakeRepo.ListPatientsReturns([]repository.Patient{}, nil)

			patients, err := prepCheck.ListPatients(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(patients).NotTo(BeNil())
			Expect(patients).To(BeEmpty())
		})

		It("should return the error when the store fails", func() {
			fakeRepo.ListPatientsReturns(nil, fakeErr)

			_, err := prepCheck.ListPatients(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("AddStaff", func() {
		var (
			msg   core.StaffMessage
			staff core.StaffRecord
			err   error
		)

		BeforeEach(func() {
			msg = core.StaffMessage{
				Name:        "Dr. Grey",
				Role:        "Surgeon",
				Credentials: "MD, FACS",
			}
			fakeRepo.CreateStaffStub = func(ctx context.Context, s repository.Staff) (repository.Staff, error) {
				s.ID = 7
				return s, nil
			}
		})

		JustBeforeEach(func() {
			staff, err = prepCheck.AddStaff(ctx, msg)
		})

		When("the fields are valid", func() {
			It("should return the stored staff member", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(staff).To(Equal(core.StaffRecord{
					ID:          7,
					Name:        "Dr. Grey",
					Role:        "Surgeon",
					Credentials: "MD, FACS",
				}))
			})
		})

		When("role and credentials are missing", func() {
			BeforeEach(func() {
				msg.Role = ""
				msg.Credentials = ""
			})

			It("should name the missing fields", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(err.Error()).To(ContainSubstring("role, credentials"))
				Expect(fakeRepo.CreateStaffCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateStaffReturns(repository.Staff{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListStaff", func() {
		It("should return every staff member", func() {
			fakeRepo.ListStaffReturns([]repository.Staff{
				{ID: 1, Name: "Dr. Grey", Role: "Surgeon", Credentials: "MD"},
			}, nil)

			staff, err := prepCheck.ListStaff(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(staff).To(ConsistOf(core.StaffRecord{ID: 1, Name: "Dr. Grey", Role: "Surgeon", Credentials: "MD"}))
		})

		It("should return the error when the store fails", func() {
			fakeRepo.ListStaffReturns(nil, fakeErr)

			_, err := prepCheck.ListStaff(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
