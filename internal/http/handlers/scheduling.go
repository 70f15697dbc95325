// Package handlers exposes the scheduling engine over JSON/HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clinichq/clinic-scheduler/internal/clinic"
	"github.com/clinichq/clinic-scheduler/internal/scheduler"
	"github.com/clinichq/clinic-scheduler/pkg/logging"
)

// SchedulingHandler serves the booking, cancel, and reschedule
// endpoints.
type SchedulingHandler struct {
	svc    *scheduler.Service
	logger *logging.Logger
}

// NewSchedulingHandler creates a scheduling handler over the engine.
func NewSchedulingHandler(svc *scheduler.Service, logger *logging.Logger) *SchedulingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SchedulingHandler{svc: svc, logger: logger}
}

type patientPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

type officeRequest struct {
	NPI      string         `json:"npi"`
	Date     string         `json:"date"`
	Timeslot int            `json:"timeslot"`
	Patient  patientPayload `json:"patient"`
}

type imagingRequest struct {
	Room     string         `json:"room"`
	Date     string         `json:"date"`
	Timeslot int            `json:"timeslot"`
	Patient  patientPayload `json:"patient"`
}

type cancelRequest struct {
	Date     string         `json:"date"`
	Timeslot int            `json:"timeslot"`
	Patient  patientPayload `json:"patient"`
}

type rescheduleRequest struct {
	Date        string         `json:"date"`
	OldTimeslot int            `json:"old_timeslot"`
	NewTimeslot int            `json:"new_timeslot"`
	Patient     patientPayload `json:"patient"`
}

type appointmentResponse struct {
	Description string `json:"description"`
	Date        string `json:"date"`
	Timeslot    string `json:"timeslot"`
	Patient     string `json:"patient"`
	Provider    string `json:"provider"`
	Room        string `json:"room,omitempty"`
}

func newAppointmentResponse(verb string, appt *clinic.Appointment) appointmentResponse {
	resp := appointmentResponse{
		Description: appt.String() + " " + verb + ".",
		Date:        appt.Date.String(),
		Timeslot:    appt.Slot.String(),
		Patient:     appt.Patient.String(),
		Provider:    appt.Provider.String(),
	}
	if appt.Room != nil {
		resp.Room = appt.Room.String()
	}
	return resp
}

// HealthCheck handles GET /health.
func (h *SchedulingHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BookOffice handles POST /appointments/office.
func (h *SchedulingHandler) BookOffice(w http.ResponseWriter, r *http.Request) {
	var req officeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	date, slot, patient, ok := h.parseVisit(w, req.Date, req.Timeslot, req.Patient)
	if !ok {
		return
	}

	appt, err := h.svc.ScheduleOffice(req.NPI, date, slot, patient)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newAppointmentResponse("booked", appt))
}

// BookImaging handles POST /appointments/imaging.
func (h *SchedulingHandler) BookImaging(w http.ResponseWriter, r *http.Request) {
	var req imagingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	room, err := clinic.ParseRadiology(req.Room)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, slot, patient, ok := h.parseVisit(w, req.Date, req.Timeslot, req.Patient)
	if !ok {
		return
	}

	appt, err := h.svc.ScheduleImaging(room, date, slot, patient)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newAppointmentResponse("booked", appt))
}

// Cancel handles POST /appointments/cancel. Cancelling only needs the
// slot key, so the appointment date and patient dob are parsed but not
// re-validated against the booking rules.
func (h *SchedulingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	date, slot, patient, ok := h.parseSlotKey(w, req.Date, req.Timeslot, req.Patient)
	if !ok {
		return
	}

	appt, err := h.svc.Cancel(date, slot, patient)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAppointmentResponse("canceled", appt))
}

// Reschedule handles POST /appointments/reschedule.
func (h *SchedulingHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	date, oldSlot, patient, ok := h.parseSlotKey(w, req.Date, req.OldTimeslot, req.Patient)
	if !ok {
		return
	}
	newSlot, err := clinic.TimeslotByNumber(req.NewTimeslot)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	appt, err := h.svc.Reschedule(date, oldSlot, patient, newSlot)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAppointmentResponse("rescheduled", appt))
}

// parseVisit decodes and fully validates the fields of a new booking:
// the appointment date must pass the booking rules and the patient dob
// the birth-date rules. On failure it writes the 400 and returns ok
// false.
func (h *SchedulingHandler) parseVisit(w http.ResponseWriter, rawDate string, slotNum int, p patientPayload) (clinic.Date, clinic.Timeslot, clinic.Profile, bool) {
	date, slot, patient, ok := h.parseSlotKey(w, rawDate, slotNum, p)
	if !ok {
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	if err := clinic.ValidateAppointmentDate(date); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	if err := clinic.ValidateBirthDate(patient.DOB); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	return date, slot, patient, true
}

// parseSlotKey decodes the date, timeslot, and patient identity without
// applying the booking-date rules.
func (h *SchedulingHandler) parseSlotKey(w http.ResponseWriter, rawDate string, slotNum int, p patientPayload) (clinic.Date, clinic.Timeslot, clinic.Profile, bool) {
	date, err := clinic.ParseDate(rawDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	slot, err := clinic.TimeslotByNumber(slotNum)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	if p.FirstName == "" || p.LastName == "" {
		http.Error(w, "missing patient name", http.StatusBadRequest)
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	dob, err := clinic.ParseDate(p.DOB)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return clinic.Date{}, clinic.Timeslot{}, clinic.Profile{}, false
	}
	return date, slot, clinic.NewProfile(p.FirstName, p.LastName, dob), true
}

func (h *SchedulingHandler) writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scheduler.ErrProviderNotFound),
		errors.Is(err, scheduler.ErrAppointmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, scheduler.ErrDuplicateBooking),
		errors.Is(err, scheduler.ErrProviderBusy),
		errors.Is(err, scheduler.ErrNoTechnicianAvailable):
		status = http.StatusConflict
	}
	h.logger.Warn("scheduling operation rejected", "error", err.Error(), "status", status)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
