package handlers

import (
	"net/http"

	"github.com/clinichq/clinic-scheduler/internal/clinic"
	"github.com/clinichq/clinic-scheduler/internal/scheduler"
	"github.com/clinichq/clinic-scheduler/pkg/logging"
)

// ReportsHandler serves the schedule views, billing reports, and the
// reference lists the booking UI populates its dropdowns from.
type ReportsHandler struct {
	svc    *scheduler.Service
	logger *logging.Logger
}

// NewReportsHandler creates a reports handler over the engine.
func NewReportsHandler(svc *scheduler.Service, logger *logging.Logger) *ReportsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportsHandler{svc: svc, logger: logger}
}

// ListTimeslots handles GET /timeslots.
func (h *ReportsHandler) ListTimeslots(w http.ResponseWriter, r *http.Request) {
	slots := clinic.Timeslots()
	out := make([]map[string]any, 0, len(slots))
	for i, slot := range slots {
		out = append(out, map[string]any{
			"number": i + 1,
			"time":   slot.String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"timeslots": out})
}

// ListProviders handles GET /providers.
func (h *ReportsHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"providers": h.svc.ProviderList()})
}

// ListLocations handles GET /locations.
func (h *ReportsHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations := clinic.Locations()
	out := make([]map[string]string, 0, len(locations))
	for _, loc := range locations {
		out = append(out, map[string]string{
			"city":   loc.City(),
			"county": loc.County(),
			"zip":    loc.Zip(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": out})
}

// ListAppointments handles GET /appointments. The sort query parameter
// picks the ordering (date, patient, location; date when absent); kind
// narrows the view to office or imaging visits, both of which render in
// location order.
func (h *ReportsHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	var lines []string
	if kind := r.URL.Query().Get("kind"); kind != "" {
		switch kind {
		case "office":
			lines = h.svc.OfficeAppointments()
		case "imaging":
			lines = h.svc.ImagingAppointments()
		default:
			http.Error(w, "unknown kind, want office or imaging", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"appointments": lines})
		return
	}

	switch sort := r.URL.Query().Get("sort"); sort {
	case "", "date":
		lines = h.svc.AppointmentsByDate()
	case "patient":
		lines = h.svc.AppointmentsByPatient()
	case "location":
		lines = h.svc.AppointmentsByLocation()
	default:
		http.Error(w, "unknown sort, want date, patient, or location", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointments": lines})
}

// BillingStatements handles GET /billing/statements.
func (h *ReportsHandler) BillingStatements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"statements": h.svc.BillingStatements()})
}

// ProviderCredits handles GET /billing/credits.
func (h *ReportsHandler) ProviderCredits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"credits": h.svc.ProviderCredits()})
}
