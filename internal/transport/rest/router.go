package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Dashboard  *DashboardHandler
	Attendance *AttendanceHandler
	Finance    *FinanceHandler
	Staff      *StaffHandler
	Profile    *ProfileHandler
	Health     *HealthHandler
}

// NewRouter builds the route table. Middleware is applied by the caller
// around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)

	mux.HandleFunc("GET /api/dashboard", h.Dashboard.Overview)

	mux.HandleFunc("GET /api/attendance", h.Attendance.Board)
	mux.HandleFunc("POST /api/attendance/sign-in", h.Attendance.SignIn)
	mux.HandleFunc("POST /api/attendance/sign-out", h.Attendance.SignOut)

	mux.HandleFunc("GET /api/finance", h.Finance.Get)
	mux.HandleFunc("PUT /api/finance", h.Finance.Upsert)

	mux.HandleFunc("GET /api/staff", h.Staff.List)
	mux.HandleFunc("POST /api/staff", h.Staff.Add)
	mux.HandleFunc("POST /api/staff/{id}/deactivate", h.Staff.Deactivate)
	mux.HandleFunc("GET /api/staff/{id}/attendance", h.Attendance.History)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)
	mux.HandleFunc("PUT /api/profile", h.Profile.Save)
	mux.HandleFunc("GET /api/me/role", h.Profile.Role)
	mux.HandleFunc("GET /api/me/is-admin", h.Profile.IsAdmin)
	mux.HandleFunc("POST /api/admin/roles", h.Profile.AssignRole)

	return mux
}
