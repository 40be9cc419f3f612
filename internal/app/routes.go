package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Categories
	r.HandleFunc("/api/categories", deps.CategoryHandler.List).Methods("GET")

	// Day log
	r.HandleFunc("/api/daylog/{date}", deps.DayLogHandler.GetDay).Methods("GET")
	r.HandleFunc("/api/daylog/{date}/interval", deps.DayLogHandler.AddInterval).Methods("POST")
	r.HandleFunc("/api/daylog/{date}/interval/{index}", deps.DayLogHandler.UpdateInterval).Methods("PUT")
	r.HandleFunc("/api/daylog/{date}/interval/{index}", deps.DayLogHandler.DeleteInterval).Methods("DELETE")

	// Timeline
	r.HandleFunc("/api/timeline/week", deps.TimelineHandler.GetWeek).Methods("GET")
	r.HandleFunc("/api/timeline/{date}", deps.TimelineHandler.GetDay).Methods("GET")

	// Summary and advice
	r.HandleFunc("/api/summary", deps.HistoryHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/advice", deps.AdviceHandler.CreateAdvice).Methods("POST")

	// Profile
	r.HandleFunc("/api/profile", deps.ProfileHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/profile", deps.ProfileHandler.UpdateProfile).Methods("PUT")
}
