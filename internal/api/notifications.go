package api

import (
	"net/http"

	"github.com/limelight-casting/limelight/internal/store"
)

const notificationLimit = 50

type NotificationsHandler struct {
	store store.Store
}

func NewNotificationsHandler(s store.Store) *NotificationsHandler {
	return &NotificationsHandler{store: s}
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}

	notifications, err := h.store.ListNotificationsForUser(r.Context(), viewer.ID, notificationLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if notifications == nil {
		notifications = []*store.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}
