package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/limelight-casting/limelight/internal/geocode"
	"github.com/limelight-casting/limelight/internal/recommend"
	"github.com/limelight-casting/limelight/internal/store"
)

type ViewsHandler struct {
	recommend *recommend.Service
	geocoder  geocode.Client
	fallback  geocode.Point
	logger    *slog.Logger
}

func NewViewsHandler(svc *recommend.Service, g geocode.Client, fallback geocode.Point, logger *slog.Logger) *ViewsHandler {
	return &ViewsHandler{recommend: svc, geocoder: g, fallback: fallback, logger: logger}
}

// referencePoint resolves the viewer's reference coordinates from the query:
// explicit lat/lon first, then a geocoded location string, then the
// configured fallback point.
func (h *ViewsHandler) referencePoint(r *http.Request) (*store.Coordinates, error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr != "" || lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			return nil, errors.New("lat and lon must both be valid numbers")
		}
		return &store.Coordinates{Latitude: lat, Longitude: lon}, nil
	}

	if location := r.URL.Query().Get("location"); location != "" && h.geocoder != nil {
		point, err := h.geocoder.Forward(r.Context(), location)
		if err != nil {
			h.logger.Warn("reference geocoding failed, using fallback point", "location", location, "error", err)
			point = &h.fallback
		}
		coords := point.Coordinates
		return &coords, nil
	}

	coords := h.fallback.Coordinates
	return &coords, nil
}

// Locate resolves a reference point without ranking anything: lat/lon are
// reverse geocoded to a display name, a location string is forward geocoded.
func (h *ViewsHandler) Locate(w http.ResponseWriter, r *http.Request) {
	if h.geocoder == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "geocoder not configured"})
		return
	}

	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr != "" || lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lon must both be valid numbers"})
			return
		}
		point, err := h.geocoder.Reverse(r.Context(), lat, lon)
		if err != nil {
			h.logger.Warn("reverse geocoding failed", "lat", lat, "lon", lon, "error", err)
			point = &geocode.Point{Coordinates: store.Coordinates{Latitude: lat, Longitude: lon}, Name: h.fallback.Name}
		}
		writeJSON(w, http.StatusOK, point)
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat/lon or location required"})
		return
	}
	point, err := h.geocoder.Forward(r.Context(), location)
	if errors.Is(err, geocode.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, point)
}

func (h *ViewsHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	ref, err := h.referencePoint(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ranked, err := h.recommend.Nearby(r.Context(), ref)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (h *ViewsHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}

	recommended, err := h.recommend.Recommended(r.Context(), viewer)
	if errors.Is(err, recommend.ErrOrganizerViewer) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if recommended == nil {
		recommended = []*store.Audition{}
	}
	writeJSON(w, http.StatusOK, recommended)
}

func (h *ViewsHandler) Views(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}
	ref, err := h.referencePoint(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	views, err := h.recommend.ViewsFor(r.Context(), viewer, ref)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, views)
}
