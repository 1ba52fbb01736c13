package owners

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"dog-licensing/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/owner", getOwnerProfileHandler(svc))
}

type ownerResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Phone     string `json:"phone"`

	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// getOwnerProfileHandler devuelve el perfil del usuario autenticado.
// Sin identidad o sin perfil registrado responde 200 con null (no es error).
//
// @Summary      Perfil del dueño
// @Tags         owners
// @Produce      json
// @Success      200 {object} ownerResponse
// @Router       /me/owner [get]
func getOwnerProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		o, err := svc.GetByUser(r.Context(), claims.UserID)
		if err != nil {
			// ausente == null, igual que sin identidad
			writeJSON(w, http.StatusOK, nil)
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		FirstName:        o.FirstName,
		LastName:         o.LastName,
		Address:          o.Address,
		City:             o.City,
		State:            o.State,
		ZipCode:          o.ZipCode,
		Phone:            o.Phone,
		EmergencyContact: o.EmergencyContact,
		EmergencyPhone:   o.EmergencyPhone,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (owners/licensing) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
