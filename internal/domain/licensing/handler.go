package licensing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dog-licensing/internal/domain/dogs"
	"dog-licensing/internal/domain/owners"
	"dog-licensing/internal/middleware"
	"dog-licensing/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/registrations", registerDogHandler(svc))
	r.Get("/me/dogs", listMyDogsHandler(svc))

	r.Route("/licenses", func(lr chi.Router) {
		lr.Post("/{licenseID}/renew", renewLicenseHandler(svc))

		// Consulta pública por número de chapita (no requiere identidad).
		lr.Get("/number/{licenseNumber}", lookupLicenseHandler(svc))
	})
}

type dogRequest struct {
	Name            string  `json:"name"`
	Breed           string  `json:"breed"`
	Color           string  `json:"color"`
	Age             int     `json:"age"`
	Weight          float64 `json:"weight"`
	Sex             string  `json:"sex"`
	SpayedNeutered  bool    `json:"spayed_neutered"`
	MicrochipNumber string  `json:"microchip_number"`
}

type ownerRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	ZipCode          string `json:"zip_code"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
}

type vaccinationRequest struct {
	RabiesVaccinationDate       string `json:"rabies_vaccination_date"`       // YYYY-MM-DD
	RabiesVaccinationExpiration string `json:"rabies_vaccination_expiration"` // YYYY-MM-DD
	VeterinarianName            string `json:"veterinarian_name"`
	VeterinarianPhone           string `json:"veterinarian_phone"`
}

type registerRequest struct {
	Dog         dogRequest         `json:"dog"`
	Owner       ownerRequest       `json:"owner"`
	Vaccination vaccinationRequest `json:"vaccination"`
}

type registerResponse struct {
	DogID         string `json:"dog_id"`
	LicenseID     string `json:"license_id"`
	LicenseNumber string `json:"license_number"`
}

type licenseResponse struct {
	ID            string `json:"id"`
	LicenseNumber string `json:"license_number"`
	DogID         string `json:"dog_id"`

	IssueDate      time.Time `json:"issue_date"`
	ExpirationDate time.Time `json:"expiration_date"`
	Fee            int       `json:"fee"`
	Status         Status    `json:"status"`

	RabiesVaccinationDate       time.Time `json:"rabies_vaccination_date"`
	RabiesVaccinationExpiration time.Time `json:"rabies_vaccination_expiration"`
	VeterinarianName            string    `json:"veterinarian_name"`
	VeterinarianPhone           string    `json:"veterinarian_phone"`

	// Derivados de expiration_date al momento de la consulta; el status
	// guardado no cambia solo.
	Expired     bool `json:"expired"`
	ExpiresSoon bool `json:"expires_soon"`
	Renewable   bool `json:"renewable"`
}

type dogWithLicenseResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Breed           string  `json:"breed"`
	Color           string  `json:"color"`
	Age             int     `json:"age"`
	Weight          float64 `json:"weight"`
	Sex             string  `json:"sex"`
	SpayedNeutered  bool    `json:"spayed_neutered"`
	MicrochipNumber string  `json:"microchip_number,omitempty"`

	License *licenseResponse `json:"license,omitempty"`
}

type renewResponse struct {
	Success bool `json:"success"`
}

// registerDogHandler da de alta perro + perfil + licencia en un solo POST.
//
// @Summary      Registrar un perro y emitir su licencia
// @Tags         licensing
// @Accept       json
// @Produce      json
// @Param        payload body registerRequest true "datos de perro, dueño y vacuna"
// @Success      201 {object} registerResponse
// @Failure      400 {string} string "payload inválido"
// @Failure      401 {string} string "sin identidad"
// @Router       /registrations [post]
func registerDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		vacc, err := toVaccinationInput(req.Vaccination)
		if err != nil {
			http.Error(w, "vaccination dates must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		res, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			Dog:         toDogCreateInput(req.Dog),
			Owner:       toOwnerUpsertInput(req.Owner),
			Vaccination: vacc,
		})
		if err != nil {
			metrics.ObserveRegistration("error")
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		metrics.ObserveRegistration("ok")
		writeJSON(w, http.StatusCreated, registerResponse{
			DogID:         res.DogID,
			LicenseID:     res.LicenseID,
			LicenseNumber: res.LicenseNumber,
		})
	}
}

// listMyDogsHandler lista los perros del usuario con su licencia embebida.
// Sin identidad responde 200 con lista vacía (no es error).
//
// @Summary      Mis perros registrados
// @Tags         licensing
// @Produce      json
// @Success      200 {array} dogWithLicenseResponse
// @Router       /me/dogs [get]
func listMyDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeJSON(w, http.StatusOK, []dogWithLicenseResponse{})
			return
		}

		items, err := svc.ListMyDogs(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		out := make([]dogWithLicenseResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toDogWithLicenseResponse(it, now))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// renewLicenseHandler re-estampa la licencia en el lugar. Not-found y
// not-owned responden lo mismo (404).
//
// @Summary      Renovar una licencia
// @Tags         licensing
// @Accept       json
// @Produce      json
// @Param        licenseID path string true "ID de la licencia"
// @Param        payload body vaccinationRequest true "vacuna y veterinario"
// @Success      200 {object} renewResponse
// @Failure      401 {string} string "sin identidad"
// @Failure      404 {string} string "licencia o perro inexistente"
// @Router       /licenses/{licenseID}/renew [post]
func renewLicenseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		licenseID := chi.URLParam(r, "licenseID")

		var req vaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		vacc, err := toVaccinationInput(req)
		if err != nil {
			http.Error(w, "vaccination dates must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if err := svc.Renew(r.Context(), claims.UserID, licenseID, vacc); err != nil {
			metrics.ObserveRenewal("error")
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "license not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		metrics.ObserveRenewal("ok")
		writeJSON(w, http.StatusOK, renewResponse{Success: true})
	}
}

type lookupResponse struct {
	LicenseNumber  string    `json:"license_number"`
	Status         Status    `json:"status"`
	ExpirationDate time.Time `json:"expiration_date"`
	Expired        bool      `json:"expired"`
}

// lookupLicenseHandler permite verificar una chapita sin autenticarse.
// Expone lo mínimo: número, status y vigencia.
//
// @Summary      Verificar una licencia por número
// @Tags         licensing
// @Produce      json
// @Param        licenseNumber path string true "número impreso en la chapita"
// @Success      200 {object} lookupResponse
// @Failure      404 {string} string "licencia inexistente"
// @Router       /licenses/number/{licenseNumber} [get]
func lookupLicenseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "licenseNumber")

		lic, err := svc.LookupByNumber(r.Context(), number)
		if err != nil {
			http.Error(w, "license not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, lookupResponse{
			LicenseNumber:  lic.LicenseNumber,
			Status:         lic.Status,
			ExpirationDate: lic.ExpirationDate,
			Expired:        IsExpired(lic, time.Now()),
		})
	}
}

func toVaccinationInput(req vaccinationRequest) (VaccinationInput, error) {
	parse := func(s string) (time.Time, error) {
		return time.Parse("2006-01-02", strings.TrimSpace(s))
	}

	var out VaccinationInput
	var err error

	if strings.TrimSpace(req.RabiesVaccinationDate) != "" {
		if out.RabiesVaccinationDate, err = parse(req.RabiesVaccinationDate); err != nil {
			return VaccinationInput{}, err
		}
	}
	if strings.TrimSpace(req.RabiesVaccinationExpiration) != "" {
		if out.RabiesVaccinationExpiration, err = parse(req.RabiesVaccinationExpiration); err != nil {
			return VaccinationInput{}, err
		}
	}

	out.VeterinarianName = req.VeterinarianName
	out.VeterinarianPhone = req.VeterinarianPhone
	return out, nil
}

func toDogCreateInput(req dogRequest) dogs.CreateInput {
	return dogs.CreateInput{
		Name:            req.Name,
		Breed:           req.Breed,
		Color:           req.Color,
		Age:             req.Age,
		Weight:          req.Weight,
		Sex:             req.Sex,
		SpayedNeutered:  req.SpayedNeutered,
		MicrochipNumber: req.MicrochipNumber,
	}
}

func toOwnerUpsertInput(req ownerRequest) owners.UpsertInput {
	return owners.UpsertInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}
}

func toLicenseResponse(l License, now time.Time) licenseResponse {
	return licenseResponse{
		ID:                          l.ID,
		LicenseNumber:               l.LicenseNumber,
		DogID:                       l.DogID,
		IssueDate:                   l.IssueDate,
		ExpirationDate:              l.ExpirationDate,
		Fee:                         l.Fee,
		Status:                      l.Status,
		RabiesVaccinationDate:       l.RabiesVaccinationDate,
		RabiesVaccinationExpiration: l.RabiesVaccinationExpiration,
		VeterinarianName:            l.VeterinarianName,
		VeterinarianPhone:           l.VeterinarianPhone,
		Expired:                     IsExpired(l, now),
		ExpiresSoon:                 IsExpiringSoon(l, now),
		Renewable:                   Renewable(l, now),
	}
}

func toDogWithLicenseResponse(it DogWithLicense, now time.Time) dogWithLicenseResponse {
	out := dogWithLicenseResponse{
		ID:              it.Dog.ID,
		Name:            it.Dog.Name,
		Breed:           it.Dog.Breed,
		Color:           it.Dog.Color,
		Age:             it.Dog.Age,
		Weight:          it.Dog.Weight,
		Sex:             string(it.Dog.Sex),
		SpayedNeutered:  it.Dog.SpayedNeutered,
		MicrochipNumber: it.Dog.MicrochipNumber,
	}
	if it.License != nil {
		lr := toLicenseResponse(*it.License, now)
		out.License = &lr
	}
	return out
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (owners/licensing) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
