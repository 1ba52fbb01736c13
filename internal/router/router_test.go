package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dog-licensing/internal/router"
)

func TestHTTP_EndToEnd_RegistroYRenovacion(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Sin identidad: la lista responde vacía, no 401
	{
		st, body := doReq(t, ts.URL, "GET", "/me/dogs", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing without identity, got %d", st)
		}
		if strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty list, got %s", string(body))
		}
	}

	// 2) Sin identidad: registrar sí exige auth
	{
		st, _ := doReq(t, ts.URL, "POST", "/registrations", "", registrationPayload())
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 registering without identity, got %d", st)
		}
	}

	// 3) Alta completa
	var reg struct {
		DogID         string `json:"dog_id"`
		LicenseID     string `json:"license_id"`
		LicenseNumber string `json:"license_number"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/registrations", ownerID, registrationPayload())
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
		if err := json.Unmarshal(body, &reg); err != nil {
			t.Fatalf("invalid register response: %v", err)
		}
		if reg.DogID == "" || reg.LicenseID == "" {
			t.Fatalf("expected ids in response, got %+v", reg)
		}
		if !strings.HasPrefix(reg.LicenseNumber, "FC-") {
			t.Fatalf("unexpected license number %s", reg.LicenseNumber)
		}
	}

	// 4) La lista trae el perro con su licencia embebida
	{
		st, body := doReq(t, ts.URL, "GET", "/me/dogs", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}

		var items []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			License *struct {
				ID        string `json:"id"`
				Fee       int    `json:"fee"`
				Status    string `json:"status"`
				Expired   bool   `json:"expired"`
				Renewable bool   `json:"renewable"`
			} `json:"license"`
		}
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("invalid list response: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 dog, got %d", len(items))
		}
		if items[0].License == nil {
			t.Fatalf("expected embedded license")
		}
		if items[0].License.Fee != 25 {
			t.Fatalf("expected fee 25 for intact dog, got %d", items[0].License.Fee)
		}
		if items[0].License.Status != "active" {
			t.Fatalf("expected status active, got %s", items[0].License.Status)
		}
		if items[0].License.Expired || items[0].License.Renewable {
			t.Fatalf("fresh license should be neither expired nor renewable")
		}
	}

	// 5) Perfil del dueño
	{
		st, body := doReq(t, ts.URL, "GET", "/me/owner", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 profile, got %d", st)
		}
		var profile struct {
			FirstName string `json:"first_name"`
		}
		if err := json.Unmarshal(body, &profile); err != nil {
			t.Fatalf("invalid profile response: %v", err)
		}
		if profile.FirstName != "Ana" {
			t.Fatalf("expected profile first_name Ana, got %q", profile.FirstName)
		}
	}

	// 6) Sin identidad el perfil es null
	{
		st, body := doReq(t, ts.URL, "GET", "/me/owner", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for anonymous profile, got %d", st)
		}
		if strings.TrimSpace(string(body)) != "null" {
			t.Fatalf("expected null profile, got %s", string(body))
		}
	}

	// 7) Renovar una licencia ajena responde 404 (no revela ownership)
	{
		st, _ := doReq(t, ts.URL, "POST", "/licenses/"+reg.LicenseID+"/renew", strangerID, renewalPayload())
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 renewing foreign license, got %d", st)
		}
	}

	// 8) El dueño sí puede renovar
	{
		st, body := doReq(t, ts.URL, "POST", "/licenses/"+reg.LicenseID+"/renew", ownerID, renewalPayload())
		if st != http.StatusOK {
			t.Fatalf("expected 200 renew, got %d body=%s", st, string(body))
		}
		var out struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(body, &out); err != nil || !out.Success {
			t.Fatalf("expected success=true, got %s", string(body))
		}
	}

	// 9) Consulta pública por número de chapita
	{
		st, body := doReq(t, ts.URL, "GET", "/licenses/number/"+reg.LicenseNumber, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 lookup, got %d body=%s", st, string(body))
		}
		var out struct {
			LicenseNumber string `json:"license_number"`
			Expired       bool   `json:"expired"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("invalid lookup response: %v", err)
		}
		if out.LicenseNumber != reg.LicenseNumber || out.Expired {
			t.Fatalf("unexpected lookup result: %+v", out)
		}
	}

	// 10) Licencia inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/licenses/no-such-id/renew", ownerID, renewalPayload())
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 renewing unknown license, got %d", st)
		}
	}
}

func registrationPayload() map[string]any {
	return map[string]any{
		"dog": map[string]any{
			"name":            "Milo",
			"breed":           "mixed",
			"color":           "brown",
			"age":             3,
			"weight":          42.5,
			"sex":             "male",
			"spayed_neutered": false,
		},
		"owner": map[string]any{
			"first_name": "Ana",
			"last_name":  "Rojas",
			"address":    "Av. Siempre Viva 742",
			"city":       "Fort Collins",
			"state":      "CO",
			"zip_code":   "80521",
			"phone":      "555-0101",
		},
		"vaccination": map[string]any{
			"rabies_vaccination_date":       "2026-01-10",
			"rabies_vaccination_expiration": "2027-01-10",
			"veterinarian_name":             "Dr. Paz",
			"veterinarian_phone":            "555-0202",
		},
	}
}

func renewalPayload() map[string]any {
	return map[string]any{
		"rabies_vaccination_date":       "2027-02-20",
		"rabies_vaccination_expiration": "2028-02-20",
		"veterinarian_name":             "Dra. Sosa",
		"veterinarian_phone":            "555-0303",
	}
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}
