package auth

import "context"

// AuthVerifier verifica un token del proveedor de identidad externo y
// devuelve claims o error. Este servicio no valida credenciales por sí mismo:
// solo consume "identidad autenticada o ausente".
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
