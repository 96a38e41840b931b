package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", validationDetails(err))
			return
		}

		// Tentar realizar o login
		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_email": req.Email,
				"error":      err.Error(),
			}).Warn("auth: falha no login")
			handleLoginError(w, err)
			return
		}

		// Sucesso: retornar o token
		writeJSON(w, r, map[string]string{
			"token": token,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case apiErrors.ErrInvalidCredentials:
			// Mesma mensagem para usuário inexistente e senha errada
			apiErrors.WriteError(w, authErr.Code, "Credenciais inválidas", nil)
		case apiErrors.ErrInternalServer:
			apiErrors.WriteError(w, authErr.Code, "Erro interno ao realizar login", nil)
		default:
			apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		}
		return
	}

	// Verificar tipos específicos de erros
	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials), errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrAuthDisabled):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Autenticação desabilitada", nil)

	default:
		// Erro genérico se não conseguirmos identificar especificamente
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
