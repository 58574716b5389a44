package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apidef"
)

type loginErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var params apidef.LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeJSON(w, http.StatusUnauthorized, apidef.ContentTypeJSON, loginErrorResponse{Error: apidef.MessageUnauthorized})
		return
	}
	token, ok := s.auth.login(params.Email, params.Password)
	if !ok {
		s.debugLogger.Printf("mock API rejected login for %q", params.Email)
		s.writeJSON(w, http.StatusUnauthorized, apidef.ContentTypeJSON, loginErrorResponse{Error: apidef.MessageUnauthorized})
		return
	}
	s.writeJSON(w, http.StatusOK, apidef.ContentTypeJSON, apidef.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   tokenLifetimeSeconds,
	})
}
