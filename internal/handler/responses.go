package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"userapp/internal/identity"
)

// parseCredentials decodes the request body. A missing or malformed body
// counts as an empty object, so it fails the presence check like any other
// incomplete request.
func parseCredentials(body string) (identity.Credentials, bool) {
	var req credentialsRequest
	if strings.TrimSpace(body) != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			req = credentialsRequest{}
		}
	}
	creds := identity.Credentials{Email: req.Email, Password: req.Password}
	return creds, creds.Email != "" && creds.Password != ""
}

// jsonResponse encodes v without HTML escaping so "&" stays literal.
func jsonResponse(status int, v any) Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Only the fixed body types above are ever encoded.
		return Response{StatusCode: http.StatusInternalServerError, Body: `{"error":"response encoding failed"}`}
	}
	return Response{
		StatusCode: status,
		Body:       strings.TrimSuffix(buf.String(), "\n"),
	}
}

func messageResponse(status int, msg string) Response {
	return jsonResponse(status, messageBody{Message: msg})
}

func errorResponse(err *identity.Error) Response {
	return jsonResponse(http.StatusInternalServerError, errorBody{Error: err.Message})
}

func missingFieldsResponse() Response {
	return messageResponse(http.StatusBadRequest, msgMissingFields)
}

// registerErrorResponse maps a sign-up failure to its response.
func registerErrorResponse(err *identity.Error) Response {
	switch err.Kind {
	case identity.KindUsernameExists:
		return messageResponse(http.StatusConflict, msgUserExists)
	default:
		return errorResponse(err)
	}
}

// loginErrorResponse maps an authentication failure to its response and the
// metric recorded for it.
func loginErrorResponse(err *identity.Error) (Response, string) {
	switch err.Kind {
	case identity.KindNotAuthorized:
		return messageResponse(http.StatusUnauthorized, msgInvalidCredentials), MetricLoginFailureInvalidCredentials
	case identity.KindUserNotConfirmed:
		return messageResponse(http.StatusForbidden, msgUserNotConfirmed), MetricLoginFailureUserNotConfirmed
	case identity.KindUserNotFound:
		return messageResponse(http.StatusNotFound, msgUserNotFound), MetricLoginFailureUserNotFound
	case identity.KindUsernameExists, identity.KindOther:
		return errorResponse(err), MetricLoginFailureUnknownError
	default:
		return errorResponse(err), MetricLoginFailureUnknownError
	}
}
