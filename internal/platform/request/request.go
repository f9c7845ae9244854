// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/ctxutil"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the authenticated operator claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.OperatorClaims {
	return ctxutil.GetOperator(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the operator claims.

Returns:
  - *sec.OperatorClaims: The authenticated operator claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.OperatorClaims, error) {

	// Get operator claims
	claims := ctxutil.GetOperator(request.Context())

	// If the operator is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredOperatorID returns the ID of the currently logged-in operator.

Returns:
  - string: Operator UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredOperatorID(request *http.Request) (string, error) {

	// Get operator claims
	claims, err := RequiredClaims(request)

	// If the operator is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return claims.OperatorID, nil
}
