package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
)

// maxRequestBody caps the request body size. Operands can legitimately be
// huge, so the cap is generous but still bounded.
const maxRequestBody = 8 << 20

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleOperations returns the list of supported arithmetic operations.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"operations": config.Operations,
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleCalculate processes calculation requests. It decodes the JSON body,
// executes the requested operation, and returns the result in JSON format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CalculateRequest
	if err := decodeRequest(r, &req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.executeRequest(w, r, req.Op, req.Operands)
}

// handleSum processes sum requests over an arbitrary number of operands.
// It is a convenience endpoint equivalent to /calculate with op "sum".
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleSum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SumRequest
	if err := decodeRequest(r, &req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.executeRequest(w, r, "sum", req.Operands)
}

// executeRequest runs one operation through the service and writes the
// response, mapping error classes to HTTP status codes.
func (s *Server) executeRequest(w http.ResponseWriter, r *http.Request, op string, operands []string) {
	// Create a context with timeout for the calculation
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.service.Calculate(ctx, op, operands)
	duration := time.Since(start)
	s.metrics.ObserveCalculation(op, duration, err)

	if err != nil {
		var verr apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		case apperrors.IsContextError(err):
			s.writeErrorResponse(w, http.StatusGatewayTimeout, "Calculation timed out")
		default:
			// Arithmetic rejections (division by zero, underflow): the
			// request was well-formed but has no representable answer.
			s.writeJSONResponse(w, http.StatusUnprocessableEntity, Response{
				Op:       op,
				Duration: duration.String(),
				Error:    err.Error(),
			})
		}
		return
	}

	s.writeJSONResponse(w, http.StatusOK, Response{
		Op:       result.Op,
		Values:   result.Values,
		Duration: result.Duration.String(),
	})
}

// decodeRequest decodes a JSON request body with a size cap and strict
// field checking.
func decodeRequest(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}

// writeJSONResponse helper function to write a JSON response with the correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding response failed", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
