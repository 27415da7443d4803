// Package httpbind classifies request-body binding failures into the
// error taxonomy.
package httpbind

import (
	"encoding/json"
	"errors"
	"io"

	"book-management-backend/internal/shared/apierror"
)

// ClassifyBindError sorts a JSON binding failure into the taxonomy: typed
// failures raised by custom unmarshalers (the date format check) pass
// through, everything that means "the body could not be parsed into the
// expected shape" becomes ParamFormat.
func ClassifyBindError(err error) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apierror.New(apierror.ParamFormat, "request body is not valid JSON")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apierror.Newf(apierror.ParamFormat, "field[%s] has the wrong type", typeErr.Field)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apierror.New(apierror.ParamFormat, "request body is empty")
	}

	return apierror.New(apierror.ParamFormat, err.Error())
}
