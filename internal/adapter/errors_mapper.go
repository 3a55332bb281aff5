package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-item-transfer/models"
)

var statusErrors = map[string]error{
	"1":  ErrDuplicateValue,
	"2":  ErrNotFound,
	"3":  ErrAuthorization,
	"4":  ErrInvalidToken,
	"5":  ErrOwnership,
	"-1": ErrServer,
}

// envelope mirrors models.Response with the payload left undecoded.
type envelope struct {
	StatusCode    string          `json:"status_code"`
	StatusMessage string          `json:"status_message"`
	Data          json.RawMessage `json:"data"`
	Token         string          `json:"token"`
	URL           string          `json:"url"`
}

// decodeResponse checks resp and returns its envelope. When data is not nil
// the envelope payload is decoded into it.
func decodeResponse(resp *resty.Response, data any) (envelope, error) {
	body := resp.Body()

	switch code := resp.StatusCode(); {
	case code == http.StatusUnprocessableEntity:
		return envelope{}, validationError(body)
	case code < http.StatusOK || code >= http.StatusMultipleChoices:
		text := strings.TrimSpace(string(body))
		if text == "" {
			text = http.StatusText(code)
		}
		return envelope{}, fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, code, text)
	}

	var e envelope
	if err := json.Unmarshal(body, &e); err != nil {
		return envelope{}, fmt.Errorf("%w: decode envelope: %v", ErrUnexpectedResponse, err)
	}

	if e.StatusCode != models.StatusSuccess {
		kind, ok := statusErrors[e.StatusCode]
		if !ok {
			kind = ErrUnexpectedResponse
		}
		return e, fmt.Errorf("%w: %s", kind, e.StatusMessage)
	}

	if data != nil && len(e.Data) > 0 {
		if err := json.Unmarshal(e.Data, data); err != nil {
			return e, fmt.Errorf("%w: decode data: %v", ErrUnexpectedResponse, err)
		}
	}

	return e, nil
}

func validationError(body []byte) error {
	var detail models.ValidationErrorResponse
	if err := json.Unmarshal(body, &detail); err != nil || len(detail.Detail) == 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.TrimSpace(string(body)))
	}

	issues := make([]string, 0, len(detail.Detail))
	for _, issue := range detail.Detail {
		issues = append(issues, strings.Join(issue.Loc, ".")+": "+issue.Msg)
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(issues, "; "))
}
