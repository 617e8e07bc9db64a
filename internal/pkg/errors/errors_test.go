package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromProviderCode(t *testing.T) {
	tests := []struct {
		code     string
		expected Kind
	}{
		{"dealer_no_activ", KindAuthentication},
		{"no_phone", KindValidation},
		{"no_name", KindValidation},
		{"no_doc", KindValidation},
		{"date", KindValidation},
		{"interval_no_found", KindAPI},
		{"new_order", KindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := FromProviderCode(tt.code, "detail")
			assert.Equal(t, tt.expected, err.Kind)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, "detail", err.Detail)
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := TransportError(inner)

	assert.Equal(t, KindTransport, err.Kind)
	assert.ErrorIs(t, err, inner)
}

func TestProviderError_Error(t *testing.T) {
	assert.Equal(t,
		"bussystem authentication error: dealer_no_activ - Dealer not active",
		FromProviderCode("dealer_no_activ", "Dealer not active").Error())

	assert.Equal(t,
		"bussystem parse error: unable to parse API response",
		ParseError("unable to parse API response").Error())
}
