package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPromoCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "valid check digit", code: "2377225624", want: true},
		{name: "invalid check digit", code: "2377225625", want: false},
		{name: "non numeric", code: "TONANCE", want: false},
		{name: "empty", code: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPromoCode(tt.code))
		})
	}
}
