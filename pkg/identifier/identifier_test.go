package identifier

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Kind
	}{
		{"uuid v4", "b4f9c1de-5a2e-4f7b-9c3d-8e1a2b3c4d5e", KindCanonical},
		{"uuid uppercase", "B4F9C1DE-5A2E-4F7B-9C3D-8E1A2B3C4D5E", KindCanonical},
		{"generated uuid", uuid.NewString(), KindCanonical},
		{"slug", "kebun-sawit-a", KindSlug},
		{"single word slug", "kebun", KindSlug},
		{"slug with digits", "blok-7b", KindSlug},
		{"empty", "", KindUnknown},
		{"spaces", "kebun sawit", KindUnknown},
		{"trailing hyphen", "kebun-", KindUnknown},
		{"braced uuid", "{b4f9c1de-5a2e-4f7b-9c3d-8e1a2b3c4d5e}", KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in), "input %q", tc.in)
		})
	}
}
