package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
)

func newTestService(secret string, ttl time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		Secret:   secret,
		TokenTTL: ttl,
		Issuer:   "hostelhub-test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	token, expiresIn, err := svc.Generate("64b7f3a2e13f4c0001a2b3c4", "Asha", "asha@hostel.edu", "warden")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "64b7f3a2e13f4c0001a2b3c4" {
		t.Errorf("subject = %q", claims.Subject)
	}
	if claims.Role != "warden" {
		t.Errorf("role = %q, want warden", claims.Role)
	}
	if claims.Email != "asha@hostel.edu" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestValidateExpired(t *testing.T) {
	svc := newTestService("test-secret", -time.Minute)

	token, _, err := svc.Generate("64b7f3a2e13f4c0001a2b3c4", "Asha", "asha@hostel.edu", "warden")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := svc.Validate(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
	if claims != nil {
		t.Errorf("claims = %v, want nil on failure", claims)
	}
}

func TestValidateTampered(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	token, _, err := svc.Generate("64b7f3a2e13f4c0001a2b3c4", "Asha", "asha@hostel.edu", "student")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Validate(tampered)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
	if claims != nil {
		t.Errorf("claims = %v, want nil on failure", claims)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := newTestService("secret-one", time.Hour)
	verifier := newTestService("secret-two", time.Hour)

	token, _, err := issuer.Generate("64b7f3a2e13f4c0001a2b3c4", "Asha", "asha@hostel.edu", "staff")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("Validate(%q) err = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtractBearerToken(%q) err = %v", tt.header, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
