package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HASH TESTS

const (
	testPassword = "inkwellLatch482"
	altPassword  = "inkwellLatch483"
)

func TestHashUnequal(t *testing.T) {
	// passes if CheckPasswordHash reports a mismatch as expected
	hashedPass, err := HashPassword(testPassword)
	if err != nil {
		t.Error(err)
	}
	match, _ := CheckPasswordHash(altPassword, hashedPass)
	if match {
		t.Error("password should not have matched, but did")
	}
}

func TestHashEqual(t *testing.T) {
	// passes if CheckPasswordHash reports a match as expected
	hashedPass, err := HashPassword(testPassword)
	if err != nil {
		t.Error(err)
	}
	match, _ := CheckPasswordHash(testPassword, hashedPass)
	if !match {
		t.Error("password should have matched, but did not")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	password1 := "correctPassword123!"
	password2 := "anotherPassword456!"
	hash1, _ := HashPassword(password1)
	hash2, _ := HashPassword(password2)

	tests := []struct {
		name          string
		password      string
		hash          string
		wantErr       bool
		matchPassword bool
	}{
		{
			name:          "Correct password",
			password:      password1,
			hash:          hash1,
			wantErr:       false,
			matchPassword: true,
		},
		{
			name:          "Incorrect password",
			password:      "wrongPassword",
			hash:          hash1,
			wantErr:       false,
			matchPassword: false,
		},
		{
			name:          "Password doesn't match different hash",
			password:      password1,
			hash:          hash2,
			wantErr:       false,
			matchPassword: false,
		},
		{
			name:          "Empty password",
			password:      "",
			hash:          hash1,
			wantErr:       false,
			matchPassword: false,
		},
		{
			name:          "Invalid hash",
			password:      password1,
			hash:          "invalidhash",
			wantErr:       true,
			matchPassword: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := CheckPasswordHash(tt.password, tt.hash)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPasswordHash() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && match != tt.matchPassword {
				t.Errorf("CheckPasswordHash() expects %v, got %v", tt.matchPassword, match)
			}
		})
	}
}

// JWT TESTS

func TestValidateJWT(t *testing.T) {
	userID := uuid.New()
	validToken, _ := MakeJWT(userID, jwt.SigningMethodHS256, "secret", TokenTTL)
	wrongAlgToken, _ := MakeJWT(userID, jwt.SigningMethodHS384, "secret", TokenTTL)
	expiredToken, _ := MakeJWT(userID, jwt.SigningMethodHS256, "secret", -time.Minute)

	tests := []struct {
		name        string
		tokenString string
		tokenSecret string
		wantUserID  uuid.UUID
		wantErr     bool
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			tokenSecret: "secret",
			wantUserID:  userID,
			wantErr:     false,
		},
		{
			name:        "Invalid token",
			tokenString: "invalid.token.string",
			tokenSecret: "secret",
			wantUserID:  uuid.Nil,
			wantErr:     true,
		},
		{
			name:        "Wrong secret",
			tokenString: validToken,
			tokenSecret: "wrong_secret",
			wantUserID:  uuid.Nil,
			wantErr:     true,
		},
		{
			name:        "Wrong algorithm",
			tokenString: wrongAlgToken,
			tokenSecret: "secret",
			wantUserID:  uuid.Nil,
			wantErr:     true,
		},
		{
			name:        "Expired token",
			tokenString: expiredToken,
			tokenSecret: "secret",
			wantUserID:  uuid.Nil,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, err := ValidateJWT(tt.tokenString, tt.tokenSecret, "HS256")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJWT() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("ValidateJWT() gotUserID = %v, want %v", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestGetBearerToken(t *testing.T) {
	const tokenWant = "thisIsATokenString"

	type testCases struct {
		name          string
		headers       http.Header
		expectedToken string
		expectErr     bool
	}

	cases := []testCases{
		{
			name:          "valid header",
			headers:       http.Header{"Authorization": []string{"Bearer " + tokenWant}},
			expectedToken: tokenWant,
			expectErr:     false,
		},
		{
			name:          "missing header",
			headers:       http.Header{},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "header present but empty",
			headers:       http.Header{"Authorization": []string{}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "Bearer without token",
			headers:       http.Header{"Authorization": []string{"Bearer "}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "incorrect scheme",
			headers:       http.Header{"Authorization": []string{"Token " + tokenWant}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "no space after scheme",
			headers:       http.Header{"Authorization": []string{"Bearer" + tokenWant}},
			expectedToken: "",
			expectErr:     true,
		},
		{
			name:          "Different case Bearer",
			headers:       http.Header{"Authorization": []string{"bEaReR " + tokenWant}},
			expectedToken: tokenWant,
			expectErr:     false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			token, err := GetBearerToken(c.headers)
			if (err != nil) != c.expectErr {
				t.Errorf("expected error: %v, got: %v", c.expectErr, err)
			}
			if token != c.expectedToken {
				t.Errorf("expected token: %v, got: %v", c.expectedToken, token)
			}
		})
	}
}

func TestValidPIN(t *testing.T) {
	valid := []string{"0000", "1234", "9999"}
	invalid := []string{"", "123", "12345", "12a4", "12.4", "١٢٣٤"}

	for _, pin := range valid {
		if !ValidPIN(pin) {
			t.Errorf("ValidPIN(%q) = false, want true", pin)
		}
	}
	for _, pin := range invalid {
		if ValidPIN(pin) {
			t.Errorf("ValidPIN(%q) = true, want false", pin)
		}
	}
}
