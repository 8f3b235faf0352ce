package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/penpaperdiary/penpaper-api/internal/auth"
	"github.com/penpaperdiary/penpaper-api/internal/database"
)

// User is the response shape for user-facing endpoints.
type User struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

func (cfg *APIConfig) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not register user", err)
		return
	}

	if rqPayload.Name == "" || rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Name, email and password are required", nil)
		return
	}

	if _, err := cfg.db.GetUserByEmail(r.Context(), rqPayload.Email); err == nil {
		respondWithError(w, http.StatusConflict, "User already registered with this email", nil)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusInternalServerError, "Server error during registration", err)
		return
	}

	hashedPass, err := auth.HashPassword(rqPayload.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Server error during registration", err)
		return
	}

	dbUser, err := cfg.db.CreateUser(r.Context(), database.CreateUserParams{
		Name:           rqPayload.Name,
		Email:          rqPayload.Email,
		HashedPassword: hashedPass,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Server error during registration", err)
		return
	}

	type rspSchema struct {
		Status  string    `json:"status"`
		Message string    `json:"message"`
		UserID  uuid.UUID `json:"userId"`
	}

	respondWithJSON(w, http.StatusCreated, rspSchema{
		Status:  "success",
		Message: "Registration successful",
		UserID:  dbUser.ID,
	})
}

func (cfg *APIConfig) handleLoginUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not log in user", err)
		return
	}

	if rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	dbUser, err := cfg.db.GetUserByEmail(r.Context(), rqPayload.Email)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid Email", err)
		return
	}

	match, err := auth.CheckPasswordHash(rqPayload.Password, dbUser.HashedPassword)
	if err != nil || !match {
		respondWithError(w, http.StatusUnauthorized, "Invalid password", err)
		return
	}

	accessToken, err := auth.MakeJWT(dbUser.ID, jwt.SigningMethodHS256, cfg.secret, auth.TokenTTL)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Trouble logging in", err)
		return
	}

	type rspSchema struct {
		Token  string    `json:"token"`
		UserID uuid.UUID `json:"userId"`
		Name   string    `json:"name"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Token:  accessToken,
		UserID: dbUser.ID,
		Name:   dbUser.Name,
	})
}

func (cfg *APIConfig) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbUser, err := cfg.db.GetUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "User not found", err)
		return
	}

	type rspSchema struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Name:  dbUser.Name,
		Email: dbUser.Email,
	})
}

func (cfg *APIConfig) handleSetUserPIN(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		PIN string `json:"pin"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not set PIN", err)
		return
	}

	if !auth.ValidPIN(rqPayload.PIN) {
		respondWithError(w, http.StatusBadRequest, "PIN must be exactly 4 digits", nil)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	err = cfg.db.SetUserPIN(r.Context(), database.SetUserPINParams{
		ID:  validatedUserID,
		PIN: rqPayload.PIN,
	})
	if err != nil {
		respondWithError(w, http.StatusNotFound, "User not found", err)
		return
	}

	type rspSchema struct {
		Message string `json:"message"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Message: "PIN updated successfully"})
}

// ============== ADMIN =================

func (cfg *APIConfig) handleDeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if cfg.platform != "dev" {
		respondWithText(w, http.StatusForbidden, "403 Forbidden")
		return
	}

	err := cfg.db.DeleteAllUsers(r.Context())
	if err != nil {
		slog.Error(err.Error())
	}

	respondWithText(w, http.StatusOK, "Successfully deleted all users.")
}

func (cfg *APIConfig) handleGetTotalUserCount(w http.ResponseWriter, r *http.Request) {
	if cfg.platform != "dev" {
		respondWithText(w, http.StatusForbidden, "403 Forbidden")
		return
	}

	count, err := cfg.db.CountUsers(r.Context())
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Could not find any users", err)
		return
	}

	type rspSchema struct {
		Count int64 `json:"count"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Count: count})
}
