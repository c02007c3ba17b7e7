package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/lukav-dev/userbase/internal/models"
	"github.com/lukav-dev/userbase/internal/repositories"
	"github.com/lukav-dev/userbase/internal/utils"
	"github.com/lukav-dev/userbase/internal/validation"
	"gorm.io/gorm"
)

type UserHandler struct {
	store repositories.UserStore
}

func NewUserHandler(store repositories.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// ListUsers godoc
// @Summary List all users
// @Description Get every user record in creation order
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.SelectAll()
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.ErrorResponse{
			Error: "Failed to fetch users",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, verrs := validation.ParseID(r.PathValue("id"))
	if verrs != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid user ID",
			Details: verrs,
		})
		return
	}

	user, err := h.store.SelectByID(id)
	switch {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, user)
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.ErrorResponse{
			Error: "User not found",
		})
	default:
		log.Printf("Error fetching user %d: %v", id, err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.ErrorResponse{
			Error: "Failed to fetch user",
		})
	}
}

// CreateUser godoc
// @Summary Create a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body validation.CreateUserInput true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if verrs := validation.Validate(&input); len(verrs) > 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid request body",
			Details: verrs,
		})
		return
	}

	user := models.User{
		Name:    input.Name,
		Surname: input.Surname,
		Gender:  input.Gender,
	}
	// isTrusted defaults to false when omitted
	if input.IsTrusted != nil {
		user.IsTrusted = *input.IsTrusted
	}

	if err := h.store.Insert(&user); err != nil {
		log.Printf("Error creating user: %v", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.ErrorResponse{
			Error: "Failed to create user",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Merge the present fields onto the stored record; updatedAt is refreshed either way
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body validation.UpdateUserInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, verrs := validation.ParseID(r.PathValue("id"))
	if verrs != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid user ID",
			Details: verrs,
		})
		return
	}

	// An absent body counts as an empty patch
	var input validation.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if verrs := validation.Validate(&input); len(verrs) > 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid request body",
			Details: verrs,
		})
		return
	}

	user, err := h.store.UpdateByID(id, repositories.UpdateFields{
		Name:      input.Name,
		Surname:   input.Surname,
		Gender:    input.Gender,
		IsTrusted: input.IsTrusted,
	})
	switch {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, user)
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.ErrorResponse{
			Error: "User not found",
		})
	default:
		log.Printf("Error updating user %d: %v", id, err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.ErrorResponse{
			Error: "Failed to update user",
		})
	}
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, verrs := validation.ParseID(r.PathValue("id"))
	if verrs != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid user ID",
			Details: verrs,
		})
		return
	}

	err := h.store.DeleteByID(id)
	switch {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "User deleted successfully",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.ErrorResponse{
			Error: "User not found",
		})
	default:
		log.Printf("Error deleting user %d: %v", id, err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.ErrorResponse{
			Error: "Failed to delete user",
		})
	}
}
