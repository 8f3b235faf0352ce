package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/penpaperdiary/penpaper-api/internal/database"
	"github.com/penpaperdiary/penpaper-api/internal/todo"
)

// Subtask mutations read the whole parent aggregate, apply the change, and
// write the subtask list back. The parent's version from the read is checked
// on the write, so two concurrent edits of the same todo cannot silently
// overwrite each other; the loser gets a conflict.
func (cfg *APIConfig) persistSubtasks(w http.ResponseWriter, r *http.Request, dbTodo todo.Todo, message string) {
	updated, err := cfg.db.UpdateTodoSubtasks(r.Context(), database.UpdateTodoSubtasksParams{
		ID:       dbTodo.ID,
		Subtasks: dbTodo.Subtasks,
		Version:  dbTodo.Version,
	})
	if err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			respondWithError(w, http.StatusConflict, "Todo was modified by another request, please retry", err)
			return
		}
		// the todo can vanish between the ownership check and the write
		if errors.Is(err, sql.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "Todo not found", err)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	type rspSchema struct {
		Message string    `json:"message"`
		Todo    todo.Todo `json:"todo"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Message: message,
		Todo:    updated,
	})
}

func (cfg *APIConfig) handleAddSubtask(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	type rqSchema struct {
		Title string `json:"title"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to add subtask", err)
		return
	}

	if _, err := dbTodo.AddSubtask(rqPayload.Title); err != nil {
		respondWithError(w, http.StatusBadRequest, "Subtask title is required", err)
		return
	}

	cfg.persistSubtasks(w, r, dbTodo, "Subtask added successfully")
}

func (cfg *APIConfig) handleCompleteSubtask(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	pathSubtaskID, err := parseUUIDFromPath("subtask_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	if err := dbTodo.CompleteSubtask(pathSubtaskID); err != nil {
		respondWithError(w, http.StatusNotFound, "Subtask not found", err)
		return
	}

	cfg.persistSubtasks(w, r, dbTodo, "Subtask marked as completed")
}

func (cfg *APIConfig) handleEditSubtask(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	pathSubtaskID, err := parseUUIDFromPath("subtask_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	type rqSchema struct {
		Title string `json:"title"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to edit subtask", err)
		return
	}

	if err := dbTodo.RenameSubtask(pathSubtaskID, rqPayload.Title); err != nil {
		respondWithError(w, http.StatusNotFound, "Subtask not found", err)
		return
	}

	cfg.persistSubtasks(w, r, dbTodo, "Subtask edited successfully")
}

func (cfg *APIConfig) handleRemoveSubtask(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	pathSubtaskID, err := parseUUIDFromPath("subtask_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	if err := dbTodo.RemoveSubtask(pathSubtaskID); err != nil {
		respondWithError(w, http.StatusNotFound, "Subtask not found", err)
		return
	}

	cfg.persistSubtasks(w, r, dbTodo, "Subtask deleted successfully")
}
