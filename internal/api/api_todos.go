package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/penpaperdiary/penpaper-api/internal/database"
	"github.com/penpaperdiary/penpaper-api/internal/diary"
	"github.com/penpaperdiary/penpaper-api/internal/todo"
)

// loadOwnedTodo fetches the todo in the request path and verifies it belongs
// to the authenticated user. A todo owned by someone else is reported as not
// found, never as forbidden, so ids cannot be probed across accounts.
func (cfg *APIConfig) loadOwnedTodo(w http.ResponseWriter, r *http.Request) (todo.Todo, bool) {
	pathTodoID, err := parseUUIDFromPath("todo_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return todo.Todo{}, false
	}

	dbTodo, err := cfg.db.GetTodoByID(r.Context(), pathTodoID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Todo not found", err)
		return todo.Todo{}, false
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	if dbTodo.UserID != validatedUserID {
		respondWithError(w, http.StatusNotFound, "Todo not found", nil)
		return todo.Todo{}, false
	}
	return dbTodo, true
}

func (cfg *APIConfig) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	pathUserID, err := parseUUIDFromPath("user_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	type rqSchema struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Todo not added", err)
		return
	}

	if _, err := cfg.db.GetUserByID(r.Context(), pathUserID); err != nil {
		respondWithError(w, http.StatusNotFound, "User not found", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	if pathUserID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "Cannot create todos for another user", nil)
		return
	}

	newTodo := todo.New(pathUserID, rqPayload.Title, rqPayload.Category)

	dbTodo, err := cfg.db.CreateTodo(r.Context(), database.CreateTodoParams{
		ID:       newTodo.ID,
		UserID:   newTodo.UserID,
		Title:    newTodo.Title,
		Category: newTodo.Category,
		DueDate:  newTodo.DueDate,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Todo not added", err)
		return
	}

	type rspSchema struct {
		Message string    `json:"message"`
		Todo    todo.Todo `json:"todo"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Message: "Todo added successfully",
		Todo:    dbTodo,
	})
}

func (cfg *APIConfig) handleListTodos(w http.ResponseWriter, r *http.Request) {
	pathUserID, err := parseUUIDFromPath("user_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	if pathUserID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "Cannot list todos for another user", nil)
		return
	}

	todos, err := cfg.db.ListTodos(r.Context(), database.ListTodosParams{
		UserID: pathUserID,
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", err)
		return
	}
	if todos == nil {
		todos = []todo.Todo{}
	}

	type rspSchema struct {
		Todos []todo.Todo `json:"todos"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Todos: todos})
}

func (cfg *APIConfig) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, dbTodo)
}

func (cfg *APIConfig) handleCompleteTodo(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	type rqSchema struct {
		CompletedAt string `json:"completedAt"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	// the client decides what "when" means; the timestamp is stored verbatim
	completedAt, err := parseTimestamp(rqPayload.CompletedAt)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "completedAt must be an RFC 3339 timestamp", err)
		return
	}
	if completedAt.IsZero() {
		respondWithError(w, http.StatusBadRequest, "completedAt is required", nil)
		return
	}

	dbTodo.Complete(completedAt)

	updated, err := cfg.db.UpdateTodoStatus(r.Context(), database.UpdateTodoStatusParams{
		ID:          dbTodo.ID,
		Status:      dbTodo.Status,
		CompletedAt: dbTodo.CompletedAt,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	type rspSchema struct {
		Message string    `json:"message"`
		Todo    todo.Todo `json:"todo"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Message: "Todo marked as complete",
		Todo:    updated,
	})
}

func (cfg *APIConfig) handleRevertTodo(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	dbTodo.Revert()

	updated, err := cfg.db.UpdateTodoStatus(r.Context(), database.UpdateTodoStatusParams{
		ID:          dbTodo.ID,
		Status:      dbTodo.Status,
		CompletedAt: dbTodo.CompletedAt,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	type rspSchema struct {
		Message string    `json:"message"`
		Todo    todo.Todo `json:"todo"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Message: "Todo reverted to pending",
		Todo:    updated,
	})
}

func (cfg *APIConfig) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	dbTodo, ok := cfg.loadOwnedTodo(w, r)
	if !ok {
		return
	}

	if err := cfg.db.DeleteTodo(r.Context(), dbTodo.ID); err != nil {
		respondWithError(w, http.StatusNotFound, "Todo not found", err)
		return
	}

	type rspSchema struct {
		Message string `json:"message"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Message: "Todo deleted successfully"})
}

func (cfg *APIConfig) handleCountTodos(w http.ResponseWriter, r *http.Request) {
	userIDString := r.URL.Query().Get("userId")
	if userIDString == "" {
		respondWithError(w, http.StatusBadRequest, "userId is required", nil)
		return
	}
	queryUserID, err := uuid.Parse(userIDString)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	if queryUserID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "Cannot count todos for another user", nil)
		return
	}

	// two independent counts over the same logical set
	completed, err := cfg.db.CountTodosByStatus(r.Context(), database.CountTodosParams{
		UserID: queryUserID,
		Status: todo.StatusCompleted,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Network error", err)
		return
	}
	pending, err := cfg.db.CountTodosByStatus(r.Context(), database.CountTodosParams{
		UserID: queryUserID,
		Status: todo.StatusPending,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Network error", err)
		return
	}

	type rspSchema struct {
		Completed int64 `json:"completed"`
		Pending   int64 `json:"pending"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Completed: completed,
		Pending:   pending,
	})
}

func (cfg *APIConfig) handleListCompletedTodosByDate(w http.ResponseWriter, r *http.Request) {
	start, end, err := diary.DayBounds(r.PathValue("date"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid parameter value", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	todos, err := cfg.db.ListTodosCompletedBetween(r.Context(), database.ListTodosCompletedBetweenParams{
		UserID: validatedUserID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", err)
		return
	}
	if todos == nil {
		todos = []todo.Todo{}
	}

	type rspSchema struct {
		CompletedTodos []todo.Todo `json:"completedTodos"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{CompletedTodos: todos})
}
