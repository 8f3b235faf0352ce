// Package api handles routes and their associated handlers
package api

import (
	"net/http"
)

func SetupMux(cfg *APIConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// middleware
	mdAuth := cfg.middlewareAuthenticate

	// REGISTER API HANDLERS
	// ======================

	// Admin & State
	mux.HandleFunc("GET /health", cfg.handleHealthCheck)
	mux.HandleFunc("POST /admin/reset", cfg.handleDeleteAllUsers)
	mux.HandleFunc("GET /admin/users/count", cfg.handleGetTotalUserCount)
	// User authentication & profile
	mux.HandleFunc("POST /register", cfg.handleRegisterUser)
	mux.HandleFunc("POST /login", cfg.handleLoginUser)
	mux.HandleFunc("GET /user", mdAuth(cfg.handleGetCurrentUser))
	mux.HandleFunc("PATCH /user/pin", mdAuth(cfg.handleSetUserPIN))
	// Todos
	mux.HandleFunc("POST /todos/{user_id}", mdAuth(cfg.handleCreateTodo))
	mux.HandleFunc("GET /users/{user_id}/todos", mdAuth(cfg.handleListTodos))
	mux.HandleFunc("GET /todos/count", mdAuth(cfg.handleCountTodos))
	mux.HandleFunc("GET /todos/completed/{date}", mdAuth(cfg.handleListCompletedTodosByDate))
	mux.HandleFunc("GET /todos/{todo_id}", mdAuth(cfg.handleGetTodo))
	mux.HandleFunc("PATCH /todos/{todo_id}/complete", mdAuth(cfg.handleCompleteTodo))
	mux.HandleFunc("PATCH /todos/{todo_id}/revert", mdAuth(cfg.handleRevertTodo))
	mux.HandleFunc("DELETE /todos/{todo_id}", mdAuth(cfg.handleDeleteTodo))
	// Subtasks
	mux.HandleFunc("POST /todos/{todo_id}/subtasks", mdAuth(cfg.handleAddSubtask))
	mux.HandleFunc("PATCH /todos/{todo_id}/subtasks/{subtask_id}/complete", mdAuth(cfg.handleCompleteSubtask))
	mux.HandleFunc("PATCH /todos/{todo_id}/subtasks/{subtask_id}", mdAuth(cfg.handleEditSubtask))
	mux.HandleFunc("DELETE /todos/{todo_id}/subtasks/{subtask_id}", mdAuth(cfg.handleRemoveSubtask))
	// Diaries
	mux.HandleFunc("POST /diary", mdAuth(cfg.handleCreateDiary))
	mux.HandleFunc("GET /diary/{user_id}", mdAuth(cfg.handleListDiaries))
	mux.HandleFunc("GET /diary/{user_id}/archived", mdAuth(cfg.handleListArchivedDiaries))
	mux.HandleFunc("PUT /diary/{diary_id}", mdAuth(cfg.handleUpdateDiary))
	mux.HandleFunc("PATCH /diary/{diary_id}/archive", mdAuth(cfg.handleArchiveDiary))
	mux.HandleFunc("PATCH /diary/{diary_id}/unarchive", mdAuth(cfg.handleUnarchiveDiary))
	mux.HandleFunc("DELETE /diary/{diary_id}", mdAuth(cfg.handleDeleteDiary))

	return mux
}
