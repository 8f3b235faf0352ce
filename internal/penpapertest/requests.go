// Package penpapertest builds the HTTP requests the test suites replay
// against the mux.
package penpapertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
)

func MakeRequest(method, path, token string, body any) *http.Request {
	var buffer io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		buffer = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buffer)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// USER & AUTH

func Register(name, email, password string) *http.Request {
	return MakeRequest(http.MethodPost, "/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

func Login(email, password string) *http.Request {
	return MakeRequest(http.MethodPost, "/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
}

func GetCurrentUser(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/user", token, nil)
}

func SetPIN(token, pin string) *http.Request {
	return MakeRequest(http.MethodPatch, "/user/pin", token, map[string]any{
		"pin": pin,
	})
}

// TODO CRUD

func CreateTodo(token, userID, title, category string) *http.Request {
	return MakeRequest(http.MethodPost, "/todos/"+userID, token, map[string]any{
		"title":    title,
		"category": category,
	})
}

func ListTodos(token, userID, status string) *http.Request {
	path := "/users/" + userID + "/todos"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	return MakeRequest(http.MethodGet, path, token, nil)
}

func GetTodo(token, todoID string) *http.Request {
	return MakeRequest(http.MethodGet, "/todos/"+todoID, token, nil)
}

func CompleteTodo(token, todoID, completedAt string) *http.Request {
	return MakeRequest(http.MethodPatch, "/todos/"+todoID+"/complete", token, map[string]any{
		"completedAt": completedAt,
	})
}

func RevertTodo(token, todoID string) *http.Request {
	return MakeRequest(http.MethodPatch, "/todos/"+todoID+"/revert", token, nil)
}

func DeleteTodo(token, todoID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/todos/"+todoID, token, nil)
}

func CountTodos(token, userID string) *http.Request {
	path := "/todos/count"
	if userID != "" {
		path += "?userId=" + url.QueryEscape(userID)
	}
	return MakeRequest(http.MethodGet, path, token, nil)
}

func CompletedTodosByDate(token, date string) *http.Request {
	return MakeRequest(http.MethodGet, "/todos/completed/"+date, token, nil)
}

// SUBTASK CRUD

func AddSubtask(token, todoID, title string) *http.Request {
	return MakeRequest(http.MethodPost, "/todos/"+todoID+"/subtasks", token, map[string]any{
		"title": title,
	})
}

func CompleteSubtask(token, todoID, subtaskID string) *http.Request {
	return MakeRequest(http.MethodPatch, "/todos/"+todoID+"/subtasks/"+subtaskID+"/complete", token, nil)
}

func EditSubtask(token, todoID, subtaskID, title string) *http.Request {
	return MakeRequest(http.MethodPatch, "/todos/"+todoID+"/subtasks/"+subtaskID, token, map[string]any{
		"title": title,
	})
}

func DeleteSubtask(token, todoID, subtaskID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/todos/"+todoID+"/subtasks/"+subtaskID, token, nil)
}

// DIARY CRUD

func CreateDiary(token string, body map[string]any) *http.Request {
	return MakeRequest(http.MethodPost, "/diary", token, body)
}

func ListDiaries(token, userID, date string) *http.Request {
	path := "/diary/" + userID
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	return MakeRequest(http.MethodGet, path, token, nil)
}

func ListArchivedDiaries(token, userID string) *http.Request {
	return MakeRequest(http.MethodGet, "/diary/"+userID+"/archived", token, nil)
}

func UpdateDiary(token, diaryID string, body map[string]any) *http.Request {
	return MakeRequest(http.MethodPut, "/diary/"+diaryID, token, body)
}

func ArchiveDiary(token, diaryID string) *http.Request {
	return MakeRequest(http.MethodPatch, "/diary/"+diaryID+"/archive", token, nil)
}

func UnarchiveDiary(token, diaryID string) *http.Request {
	return MakeRequest(http.MethodPatch, "/diary/"+diaryID+"/unarchive", token, nil)
}

func DeleteDiary(token, diaryID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/diary/"+diaryID, token, nil)
}

// ADMIN & STATE

func Health() *http.Request {
	return MakeRequest(http.MethodGet, "/health", "", nil)
}

func DeleteAllUsers() *http.Request {
	return MakeRequest(http.MethodPost, "/admin/reset", "", nil)
}

func GetUserCount() *http.Request {
	return MakeRequest(http.MethodGet, "/admin/users/count", "", nil)
}
