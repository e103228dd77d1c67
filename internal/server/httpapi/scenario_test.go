package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// doJSON performs one request against the handler and decodes the JSON
// response into a generic map.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		// Array responses land under a synthetic key.
		var arr []any
		if err := json.Unmarshal(rec.Body.Bytes(), &arr); err != nil {
			t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
		}
		decoded = map[string]any{"_items": arr}
	}
	return rec.Code, decoded
}

func registerUser(t *testing.T, h http.Handler, name, email, password string) string {
	t.Helper()

	status, resp := doJSON(t, h, http.MethodPost, "/auth/createuser", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("register returned %d: %v", status, resp)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("register returned no token: %v", resp)
	}
	return token
}

func registerAlice(t *testing.T, h http.Handler) string {
	return registerUser(t, h, "Alice", "a@x.com", "secret1")
}

// TestFullLifecycle walks the whole contract: register, login, note CRUD,
// and the ownership guard between two users.
func TestFullLifecycle(t *testing.T) {
	h := newTestHandler(t)

	// Register Alice and log in again: a second, independent token for the
	// same principal.
	_ = registerUser(t, h, "Alice", "a@x.com", "secret1")
	status, resp := doJSON(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	if status != http.StatusOK || resp["success"] != true {
		t.Fatalf("login failed: %d %v", status, resp)
	}
	aliceToken, _ := resp["token"].(string)

	bobToken := registerUser(t, h, "Bobby", "b@x.com", "secret2")

	// Alice adds a note.
	status, resp = doJSON(t, h, http.MethodPost, "/notes", aliceToken, map[string]string{
		"title": "Groceries", "description": "Buy milk and eggs",
	})
	if status != http.StatusOK {
		t.Fatalf("add note failed: %d %v", status, resp)
	}
	noteID, _ := resp["id"].(string)
	if noteID == "" {
		t.Fatalf("created note has no id: %v", resp)
	}

	// Alice's principal owns it.
	status, user := doJSON(t, h, http.MethodPost, "/auth/getuser", aliceToken, nil)
	if status != http.StatusOK {
		t.Fatalf("getuser failed: %d %v", status, user)
	}
	if resp["owner_id"] != user["id"] {
		t.Fatalf("note owner %v != principal %v", resp["owner_id"], user["id"])
	}

	// Alice's list contains exactly that note.
	status, resp = doJSON(t, h, http.MethodGet, "/notes", aliceToken, nil)
	items, _ := resp["_items"].([]any)
	if status != http.StatusOK || len(items) != 1 {
		t.Fatalf("expected exactly one note for alice: %d %v", status, resp)
	}

	// Bob's list does not.
	status, resp = doJSON(t, h, http.MethodGet, "/notes", bobToken, nil)
	items, _ = resp["_items"].([]any)
	if status != http.StatusOK || len(items) != 0 {
		t.Fatalf("expected no notes for bob: %d %v", status, resp)
	}

	// Bob cannot update or delete Alice's note.
	status, resp = doJSON(t, h, http.MethodPut, "/notes/"+noteID, bobToken, map[string]string{
		"title": "Hijacked",
	})
	if status != http.StatusUnauthorized || resp["error"] != "Action not allowed." {
		t.Fatalf("expected ownership rejection on update: %d %v", status, resp)
	}
	status, resp = doJSON(t, h, http.MethodDelete, "/notes/"+noteID, bobToken, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected ownership rejection on delete: %d %v", status, resp)
	}

	// The note survived Bob's attempts, unchanged.
	status, resp = doJSON(t, h, http.MethodGet, "/notes", aliceToken, nil)
	items, _ = resp["_items"].([]any)
	if status != http.StatusOK || len(items) != 1 {
		t.Fatalf("note must survive foreign mutation attempts: %d %v", status, resp)
	}
	first, _ := items[0].(map[string]any)
	if first["title"] != "Groceries" {
		t.Fatalf("note was changed by a foreign update: %v", first)
	}

	// Alice updates the title only; the description stays.
	status, resp = doJSON(t, h, http.MethodPut, "/notes/"+noteID, aliceToken, map[string]string{
		"title": "Shopping",
	})
	if status != http.StatusOK || resp["title"] != "Shopping" || resp["description"] != "Buy milk and eggs" {
		t.Fatalf("partial update failed: %d %v", status, resp)
	}

	// Alice deletes it; her list is empty afterwards.
	status, resp = doJSON(t, h, http.MethodDelete, "/notes/"+noteID, aliceToken, nil)
	if status != http.StatusOK || resp["Success"] != "Note deleted successfully." {
		t.Fatalf("delete failed: %d %v", status, resp)
	}
	status, resp = doJSON(t, h, http.MethodGet, "/notes", aliceToken, nil)
	items, _ = resp["_items"].([]any)
	if status != http.StatusOK || len(items) != 0 {
		t.Fatalf("expected empty list after delete: %d %v", status, resp)
	}
}
