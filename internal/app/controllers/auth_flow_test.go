package controllers_test

import (
	"net/http"
	"testing"
)

func createUser(t *testing.T, env *testEnv, body map[string]interface{}) {
	t.Helper()
	rec := env.doJSON(t, http.MethodPost, "/api/admin/create-user", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create-user returned %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginAfterCreateUser(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, map[string]interface{}{
		"role":     "student",
		"name":     "ayse",
		"password": "s3cret",
		"class_id": 7,
		"dept":     "CENG",
	})

	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "ayse",
		"password": "s3cret",
		"role":     "student",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		User    struct {
			ID      int64  `json:"id"`
			Name    string `json:"name"`
			ClassID int64  `json:"classId"`
		} `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.User.Name != "ayse" || resp.User.ClassID != 7 {
		t.Errorf("unexpected user payload: %+v", resp.User)
	}
	if resp.User.ID == 0 {
		t.Error("expected a generated user id")
	}
}

func TestLoginNeverEchoesPasswordHash(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, map[string]interface{}{
		"role": "admin", "name": "root", "password": "topsecret",
	})

	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "root", "password": "topsecret", "role": "admin",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	var raw map[string]interface{}
	decodeBody(t, rec, &raw)
	user, ok := raw["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing user object in %v", raw)
	}
	if _, found := user["password"]; found {
		t.Error("password field must never appear in login responses")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, map[string]interface{}{
		"role": "organizer", "name": "club", "password": "right", "club_name": "ACM",
	})

	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "club", "password": "wrong", "role": "organizer",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginUnknownUserSameAsWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "ghost", "password": "whatever", "role": "teacher",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginMissingField(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "ayse", "role": "student",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}
}

func TestLoginUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "ayse", "password": "x", "role": "janitor",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRoleCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, map[string]interface{}{
		"role": "teacher", "name": "hoca", "password": "pw", "class_id": 3, "dept": "MATH",
	})

	rec := env.doJSON(t, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "hoca", "password": "pw", "role": "Teacher",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected role matching to ignore case, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateUserClassIDAsString(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, map[string]interface{}{
		"role": "student", "name": "mehmet", "password": "pw", "class_id": "12", "dept": "EE",
	})

	env.users.mu.Lock()
	defer env.users.mu.Unlock()
	if len(env.users.students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(env.users.students))
	}
	for _, s := range env.users.students {
		if s.ClassID != 12 {
			t.Errorf("class_id %q should coerce to 12, got %d", "12", s.ClassID)
		}
		if s.Password == "pw" {
			t.Error("stored password must be hashed, found plaintext")
		}
	}
}

func TestCreateUserNonNumericClassID(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/api/admin/create-user", map[string]interface{}{
		"role": "student", "name": "x", "password": "pw", "class_id": "abc",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric class_id, got %d", rec.Code)
	}
}

func TestCreateUserStudentRequiresClassID(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/api/admin/create-user", map[string]interface{}{
		"role": "student", "name": "x", "password": "pw",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for student without class_id, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateUserDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]interface{}{
		"role": "student", "name": "dup", "password": "pw", "class_id": 1,
	}
	createUser(t, env, body)
	rec := env.doJSON(t, http.MethodPost, "/api/admin/create-user", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d: %s", rec.Code, rec.Body.String())
	}
}
