package http_test

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tazhibayda/interview-service/internal/seed"
)

func Test_Register_Login(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	// register
	w := env.do("POST", "/api/users/register",
		`{"name":"Alice","email":"alice@example.com","password":"s3cretpass"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register code=%d body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
		UserID  string                 `json:"userId"`
	}
	decode(t, w, &reg)
	if reg.UserID == "" {
		t.Fatal("no userId in register response")
	}
	if _, ok := reg.User["password"]; ok {
		t.Fatalf("password leaked in register response: %v", reg.User)
	}
	if reg.User["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %v", reg.User)
	}

	// same email again: rejected, collection unchanged
	w = env.do("POST", "/api/users/register",
		`{"name":"Alice 2","email":"alice@example.com","password":"otherpass"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register expected 400, got %d %s", w.Code, w.Body.String())
	}
	if n, err := env.Store.CountUsers(env.Ctx); err != nil || n != 1 {
		t.Fatalf("want exactly 1 user, got %d (err=%v)", n, err)
	}

	// login with the right password
	w = env.do("POST", "/api/users/login",
		`{"email":"alice@example.com","password":"s3cretpass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login code=%d body=%s", w.Code, w.Body.String())
	}
	var login struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	decode(t, w, &login)
	if _, ok := login.User["password"]; ok {
		t.Fatalf("password leaked in login response: %v", login.User)
	}

	// wrong password and unknown email look identical to the caller
	w = env.do("POST", "/api/users/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong password expected 400, got %d", w.Code)
	}
	w = env.do("POST", "/api/users/login",
		`{"email":"nobody@example.com","password":"s3cretpass"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown email expected 400, got %d", w.Code)
	}
}

func Test_Interview_SaveGetList(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	userID := primitive.NewObjectID().Hex() // dangling user ids are accepted

	payload := `{
		"userId": "` + userID + `",
		"questions": [{"text":"Explain closures.","category":"technical"}],
		"answers": ["A closure captures its lexical scope."],
		"feedback": {"overall":"solid","tips":["slow down"]},
		"settings": {"category":"technical","count":1},
		"scores": {"clarity":4.5,"depth":3}
	}`
	w := env.do("POST", "/api/interviews", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("save code=%d body=%s", w.Code, w.Body.String())
	}
	var saved struct {
		InterviewID string `json:"interviewId"`
	}
	decode(t, w, &saved)
	if saved.InterviewID == "" {
		t.Fatal("no interviewId in response")
	}

	// fetch it back and compare the opaque fields structurally
	w = env.do("GET", "/api/interviews/"+saved.InterviewID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get code=%d body=%s", w.Code, w.Body.String())
	}
	var got map[string]interface{}
	decode(t, w, &got)

	var sent map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &sent); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"questions", "answers", "feedback", "settings", "scores"} {
		if !reflect.DeepEqual(got[field], sent[field]) {
			t.Fatalf("field %q did not round-trip:\nsent %#v\ngot  %#v", field, sent[field], got[field])
		}
	}
	if got["userId"] != userID {
		t.Fatalf("userId = %v, want %s", got["userId"], userID)
	}

	// two more sessions for the same user; distinct timestamps matter
	// because Mongo stores createdAt at millisecond precision
	var ids []string
	ids = append(ids, saved.InterviewID)
	for i := 0; i < 2; i++ {
		time.Sleep(5 * time.Millisecond)
		w = env.do("POST", "/api/interviews", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("save #%d code=%d", i+2, w.Code)
		}
		var s struct {
			InterviewID string `json:"interviewId"`
		}
		decode(t, w, &s)
		ids = append(ids, s.InterviewID)
	}

	w = env.do("GET", "/api/interviews/user/"+userID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list code=%d body=%s", w.Code, w.Body.String())
	}
	var list []map[string]interface{}
	decode(t, w, &list)
	if len(list) != 3 {
		t.Fatalf("want 3 sessions, got %d", len(list))
	}
	for i := range list {
		if want := ids[len(ids)-1-i]; list[i]["id"] != want {
			t.Fatalf("position %d: got %v, want %s (newest first)", i, list[i]["id"], want)
		}
	}

	// a user with no sessions gets an empty list, not an error
	w = env.do("GET", "/api/interviews/user/"+primitive.NewObjectID().Hex(), "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("empty list: code=%d body=%q", w.Code, w.Body.String())
	}

	// unknown and malformed ids are both "not found"
	w = env.do("GET", "/api/interviews/"+primitive.NewObjectID().Hex(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id expected 404, got %d", w.Code)
	}
	w = env.do("GET", "/api/interviews/not-a-hex-id", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("malformed id expected 404, got %d", w.Code)
	}

	// malformed userId on save and list is a client error
	w = env.do("POST", "/api/interviews", `{"userId":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad userId on save expected 400, got %d", w.Code)
	}
	w = env.do("GET", "/api/interviews/user/nope", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad userId on list expected 400, got %d", w.Code)
	}
}

func Test_Seed_And_Questions(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	if err := seed.Run(env.Ctx, env.Store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// idempotent: a second run changes nothing
	if err := seed.Run(env.Ctx, env.Store); err != nil {
		t.Fatalf("seed rerun: %v", err)
	}
	if n, err := env.Store.CountQuestions(env.Ctx); err != nil || n != 40 {
		t.Fatalf("want 40 questions after two seed runs, got %d (err=%v)", n, err)
	}
	if n, err := env.Store.CountUsers(env.Ctx); err != nil || n != 1 {
		t.Fatalf("want 1 demo user after two seed runs, got %d (err=%v)", n, err)
	}

	// demo credentials work through the API
	w := env.do("POST", "/api/users/login",
		`{"email":"john@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("demo login code=%d body=%s", w.Code, w.Body.String())
	}

	w = env.do("GET", "/api/questions/technical", "")
	if w.Code != http.StatusOK {
		t.Fatalf("questions code=%d body=%s", w.Code, w.Body.String())
	}
	var qs []map[string]interface{}
	decode(t, w, &qs)
	if len(qs) != 10 {
		t.Fatalf("want 10 technical questions, got %d", len(qs))
	}
	for _, q := range qs {
		if q["category"] != "technical" {
			t.Fatalf("stray category in result: %v", q)
		}
	}

	// exact match only, unknown category is empty, not an error
	w = env.do("GET", "/api/questions/Technical", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("case-sensitive match: code=%d body=%q", w.Code, w.Body.String())
	}
	w = env.do("GET", "/api/questions/nonexistent", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unknown category: code=%d body=%q", w.Code, w.Body.String())
	}
}

func Test_SPA_Fallback(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	// any unmatched non-API GET serves the app shell
	for _, path := range []string{"/", "/practice", "/some/deep/route", "/index.html"} {
		w := env.do("GET", path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: code=%d", path, w.Code)
		}
		if body := w.Body.String(); body == "" || body[0] != '<' {
			t.Fatalf("GET %s: expected the SPA document, got %q", path, body)
		}
	}

	// unmatched API routes stay JSON 404s
	w := env.do("GET", "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /api/nope: code=%d", w.Code)
	}
	w = env.do("DELETE", "/practice", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("DELETE /practice: expected 404, got %d", w.Code)
	}
}
