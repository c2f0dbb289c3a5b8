package rpcjson

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	sqliteadapter "github.com/vuminhieu/spexor-client/internal/adapters/db/sqlite"
	"github.com/vuminhieu/spexor-client/internal/application"
)

type testResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
	ID      any             `json:"id"`
}

func startTestServer(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	db, err := sqliteadapter.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := sqliteadapter.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := application.NewService(sqliteadapter.NewRepositories(db))
	if err := svc.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	socket := filepath.Join(dir, "rpc.sock")
	srv, err := Start(socket, svc)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })
	return socket
}

func call(t *testing.T, socket, method string, params any) testResponse {
	t.Helper()
	conn, err := net.Dial("unix", socket)
	if err != nil {
		t.Fatalf("dial %s: %v", socket, err)
	}
	defer conn.Close()

	req := map[string]any{"jsonrpc": "2.0", "method": method, "id": 1}
	if params != nil {
		req["params"] = params
	}
	if err := json.NewEncoder(conn).Encode(req); err != nil {
		t.Fatalf("encode request: %v", err)
	}
	var resp testResponse
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestLoginOverSocket(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "auth.login", map[string]any{"username": "admin", "password": "admin"})
	if resp.Error != nil {
		t.Fatalf("login failed: %+v", resp.Error)
	}
	var user struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(resp.Result, &user); err != nil {
		t.Fatalf("unmarshal login result: %v", err)
	}
	if user.Username != "admin" || user.ID == 0 {
		t.Fatalf("unexpected login result: %+v", user)
	}

	resp = call(t, socket, "auth.login", map[string]any{"username": "admin", "password": "wrong"})
	if resp.Error == nil || resp.Error.Code != codeInvalidCredentials {
		t.Fatalf("want code %d, got %+v", codeInvalidCredentials, resp.Error)
	}
}

func TestCaseCreateAndListOverSocket(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "cases.create", map[string]any{"code": "INV-7", "title": "Wiretap review"})
	if resp.Error != nil {
		t.Fatalf("create failed: %+v", resp.Error)
	}
	var created struct {
		ID   uint   `json:"id"`
		Code string `json:"code"`
	}
	if err := json.Unmarshal(resp.Result, &created); err != nil {
		t.Fatalf("unmarshal case: %v", err)
	}
	if created.ID == 0 || created.Code != "INV-7" {
		t.Fatalf("unexpected case: %+v", created)
	}

	resp = call(t, socket, "cases.list", nil)
	if resp.Error != nil {
		t.Fatalf("list failed: %+v", resp.Error)
	}
	var cases []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(resp.Result, &cases); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(cases) != 1 || cases[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", cases)
	}
}

func TestErrorCodesOverSocket(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "no.such.method", nil)
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("want method-not-found, got %+v", resp.Error)
	}

	resp = call(t, socket, "cases.get", map[string]any{"id": 9999})
	if resp.Error == nil || resp.Error.Code != codeNotFound {
		t.Fatalf("want code %d, got %+v", codeNotFound, resp.Error)
	}
}
