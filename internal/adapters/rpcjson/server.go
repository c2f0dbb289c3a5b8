package rpcjson

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/application"
	"github.com/vuminhieu/spexor-client/internal/domain"
)

type Server struct {
	service  *application.Service
	listener net.Listener
	path     string
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      any             `json:"id"`
}

type response struct {
	JSONRPC string    `json:"jsonrpc"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
	ID      any       `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Application error codes carried alongside the standard JSON-RPC ones.
const (
	codeAppError           = 40000
	codeInvalidCredentials = 40100
	codeAccountDisabled    = 40300
	codeNotFound           = 40401
	codeHashFailure        = 50001
)

func Start(path string, service *application.Service) (*Server, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("rpc socket path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		_ = os.Remove(path)
		return nil, err
	}

	s := &Server{service: service, listener: ln, path: path}
	go s.serve()
	return s, nil
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *Server) Close() error {
	err := s.listener.Close()
	_ = os.Remove(s.path)
	return err
}

func (s *Server) handleConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			_ = enc.Encode(response{JSONRPC: "2.0", Error: &rpcError{Code: -32700, Message: "parse error"}, ID: nil})
			return
		}

		resp := s.dispatch(context.Background(), req)
		if err := enc.Encode(resp); err != nil {
			return
		}
	}
}

func (s *Server) dispatch(ctx context.Context, req request) response {
	if req.JSONRPC != "2.0" || strings.TrimSpace(req.Method) == "" {
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -32600, Message: "invalid request"}, ID: req.ID}
	}

	switch req.Method {
	case "auth.login":
		var p struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.Login(ctx, p.Username, p.Password)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "auth.logout":
		var p struct {
			UserID *uint `json:"user_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.Logout(ctx, p.UserID); err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "auth.current_user":
		var p struct {
			UserID *uint `json:"user_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetCurrentUser(ctx, p.UserID)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "auth.change_password":
		var p struct {
			UserID          uint   `json:"user_id"`
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.ChangePassword(ctx, p.UserID, p.CurrentPassword, p.NewPassword); err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "cases.list":
		out, err := s.service.ListCases(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "cases.get":
		id, ok := decodeID(req.Params)
		if !ok {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetCase(ctx, id)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "cases.create":
		var p domain.NewCase
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateCase(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "cases.update":
		var p struct {
			ID uint `json:"id"`
			domain.UpdateCase
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.UpdateCase(ctx, p.ID, p.UpdateCase)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "cases.delete":
		return s.deleteByID(ctx, req, s.service.DeleteCase)
	case "audio.list":
		var p struct {
			CaseID uint `json:"case_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListAudioFiles(ctx, p.CaseID)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "audio.get":
		id, ok := decodeID(req.Params)
		if !ok {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetAudioFile(ctx, id)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "audio.create":
		var p domain.NewAudioFile
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateAudioFile(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "audio.update":
		var p struct {
			ID uint `json:"id"`
			domain.UpdateAudioFile
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.UpdateAudioFile(ctx, p.ID, p.UpdateAudioFile)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "audio.delete":
		return s.deleteByID(ctx, req, s.service.DeleteAudioFile)
	case "speakers.list":
		out, err := s.service.ListSpeakers(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "speakers.get":
		id, ok := decodeID(req.Params)
		if !ok {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetSpeaker(ctx, id)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "speakers.create":
		var p domain.NewSpeaker
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateSpeaker(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "speakers.update":
		var p struct {
			ID uint `json:"id"`
			domain.UpdateSpeaker
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.UpdateSpeaker(ctx, p.ID, p.UpdateSpeaker)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "speakers.delete":
		return s.deleteByID(ctx, req, s.service.DeleteSpeaker)
	case "samples.list":
		var p struct {
			SpeakerID uint `json:"speaker_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListVoiceSamples(ctx, p.SpeakerID)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "samples.create":
		var p domain.NewVoiceSample
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateVoiceSample(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "samples.delete":
		return s.deleteByID(ctx, req, s.service.DeleteVoiceSample)
	case "transcripts.list":
		var p struct {
			AudioFileID uint `json:"audio_file_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListTranscript(ctx, p.AudioFileID)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "transcripts.create":
		var p domain.NewTranscriptSegment
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateTranscriptSegment(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "transcripts.bulk_create":
		var p struct {
			AudioFileID uint                          `json:"audio_file_id"`
			Segments    []domain.NewTranscriptSegment `json:"segments"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		count, err := s.service.BulkCreateTranscript(ctx, p.AudioFileID, p.Segments)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"created": count})
	case "transcripts.update":
		var p struct {
			ID uint `json:"id"`
			domain.UpdateTranscriptSegment
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.UpdateTranscriptSegment(ctx, p.ID, p.UpdateTranscriptSegment)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "transcripts.delete":
		return s.deleteByID(ctx, req, s.service.DeleteTranscriptSegment)
	case "alerts.list":
		var p struct {
			Category string `json:"category"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListAlertWords(ctx, p.Category)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "alerts.create":
		var p domain.NewAlertWord
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateAlertWord(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "alerts.delete":
		return s.deleteByID(ctx, req, s.service.DeleteAlertWord)
	case "replacements.list":
		out, err := s.service.ListReplacementWords(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "replacements.create":
		var p domain.NewReplacementWord
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateReplacementWord(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "replacements.delete":
		return s.deleteByID(ctx, req, s.service.DeleteReplacementWord)
	case "notifications.list":
		out, err := s.service.ListNotifications(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "notifications.unread_count":
		count, err := s.service.UnreadNotificationCount(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"count": count})
	case "notifications.create":
		var p domain.NewNotification
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateNotification(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "notifications.update":
		var p struct {
			ID uint `json:"id"`
			domain.UpdateNotification
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.UpdateNotification(ctx, p.ID, p.UpdateNotification)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "notifications.mark_all_read":
		count, err := s.service.MarkAllNotificationsRead(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"updated": count})
	case "notifications.delete":
		return s.deleteByID(ctx, req, s.service.DeleteNotification)
	case "users.list":
		out, err := s.service.ListUsers(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "users.get":
		id, ok := decodeID(req.Params)
		if !ok {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetUser(ctx, id)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "users.create":
		var p application.NewUserInput
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateUser(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "users.update":
		var p struct {
			ID uint `json:"id"`
			domain.UpdateUser
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.UpdateUser(ctx, p.ID, p.UpdateUser)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "users.set_active":
		var p struct {
			ID     uint `json:"id"`
			Active bool `json:"active"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.SetUserActive(ctx, p.ID, p.Active); err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "users.delete":
		return s.deleteByID(ctx, req, s.service.DeleteUser)
	case "activity.list":
		out, err := s.service.ListActivity(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "activity.by_action":
		var p struct {
			Action string `json:"action"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListActivityByAction(ctx, p.Action)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "activity.create":
		var p domain.NewActivityLog
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateActivity(ctx, p)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, out)
	case "activity.cleanup":
		var p struct {
			Days int `json:"days"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		count, err := s.service.CleanupActivity(ctx, p.Days)
		if err != nil {
			return appError(req.ID, err)
		}
		return result(req.ID, map[string]any{"deleted": count})
	default:
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -32601, Message: "method not found"}, ID: req.ID}
	}
}

func (s *Server) deleteByID(ctx context.Context, req request, del func(context.Context, uint) error) response {
	id, ok := decodeID(req.Params)
	if !ok {
		return invalidParams(req.ID)
	}
	if err := del(ctx, id); err != nil {
		return appError(req.ID, err)
	}
	return result(req.ID, map[string]any{"ok": true})
}

// decodeParams tolerates absent params so zero-argument methods need no
// params object at all.
func decodeParams(raw json.RawMessage, out any) bool {
	if len(raw) == 0 {
		return true
	}
	return json.Unmarshal(raw, out) == nil
}

func decodeID(raw json.RawMessage) (uint, bool) {
	var p struct {
		ID uint `json:"id"`
	}
	if !decodeParams(raw, &p) {
		return 0, false
	}
	return p.ID, true
}

func result(id any, out any) response {
	return response{JSONRPC: "2.0", Result: out, ID: id}
}

func invalidParams(id any) response {
	return response{JSONRPC: "2.0", Error: &rpcError{Code: -32602, Message: "invalid params"}, ID: id}
}

// appError keeps the error kind visible in the code while the message is
// the only place the error text crosses the boundary.
func appError(id any, err error) response {
	code := codeAppError
	switch {
	case domain.IsNotFound(err):
		code = codeNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		code = codeInvalidCredentials
	case errors.Is(err, domain.ErrAccountDisabled):
		code = codeAccountDisabled
	case errors.Is(err, domain.ErrHashFailure):
		code = codeHashFailure
	}
	return response{JSONRPC: "2.0", Error: &rpcError{Code: code, Message: err.Error()}, ID: id}
}
